package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/homeplan/affordability-engine/internal/config"
	"github.com/homeplan/affordability-engine/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport dispatches to a registered formatter and writes the result
// to a timestamped file.
func GenerateReport(summary *domain.PlanSummary, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	ext := f.Name()
	if ext == "console" {
		ext = "txt"
	}
	_, err := WriteFormatted(f, summary, ext)
	return err
}

// SavePlan writes a plan document back out as YAML, used by the example
// subcommand to seed a starting plan file.
func SavePlan(doc *config.PlanDocument, filename string) error {
	b, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
