package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/homeplan/affordability-engine/internal/calculation"
	"github.com/homeplan/affordability-engine/internal/config"
	"github.com/homeplan/affordability-engine/internal/domain"
	"github.com/homeplan/affordability-engine/internal/output"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	planFile    string
	currentYear int
	verbose     bool
)

// logrusAdapter plugs logrus into the engine's Logger interface.
type logrusAdapter struct{}

func (logrusAdapter) Debugf(format string, args ...any) { log.Debugf(format, args...) }
func (logrusAdapter) Infof(format string, args ...any)  { log.Infof(format, args...) }
func (logrusAdapter) Warnf(format string, args ...any)  { log.Warnf(format, args...) }
func (logrusAdapter) Errorf(format string, args ...any) { log.Errorf(format, args...) }

func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	engine.SetLogger(logrusAdapter{})
	engine.Debug = verbose
	return engine
}

// loadPlan reads the plan file and converts it to engine inputs against the
// CLI's current-year reference. The wall clock is read exactly once, here at
// the boundary; the engine itself never consults it.
func loadPlan() (*domain.PlanInputs, *config.PlanDocument, error) {
	parser := config.NewInputParser()
	doc, err := parser.LoadFromFile(planFile)
	if err != nil {
		return nil, nil, err
	}
	inputs, err := doc.ToPlanInputs(currentYear)
	if err != nil {
		return nil, nil, err
	}
	return inputs, doc, nil
}

func newProjectCmd() *cobra.Command {
	var format string
	var writeFile bool

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run the year-by-year affordability projection",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, _, err := loadPlan()
			if err != nil {
				return err
			}
			summary, err := newEngine().RunPlan(inputs)
			if err != nil {
				return err
			}
			if writeFile {
				return output.GenerateReport(summary, format)
			}
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown format %q", format)
			}
			data, err := f.Format(summary)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "console", "report format (console, json, csv)")
	cmd.Flags().BoolVar(&writeFile, "write", false, "write a timestamped report file instead of printing")
	return cmd
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the earliest affordable year against the selected target year",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, _, err := loadPlan()
			if err != nil {
				return err
			}
			engine := newEngine()
			summary, err := engine.RunPlan(inputs)
			if err != nil {
				return err
			}
			if summary.EarliestAffordableYear == nil {
				return fmt.Errorf("nothing to compare: %w", domain.ErrHorizonExceeded)
			}
			res, err := engine.GenerateComparisonData(summary.Projection, *summary.EarliestAffordableYear, summary.SelectedPurchaseYear)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(output.FormatComparison(res))
			return err
		},
	}
	return cmd
}

func newMilestonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Build the savings roadmap toward the purchase",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, _, err := loadPlan()
			if err != nil {
				return err
			}
			engine := newEngine()
			summary, err := engine.RunPlan(inputs)
			if err != nil {
				return err
			}
			milestones, err := engine.BuildMilestones(
				inputs.CurrentYear,
				summary.SelectedPurchaseYear,
				summary.PurchaseYearPrice,
				inputs.InitialSavings,
			)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(output.FormatMilestones(milestones))
			return err
		},
	}
	return cmd
}

func newExampleCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := config.NewInputParser().CreateExamplePlan()
			if err := output.SavePlan(doc, out); err != nil {
				return err
			}
			log.Infof("example plan written to %s", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "plan.yaml", "output file")
	return cmd
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "homeplan",
		Short:        "Home purchase affordability projection engine",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			if currentYear == 0 {
				currentYear = time.Now().Year()
			}
		},
	}
	root.PersistentFlags().StringVar(&planFile, "plan", "plan.yaml", "plan file (YAML)")
	root.PersistentFlags().IntVar(&currentYear, "current-year", 0, "reference year (defaults to the wall clock)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.AddCommand(newProjectCmd(), newCompareCmd(), newMilestonesCmd(), newExampleCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, domain.ErrHorizonExceeded) {
			log.Warn("the plan is not affordable within a reasonable horizon; revisit the assumptions")
		}
		os.Exit(1)
	}
}
