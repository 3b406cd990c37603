package output

import (
	"bytes"
	"fmt"

	"github.com/homeplan/affordability-engine/internal/domain"
	"github.com/homeplan/affordability-engine/pkg/money"
)

// FormatMilestones renders a milestone roadmap as console text. The roadmap
// is independent of the projection report, so it does not go through the
// Formatter registry.
func FormatMilestones(milestones []domain.Milestone) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SAVINGS ROADMAP")
	fmt.Fprintln(&buf, "===============")
	for i := range milestones {
		m := &milestones[i]
		mark := " "
		switch m.Status {
		case domain.MilestoneDone:
			mark = "x"
		case domain.MilestoneCurrent:
			mark = ">"
		}
		if m.HasAmount() {
			fmt.Fprintf(&buf, "[%s] %2d. %s (%s%% = %s)\n", mark, m.ID, m.Title, m.Percent, money.Format(*m.AmountValue))
		} else {
			fmt.Fprintf(&buf, "[%s] %2d. %s\n", mark, m.ID, m.Title)
		}
	}
	return buf.Bytes()
}
