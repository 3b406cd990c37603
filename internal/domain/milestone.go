package domain

import (
	"github.com/shopspring/decimal"
)

// MilestoneStatus tracks a checkpoint's progress state. Exactly one
// amount-bearing milestone in a sequence may be "current" at a time.
type MilestoneStatus string

const (
	MilestoneDone     MilestoneStatus = "done"
	MilestoneCurrent  MilestoneStatus = "current"
	MilestoneUpcoming MilestoneStatus = "upcoming"
)

// Milestone is one checkpoint on the savings roadmap toward the purchase.
// Percent and AmountValue are nil for pure time/sequence markers, which keep
// their template status and never compete for "done"/"current".
type Milestone struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Percent     *decimal.Decimal `json:"percent,omitempty"`
	AmountValue *decimal.Decimal `json:"amount_value,omitempty"`
	Status      MilestoneStatus  `json:"status"`
}

// HasAmount reports whether the milestone carries a savings threshold.
func (m *Milestone) HasAmount() bool {
	return m.AmountValue != nil
}
