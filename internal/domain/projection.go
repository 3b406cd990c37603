package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionRow is one simulated year's financial snapshot. Rows are computed
// strictly sequentially: house price and savings derive from the previous row
// plus that year's growth and contributions, never recomputed out of order.
type ProjectionRow struct {
	YearIndex int `json:"year_index"` // 0 = current year
	Year      int `json:"year"`       // absolute calendar year

	HousePrice        decimal.Decimal `json:"house_price"`
	CumulativeSavings decimal.Decimal `json:"cumulative_savings"`
	RequiredLoan      decimal.Decimal `json:"required_loan"`
	LoanCapacity      decimal.Decimal `json:"loan_capacity"`
	FamilyCashFlow    decimal.Decimal `json:"family_cash_flow"`
	IsAffordable      bool            `json:"is_affordable"`
}

// FundsAvailable is the purchasing power backing the affordability test:
// accumulated savings plus the loan principal the household qualifies for.
func (r *ProjectionRow) FundsAvailable() decimal.Decimal {
	return r.CumulativeSavings.Add(r.LoanCapacity)
}

// Shortfall returns how far funds fall short of the projected price
// (zero when the year is affordable).
func (r *ProjectionRow) Shortfall() decimal.Decimal {
	gap := r.HousePrice.Sub(r.FundsAvailable())
	if gap.IsNegative() {
		return decimal.Zero
	}
	return gap
}

// PlanSummary bundles one plan run for report and CLI consumption.
// SelectedPurchaseYear is always the caller's confirmed target year,
// independent of the earliest affordable year found.
type PlanSummary struct {
	SelectedPurchaseYear   int             `json:"selected_purchase_year"`
	EarliestAffordableYear *int            `json:"earliest_affordable_year,omitempty"`
	PurchaseYearPrice      decimal.Decimal `json:"purchase_year_price"`
	Projection             []ProjectionRow `json:"projection"`
}

// TargetYearAffordable reports whether the selected purchase year itself
// passed the affordability test.
func (s *PlanSummary) TargetYearAffordable() bool {
	for i := range s.Projection {
		if s.Projection[i].Year == s.SelectedPurchaseYear {
			return s.Projection[i].IsAffordable
		}
	}
	return false
}

// ComparisonTiming classifies the user-confirmed target year against the
// earliest affordable year.
type ComparisonTiming string

const (
	TimingEarlier ComparisonTiming = "earlier" // target precedes earliest affordable
	TimingLater   ComparisonTiming = "later"
	TimingEqual   ComparisonTiming = "equal"
)

// ComparisonResult contrasts two candidate purchase years drawn from an
// already-computed projection sequence.
type ComparisonResult struct {
	EarliestYear int           `json:"earliest_year"`
	TargetYear   int           `json:"target_year"`
	EarliestRow  ProjectionRow `json:"earliest_row"`
	TargetRow    ProjectionRow `json:"target_row"`

	// Target-minus-earliest deltas.
	SavingsDifference decimal.Decimal `json:"savings_difference"`
	LoanDifference    decimal.Decimal `json:"loan_difference"`

	Timing ComparisonTiming `json:"timing"`
}
