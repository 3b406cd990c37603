package calculation

import (
	"fmt"

	"github.com/homeplan/affordability-engine/internal/domain"
)

// GenerateComparisonData contrasts two candidate purchase years from an
// already-computed projection: the earliest affordable year and the
// user-confirmed target year, both as absolute calendar years. A year outside
// the simulated sequence fails with ErrYearNotInProjection; the caller must
// re-run the projection with a wider horizon rather than get a truncated
// answer.
func (ce *Engine) GenerateComparisonData(projection []domain.ProjectionRow, earliestYear, targetYear int) (*domain.ComparisonResult, error) {
	earliestRow, err := rowForYear(projection, earliestYear)
	if err != nil {
		return nil, err
	}
	targetRow, err := rowForYear(projection, targetYear)
	if err != nil {
		return nil, err
	}

	result := &domain.ComparisonResult{
		EarliestYear:      earliestYear,
		TargetYear:        targetYear,
		EarliestRow:       earliestRow,
		TargetRow:         targetRow,
		SavingsDifference: targetRow.CumulativeSavings.Sub(earliestRow.CumulativeSavings),
		LoanDifference:    targetRow.RequiredLoan.Sub(earliestRow.RequiredLoan),
	}

	switch {
	case targetYear < earliestYear:
		result.Timing = domain.TimingEarlier
	case targetYear > earliestYear:
		result.Timing = domain.TimingLater
	default:
		result.Timing = domain.TimingEqual
	}

	return result, nil
}

func rowForYear(projection []domain.ProjectionRow, year int) (domain.ProjectionRow, error) {
	for i := range projection {
		if projection[i].Year == year {
			return projection[i], nil
		}
	}
	return domain.ProjectionRow{}, fmt.Errorf("%w: year %d", domain.ErrYearNotInProjection, year)
}
