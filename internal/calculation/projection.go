package calculation

import (
	"fmt"

	"github.com/homeplan/affordability-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// GenerateProjections simulates the plan year by year from year 0 (the
// caller's current year) through yearsToPurchase plus the horizon extension.
// Each row depends strictly on the previous one; identical inputs always
// produce an identical sequence.
func (ce *Engine) GenerateProjections(inputs *domain.PlanInputs) ([]domain.ProjectionRow, error) {
	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	extension := ce.HorizonExtension
	if extension < 0 {
		extension = 0
	}
	horizon := inputs.YearsToPurchase + extension

	housePrice := inputs.TargetHousePrice
	savings := inputs.InitialSavings
	monthlyIncome := inputs.HouseholdMonthlyIncome()
	monthlyExpenses := inputs.MonthlyExpenses

	// Family cash flows only apply when the plan is financed with family
	// support; the terms are consumed exclusively by FamilyContribution so
	// the year loop stays free of support-type branching.
	var support *domain.FamilySupportTerms
	if inputs.PaymentMethod == domain.PaymentMethodFamilySupport {
		support = inputs.FamilySupport
	}

	cashOnly := inputs.PaymentMethod == domain.PaymentMethodCash

	projection := make([]domain.ProjectionRow, 0, horizon+1)
	for year := 0; year <= horizon; year++ {
		if year > 0 {
			var err error
			housePrice, err = Compound(housePrice, inputs.HouseGrowthPct, 1)
			if err != nil {
				return nil, err
			}
			monthlyIncome, err = Compound(monthlyIncome, inputs.SalaryGrowthPct, 1)
			if err != nil {
				return nil, err
			}
			monthlyExpenses, err = Compound(monthlyExpenses, inputs.ExpenseGrowthPct, 1)
			if err != nil {
				return nil, err
			}

			// Prior savings earn the investment return for one year, then
			// the year's annualized surplus lands on top. An overspending
			// household drains savings here; nothing clamps that.
			savings, err = Compound(savings, inputs.InvestmentReturnPct, 1)
			if err != nil {
				return nil, err
			}
			savings = savings.Add(monthlyIncome.Sub(monthlyExpenses).Mul(twelve))
		}

		familyCash := FamilyContribution(support, year, inputs.YearsToPurchase)
		savings = savings.Add(familyCash)

		capacity, err := LoanCapacity(monthlyIncome, monthlyExpenses, inputs.LoanInterestRatePct, inputs.LoanTermYears)
		if err != nil {
			return nil, err
		}

		requiredLoan := housePrice.Sub(savings)
		if requiredLoan.IsNegative() {
			requiredLoan = decimal.Zero
		}

		affordable := savings.Add(capacity).GreaterThanOrEqual(housePrice)
		if cashOnly {
			// A cash purchase takes no loan, so capacity does not count
			// toward the test (it is still reported on the row).
			affordable = savings.GreaterThanOrEqual(housePrice)
		}

		if ce.Debug {
			ce.Logger.Debugf("year %d (%d): price=%s savings=%s capacity=%s family=%s affordable=%t",
				year, inputs.CurrentYear+year,
				housePrice.StringFixed(2), savings.StringFixed(2),
				capacity.StringFixed(2), familyCash.StringFixed(2), affordable)
		}

		projection = append(projection, domain.ProjectionRow{
			YearIndex:         year,
			Year:              inputs.CurrentYear + year,
			HousePrice:        housePrice,
			CumulativeSavings: savings,
			RequiredLoan:      requiredLoan,
			LoanCapacity:      capacity,
			FamilyCashFlow:    familyCash,
			IsAffordable:      affordable,
		})
	}

	return projection, nil
}

// EarliestAffordableYear scans the sequence in year order and returns the
// absolute calendar year of the first affordable row. A horizon with no
// affordable row reports ErrHorizonExceeded rather than defaulting to the
// last row.
func (ce *Engine) EarliestAffordableYear(projection []domain.ProjectionRow) (int, error) {
	for i := range projection {
		if projection[i].IsAffordable {
			return projection[i].Year, nil
		}
	}
	return 0, fmt.Errorf("%w: %d years simulated", domain.ErrHorizonExceeded, len(projection))
}
