package calculation

import (
	"fmt"

	"github.com/homeplan/affordability-engine/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one        = decimal.NewFromInt(1)
	twelve     = decimal.NewFromInt(12)
	oneHundred = decimal.NewFromInt(100)
	rateFloor  = decimal.NewFromInt(-100)
)

// Compound projects base forward by years at a fixed annual percentage rate:
// base * (1 + rate/100)^years. Zero years returns base unchanged. Negative
// rates (depreciation) are permitted down to -100%.
func Compound(base, annualRatePct decimal.Decimal, years int) (decimal.Decimal, error) {
	if annualRatePct.LessThan(rateFloor) {
		return decimal.Decimal{}, fmt.Errorf("%w: growth rate below -100%%: %s%%", domain.ErrInvalidAssumption, annualRatePct)
	}
	if years < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: cannot compound over %d years", domain.ErrInvalidAssumption, years)
	}
	if years == 0 {
		return base, nil
	}
	factor := one.Add(annualRatePct.Div(oneHundred))
	return base.Mul(factor.Pow(decimal.NewFromInt(int64(years)))), nil
}

// LoanCapacity returns the maximum principal serviceable by the household's
// monthly surplus (income - expenses) under the standard fixed-rate
// amortization formula: surplus * (1 - (1+r)^-n) / r, with r the monthly rate
// and n the number of months. A zero interest rate degrades to
// surplus * termYears * 12 (linear, no discounting). A non-positive surplus
// yields zero capacity.
func LoanCapacity(monthlyIncome, monthlyExpenses, interestRatePct decimal.Decimal, termYears int) (decimal.Decimal, error) {
	if interestRatePct.LessThan(rateFloor) {
		return decimal.Decimal{}, fmt.Errorf("%w: loan interest rate below -100%%: %s%%", domain.ErrInvalidAssumption, interestRatePct)
	}
	if termYears <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: loan term must be positive, got %d years", domain.ErrInvalidAssumption, termYears)
	}

	surplus := monthlyIncome.Sub(monthlyExpenses)
	if surplus.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	months := decimal.NewFromInt(int64(termYears) * 12)
	if interestRatePct.IsZero() {
		return surplus.Mul(months), nil
	}

	monthlyRate := interestRatePct.Div(oneHundred).Div(twelve)
	discount := one.Sub(one.Add(monthlyRate).Pow(months.Neg()))
	return surplus.Mul(discount).Div(monthlyRate), nil
}

// FamilyContribution returns the net cash amount attributable to family
// support in a given year offset. Positive amounts are capital made available
// to the plan; negative amounts are repayment deductions. Terms must already
// be validated; nil terms contribute nothing.
//
//   - GIFT received now: full amount at year 0 only.
//   - GIFT at purchase: full amount in the purchase year only.
//   - LOAN: principal counted as available capital at year 0; monthly-style
//     repayment deducts an amortized annual installment in years 1..term,
//     lump-sum style deducts principal*(1+rate)^term entirely in the term year.
func FamilyContribution(terms *domain.FamilySupportTerms, yearOffset, purchaseOffset int) decimal.Decimal {
	if terms == nil {
		return decimal.Zero
	}

	switch terms.Kind {
	case domain.SupportGift:
		switch terms.GiftTiming {
		case domain.GiftReceivedNow:
			if yearOffset == 0 {
				return terms.GiftAmount
			}
		case domain.GiftReceivedAtPurchase:
			if yearOffset == purchaseOffset {
				return terms.GiftAmount
			}
		}

	case domain.SupportLoan:
		net := decimal.Zero
		if yearOffset == 0 {
			net = terms.LoanPrincipal
		}
		switch terms.Repayment {
		case domain.RepayMonthlyInstallment:
			if yearOffset >= 1 && yearOffset <= terms.LoanTermYears {
				net = net.Sub(annualLoanInstallment(terms.LoanPrincipal, terms.LoanRatePct, terms.LoanTermYears))
			}
		case domain.RepayLumpSumAtTerm:
			if yearOffset == terms.LoanTermYears {
				repay := terms.LoanPrincipal
				if !terms.LoanRatePct.IsZero() {
					factor := one.Add(terms.LoanRatePct.Div(oneHundred))
					repay = repay.Mul(factor.Pow(decimal.NewFromInt(int64(terms.LoanTermYears))))
				}
				net = net.Sub(repay)
			}
		}
		return net
	}

	return decimal.Zero
}

// annualLoanInstallment is the amortized monthly payment for the family loan,
// annualized. Zero-rate loans repay the principal in equal yearly slices.
func annualLoanInstallment(principal, ratePct decimal.Decimal, termYears int) decimal.Decimal {
	if ratePct.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termYears)))
	}
	months := decimal.NewFromInt(int64(termYears) * 12)
	monthlyRate := ratePct.Div(oneHundred).Div(twelve)
	discount := one.Sub(one.Add(monthlyRate).Pow(months.Neg()))
	monthlyPayment := principal.Mul(monthlyRate).Div(discount)
	return monthlyPayment.Mul(twelve)
}
