package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentMethod selects how the purchase itself is financed.
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodBankLoan      PaymentMethod = "bank_loan"
	PaymentMethodFamilySupport PaymentMethod = "family_support"
)

// SupportKind distinguishes non-repayable gifts from repayable family loans.
type SupportKind string

const (
	SupportGift SupportKind = "gift"
	SupportLoan SupportKind = "loan"
)

// GiftTiming determines which projection year a gift lands in.
type GiftTiming string

const (
	GiftReceivedNow        GiftTiming = "now"
	GiftReceivedAtPurchase GiftTiming = "at_purchase"
)

// RepaymentStyle determines how a family loan is paid back.
type RepaymentStyle string

const (
	RepayMonthlyInstallment RepaymentStyle = "monthly_installment"
	RepayLumpSumAtTerm      RepaymentStyle = "lump_sum"
)

// FamilySupportTerms describes third-party capital injected into the plan,
// either as a gift or as a loan with its own interest and repayment schedule.
// The kind gates which fields are meaningful; Validate enforces that.
type FamilySupportTerms struct {
	Kind SupportKind `json:"kind" yaml:"kind"`

	// Gift fields.
	GiftAmount decimal.Decimal `json:"gift_amount" yaml:"gift_amount"`
	GiftTiming GiftTiming      `json:"gift_timing" yaml:"gift_timing"`

	// Loan fields.
	LoanPrincipal decimal.Decimal `json:"loan_principal" yaml:"loan_principal"`
	LoanRatePct   decimal.Decimal `json:"loan_rate_pct" yaml:"loan_rate_pct"`
	Repayment     RepaymentStyle  `json:"repayment" yaml:"repayment"`
	LoanTermYears int             `json:"loan_term_years" yaml:"loan_term_years"`
}

// Validate checks the support terms for the fields their kind requires.
func (t *FamilySupportTerms) Validate() error {
	switch t.Kind {
	case SupportGift:
		if t.GiftAmount.IsNegative() {
			return fmt.Errorf("%w: family gift amount cannot be negative", ErrInvalidAssumption)
		}
		if t.GiftTiming != GiftReceivedNow && t.GiftTiming != GiftReceivedAtPurchase {
			return fmt.Errorf("%w: gift timing must be %q or %q", ErrInvalidAssumption, GiftReceivedNow, GiftReceivedAtPurchase)
		}
	case SupportLoan:
		if t.LoanPrincipal.IsNegative() {
			return fmt.Errorf("%w: family loan principal cannot be negative", ErrInvalidAssumption)
		}
		if t.LoanRatePct.LessThan(decimal.NewFromInt(-100)) {
			return fmt.Errorf("%w: family loan rate cannot be below -100%%", ErrInvalidAssumption)
		}
		if t.Repayment != RepayMonthlyInstallment && t.Repayment != RepayLumpSumAtTerm {
			return fmt.Errorf("%w: repayment style must be %q or %q", ErrInvalidAssumption, RepayMonthlyInstallment, RepayLumpSumAtTerm)
		}
		if t.LoanTermYears <= 0 {
			return fmt.Errorf("%w: family loan term must be positive", ErrInvalidAssumption)
		}
	default:
		return fmt.Errorf("%w: support kind must be %q or %q", ErrInvalidAssumption, SupportGift, SupportLoan)
	}
	return nil
}

// PlanInputs is the immutable snapshot of a user's financial plan consumed by
// one simulation run. Monetary amounts are in the engine base unit (millions);
// rates are annual percentages (7 means 7%/yr). Year inputs are relative
// offsets from CurrentYear; the caller performs all unit and calendar
// conversion before constructing this.
type PlanInputs struct {
	CurrentYear      int             `json:"current_year" yaml:"current_year"`
	TargetHousePrice decimal.Decimal `json:"target_house_price" yaml:"target_house_price"`
	YearsToPurchase  int             `json:"years_to_purchase" yaml:"years_to_purchase"`
	InitialSavings   decimal.Decimal `json:"initial_savings" yaml:"initial_savings"`
	MonthlyIncome    decimal.Decimal `json:"monthly_income" yaml:"monthly_income"`
	MonthlyExpenses  decimal.Decimal `json:"monthly_expenses" yaml:"monthly_expenses"`
	HasCoApplicant   bool            `json:"has_co_applicant" yaml:"has_co_applicant"`

	SalaryGrowthPct     decimal.Decimal `json:"salary_growth_pct" yaml:"salary_growth_pct"`
	HouseGrowthPct      decimal.Decimal `json:"house_growth_pct" yaml:"house_growth_pct"`
	ExpenseGrowthPct    decimal.Decimal `json:"expense_growth_pct" yaml:"expense_growth_pct"`
	InvestmentReturnPct decimal.Decimal `json:"investment_return_pct" yaml:"investment_return_pct"`

	LoanInterestRatePct decimal.Decimal `json:"loan_interest_rate_pct" yaml:"loan_interest_rate_pct"`
	LoanTermYears       int             `json:"loan_term_years" yaml:"loan_term_years"`

	PaymentMethod PaymentMethod       `json:"payment_method" yaml:"payment_method"`
	FamilySupport *FamilySupportTerms `json:"family_support,omitempty" yaml:"family_support,omitempty"`
}

// HouseholdMonthlyIncome returns the income the simulation compounds and
// services loans from. A co-applicant is treated as a second equal earner.
func (p *PlanInputs) HouseholdMonthlyIncome() decimal.Decimal {
	if p.HasCoApplicant {
		return p.MonthlyIncome.Mul(decimal.NewFromInt(2))
	}
	return p.MonthlyIncome
}

// Validate rejects out-of-domain inputs before the year loop runs.
// It never clamps: a bad rate is the caller's problem to fix.
func (p *PlanInputs) Validate() error {
	if p.CurrentYear <= 0 {
		return fmt.Errorf("%w: current year is required", ErrInvalidAssumption)
	}
	if p.TargetHousePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: target house price must be positive", ErrInvalidAssumption)
	}
	if p.YearsToPurchase < 0 {
		return fmt.Errorf("%w: years to purchase cannot be negative", ErrInvalidAssumption)
	}
	if p.InitialSavings.IsNegative() {
		return fmt.Errorf("%w: initial savings cannot be negative", ErrInvalidAssumption)
	}
	if p.MonthlyIncome.IsNegative() {
		return fmt.Errorf("%w: monthly income cannot be negative", ErrInvalidAssumption)
	}
	if p.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("%w: monthly living expenses cannot be negative", ErrInvalidAssumption)
	}

	floor := decimal.NewFromInt(-100)
	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"salary growth", p.SalaryGrowthPct},
		{"house price growth", p.HouseGrowthPct},
		{"expense growth", p.ExpenseGrowthPct},
		{"investment return", p.InvestmentReturnPct},
		{"loan interest rate", p.LoanInterestRatePct},
	}
	for _, r := range rates {
		if r.rate.LessThan(floor) {
			return fmt.Errorf("%w: %s rate cannot be below -100%%, got %s%%", ErrInvalidAssumption, r.name, r.rate)
		}
	}

	if p.LoanTermYears <= 0 {
		return fmt.Errorf("%w: loan term must be positive", ErrInvalidAssumption)
	}

	switch p.PaymentMethod {
	case PaymentMethodCash, PaymentMethodBankLoan:
	case PaymentMethodFamilySupport:
		if p.FamilySupport == nil {
			return fmt.Errorf("%w: family support terms are required for the family support payment method", ErrInvalidAssumption)
		}
	default:
		return fmt.Errorf("%w: payment method must be %q, %q or %q",
			ErrInvalidAssumption, PaymentMethodCash, PaymentMethodBankLoan, PaymentMethodFamilySupport)
	}

	if p.FamilySupport != nil {
		if err := p.FamilySupport.Validate(); err != nil {
			return err
		}
	}
	return nil
}
