package config

import (
	"fmt"
	"math"
	"os"

	"github.com/homeplan/affordability-engine/internal/domain"
	"github.com/homeplan/affordability-engine/pkg/money"
	"github.com/homeplan/affordability-engine/pkg/yearutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PlanDocument is the on-disk plan file in the product's boundary units:
// house prices in billions, savings/income/expenses in millions, purchase
// year as an absolute calendar year. ToPlanInputs performs the conversion to
// engine units; the engine never sees this shape.
type PlanDocument struct {
	Plan        PlanSection        `yaml:"plan"`
	Assumptions AssumptionsSection `yaml:"assumptions"`
}

type PlanSection struct {
	TargetHousePriceBillions float64           `yaml:"target_house_price_billions"`
	TargetPurchaseYear       int               `yaml:"target_purchase_year"`
	InitialSavingsMillions   float64           `yaml:"initial_savings_millions"`
	MonthlyIncomeMillions    float64           `yaml:"monthly_income_millions"`
	MonthlyExpensesMillions  float64           `yaml:"monthly_expenses_millions"`
	CoApplicant              bool              `yaml:"co_applicant"`
	PaymentMethod            string            `yaml:"payment_method"`
	FamilySupport            *FamilySupportDoc `yaml:"family_support,omitempty"`
}

type FamilySupportDoc struct {
	Kind              string  `yaml:"kind"`
	AmountMillions    float64 `yaml:"amount_millions,omitempty"`
	Timing            string  `yaml:"timing,omitempty"`
	PrincipalMillions float64 `yaml:"principal_millions,omitempty"`
	RatePct           float64 `yaml:"rate_pct,omitempty"`
	Repayment         string  `yaml:"repayment,omitempty"`
	TermYears         int     `yaml:"term_years,omitempty"`
}

// AssumptionsSection overrides the product-standard growth assumptions.
// Omitted fields fall back to defaults; an explicit zero stays zero.
type AssumptionsSection struct {
	SalaryGrowthPct     *float64 `yaml:"salary_growth_pct,omitempty"`
	HouseGrowthPct      *float64 `yaml:"house_growth_pct,omitempty"`
	ExpenseGrowthPct    *float64 `yaml:"expense_growth_pct,omitempty"`
	InvestmentReturnPct *float64 `yaml:"investment_return_pct,omitempty"`
	LoanInterestRatePct *float64 `yaml:"loan_interest_rate_pct,omitempty"`
	LoanTermYears       *int     `yaml:"loan_term_years,omitempty"`
}

// Product-standard assumptions, applied when the plan file omits a value.
const (
	DefaultSalaryGrowthPct     = 7.0
	DefaultHouseGrowthPct      = 10.0
	DefaultExpenseGrowthPct    = 4.0
	DefaultInvestmentReturnPct = 6.0
	DefaultLoanInterestRatePct = 9.0
	DefaultLoanTermYears       = 25
)

// InputParser handles parsing and boundary validation of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a plan document from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*PlanDocument, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc PlanDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &doc, nil
}

// ValidateDocument checks the document's own fields. Year arithmetic against
// "now" happens later in ToPlanInputs, which knows the reference year.
func (ip *InputParser) ValidateDocument(doc *PlanDocument) error {
	numbers := []struct {
		name  string
		value float64
	}{
		{"target house price", doc.Plan.TargetHousePriceBillions},
		{"initial savings", doc.Plan.InitialSavingsMillions},
		{"monthly income", doc.Plan.MonthlyIncomeMillions},
		{"monthly expenses", doc.Plan.MonthlyExpensesMillions},
	}
	for _, n := range numbers {
		if err := requireFinite(n.name, n.value); err != nil {
			return err
		}
		if n.value < 0 {
			return fmt.Errorf("%w: %s cannot be negative", domain.ErrInvalidAssumption, n.name)
		}
	}

	if doc.Plan.TargetHousePriceBillions <= 0 {
		return fmt.Errorf("%w: target house price must be positive", domain.ErrInvalidAssumption)
	}
	if doc.Plan.TargetPurchaseYear <= 0 {
		return fmt.Errorf("%w: target purchase year is required", domain.ErrInvalidAssumption)
	}

	rates := []struct {
		name  string
		value *float64
	}{
		{"salary growth", doc.Assumptions.SalaryGrowthPct},
		{"house price growth", doc.Assumptions.HouseGrowthPct},
		{"expense growth", doc.Assumptions.ExpenseGrowthPct},
		{"investment return", doc.Assumptions.InvestmentReturnPct},
		{"loan interest rate", doc.Assumptions.LoanInterestRatePct},
	}
	for _, r := range rates {
		if r.value == nil {
			continue
		}
		if err := requireFinite(r.name+" rate", *r.value); err != nil {
			return err
		}
		if *r.value < -100 {
			return fmt.Errorf("%w: %s rate cannot be below -100%%", domain.ErrInvalidAssumption, r.name)
		}
	}
	if doc.Assumptions.LoanTermYears != nil && *doc.Assumptions.LoanTermYears <= 0 {
		return fmt.Errorf("%w: loan term must be positive", domain.ErrInvalidAssumption)
	}

	if fs := doc.Plan.FamilySupport; fs != nil {
		if err := requireFinite("family support amount", fs.AmountMillions); err != nil {
			return err
		}
		if err := requireFinite("family loan principal", fs.PrincipalMillions); err != nil {
			return err
		}
		if err := requireFinite("family loan rate", fs.RatePct); err != nil {
			return err
		}
	}

	return nil
}

func requireFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", domain.ErrInvalidAssumption, name)
	}
	return nil
}

// ToPlanInputs converts the boundary document into engine inputs against an
// explicit current-year reference: billions become the millions base unit,
// the absolute purchase year becomes a relative offset, and defaults fill in
// omitted assumptions. A purchase year in the past is rejected here, before
// the engine ever runs.
func (doc *PlanDocument) ToPlanInputs(currentYear int) (*domain.PlanInputs, error) {
	if yearutil.InPast(currentYear, doc.Plan.TargetPurchaseYear) {
		return nil, fmt.Errorf("%w: target purchase year %d is in the past (current year %d)",
			domain.ErrInvalidAssumption, doc.Plan.TargetPurchaseYear, currentYear)
	}

	inputs := &domain.PlanInputs{
		CurrentYear:      currentYear,
		TargetHousePrice: money.FromBillions(doc.Plan.TargetHousePriceBillions),
		YearsToPurchase:  yearutil.Offset(currentYear, doc.Plan.TargetPurchaseYear),
		InitialSavings:   money.FromMillions(doc.Plan.InitialSavingsMillions),
		MonthlyIncome:    money.FromMillions(doc.Plan.MonthlyIncomeMillions),
		MonthlyExpenses:  money.FromMillions(doc.Plan.MonthlyExpensesMillions),
		HasCoApplicant:   doc.Plan.CoApplicant,

		SalaryGrowthPct:     rateOrDefault(doc.Assumptions.SalaryGrowthPct, DefaultSalaryGrowthPct),
		HouseGrowthPct:      rateOrDefault(doc.Assumptions.HouseGrowthPct, DefaultHouseGrowthPct),
		ExpenseGrowthPct:    rateOrDefault(doc.Assumptions.ExpenseGrowthPct, DefaultExpenseGrowthPct),
		InvestmentReturnPct: rateOrDefault(doc.Assumptions.InvestmentReturnPct, DefaultInvestmentReturnPct),
		LoanInterestRatePct: rateOrDefault(doc.Assumptions.LoanInterestRatePct, DefaultLoanInterestRatePct),

		LoanTermYears: DefaultLoanTermYears,
		PaymentMethod: domain.PaymentMethod(doc.Plan.PaymentMethod),
	}
	if doc.Assumptions.LoanTermYears != nil {
		inputs.LoanTermYears = *doc.Assumptions.LoanTermYears
	}
	if inputs.PaymentMethod == "" {
		inputs.PaymentMethod = domain.PaymentMethodBankLoan
	}

	if fs := doc.Plan.FamilySupport; fs != nil {
		inputs.FamilySupport = &domain.FamilySupportTerms{
			Kind:          domain.SupportKind(fs.Kind),
			GiftAmount:    money.FromMillions(fs.AmountMillions),
			GiftTiming:    domain.GiftTiming(fs.Timing),
			LoanPrincipal: money.FromMillions(fs.PrincipalMillions),
			LoanRatePct:   decimalFromFloat(fs.RatePct),
			Repayment:     domain.RepaymentStyle(fs.Repayment),
			LoanTermYears: fs.TermYears,
		}
	}

	if err := inputs.Validate(); err != nil {
		return nil, err
	}
	return inputs, nil
}

func rateOrDefault(v *float64, def float64) decimal.Decimal {
	if v != nil {
		return decimalFromFloat(*v)
	}
	return decimalFromFloat(def)
}

func decimalFromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// CreateExamplePlan returns a plan document with the product's standard
// sample answers, handy as a starting point for a real plan file.
func (ip *InputParser) CreateExamplePlan() *PlanDocument {
	salary := DefaultSalaryGrowthPct
	house := DefaultHouseGrowthPct
	return &PlanDocument{
		Plan: PlanSection{
			TargetHousePriceBillions: 5.0,
			TargetPurchaseYear:       2028,
			InitialSavingsMillions:   500,
			MonthlyIncomeMillions:    30,
			MonthlyExpensesMillions:  10,
			CoApplicant:              true,
			PaymentMethod:            string(domain.PaymentMethodBankLoan),
		},
		Assumptions: AssumptionsSection{
			SalaryGrowthPct: &salary,
			HouseGrowthPct:  &house,
		},
	}
}
