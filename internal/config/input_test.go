package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/homeplan/affordability-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writePlanFile(t, `
plan:
  target_house_price_billions: 5.0
  target_purchase_year: 2028
  initial_savings_millions: 500
  monthly_income_millions: 30
  monthly_expenses_millions: 10
  co_applicant: true
  payment_method: bank_loan
assumptions:
  house_growth_pct: 10
  loan_term_years: 25
`)

	parser := NewInputParser()
	doc, err := parser.LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, doc.Plan.TargetHousePriceBillions)
	assert.Equal(t, 2028, doc.Plan.TargetPurchaseYear)
	assert.True(t, doc.Plan.CoApplicant)
	assert.NotNil(t, doc.Assumptions.HouseGrowthPct)
	assert.Equal(t, 10.0, *doc.Assumptions.HouseGrowthPct)
	assert.Nil(t, doc.Assumptions.SalaryGrowthPct)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileRejectsNaN(t *testing.T) {
	path := writePlanFile(t, `
plan:
  target_house_price_billions: .nan
  target_purchase_year: 2028
`)

	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)
	assert.ErrorIs(t, err, domain.ErrInvalidAssumption)
}

func TestValidateDocument(t *testing.T) {
	negativeRate := -150.0
	zeroTerm := 0

	tests := []struct {
		name    string
		mutate  func(*PlanDocument)
		wantErr bool
	}{
		{
			name:   "valid document",
			mutate: func(d *PlanDocument) {},
		},
		{
			name:    "zero house price",
			mutate:  func(d *PlanDocument) { d.Plan.TargetHousePriceBillions = 0 },
			wantErr: true,
		},
		{
			name:    "missing purchase year",
			mutate:  func(d *PlanDocument) { d.Plan.TargetPurchaseYear = 0 },
			wantErr: true,
		},
		{
			name:    "negative savings",
			mutate:  func(d *PlanDocument) { d.Plan.InitialSavingsMillions = -1 },
			wantErr: true,
		},
		{
			name:    "rate below -100 percent",
			mutate:  func(d *PlanDocument) { d.Assumptions.HouseGrowthPct = &negativeRate },
			wantErr: true,
		},
		{
			name:    "explicit zero loan term",
			mutate:  func(d *PlanDocument) { d.Assumptions.LoanTermYears = &zeroTerm },
			wantErr: true,
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parser.CreateExamplePlan()
			tt.mutate(doc)
			err := parser.ValidateDocument(doc)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidAssumption)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToPlanInputsUnitConversion(t *testing.T) {
	parser := NewInputParser()
	doc := parser.CreateExamplePlan()

	inputs, err := doc.ToPlanInputs(2025)
	assert.NoError(t, err)

	// 5.0 billions become 5000 in the engine's millions base unit.
	assert.True(t, inputs.TargetHousePrice.Equal(decimal.NewFromInt(5000)), "got %s", inputs.TargetHousePrice)
	assert.True(t, inputs.InitialSavings.Equal(decimal.NewFromInt(500)))
	assert.True(t, inputs.MonthlyIncome.Equal(decimal.NewFromInt(30)))

	// Absolute 2028 against reference 2025 is a 3 year offset.
	assert.Equal(t, 2025, inputs.CurrentYear)
	assert.Equal(t, 3, inputs.YearsToPurchase)
	assert.True(t, inputs.HasCoApplicant)
}

func TestToPlanInputsDefaults(t *testing.T) {
	parser := NewInputParser()
	doc := parser.CreateExamplePlan()
	doc.Assumptions = AssumptionsSection{}
	doc.Plan.PaymentMethod = ""

	inputs, err := doc.ToPlanInputs(2025)
	assert.NoError(t, err)

	assert.True(t, inputs.SalaryGrowthPct.Equal(decimal.NewFromFloat(DefaultSalaryGrowthPct)))
	assert.True(t, inputs.HouseGrowthPct.Equal(decimal.NewFromFloat(DefaultHouseGrowthPct)))
	assert.True(t, inputs.ExpenseGrowthPct.Equal(decimal.NewFromFloat(DefaultExpenseGrowthPct)))
	assert.True(t, inputs.InvestmentReturnPct.Equal(decimal.NewFromFloat(DefaultInvestmentReturnPct)))
	assert.True(t, inputs.LoanInterestRatePct.Equal(decimal.NewFromFloat(DefaultLoanInterestRatePct)))
	assert.Equal(t, DefaultLoanTermYears, inputs.LoanTermYears)
	assert.Equal(t, domain.PaymentMethodBankLoan, inputs.PaymentMethod)
}

func TestToPlanInputsExplicitZeroRateStaysZero(t *testing.T) {
	parser := NewInputParser()
	doc := parser.CreateExamplePlan()
	zero := 0.0
	doc.Assumptions.HouseGrowthPct = &zero

	inputs, err := doc.ToPlanInputs(2025)
	assert.NoError(t, err)
	assert.True(t, inputs.HouseGrowthPct.IsZero())
}

func TestToPlanInputsRejectsPastPurchaseYear(t *testing.T) {
	parser := NewInputParser()
	doc := parser.CreateExamplePlan()
	doc.Plan.TargetPurchaseYear = 2020

	_, err := doc.ToPlanInputs(2025)
	assert.ErrorIs(t, err, domain.ErrInvalidAssumption)
}

func TestToPlanInputsSameYearPurchase(t *testing.T) {
	parser := NewInputParser()
	doc := parser.CreateExamplePlan()

	inputs, err := doc.ToPlanInputs(2028)
	assert.NoError(t, err)
	assert.Equal(t, 0, inputs.YearsToPurchase)
}

func TestToPlanInputsFamilySupport(t *testing.T) {
	parser := NewInputParser()
	doc := parser.CreateExamplePlan()
	doc.Plan.PaymentMethod = string(domain.PaymentMethodFamilySupport)
	doc.Plan.FamilySupport = &FamilySupportDoc{
		Kind:              string(domain.SupportLoan),
		PrincipalMillions: 300,
		RatePct:           2,
		Repayment:         string(domain.RepayMonthlyInstallment),
		TermYears:         3,
	}

	inputs, err := doc.ToPlanInputs(2025)
	assert.NoError(t, err)
	assert.NotNil(t, inputs.FamilySupport)
	assert.Equal(t, domain.SupportLoan, inputs.FamilySupport.Kind)
	assert.True(t, inputs.FamilySupport.LoanPrincipal.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 3, inputs.FamilySupport.LoanTermYears)
}

func TestCreateExamplePlanIsValid(t *testing.T) {
	parser := NewInputParser()
	doc := parser.CreateExamplePlan()
	assert.NoError(t, parser.ValidateDocument(doc))

	inputs, err := doc.ToPlanInputs(2025)
	assert.NoError(t, err)
	assert.NoError(t, inputs.Validate())
}
