package calculation

import (
	"testing"

	"github.com/homeplan/affordability-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompound(t *testing.T) {
	tests := []struct {
		name     string
		base     decimal.Decimal
		ratePct  decimal.Decimal
		years    int
		expected decimal.Decimal
	}{
		{
			name:     "zero years returns base unchanged",
			base:     decimal.NewFromInt(1000),
			ratePct:  decimal.NewFromInt(10),
			years:    0,
			expected: decimal.NewFromInt(1000),
		},
		{
			name:     "one year at 10%",
			base:     decimal.NewFromInt(1000),
			ratePct:  decimal.NewFromInt(10),
			years:    1,
			expected: decimal.NewFromInt(1100),
		},
		{
			name:     "two years at 10%",
			base:     decimal.NewFromInt(1000),
			ratePct:  decimal.NewFromInt(10),
			years:    2,
			expected: decimal.NewFromInt(1210),
		},
		{
			name:     "zero rate holds the value",
			base:     decimal.NewFromInt(5000),
			ratePct:  decimal.Zero,
			years:    7,
			expected: decimal.NewFromInt(5000),
		},
		{
			name:     "negative rate depreciates",
			base:     decimal.NewFromInt(1000),
			ratePct:  decimal.NewFromInt(-50),
			years:    1,
			expected: decimal.NewFromInt(500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compound(tt.base, tt.ratePct, tt.years)
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestCompoundRejectsBadInput(t *testing.T) {
	_, err := Compound(decimal.NewFromInt(100), decimal.NewFromInt(-150), 1)
	assert.ErrorIs(t, err, domain.ErrInvalidAssumption)

	_, err = Compound(decimal.NewFromInt(100), decimal.NewFromInt(5), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAssumption)
}

func TestLoanCapacityZeroRateIsLinear(t *testing.T) {
	// surplus * termYears * 12 exactly, no discounting
	capacity, err := LoanCapacity(decimal.NewFromInt(30), decimal.NewFromInt(10), decimal.Zero, 20)
	assert.NoError(t, err)
	assert.True(t, capacity.Equal(decimal.NewFromInt(4800)), "expected 4800, got %s", capacity)
}

func TestLoanCapacityApproachesUpperBound(t *testing.T) {
	income := decimal.NewFromInt(30)
	expenses := decimal.NewFromInt(10)
	ratePct := decimal.NewFromInt(9)

	// Upper bound as term grows: surplus * 12 / annualRate = surplus / monthlyRate.
	surplus := income.Sub(expenses)
	monthlyRate := ratePct.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
	bound := surplus.Div(monthlyRate)

	short, err := LoanCapacity(income, expenses, ratePct, 25)
	assert.NoError(t, err)
	long, err := LoanCapacity(income, expenses, ratePct, 500)
	assert.NoError(t, err)

	assert.True(t, short.LessThan(bound))
	assert.True(t, long.LessThan(bound.Add(decimal.NewFromInt(1))))
	assert.True(t, long.GreaterThan(short))
	// Within 1% of the bound at a very long term.
	assert.True(t, bound.Sub(long).LessThan(bound.Mul(decimal.NewFromFloat(0.01))),
		"expected %s to be within 1%% of bound %s", long, bound)
}

func TestLoanCapacityNonPositiveSurplus(t *testing.T) {
	capacity, err := LoanCapacity(decimal.NewFromInt(10), decimal.NewFromInt(10), decimal.NewFromInt(9), 25)
	assert.NoError(t, err)
	assert.True(t, capacity.IsZero())

	capacity, err = LoanCapacity(decimal.NewFromInt(5), decimal.NewFromInt(10), decimal.NewFromInt(9), 25)
	assert.NoError(t, err)
	assert.True(t, capacity.IsZero())
}

func TestLoanCapacityRejectsBadInput(t *testing.T) {
	_, err := LoanCapacity(decimal.NewFromInt(30), decimal.NewFromInt(10), decimal.NewFromInt(-200), 20)
	assert.ErrorIs(t, err, domain.ErrInvalidAssumption)

	_, err = LoanCapacity(decimal.NewFromInt(30), decimal.NewFromInt(10), decimal.NewFromInt(9), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAssumption)
}

func TestFamilyContributionGiftNow(t *testing.T) {
	terms := &domain.FamilySupportTerms{
		Kind:       domain.SupportGift,
		GiftAmount: decimal.NewFromInt(200),
		GiftTiming: domain.GiftReceivedNow,
	}

	assert.True(t, FamilyContribution(terms, 0, 3).Equal(decimal.NewFromInt(200)))
	assert.True(t, FamilyContribution(terms, 1, 3).IsZero())
	assert.True(t, FamilyContribution(terms, 3, 3).IsZero())
}

func TestFamilyContributionGiftAtPurchase(t *testing.T) {
	terms := &domain.FamilySupportTerms{
		Kind:       domain.SupportGift,
		GiftAmount: decimal.NewFromInt(200),
		GiftTiming: domain.GiftReceivedAtPurchase,
	}

	assert.True(t, FamilyContribution(terms, 0, 3).IsZero())
	assert.True(t, FamilyContribution(terms, 3, 3).Equal(decimal.NewFromInt(200)))
	assert.True(t, FamilyContribution(terms, 4, 3).IsZero())
}

func TestFamilyContributionLoanMonthlyZeroRate(t *testing.T) {
	terms := &domain.FamilySupportTerms{
		Kind:          domain.SupportLoan,
		LoanPrincipal: decimal.NewFromInt(300),
		LoanRatePct:   decimal.Zero,
		Repayment:     domain.RepayMonthlyInstallment,
		LoanTermYears: 3,
	}

	assert.True(t, FamilyContribution(terms, 0, 5).Equal(decimal.NewFromInt(300)))
	for year := 1; year <= 3; year++ {
		got := FamilyContribution(terms, year, 5)
		assert.True(t, got.Equal(decimal.NewFromInt(-100)), "year %d: expected -100, got %s", year, got)
	}
	assert.True(t, FamilyContribution(terms, 4, 5).IsZero())
}

func TestFamilyContributionLoanMonthlyWithInterest(t *testing.T) {
	terms := &domain.FamilySupportTerms{
		Kind:          domain.SupportLoan,
		LoanPrincipal: decimal.NewFromInt(1200),
		LoanRatePct:   decimal.NewFromInt(12),
		Repayment:     domain.RepayMonthlyInstallment,
		LoanTermYears: 2,
	}

	assert.True(t, FamilyContribution(terms, 0, 5).Equal(decimal.NewFromInt(1200)))

	y1 := FamilyContribution(terms, 1, 5)
	y2 := FamilyContribution(terms, 2, 5)
	assert.True(t, y1.Equal(y2), "equal installments, got %s and %s", y1, y2)
	assert.True(t, y1.IsNegative())
	// Interest makes each installment exceed the principal slice.
	assert.True(t, y1.Neg().GreaterThan(decimal.NewFromInt(600)))
	assert.True(t, FamilyContribution(terms, 3, 5).IsZero())
}

func TestFamilyContributionLoanLumpSum(t *testing.T) {
	terms := &domain.FamilySupportTerms{
		Kind:          domain.SupportLoan,
		LoanPrincipal: decimal.NewFromInt(100),
		LoanRatePct:   decimal.NewFromInt(10),
		Repayment:     domain.RepayLumpSumAtTerm,
		LoanTermYears: 2,
	}

	assert.True(t, FamilyContribution(terms, 0, 5).Equal(decimal.NewFromInt(100)))
	assert.True(t, FamilyContribution(terms, 1, 5).IsZero())
	// 100 * 1.1^2 repaid whole in the term year.
	assert.True(t, FamilyContribution(terms, 2, 5).Equal(decimal.NewFromInt(-121)))
}

func TestFamilyContributionNilTerms(t *testing.T) {
	assert.True(t, FamilyContribution(nil, 0, 3).IsZero())
}
