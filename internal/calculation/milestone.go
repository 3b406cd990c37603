package calculation

import (
	"fmt"

	"github.com/homeplan/affordability-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// milestoneTemplate is one entry of a regime's base sequence. Entries without
// a percent are pure sequence markers; they keep their template status and
// never compete for done/current.
type milestoneTemplate struct {
	title   string
	percent *decimal.Decimal
	status  domain.MilestoneStatus
}

// durationRegime is one of the three closed horizon-length regimes. Each
// carries its own base sequence and the extra percentage checkpoints inserted
// after specific base milestones (denser checkpoints for longer horizons).
type durationRegime struct {
	name   string
	base   []milestoneTemplate
	extras map[string][]decimal.Decimal // keyed by base milestone title
}

func pctOf(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func pcts(vs ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

// All regimes share one base sequence; density comes from the extras.
var baseRoadmap = []milestoneTemplate{
	{title: "Kick off your home plan", status: domain.MilestoneDone},
	{title: "First savings buffer", percent: pctOf(10)},
	{title: "A quarter of the way", percent: pctOf(25)},
	{title: "Halfway there", percent: pctOf(50)},
	{title: "Final stretch", percent: pctOf(75)},
	{title: "Ready to buy", percent: pctOf(100)},
}

var (
	regimeUnderOneYear = durationRegime{
		name: "under_1_year",
		base: baseRoadmap,
	}
	regimeOneToTwoYears = durationRegime{
		name: "1_to_2_years",
		base: baseRoadmap,
		extras: map[string][]decimal.Decimal{
			"Halfway there": pcts(60),
		},
	}
	regimeOverTwoYears = durationRegime{
		name: "over_2_years",
		base: baseRoadmap,
		extras: map[string][]decimal.Decimal{
			"A quarter of the way": pcts(30, 40),
			"Halfway there":        pcts(60, 70),
			"Final stretch":        pcts(80, 90),
		},
	}
)

// regimeForDuration buckets a purchase horizon into its regime. The three
// regimes are exhaustive over all non-negative durations.
func regimeForDuration(duration int) durationRegime {
	switch {
	case duration < 1:
		return regimeUnderOneYear
	case duration <= 2:
		return regimeOneToTwoYears
	default:
		return regimeOverTwoYears
	}
}

// BuildMilestones translates a purchase horizon and target amount into an
// ordered roadmap of savings checkpoints, then marks each checkpoint's status
// against current savings.
func (ce *Engine) BuildMilestones(startYear, purchaseYear int, targetAmount, currentSavings decimal.Decimal) ([]domain.Milestone, error) {
	if targetAmount.IsNegative() {
		return nil, fmt.Errorf("%w: target amount cannot be negative", domain.ErrInvalidAssumption)
	}
	if currentSavings.IsNegative() {
		return nil, fmt.Errorf("%w: current savings cannot be negative", domain.ErrInvalidAssumption)
	}
	duration := purchaseYear - startYear
	if duration < 0 {
		return nil, fmt.Errorf("%w: purchase year %d precedes start year %d", domain.ErrInvalidAssumption, purchaseYear, startYear)
	}

	regime := regimeForDuration(duration)
	if ce.Debug {
		ce.Logger.Debugf("milestones: duration=%d regime=%s target=%s", duration, regime.name, targetAmount.StringFixed(0))
	}

	milestones := expandRegime(regime, targetAmount)
	applyStatuses(milestones, currentSavings)
	return milestones, nil
}

// expandRegime walks the base sequence in order and, after each base
// milestone, emits that milestone's extra checkpoints in ascending percentage
// order, skipping any extra whose percentage exactly duplicates the base
// milestone's own.
func expandRegime(regime durationRegime, targetAmount decimal.Decimal) []domain.Milestone {
	var out []domain.Milestone

	emit := func(title string, percent *decimal.Decimal, status domain.MilestoneStatus) {
		m := domain.Milestone{
			ID:     len(out) + 1,
			Title:  title,
			Status: status,
		}
		if percent != nil {
			p := *percent
			amount := p.Div(oneHundred).Mul(targetAmount).Round(0)
			m.Percent = &p
			m.AmountValue = &amount
		}
		out = append(out, m)
	}

	for _, tmpl := range regime.base {
		emit(tmpl.title, tmpl.percent, tmpl.status)

		extras := append([]decimal.Decimal(nil), regime.extras[tmpl.title]...)
		sortPercents(extras)
		for i := range extras {
			if tmpl.percent != nil && extras[i].Equal(*tmpl.percent) {
				continue
			}
			emit(fmt.Sprintf("Save %s%% of the house price", extras[i]), &extras[i], domain.MilestoneUpcoming)
		}
	}

	return out
}

func sortPercents(ps []decimal.Decimal) {
	for i := 1; i < len(ps); i++ {
		for j := i; j > 0 && ps[j].LessThan(ps[j-1]); j-- {
			ps[j], ps[j-1] = ps[j-1], ps[j]
		}
	}
}

// applyStatuses marks amount-bearing milestones in ordinal order: met
// thresholds are done until the first unmet one, which becomes current; every
// amount-bearing milestone after that is upcoming regardless of its own
// threshold. Markers without amounts keep their template status.
func applyStatuses(milestones []domain.Milestone, currentSavings decimal.Decimal) {
	currentAssigned := false
	for i := range milestones {
		if milestones[i].AmountValue == nil {
			continue
		}
		switch {
		case currentAssigned:
			milestones[i].Status = domain.MilestoneUpcoming
		case currentSavings.GreaterThanOrEqual(*milestones[i].AmountValue):
			milestones[i].Status = domain.MilestoneDone
		default:
			milestones[i].Status = domain.MilestoneCurrent
			currentAssigned = true
		}
	}
}
