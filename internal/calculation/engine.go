package calculation

import (
	"errors"

	"github.com/homeplan/affordability-engine/internal/domain"
)

// DefaultHorizonExtension is how many years past the target purchase year the
// simulation keeps running so an earliest viable year can still be found when
// the target year itself is not affordable.
const DefaultHorizonExtension = 10

// Engine orchestrates the affordability projection. It holds no state between
// calls: every method is a pure function over the inputs it is given, so
// concurrent runs need no coordination.
type Engine struct {
	Logger           Logger
	Debug            bool
	HorizonExtension int
}

// NewEngine creates an engine with the default horizon cap and a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		Logger:           NopLogger{},
		HorizonExtension: DefaultHorizonExtension,
	}
}

// SetLogger sets the engine logger. Nil restores the no-op logger.
func (ce *Engine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunPlan produces the full plan summary: the projected sequence, the
// earliest affordable year if one exists within the horizon, and the selected
// purchase year, which is always the caller's target year regardless of what
// the simulation found.
func (ce *Engine) RunPlan(inputs *domain.PlanInputs) (*domain.PlanSummary, error) {
	projection, err := ce.GenerateProjections(inputs)
	if err != nil {
		return nil, err
	}

	summary := &domain.PlanSummary{
		SelectedPurchaseYear: inputs.CurrentYear + inputs.YearsToPurchase,
		Projection:           projection,
	}
	summary.PurchaseYearPrice = projection[inputs.YearsToPurchase].HousePrice

	earliest, err := ce.EarliestAffordableYear(projection)
	switch {
	case err == nil:
		summary.EarliestAffordableYear = &earliest
	case errors.Is(err, domain.ErrHorizonExceeded):
		ce.Logger.Infof("plan not affordable within %d simulated years", len(projection))
	default:
		return nil, err
	}

	return summary, nil
}
