package calculation

import (
	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
)

// DefaultHorizonYears is the projection horizon when none is configured.
const DefaultHorizonYears = 30

// AnalysisEngine orchestrates all mortgage and rent projections. It carries
// no state between calls: every projection is a pure function of its inputs,
// so a single engine may be shared across goroutines.
type AnalysisEngine struct {
	// HorizonYears is the projection length; every trajectory has exactly
	// this many yearly snapshots.
	HorizonYears int

	// Reference is the baseline loan a financed scenario's payment is
	// compared against to derive the monthly investable surplus.
	Reference domain.ReferenceLoan

	// Costs enables the realistic cost model (PMI, insurance, maintenance,
	// selling costs). Nil selects the simple model.
	Costs *domain.CostAssumptions

	Logger Logger
}

// NewAnalysisEngine creates an engine with the default 30-year horizon and
// reference baseline, using the simple cost model.
func NewAnalysisEngine() *AnalysisEngine {
	return &AnalysisEngine{
		HorizonYears: DefaultHorizonYears,
		Reference:    domain.DefaultReferenceLoan(),
		Logger:       NopLogger{},
	}
}

// NewRealisticAnalysisEngine creates an engine with the realistic cost model
// enabled using the default assumptions.
func NewRealisticAnalysisEngine() *AnalysisEngine {
	engine := NewAnalysisEngine()
	engine.Costs = domain.DefaultCostAssumptions()
	return engine
}

// SetLogger sets the logger. A nil logger restores the no-op default.
func (e *AnalysisEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *AnalysisEngine) horizon() int {
	if e.HorizonYears <= 0 {
		return DefaultHorizonYears
	}
	return e.HorizonYears
}

func (e *AnalysisEngine) reference() domain.ReferenceLoan {
	if e.Reference.IsZero() {
		return domain.DefaultReferenceLoan()
	}
	return e.Reference
}
