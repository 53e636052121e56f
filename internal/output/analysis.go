package output

import (
	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName    string
	FinalNetWorth   decimal.Decimal
	WealthAdvantage decimal.Decimal
	// PercentageAdvantage is the advantage over the weakest scenario,
	// expressed against the weakest scenario's final wealth.
	PercentageAdvantage decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the highest final inflation-adjusted
// net worth. The comparison slice arrives ranked best first, so the edges are
// enough. Extracted from embedded console logic for testability.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	best := results.Scenarios[0]
	worst := results.Scenarios[len(results.Scenarios)-1]

	delta := best.FinalNetWorthAdjusted.Sub(worst.FinalNetWorthAdjusted)
	pct := decimal.Zero
	if !worst.FinalNetWorthAdjusted.IsZero() {
		pct = delta.Div(worst.FinalNetWorthAdjusted).Mul(decimal.NewFromInt(100))
	}
	return Recommendation{
		ScenarioName:        best.Name,
		FinalNetWorth:       best.FinalNetWorthAdjusted,
		WealthAdvantage:     delta,
		PercentageAdvantage: pct,
	}
}
