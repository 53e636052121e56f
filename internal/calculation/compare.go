package calculation

import (
	"fmt"
	"sort"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareScenarios projects every scenario and returns them ranked by final
// inflation-adjusted net worth, best first. Ties keep the input order. At
// least one scenario is required.
func (e *AnalysisEngine) CompareScenarios(scenarios []domain.MortgageScenario) (*domain.ScenarioComparison, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to compare")
	}

	results := make([]domain.ScenarioResult, len(scenarios))
	for i := range scenarios {
		result, err := e.AnalyzeScenario(&scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		results[i] = *result
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalNetWorthAdjusted.GreaterThan(results[j].FinalNetWorthAdjusted)
	})

	return &domain.ScenarioComparison{
		Scenarios: results,
		Stats:     summarize(results),
	}, nil
}

// summarize computes the aggregate wealth-difference statistics over ranked
// results.
func summarize(ranked []domain.ScenarioResult) domain.SummaryStatistics {
	stats := domain.SummaryStatistics{ScenariosAnalyzed: len(ranked)}
	if len(ranked) == 0 {
		return stats
	}

	best := ranked[0]
	worst := ranked[len(ranked)-1]
	stats.BestScenario = best.Name
	stats.WorstScenario = worst.Name
	stats.MaxFinalWealth = best.FinalNetWorthAdjusted
	stats.MinFinalWealth = worst.FinalNetWorthAdjusted
	stats.WealthDifference = stats.MaxFinalWealth.Sub(stats.MinFinalWealth)
	if !stats.MinFinalWealth.IsZero() {
		stats.WealthDifferencePct = stats.WealthDifference.Div(stats.MinFinalWealth).Mul(decimal.NewFromInt(100))
	}
	return stats
}
