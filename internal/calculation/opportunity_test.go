package calculation

import (
	"testing"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opportunityFixtures(t *testing.T) (*domain.ScenarioResult, *domain.ScenarioResult, *AnalysisEngine) {
	t.Helper()
	engine := NewAnalysisEngine()

	longer, err := engine.AnalyzeScenario(financedScenario("30-Year"))
	require.NoError(t, err)

	short := financedScenario("15-Year")
	short.InterestRate = decimal.NewFromFloat(0.0525)
	short.TermYears = 15
	shorter, err := engine.AnalyzeScenario(short)
	require.NoError(t, err)

	return longer, shorter, engine
}

func TestAnalyzeOpportunityCost(t *testing.T) {
	longer, shorter, engine := opportunityFixtures(t)

	postPayoff := decimal.NewFromFloat(0.75)
	stockReturn := decimal.NewFromFloat(0.086)
	analysis, err := engine.AnalyzeOpportunityCost(longer, shorter, stockReturn, postPayoff)
	require.NoError(t, err)

	wantDiff := shorter.MonthlyPayment.Sub(longer.MonthlyPayment)
	assert.True(t, analysis.MonthlyPaymentDifference.Equal(wantDiff))
	assert.True(t, wantDiff.GreaterThan(decimal.NewFromInt(700)), "15-year payment should cost several hundred more")

	require.Len(t, analysis.InvestmentGrowth, 30)
	require.Len(t, analysis.CumulativeExtraInterest, 30)

	// Pre-switch the balance is the straight contribution stream.
	wantYear5 := FutureValue(decimal.Zero, wantDiff, stockReturn, 5)
	assert.True(t, analysis.InvestmentGrowth[4].Equal(wantYear5))

	// At the switch the accumulated balance carries forward as a lump and the
	// contribution becomes the post-payoff share of the freed payment.
	lump := FutureValue(decimal.Zero, wantDiff, stockReturn, 15)
	wantYear20 := FutureValue(lump, shorter.MonthlyPayment.Mul(postPayoff), stockReturn, 5)
	assert.True(t, analysis.InvestmentGrowth[19].Equal(wantYear20))

	// The balance never shrinks across the switch.
	for i := 1; i < len(analysis.InvestmentGrowth); i++ {
		assert.True(t, analysis.InvestmentGrowth[i].GreaterThan(analysis.InvestmentGrowth[i-1]),
			"growth not monotonic at year %d", i+1)
	}

	// The long loan pays more interest every single year, including the years
	// after the short loan has retired.
	prev := decimal.Zero
	for i, cum := range analysis.CumulativeExtraInterest {
		assert.True(t, cum.GreaterThan(prev), "extra interest not increasing at year %d", i+1)
		prev = cum
	}
}

func TestAnalyzeOpportunityCost_Errors(t *testing.T) {
	longer, shorter, engine := opportunityFixtures(t)

	// Arguments reversed: the "shorter" loan must actually be shorter.
	_, err := engine.AnalyzeOpportunityCost(shorter, longer, decimal.NewFromFloat(0.086), decimal.NewFromInt(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shorter term")

	// Post-payoff rate is a fraction.
	_, err = engine.AnalyzeOpportunityCost(longer, shorter, decimal.NewFromFloat(0.086), decimal.NewFromInt(2))
	require.Error(t, err)

	// Empty trajectories are rejected.
	_, err = engine.AnalyzeOpportunityCost(&domain.ScenarioResult{Name: "empty", TermYears: 30},
		&domain.ScenarioResult{Name: "also empty", TermYears: 15}, decimal.NewFromFloat(0.086), decimal.NewFromInt(1))
	require.Error(t, err)
}

func TestAnalyzeOpportunityCost_BreakEven(t *testing.T) {
	longer, shorter, engine := opportunityFixtures(t)

	analysis, err := engine.AnalyzeOpportunityCost(longer, shorter, decimal.NewFromFloat(0.086), decimal.NewFromFloat(0.75))
	require.NoError(t, err)

	if analysis.BreakEvenYear > 0 {
		year := analysis.BreakEvenYear
		combined := longer.Years[year-1].NetWorth.Add(analysis.InvestmentGrowth[year-1])
		assert.True(t, combined.GreaterThan(shorter.Years[year-1].NetWorth))
		if year > 1 {
			before := longer.Years[year-2].NetWorth.Add(analysis.InvestmentGrowth[year-2])
			assert.False(t, before.GreaterThan(shorter.Years[year-2].NetWorth))
		}
	}
}
