package integration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/calculation"
	"github.com/knowyourmortgage/mortgage-analyzer/internal/config"
)

func TestEndToEndCalculation(t *testing.T) {
	// Test that we can load a configuration and run the full comparison
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Len(t, cfg.Scenarios, 2)
	require.NotNil(t, cfg.Rent)

	engine := calculation.NewAnalysisEngine()
	engine.HorizonYears = cfg.HorizonYears
	engine.Costs = cfg.EffectiveCosts()
	require.NotNil(t, engine)

	results, err := engine.CompareScenarios(cfg.Scenarios)
	require.NoError(t, err)
	require.NotNil(t, results)
	assert.Len(t, results.Scenarios, 2)

	// Every scenario carries a full trajectory out to the horizon
	for _, scenario := range results.Scenarios {
		assert.Len(t, scenario.Years, 30)
		assert.True(t, scenario.MonthlyPayment.GreaterThan(decimal.Zero))
		assert.True(t, scenario.FinalNetWorth.GreaterThan(decimal.Zero))
	}

	assert.NotEmpty(t, results.Stats.BestScenario)
	assert.NotEmpty(t, results.Stats.WorstScenario)
}

func TestEndToEndRentVsBuy(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	engine := calculation.NewRealisticAnalysisEngine()
	analysis, err := engine.RunRentVsBuy(&cfg.Scenarios[0], cfg.Rent)
	require.NoError(t, err)

	assert.Len(t, analysis.BreakEven.YearlyComparison, 30)
	assert.True(t, analysis.RentResult.TotalRentPaid.GreaterThan(decimal.Zero))
	assert.True(t, analysis.BuyResult.SellingCosts.GreaterThan(decimal.Zero))
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	// Test valid configuration
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Test that validation works
	err = parser.ValidateConfiguration(cfg)
	assert.NoError(t, err)
}
