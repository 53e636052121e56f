package integration

import (
	"os"
	"path/filepath"
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/calculation"
	"github.com/knowyourmortgage/mortgage-analyzer/internal/config"
	"github.com/knowyourmortgage/mortgage-analyzer/internal/output"
)

func TestFormatters(t *testing.T) {
	d1 := stddec.NewFromFloat(123.45)
	if got := output.FormatCurrency(d1); got != "$123.45" {
		t.Fatalf("FormatCurrency got %s", got)
	}
	// FormatPercentage expects the value already in percentage units (not a 0-1 fraction)
	d2 := stddec.NewFromFloat(12.34)
	if got := output.FormatPercentage(d2); got != "12.34%" {
		t.Fatalf("FormatPercentage got %s", got)
	}
}

func TestSaveConfiguration_WritesFile(t *testing.T) {
	cfg := config.CreateExampleConfiguration()
	tmp := t.TempDir()
	out := filepath.Join(tmp, "scenarios.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, out))

	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())

	// The saved file round-trips through the parser
	parser := config.NewInputParser()
	loaded, err := parser.LoadFromFile(out)
	require.NoError(t, err)
	assert.Len(t, loaded.Scenarios, len(cfg.Scenarios))
	require.NotNil(t, loaded.Rent)
	assert.True(t, loaded.Rent.MonthlyRent.Equal(cfg.Rent.MonthlyRent))
}

func TestRentVsBuyReport_EndToEnd(t *testing.T) {
	cfg := config.CreateExampleConfiguration()
	engine := calculation.NewRealisticAnalysisEngine()

	analysis, err := engine.RunRentVsBuy(&cfg.Scenarios[0], cfg.Rent)
	require.NoError(t, err)

	report := string(output.RentVsBuyReport(analysis))
	assert.Contains(t, report, cfg.Scenarios[0].Name)
	assert.Contains(t, report, "BUYER NET WORTH")
	assert.Contains(t, report, "Total rent paid")
	assert.Contains(t, report, "COST ASSUMPTIONS:")
}

func TestBreakEvenReport_EndToEnd(t *testing.T) {
	cfg := config.CreateExampleConfiguration()
	engine := calculation.NewRealisticAnalysisEngine()

	analysis, err := engine.BreakEvenRentVsBuy(&cfg.Scenarios[0], cfg.Rent)
	require.NoError(t, err)
	assert.Len(t, analysis.YearlyComparison, 30)

	report := string(output.BreakEvenReport(analysis))
	assert.NotEmpty(t, report)
}
