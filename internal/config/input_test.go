package config

import (
	"os"
	"testing"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "scenarios:\n" +
		"  - name: \"30-Year Fixed\"\n" +
		"    home_price: 500000\n" +
		"    down_payment: 100000\n" +
		"    loan_amount: 400000\n" +
		"    interest_rate: 0.061\n" +
		"    term_years: 30\n" +
		"    property_tax_rate: 0.012\n" +
		"    home_appreciation_rate: 0.05\n" +
		"    tax_rate: 0.26\n" +
		"    inflation_rate: 0.025\n" +
		"    stock_return_rate: 0.086\n" +
		"    emergency_fund: 30000\n" +
		"    available_cash: 300000\n" +
		"rent:\n" +
		"  name: \"Rent Comparable\"\n" +
		"  home_price: 500000\n" +
		"  monthly_rent: 2500\n" +
		"  annual_rent_increase: 0.03\n" +
		"  renters_insurance: 300\n" +
		"  down_payment_invested: 100000\n" +
		"  closing_costs: 15000\n" +
		"  inflation_rate: 0.025\n" +
		"  stock_return_rate: 0.086\n" +
		"  emergency_fund: 30000\n" +
		"horizon_years: 30\n" +
		"realistic_costs: true\n"

	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testConfig))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile.Name())

	require.NoError(t, err)
	assert.NotNil(t, config)
	assert.Len(t, config.Scenarios, 1)
	assert.Equal(t, "30-Year Fixed", config.Scenarios[0].Name)
	assert.True(t, config.Scenarios[0].LoanAmount.Equal(decimal.NewFromInt(400000)))
	require.NotNil(t, config.Rent)
	assert.True(t, config.Rent.MonthlyRent.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 30, config.HorizonYears)
	assert.True(t, config.RealisticCosts)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte("scenarios: [\n"))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile.Name())

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration_NoScenarios(t *testing.T) {
	parser := NewInputParser()
	err := parser.ValidateConfiguration(&Configuration{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios provided")
}

func TestValidateConfiguration_DuplicateNames(t *testing.T) {
	config := CreateExampleConfiguration()
	config.Scenarios = append(config.Scenarios, config.Scenarios[0])

	parser := NewInputParser()
	err := parser.ValidateConfiguration(config)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate name")
}

func TestValidateConfiguration_LoanMismatch(t *testing.T) {
	config := CreateExampleConfiguration()
	config.Scenarios[0].LoanAmount = decimal.NewFromInt(1)

	parser := NewInputParser()
	err := parser.ValidateConfiguration(config)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "loan amount must equal home price minus down payment")
}

func TestValidateConfiguration_BadCostAssumptions(t *testing.T) {
	config := CreateExampleConfiguration()
	config.Costs = &domain.CostAssumptions{PMIRate: decimal.NewFromInt(2)}

	parser := NewInputParser()
	err := parser.ValidateConfiguration(config)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pmi rate")
}

func TestCreateExampleConfiguration(t *testing.T) {
	config := CreateExampleConfiguration()

	parser := NewInputParser()
	require.NoError(t, parser.ValidateConfiguration(config))

	assert.Len(t, config.Scenarios, 4)
	assert.Equal(t, 30, config.HorizonYears)
	require.NotNil(t, config.Rent)

	// Rent follows the half-percent rule on the comparison price.
	assert.True(t, config.Rent.MonthlyRent.Equal(decimal.NewFromInt(2500)))

	var cashScenarios int
	for _, s := range config.Scenarios {
		if s.IsCashPurchase() {
			cashScenarios++
			assert.True(t, s.DownPayment.Equal(s.HomePrice))
		} else {
			assert.True(t, s.LoanAmount.Equal(s.HomePrice.Sub(s.DownPayment)))
		}
	}
	assert.Equal(t, 1, cashScenarios)
}

func TestEffectiveCosts(t *testing.T) {
	config := &Configuration{}
	assert.Nil(t, config.EffectiveCosts())

	config.RealisticCosts = true
	costs := config.EffectiveCosts()
	require.NotNil(t, costs)
	assert.True(t, costs.PMIRate.Equal(decimal.NewFromFloat(0.005)))

	custom := &domain.CostAssumptions{SellingCostRate: decimal.NewFromFloat(0.05)}
	config.Costs = custom
	assert.Same(t, custom, config.EffectiveCosts())
}
