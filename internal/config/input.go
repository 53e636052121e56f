package config

import (
	"fmt"
	"os"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the full analysis input: the buy scenarios to compare, an
// optional rent alternative, and the engine settings.
type Configuration struct {
	Scenarios []domain.MortgageScenario `yaml:"scenarios" json:"scenarios"`
	Rent      *domain.RentScenario      `yaml:"rent,omitempty" json:"rent,omitempty"`

	// HorizonYears defaults to 30 when omitted.
	HorizonYears int `yaml:"horizon_years,omitempty" json:"horizon_years,omitempty"`

	// Reference overrides the baseline loan used to derive each scenario's
	// investable surplus. Zero value keeps the default baseline.
	Reference domain.ReferenceLoan `yaml:"reference,omitempty" json:"reference,omitempty"`

	// RealisticCosts enables the full cost model; Costs overrides individual
	// assumptions when set.
	RealisticCosts bool                    `yaml:"realistic_costs,omitempty" json:"realistic_costs,omitempty"`
	Costs          *domain.CostAssumptions `yaml:"cost_assumptions,omitempty" json:"cost_assumptions,omitempty"`
}

// EffectiveCosts resolves the cost model the configuration asks for: nil for
// the simple model, the configured or default assumptions otherwise.
func (c *Configuration) EffectiveCosts() *domain.CostAssumptions {
	if c.Costs != nil {
		return c.Costs
	}
	if c.RealisticCosts {
		return domain.DefaultCostAssumptions()
	}
	return nil
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := scenario.Validate(); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	if config.Rent != nil {
		if err := config.Rent.Validate(); err != nil {
			return fmt.Errorf("rent scenario validation failed: %w", err)
		}
	}

	if config.HorizonYears < 0 {
		return fmt.Errorf("horizon years cannot be negative")
	}
	if config.Costs != nil {
		if err := config.Costs.Validate(); err != nil {
			return fmt.Errorf("cost assumptions validation failed: %w", err)
		}
	}

	return nil
}

// CreateExampleConfiguration builds the standard four-scenario comparison:
// three financing structures on the same market assumptions plus an all-cash
// purchase, with a rent alternative priced by the half-percent rule.
func CreateExampleConfiguration() *Configuration {
	market := marketAssumptions{
		propertyTax:  decimal.NewFromFloat(0.012),
		appreciation: decimal.NewFromFloat(0.05),
		taxRate:      decimal.NewFromFloat(0.26),
		inflation:    decimal.NewFromFloat(0.025),
		stockReturn:  decimal.NewFromFloat(0.086),
	}
	price := decimal.NewFromInt(500000)
	cash := decimal.NewFromInt(300000)
	emergency := decimal.NewFromInt(30000)

	scenarios := []domain.MortgageScenario{
		buildScenario("30-Year, $100K Down", price, decimal.NewFromInt(100000), decimal.NewFromFloat(0.061), 30, cash, emergency, market),
		buildScenario("15-Year, $100K Down", price, decimal.NewFromInt(100000), decimal.NewFromFloat(0.0525), 15, cash, emergency, market),
		buildScenario("15-Year, $200K Down", price, decimal.NewFromInt(200000), decimal.NewFromFloat(0.0525), 15, cash, emergency, market),
		buildScenario("All Cash Purchase", price, price, decimal.Zero, 0, cash, emergency, market),
	}

	rent := &domain.RentScenario{
		Name:      "Rent Comparable Home",
		HomePrice: price,
		// Half a percent of the home value per month is the usual
		// market-rent starting point.
		MonthlyRent:         price.Mul(decimal.NewFromFloat(0.005)),
		AnnualRentIncrease:  decimal.NewFromFloat(0.03),
		RentersInsurance:    decimal.NewFromInt(300),
		DownPaymentInvested: decimal.NewFromInt(100000),
		ClosingCosts:        price.Mul(decimal.NewFromFloat(0.03)),
		InflationRate:       market.inflation,
		StockReturnRate:     market.stockReturn,
		EmergencyFund:       emergency,
	}

	return &Configuration{
		Scenarios:    scenarios,
		Rent:         rent,
		HorizonYears: 30,
	}
}

type marketAssumptions struct {
	propertyTax  decimal.Decimal
	appreciation decimal.Decimal
	taxRate      decimal.Decimal
	inflation    decimal.Decimal
	stockReturn  decimal.Decimal
}

func buildScenario(name string, price, down, rate decimal.Decimal, termYears int, cash, emergency decimal.Decimal, market marketAssumptions) domain.MortgageScenario {
	return domain.MortgageScenario{
		Name:                 name,
		HomePrice:            price,
		DownPayment:          down,
		LoanAmount:           price.Sub(down),
		InterestRate:         rate,
		TermYears:            termYears,
		PropertyTaxRate:      market.propertyTax,
		HomeAppreciationRate: market.appreciation,
		TaxRate:              market.taxRate,
		InflationRate:        market.inflation,
		StockReturnRate:      market.stockReturn,
		EmergencyFund:        emergency,
		AvailableCash:        cash,
	}
}
