package calculation

import (
	"testing"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// requireWithin asserts that got is within delta of want.
func requireWithin(t *testing.T, want, got decimal.Decimal, delta float64) {
	t.Helper()
	diff := got.Sub(want).Abs()
	require.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(delta)),
		"want %s, got %s (diff %s exceeds %v)", want.StringFixed(4), got.StringFixed(4), diff.StringFixed(4), delta)
}

// financedScenario is the standard 30-year test fixture: $500K home, $100K
// down, 6.1% for 30 years.
func financedScenario(name string) *domain.MortgageScenario {
	return &domain.MortgageScenario{
		Name:                 name,
		HomePrice:            decimal.NewFromInt(500000),
		DownPayment:          decimal.NewFromInt(100000),
		LoanAmount:           decimal.NewFromInt(400000),
		InterestRate:         decimal.NewFromFloat(0.061),
		TermYears:            30,
		PropertyTaxRate:      decimal.NewFromFloat(0.012),
		HomeAppreciationRate: decimal.NewFromFloat(0.05),
		TaxRate:              decimal.NewFromFloat(0.26),
		InflationRate:        decimal.NewFromFloat(0.025),
		StockReturnRate:      decimal.NewFromFloat(0.086),
		EmergencyFund:        decimal.NewFromInt(30000),
		AvailableCash:        decimal.NewFromInt(300000),
	}
}

// cashScenario buys the same home outright.
func cashScenario(name string) *domain.MortgageScenario {
	s := financedScenario(name)
	s.DownPayment = s.HomePrice
	s.LoanAmount = decimal.Zero
	s.InterestRate = decimal.Zero
	s.TermYears = 0
	s.AvailableCash = decimal.NewFromInt(550000)
	return s
}

// rentScenario rents the comparable home for $2,500 with 3% annual increases.
func rentScenario(name string) *domain.RentScenario {
	return &domain.RentScenario{
		Name:                name,
		HomePrice:           decimal.NewFromInt(500000),
		MonthlyRent:         decimal.NewFromInt(2500),
		AnnualRentIncrease:  decimal.NewFromFloat(0.03),
		RentersInsurance:    decimal.NewFromInt(300),
		DownPaymentInvested: decimal.NewFromInt(100000),
		ClosingCosts:        decimal.NewFromInt(15000),
		InflationRate:       decimal.NewFromFloat(0.025),
		StockReturnRate:     decimal.NewFromFloat(0.086),
		EmergencyFund:       decimal.NewFromInt(30000),
	}
}
