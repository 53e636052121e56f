package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRentVsBuy(t *testing.T) {
	engine := NewRealisticAnalysisEngine()

	buy := financedScenario("Buy")
	buy.DownPayment = decimal.NewFromInt(50000)
	buy.LoanAmount = decimal.NewFromInt(450000)

	analysis, err := engine.RunRentVsBuy(buy, rentScenario("Rent"))
	require.NoError(t, err)

	require.Len(t, analysis.YearlyCosts, 30)
	require.Len(t, analysis.BuyResult.Years, 30)
	require.Len(t, analysis.RentResult.Years, 30)
	require.Len(t, analysis.BreakEven.YearlyComparison, 30)

	// 10% down means PMI at the start; an appreciating home and a shrinking
	// balance remove it well before the horizon.
	first := analysis.YearlyCosts[0]
	assert.True(t, first.PMIMonthly.GreaterThan(decimal.Zero))
	wantPMI := decimal.NewFromInt(450000).Mul(decimal.NewFromFloat(0.005)).Div(twelve)
	assert.True(t, first.PMIMonthly.Equal(wantPMI))
	assert.True(t, analysis.YearlyCosts[29].PMIMonthly.IsZero())

	// Owning this home costs more per month than renting it at first, so the
	// renter is the saver early on.
	assert.False(t, first.SaverIsBuyer)
	assert.True(t, first.OwnerMonthlyCost.GreaterThan(first.RenterMonthlyCost))
	assert.True(t, first.MonthlySavings.Equal(first.OwnerMonthlyCost.Sub(first.RenterMonthlyCost)))

	// Each year exactly one side receives the gap.
	for _, cost := range analysis.YearlyCosts {
		if cost.SaverIsBuyer {
			assert.True(t, cost.OwnerMonthlyCost.LessThan(cost.RenterMonthlyCost), "year %d", cost.Year)
		}
	}

	// Renter's account starts from the unspent down payment and closing costs.
	lump := decimal.NewFromInt(115000)
	assert.True(t, analysis.RentResult.Years[0].InvestmentValue.GreaterThan(lump))

	// Buyer pays selling costs once, against the finals only.
	lastBuy := analysis.BuyResult.Years[29]
	wantSelling := lastBuy.HomeValue.Mul(decimal.NewFromFloat(0.06))
	assert.True(t, analysis.BuyResult.SellingCosts.Equal(wantSelling))
	assert.True(t, analysis.BuyResult.FinalNetWorth.Equal(lastBuy.NetWorth.Sub(wantSelling)))

	// Renter pays none.
	assert.True(t, analysis.RentResult.FinalNetWorth.Equal(analysis.RentResult.Years[29].NetWorth))
	assert.True(t, analysis.RentResult.TotalRentPaid.GreaterThan(decimal.NewFromInt(2500*12*30)))
}

func TestRunRentVsBuy_DefaultCosts(t *testing.T) {
	// The analysis always applies a cost model, even on a simple engine.
	engine := NewAnalysisEngine()
	require.Nil(t, engine.Costs)

	analysis, err := engine.RunRentVsBuy(financedScenario("Buy"), rentScenario("Rent"))
	require.NoError(t, err)
	assert.True(t, analysis.BuyResult.SellingCosts.GreaterThan(decimal.Zero))

	// 20% down: no PMI in any year.
	for _, cost := range analysis.YearlyCosts {
		assert.True(t, cost.PMIMonthly.IsZero(), "year %d", cost.Year)
	}
}

func TestRunRentVsBuy_Invalid(t *testing.T) {
	engine := NewAnalysisEngine()

	bad := rentScenario("Bad Rent")
	bad.MonthlyRent = decimal.Zero
	_, err := engine.RunRentVsBuy(financedScenario("Buy"), bad)
	require.Error(t, err)
}
