package output

import (
	"fmt"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Home appreciation: 5.0% annually",
	"Stock market return: 8.6% annually",
	"Inflation: 2.5% annually (net worth also shown in today's dollars)",
	"Monthly payment gap vs the baseline loan is invested, not spent",
	"Mortgage interest deduction credited at the marginal tax rate",
}

// GenerateAssumptions creates the assumptions list from the active cost model.
func GenerateAssumptions(costs *domain.CostAssumptions) []string {
	if costs == nil {
		return DefaultAssumptions
	}
	return []string{
		fmt.Sprintf("PMI: %.2f%% of the loan until LTV reaches %.0f%%",
			costs.PMIRate.Mul(decimalHundred).InexactFloat64(),
			costs.PMIRemovalLTV.Mul(decimalHundred).InexactFloat64()),
		fmt.Sprintf("Homeowners insurance: %.2f%% of home value annually", costs.HomeInsuranceRate.Mul(decimalHundred).InexactFloat64()),
		fmt.Sprintf("Maintenance: %.2f%% of home value annually", costs.MaintenanceRate.Mul(decimalHundred).InexactFloat64()),
		fmt.Sprintf("Selling costs: %.1f%% of final home value, applied once at the horizon", costs.SellingCostRate.Mul(decimalHundred).InexactFloat64()),
		fmt.Sprintf("After payoff, %.0f%% of the freed-up payment keeps flowing into investments", costs.PostPayoffInvestmentRate.Mul(decimalHundred).InexactFloat64()),
	}
}

var decimalHundred = decimal.NewFromInt(100)
