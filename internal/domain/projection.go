package domain

import (
	"github.com/shopspring/decimal"
)

// AmortizationRow is one month of a loan's repayment schedule.
type AmortizationRow struct {
	Month     int             `json:"month"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	// Balance is clamped at zero once the loan is paid off.
	Balance decimal.Decimal `json:"balance"`
}

// YearlySnapshot is one year of a buy scenario's trajectory.
type YearlySnapshot struct {
	Year int `json:"year"`

	HomeValue   decimal.Decimal `json:"home_value"`
	LoanBalance decimal.Decimal `json:"loan_balance"`
	HomeEquity  decimal.Decimal `json:"home_equity"`

	InvestmentValue decimal.Decimal `json:"investment_value"`

	YearlyInterest decimal.Decimal `json:"yearly_interest"`
	TaxSavings     decimal.Decimal `json:"tax_savings"`
	PropertyTax    decimal.Decimal `json:"property_tax"`

	// NetWorth is always HomeEquity + InvestmentValue + the emergency fund;
	// NetWorthAdjusted is the same figure discounted to today's dollars.
	NetWorth         decimal.Decimal `json:"net_worth"`
	NetWorthAdjusted decimal.Decimal `json:"net_worth_adjusted"`
}

// RentYearSnapshot is one year of the rent alternative's trajectory.
type RentYearSnapshot struct {
	Year int `json:"year"`

	MonthlyRent        decimal.Decimal `json:"monthly_rent"`
	AnnualRentPaid     decimal.Decimal `json:"annual_rent_paid"`
	CumulativeRentPaid decimal.Decimal `json:"cumulative_rent_paid"`
	AnnualHousingCost  decimal.Decimal `json:"annual_housing_cost"`

	InvestmentValue decimal.Decimal `json:"investment_value"`

	// HomeValueIfBought tracks what the comparable home would be worth; it is
	// display-only and never enters the renter's net worth.
	HomeValueIfBought decimal.Decimal `json:"home_value_if_bought"`

	NetWorth         decimal.Decimal `json:"net_worth"`
	NetWorthAdjusted decimal.Decimal `json:"net_worth_adjusted"`
}

// ScenarioResult is the full projected trajectory for one buy scenario.
type ScenarioResult struct {
	Name           string          `json:"name"`
	HomePrice      decimal.Decimal `json:"home_price"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	LoanAmount     decimal.Decimal `json:"loan_amount"`
	TermYears      int             `json:"term_years"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPayments  decimal.Decimal `json:"total_payments"`
	TotalInterest  decimal.Decimal `json:"total_interest"`

	Years []YearlySnapshot `json:"yearly_data"`

	// SellingCosts is nonzero only under the realistic cost model, where it
	// is subtracted from the final figures (never from the yearly snapshots).
	SellingCosts          decimal.Decimal `json:"selling_costs"`
	FinalNetWorth         decimal.Decimal `json:"final_net_worth"`
	FinalNetWorthAdjusted decimal.Decimal `json:"final_net_worth_adjusted"`
}

// RentResult is the full projected trajectory for the rent alternative.
type RentResult struct {
	Name        string          `json:"name"`
	HomePrice   decimal.Decimal `json:"home_price"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`

	Years []RentYearSnapshot `json:"yearly_data"`

	TotalRentPaid         decimal.Decimal `json:"total_rent_paid"`
	FinalNetWorth         decimal.Decimal `json:"final_net_worth"`
	FinalNetWorthAdjusted decimal.Decimal `json:"final_net_worth_adjusted"`
}

// ScenarioComparison holds all analyzed scenarios ranked by final
// inflation-adjusted net worth, best first. Ties keep input order.
type ScenarioComparison struct {
	Scenarios []ScenarioResult  `json:"scenarios"`
	Stats     SummaryStatistics `json:"summary_statistics"`
}

// SummaryStatistics are the aggregate wealth-difference figures across a
// scenario comparison.
type SummaryStatistics struct {
	BestScenario        string          `json:"best_scenario"`
	WorstScenario       string          `json:"worst_scenario"`
	MaxFinalWealth      decimal.Decimal `json:"max_final_wealth"`
	MinFinalWealth      decimal.Decimal `json:"min_final_wealth"`
	WealthDifference    decimal.Decimal `json:"wealth_difference"`
	WealthDifferencePct decimal.Decimal `json:"wealth_difference_pct"`
	ScenariosAnalyzed   int             `json:"scenarios_analyzed"`
}

// YearComparison is one year of a rent-vs-buy wealth comparison.
type YearComparison struct {
	Year         int             `json:"year"`
	RentNetWorth decimal.Decimal `json:"rent_net_worth"`
	BuyNetWorth  decimal.Decimal `json:"buy_net_worth"`
	BuyAdvantage decimal.Decimal `json:"buy_advantage"`
	BuyIsBetter  bool            `json:"buy_is_better"`
}

// BreakEvenAnalysis describes where (if ever) one trajectory first overtakes
// another on inflation-adjusted net worth. The wealth curves can cross more
// than once; only the first crossing is reported, which can understate
// later reversals.
type BreakEvenAnalysis struct {
	// BreakEvenYear is 1-based; zero means the trajectories never cross
	// within the horizon.
	BreakEvenYear int `json:"break_even_year"`

	YearlyComparison []YearComparison `json:"yearly_comparison"`

	FinalRentNetWorth decimal.Decimal `json:"final_rent_net_worth"`
	FinalBuyNetWorth  decimal.Decimal `json:"final_buy_net_worth"`
	TotalAdvantage    decimal.Decimal `json:"total_advantage"`
}

// HasBreakEven reports whether a crossing was found within the horizon.
func (b *BreakEvenAnalysis) HasBreakEven() bool {
	return b.BreakEvenYear > 0
}

// OpportunityCostAnalysis models investing the payment difference between a
// higher-payment short-term loan and a lower-payment long-term loan.
type OpportunityCostAnalysis struct {
	// MonthlyPaymentDifference is shorter-term payment minus longer-term
	// payment, the amount invested monthly until the shorter loan pays off.
	MonthlyPaymentDifference decimal.Decimal `json:"monthly_payment_difference"`

	// InvestmentGrowth[i] is the invested-difference balance at end of year
	// i+1. After the shorter term elapses the balance carries forward as a
	// lump and the contribution switches to the configured fraction of the
	// freed-up payment.
	InvestmentGrowth []decimal.Decimal `json:"investment_growth"`

	// CumulativeExtraInterest[i] is the extra interest paid by the
	// longer-term loan through year i+1.
	CumulativeExtraInterest []decimal.Decimal `json:"cumulative_extra_interest"`

	// BreakEvenYear is the first year the longer-term strategy's wealth
	// (base net worth plus invested difference) exceeds the shorter-term
	// strategy's; zero means never.
	BreakEvenYear int `json:"break_even_year"`
}

// HousingCostYear is one year of the realistic rent-vs-buy cost ledger.
type HousingCostYear struct {
	Year int `json:"year"`

	OwnerMonthlyCost  decimal.Decimal `json:"owner_monthly_cost"`
	RenterMonthlyCost decimal.Decimal `json:"renter_monthly_cost"`
	PMIMonthly        decimal.Decimal `json:"pmi_monthly"`

	// MonthlySavings is the gap between the two costs; SaverIsBuyer tells
	// whose investment account received it that year.
	MonthlySavings decimal.Decimal `json:"monthly_savings"`
	SaverIsBuyer   bool            `json:"saver_is_buyer"`

	BuyerInvestment  decimal.Decimal `json:"buyer_investment"`
	RenterInvestment decimal.Decimal `json:"renter_investment"`
}

// RentVsBuyAnalysis is the realistic-cost comparison of buying a home against
// renting the same property.
type RentVsBuyAnalysis struct {
	BuyResult  *ScenarioResult `json:"buy_results"`
	RentResult *RentResult     `json:"rent_results"`

	YearlyCosts []HousingCostYear `json:"yearly_costs"`

	// Costs is the cost model the comparison ran under, for reporting.
	Costs *CostAssumptions `json:"cost_assumptions"`

	BreakEven BreakEvenAnalysis `json:"break_even_analysis"`
}
