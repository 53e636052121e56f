package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MortgageScenario holds the static parameters for one financing scenario.
// A cash purchase is the degenerate case LoanAmount = 0.
type MortgageScenario struct {
	Name string `yaml:"name" json:"name"`

	HomePrice   decimal.Decimal `yaml:"home_price" json:"home_price"`
	DownPayment decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	LoanAmount  decimal.Decimal `yaml:"loan_amount" json:"loan_amount"`

	InterestRate decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`
	TermYears    int             `yaml:"term_years" json:"term_years"`

	PropertyTaxRate      decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	HomeAppreciationRate decimal.Decimal `yaml:"home_appreciation_rate" json:"home_appreciation_rate"`

	// TaxRate is the marginal rate used for the interest-deduction benefit.
	TaxRate         decimal.Decimal `yaml:"tax_rate" json:"tax_rate"`
	InflationRate   decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	StockReturnRate decimal.Decimal `yaml:"stock_return_rate" json:"stock_return_rate"`

	// EmergencyFund is held in cash, never invested, and carried into net
	// worth unchanged in nominal terms.
	EmergencyFund decimal.Decimal `yaml:"emergency_fund" json:"emergency_fund"`

	// AvailableCash is the total cash pool the buyer starts with. Whatever is
	// left after the down payment and the emergency fund is invested as a
	// lump sum from year 0. Zero means no initial lump.
	AvailableCash decimal.Decimal `yaml:"available_cash" json:"available_cash"`
}

// IsCashPurchase reports whether this scenario has no loan.
func (s *MortgageScenario) IsCashPurchase() bool {
	return s.LoanAmount.LessThanOrEqual(decimal.Zero)
}

// Validate checks the scenario invariants. It is called by the engine before
// any projection begins; an error here means nothing was computed.
func (s *MortgageScenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.HomePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("scenario %s: home price must be positive", s.Name)
	}
	if s.DownPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("scenario %s: down payment cannot be negative", s.Name)
	}
	if s.LoanAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("scenario %s: loan amount cannot be negative", s.Name)
	}
	if s.InterestRate.LessThan(decimal.Zero) || s.InterestRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("scenario %s: interest rate must be between 0 and 1", s.Name)
	}
	if s.TermYears < 0 {
		return fmt.Errorf("scenario %s: term years cannot be negative", s.Name)
	}
	if s.LoanAmount.GreaterThan(decimal.Zero) {
		if s.TermYears == 0 {
			return fmt.Errorf("scenario %s: financed scenario requires a positive term", s.Name)
		}
		if !s.LoanAmount.Equal(s.HomePrice.Sub(s.DownPayment)) {
			return fmt.Errorf("scenario %s: loan amount must equal home price minus down payment, got %s vs %s",
				s.Name, s.LoanAmount.StringFixed(2), s.HomePrice.Sub(s.DownPayment).StringFixed(2))
		}
	}
	for _, rate := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"property tax rate", s.PropertyTaxRate},
		{"home appreciation rate", s.HomeAppreciationRate},
		{"tax rate", s.TaxRate},
		{"inflation rate", s.InflationRate},
		{"stock return rate", s.StockReturnRate},
	} {
		if rate.value.LessThan(decimal.Zero) || rate.value.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("scenario %s: %s must be between 0 and 1", s.Name, rate.name)
		}
	}
	if s.EmergencyFund.LessThan(decimal.Zero) {
		return fmt.Errorf("scenario %s: emergency fund cannot be negative", s.Name)
	}
	if s.AvailableCash.LessThan(decimal.Zero) {
		return fmt.Errorf("scenario %s: available cash cannot be negative", s.Name)
	}
	return nil
}

// RentScenario holds the parameters for the rent alternative. HomePrice is
// carried for comparison display only and never enters the renter's net worth.
type RentScenario struct {
	Name string `yaml:"name" json:"name"`

	HomePrice          decimal.Decimal `yaml:"home_price" json:"home_price"`
	MonthlyRent        decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	AnnualRentIncrease decimal.Decimal `yaml:"annual_rent_increase" json:"annual_rent_increase"`

	// RentersInsurance is an annual premium.
	RentersInsurance decimal.Decimal `yaml:"renters_insurance" json:"renters_insurance"`

	// DownPaymentInvested and ClosingCosts are the sums the renter did not
	// sink into a house; both are invested as a single lump at year 0.
	DownPaymentInvested decimal.Decimal `yaml:"down_payment_invested" json:"down_payment_invested"`
	ClosingCosts        decimal.Decimal `yaml:"closing_costs" json:"closing_costs"`

	InflationRate   decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	StockReturnRate decimal.Decimal `yaml:"stock_return_rate" json:"stock_return_rate"`
	EmergencyFund   decimal.Decimal `yaml:"emergency_fund" json:"emergency_fund"`
}

// Validate checks the rent scenario invariants.
func (r *RentScenario) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rent scenario name is required")
	}
	if r.HomePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("rent scenario %s: home price must be positive", r.Name)
	}
	if r.MonthlyRent.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("rent scenario %s: monthly rent must be positive", r.Name)
	}
	if r.AnnualRentIncrease.LessThan(decimal.Zero) || r.AnnualRentIncrease.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("rent scenario %s: annual rent increase must be between 0 and 1", r.Name)
	}
	if r.RentersInsurance.LessThan(decimal.Zero) {
		return fmt.Errorf("rent scenario %s: renters insurance cannot be negative", r.Name)
	}
	if r.DownPaymentInvested.LessThan(decimal.Zero) {
		return fmt.Errorf("rent scenario %s: down payment invested cannot be negative", r.Name)
	}
	if r.ClosingCosts.LessThan(decimal.Zero) {
		return fmt.Errorf("rent scenario %s: closing costs cannot be negative", r.Name)
	}
	if r.InflationRate.LessThan(decimal.Zero) || r.InflationRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("rent scenario %s: inflation rate must be between 0 and 1", r.Name)
	}
	if r.StockReturnRate.LessThan(decimal.Zero) || r.StockReturnRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("rent scenario %s: stock return rate must be between 0 and 1", r.Name)
	}
	if r.EmergencyFund.LessThan(decimal.Zero) {
		return fmt.Errorf("rent scenario %s: emergency fund cannot be negative", r.Name)
	}
	return nil
}

// ReferenceLoan is the baseline scenario that a financed scenario's payment is
// compared against to derive the monthly investable surplus. It is supplied by
// the caller; the engine bakes in no particular baseline.
type ReferenceLoan struct {
	DownPayment  decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	InterestRate decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`
	TermYears    int             `yaml:"term_years" json:"term_years"`
}

// IsZero reports whether no reference loan was configured.
func (r ReferenceLoan) IsZero() bool {
	return r.DownPayment.IsZero() && r.InterestRate.IsZero() && r.TermYears == 0
}

// DefaultReferenceLoan returns the conventional 30-year, $100K-down, 6.1%
// comparison baseline.
func DefaultReferenceLoan() ReferenceLoan {
	return ReferenceLoan{
		DownPayment:  decimal.NewFromInt(100000),
		InterestRate: decimal.NewFromFloat(0.061),
		TermYears:    30,
	}
}

// CostAssumptions are the recurring and one-time ownership costs folded in by
// the realistic-cost analysis. All rates are annual decimals applied to the
// value noted per field.
type CostAssumptions struct {
	// PMIRate applies to the original loan amount. PMI is owed only by loans
	// that originate above PMIRequiredLTV and is charged each year until the
	// current loan-to-value ratio falls to PMIRemovalLTV or below.
	PMIRate        decimal.Decimal `yaml:"pmi_rate" json:"pmi_rate"`
	PMIRequiredLTV decimal.Decimal `yaml:"pmi_required_ltv" json:"pmi_required_ltv"`
	PMIRemovalLTV  decimal.Decimal `yaml:"pmi_removal_ltv" json:"pmi_removal_ltv"`

	// HomeInsuranceRate and MaintenanceRate apply to the current home value.
	HomeInsuranceRate decimal.Decimal `yaml:"home_insurance_rate" json:"home_insurance_rate"`
	MaintenanceRate   decimal.Decimal `yaml:"maintenance_rate" json:"maintenance_rate"`

	// SellingCostRate applies once to the final home value at the horizon.
	SellingCostRate decimal.Decimal `yaml:"selling_cost_rate" json:"selling_cost_rate"`
	ClosingCostRate decimal.Decimal `yaml:"closing_cost_rate" json:"closing_cost_rate"`

	// PostPayoffInvestmentRate is the fraction of the freed-up mortgage
	// payment that keeps flowing into investments after payoff.
	PostPayoffInvestmentRate decimal.Decimal `yaml:"post_payoff_investment_rate" json:"post_payoff_investment_rate"`
}

// DefaultCostAssumptions returns the standard cost model.
func DefaultCostAssumptions() *CostAssumptions {
	return &CostAssumptions{
		PMIRate:                  decimal.NewFromFloat(0.005),
		PMIRequiredLTV:           decimal.NewFromFloat(0.80),
		PMIRemovalLTV:            decimal.NewFromFloat(0.78),
		HomeInsuranceRate:        decimal.NewFromFloat(0.003),
		MaintenanceRate:          decimal.NewFromFloat(0.01),
		SellingCostRate:          decimal.NewFromFloat(0.06),
		ClosingCostRate:          decimal.NewFromFloat(0.03),
		PostPayoffInvestmentRate: decimal.NewFromInt(1),
	}
}

// Validate checks the cost assumptions.
func (c *CostAssumptions) Validate() error {
	one := decimal.NewFromInt(1)
	for _, rate := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"pmi rate", c.PMIRate},
		{"pmi required ltv", c.PMIRequiredLTV},
		{"pmi removal ltv", c.PMIRemovalLTV},
		{"home insurance rate", c.HomeInsuranceRate},
		{"maintenance rate", c.MaintenanceRate},
		{"selling cost rate", c.SellingCostRate},
		{"closing cost rate", c.ClosingCostRate},
		{"post payoff investment rate", c.PostPayoffInvestmentRate},
	} {
		if rate.value.LessThan(decimal.Zero) || rate.value.GreaterThan(one) {
			return fmt.Errorf("cost assumptions: %s must be between 0 and 1", rate.name)
		}
	}
	return nil
}
