package calculation

import (
	"fmt"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// AnalyzeScenario projects a buy scenario over the full horizon and returns
// its year-by-year trajectory. Validation runs first; an invalid scenario
// fails before anything is computed.
func (e *AnalysisEngine) AnalyzeScenario(scenario *domain.MortgageScenario) (*domain.ScenarioResult, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	if e.Costs != nil {
		if err := e.Costs.Validate(); err != nil {
			return nil, err
		}
	}

	if scenario.IsCashPurchase() {
		return e.projectCashPurchase(scenario), nil
	}
	return e.projectFinanced(scenario), nil
}

// initialInvestment is the lump sum left over after the down payment and the
// emergency fund are set aside. Scenarios with no declared cash pool start
// from zero.
func initialInvestment(scenario *domain.MortgageScenario) decimal.Decimal {
	if scenario.AvailableCash.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	leftover := scenario.AvailableCash.Sub(scenario.DownPayment).Sub(scenario.EmergencyFund)
	if leftover.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return leftover
}

func (e *AnalysisEngine) projectCashPurchase(scenario *domain.MortgageScenario) *domain.ScenarioResult {
	horizon := e.horizon()
	result := &domain.ScenarioResult{
		Name:        scenario.Name,
		HomePrice:   scenario.HomePrice,
		DownPayment: scenario.DownPayment,
		LoanAmount:  decimal.Zero,
		Years:       make([]domain.YearlySnapshot, 0, horizon),
	}

	lump := initialInvestment(scenario)
	appreciation := one.Add(scenario.HomeAppreciationRate)

	for year := 1; year <= horizon; year++ {
		homeValue := scenario.HomePrice.Mul(appreciation.Pow(decimal.NewFromInt(int64(year))))
		investmentValue := FutureValue(lump, decimal.Zero, scenario.StockReturnRate, year)

		netWorth := homeValue.Add(investmentValue).Add(scenario.EmergencyFund)
		result.Years = append(result.Years, domain.YearlySnapshot{
			Year:             year,
			HomeValue:        homeValue,
			LoanBalance:      decimal.Zero,
			HomeEquity:       homeValue,
			InvestmentValue:  investmentValue,
			PropertyTax:      homeValue.Mul(scenario.PropertyTaxRate),
			NetWorth:         netWorth,
			NetWorthAdjusted: PresentValue(netWorth, year, scenario.InflationRate),
		})
	}

	e.finalize(result, scenario)
	return result
}

func (e *AnalysisEngine) projectFinanced(scenario *domain.MortgageScenario) *domain.ScenarioResult {
	horizon := e.horizon()
	payment := CalculateMonthlyPayment(scenario.LoanAmount, scenario.InterestRate, scenario.TermYears)
	schedule := GenerateAmortizationSchedule(scenario.LoanAmount, scenario.InterestRate, scenario.TermYears)

	totalPayments := payment.Mul(decimal.NewFromInt(int64(scenario.TermYears) * 12))
	result := &domain.ScenarioResult{
		Name:           scenario.Name,
		HomePrice:      scenario.HomePrice,
		DownPayment:    scenario.DownPayment,
		LoanAmount:     scenario.LoanAmount,
		TermYears:      scenario.TermYears,
		MonthlyPayment: payment,
		TotalPayments:  totalPayments,
		TotalInterest:  totalPayments.Sub(scenario.LoanAmount),
		Years:          make([]domain.YearlySnapshot, 0, horizon),
	}

	ref := e.reference()
	baselinePayment := CalculateMonthlyPayment(scenario.HomePrice.Sub(ref.DownPayment), ref.InterestRate, ref.TermYears)
	e.Logger.Debugf("scenario %s: payment=%s baseline=%s", scenario.Name, payment.StringFixed(2), baselinePayment.StringFixed(2))

	lump := initialInvestment(scenario)
	baseSurplus := baselinePayment.Sub(payment)
	if baseSurplus.LessThan(decimal.Zero) {
		baseSurplus = decimal.Zero
	}

	appreciation := one.Add(scenario.HomeAppreciationRate)
	originationLTV := scenario.LoanAmount.Div(scenario.HomePrice)

	for year := 1; year <= horizon; year++ {
		homeValue := scenario.HomePrice.Mul(appreciation.Pow(decimal.NewFromInt(int64(year))))

		loanBalance := balanceAtYear(schedule, year, scenario.TermYears)
		homeEquity := homeValue.Sub(loanBalance)

		yearlyInterest := interestForYear(schedule, year)
		taxSavings := TaxSavings(yearlyInterest, scenario.TaxRate)

		surplus := baseSurplus
		if e.Costs != nil {
			surplus = surplus.Sub(e.monthlyOwnershipExtras(scenario, homeValue, loanBalance, originationLTV))
			if surplus.LessThan(decimal.Zero) {
				surplus = decimal.Zero
			}
		}

		contribution := surplus
		if year > scenario.TermYears {
			freed := payment
			if e.Costs != nil {
				freed = freed.Mul(e.Costs.PostPayoffInvestmentRate)
			}
			contribution = contribution.Add(freed)
		}
		contribution = contribution.Add(taxSavings.Div(twelve))

		investmentValue := FutureValue(lump, contribution, scenario.StockReturnRate, year)

		netWorth := homeEquity.Add(investmentValue).Add(scenario.EmergencyFund)
		result.Years = append(result.Years, domain.YearlySnapshot{
			Year:             year,
			HomeValue:        homeValue,
			LoanBalance:      loanBalance,
			HomeEquity:       homeEquity,
			InvestmentValue:  investmentValue,
			YearlyInterest:   yearlyInterest,
			TaxSavings:       taxSavings,
			PropertyTax:      homeValue.Mul(scenario.PropertyTaxRate),
			NetWorth:         netWorth,
			NetWorthAdjusted: PresentValue(netWorth, year, scenario.InflationRate),
		})
	}

	e.finalize(result, scenario)
	return result
}

// finalize fills the final net-worth figures, applying one-time selling costs
// under the realistic cost model. The yearly snapshots stay gross.
func (e *AnalysisEngine) finalize(result *domain.ScenarioResult, scenario *domain.MortgageScenario) {
	if len(result.Years) == 0 {
		return
	}
	last := result.Years[len(result.Years)-1]
	final := last.NetWorth
	if e.Costs != nil {
		result.SellingCosts = last.HomeValue.Mul(e.Costs.SellingCostRate)
		final = final.Sub(result.SellingCosts)
	}
	result.FinalNetWorth = final
	result.FinalNetWorthAdjusted = PresentValue(final, last.Year, scenario.InflationRate)
}

// monthlyOwnershipExtras is the realistic-model monthly cost beyond principal
// and interest: homeowners insurance, maintenance, and PMI while it applies.
func (e *AnalysisEngine) monthlyOwnershipExtras(scenario *domain.MortgageScenario, homeValue, loanBalance, originationLTV decimal.Decimal) decimal.Decimal {
	extras := homeValue.Mul(e.Costs.HomeInsuranceRate).Div(twelve)
	extras = extras.Add(homeValue.Mul(e.Costs.MaintenanceRate).Div(twelve))
	extras = extras.Add(e.monthlyPMI(scenario, homeValue, loanBalance, originationLTV))
	return extras
}

// monthlyPMI returns the PMI charge for a year given the loan's current
// position, or zero once the removal threshold has been reached.
func (e *AnalysisEngine) monthlyPMI(scenario *domain.MortgageScenario, homeValue, loanBalance, originationLTV decimal.Decimal) decimal.Decimal {
	return e.pmiWithCosts(e.Costs, scenario, homeValue, loanBalance, originationLTV)
}

// balanceAtYear reads the loan balance at the end of the given year, clamped
// to the final scheduled balance through the term and zero afterwards.
func balanceAtYear(schedule []domain.AmortizationRow, year, termYears int) decimal.Decimal {
	if len(schedule) == 0 {
		return decimal.Zero
	}
	monthEnd := year * 12
	if monthEnd < len(schedule) {
		return schedule[monthEnd-1].Balance
	}
	if year <= termYears {
		return schedule[len(schedule)-1].Balance
	}
	return decimal.Zero
}

// interestForYear sums the interest portions of the year's scheduled months;
// zero once the loan is paid off.
func interestForYear(schedule []domain.AmortizationRow, year int) decimal.Decimal {
	start := (year - 1) * 12
	if start >= len(schedule) {
		return decimal.Zero
	}
	end := year * 12
	if end > len(schedule) {
		end = len(schedule)
	}
	total := decimal.Zero
	for _, row := range schedule[start:end] {
		total = total.Add(row.Interest)
	}
	return total
}

// AnalyzeRentScenario projects the rent alternative over the full horizon.
// The renter's capital is the invested down payment and closing costs; rent
// paid is a pure expense and never appears on the balance sheet.
func (e *AnalysisEngine) AnalyzeRentScenario(rent *domain.RentScenario) (*domain.RentResult, error) {
	if err := rent.Validate(); err != nil {
		return nil, err
	}

	horizon := e.horizon()
	result := &domain.RentResult{
		Name:        rent.Name,
		HomePrice:   rent.HomePrice,
		MonthlyRent: rent.MonthlyRent,
		Years:       make([]domain.RentYearSnapshot, 0, horizon),
	}

	lump := rent.DownPaymentInvested.Add(rent.ClosingCosts)
	rentGrowth := one.Add(rent.AnnualRentIncrease)
	appreciation := one.Add(defaultComparisonAppreciation)
	cumulativeRent := decimal.Zero

	for year := 1; year <= horizon; year++ {
		monthlyRent := rent.MonthlyRent.Mul(rentGrowth.Pow(decimal.NewFromInt(int64(year - 1))))
		annualRent := monthlyRent.Mul(twelve)
		housingCost := annualRent.Add(rent.RentersInsurance)
		cumulativeRent = cumulativeRent.Add(housingCost)

		investmentValue := FutureValue(lump, decimal.Zero, rent.StockReturnRate, year)

		netWorth := investmentValue.Add(rent.EmergencyFund)
		result.Years = append(result.Years, domain.RentYearSnapshot{
			Year:               year,
			MonthlyRent:        monthlyRent,
			AnnualRentPaid:     annualRent,
			CumulativeRentPaid: cumulativeRent,
			AnnualHousingCost:  housingCost,
			InvestmentValue:    investmentValue,
			HomeValueIfBought:  rent.HomePrice.Mul(appreciation.Pow(decimal.NewFromInt(int64(year)))),
			NetWorth:           netWorth,
			NetWorthAdjusted:   PresentValue(netWorth, year, rent.InflationRate),
		})
	}

	last := result.Years[len(result.Years)-1]
	result.TotalRentPaid = cumulativeRent
	result.FinalNetWorth = last.NetWorth
	result.FinalNetWorthAdjusted = last.NetWorthAdjusted
	return result, nil
}

// defaultComparisonAppreciation drives the display-only home-value-if-bought
// series in rent projections.
var defaultComparisonAppreciation = decimal.NewFromFloat(0.05)

// requireTrajectory guards the comparison entry points.
func requireTrajectory(name string, years int) error {
	if years == 0 {
		return fmt.Errorf("%s has an empty trajectory", name)
	}
	return nil
}
