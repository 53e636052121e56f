package calculation

import (
	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// RunRentVsBuy simulates buying a home against renting the comparable
// property under the full cost model. Each year the all-in monthly cost of
// each side is computed and whoever pays less invests the difference; both
// investment accounts compound year over year. The buyer's final figures are
// net of one-time selling costs, the yearly snapshots stay gross.
//
// The engine's cost assumptions apply when set; otherwise the defaults do.
// This analysis is never run without a cost model, a rent-vs-buy comparison
// that ignores insurance, maintenance, and PMI overstates ownership.
func (e *AnalysisEngine) RunRentVsBuy(buy *domain.MortgageScenario, rent *domain.RentScenario) (*domain.RentVsBuyAnalysis, error) {
	if err := buy.Validate(); err != nil {
		return nil, err
	}
	if err := rent.Validate(); err != nil {
		return nil, err
	}
	costs := e.Costs
	if costs == nil {
		costs = domain.DefaultCostAssumptions()
	}
	if err := costs.Validate(); err != nil {
		return nil, err
	}

	horizon := e.horizon()
	payment := CalculateMonthlyPayment(buy.LoanAmount, buy.InterestRate, buy.TermYears)
	schedule := GenerateAmortizationSchedule(buy.LoanAmount, buy.InterestRate, buy.TermYears)
	e.Logger.Debugf("rent-vs-buy %s vs %s: payment=%s rent=%s",
		buy.Name, rent.Name, payment.StringFixed(2), rent.MonthlyRent.StringFixed(2))

	totalPayments := payment.Mul(decimal.NewFromInt(int64(buy.TermYears) * 12))
	buyResult := &domain.ScenarioResult{
		Name:           buy.Name,
		HomePrice:      buy.HomePrice,
		DownPayment:    buy.DownPayment,
		LoanAmount:     buy.LoanAmount,
		TermYears:      buy.TermYears,
		MonthlyPayment: payment,
		TotalPayments:  totalPayments,
		TotalInterest:  totalPayments.Sub(buy.LoanAmount),
		Years:          make([]domain.YearlySnapshot, 0, horizon),
	}
	rentResult := &domain.RentResult{
		Name:        rent.Name,
		HomePrice:   rent.HomePrice,
		MonthlyRent: rent.MonthlyRent,
		Years:       make([]domain.RentYearSnapshot, 0, horizon),
	}
	analysis := &domain.RentVsBuyAnalysis{
		BuyResult:   buyResult,
		RentResult:  rentResult,
		YearlyCosts: make([]domain.HousingCostYear, 0, horizon),
		Costs:       costs,
	}

	// The renter starts ahead by the cash not sunk into the purchase; the
	// buyer's account starts empty and fills only from cost savings.
	buyerBalance := decimal.Zero
	renterBalance := rent.DownPaymentInvested.Add(rent.ClosingCosts)

	appreciation := one.Add(buy.HomeAppreciationRate)
	rentGrowth := one.Add(rent.AnnualRentIncrease)
	originationLTV := decimal.Zero
	if buy.LoanAmount.GreaterThan(decimal.Zero) {
		originationLTV = buy.LoanAmount.Div(buy.HomePrice)
	}
	cumulativeRent := decimal.Zero

	for year := 1; year <= horizon; year++ {
		homeValue := buy.HomePrice.Mul(appreciation.Pow(decimal.NewFromInt(int64(year))))
		loanBalance := balanceAtYear(schedule, year, buy.TermYears)
		yearlyInterest := interestForYear(schedule, year)
		taxSavings := TaxSavings(yearlyInterest, buy.TaxRate)
		pmi := e.pmiWithCosts(costs, buy, homeValue, loanBalance, originationLTV)

		ownerMonthly := homeValue.Mul(costs.HomeInsuranceRate).Div(twelve).
			Add(homeValue.Mul(costs.MaintenanceRate).Div(twelve)).
			Add(homeValue.Mul(buy.PropertyTaxRate).Div(twelve)).
			Add(pmi).
			Sub(taxSavings.Div(twelve))
		if year <= buy.TermYears {
			ownerMonthly = ownerMonthly.Add(payment)
		}

		monthlyRent := rent.MonthlyRent.Mul(rentGrowth.Pow(decimal.NewFromInt(int64(year - 1))))
		renterMonthly := monthlyRent.Add(rent.RentersInsurance.Div(twelve))

		// The cheaper side invests the gap for the year.
		diff := ownerMonthly.Sub(renterMonthly)
		buyerContribution := decimal.Zero
		renterContribution := decimal.Zero
		saverIsBuyer := diff.LessThan(decimal.Zero)
		if saverIsBuyer {
			buyerContribution = diff.Neg()
		} else {
			renterContribution = diff
		}

		buyerBalance = FutureValue(buyerBalance, buyerContribution, buy.StockReturnRate, 1)
		renterBalance = FutureValue(renterBalance, renterContribution, rent.StockReturnRate, 1)

		homeEquity := homeValue.Sub(loanBalance)
		buyNetWorth := homeEquity.Add(buyerBalance).Add(buy.EmergencyFund)
		buyResult.Years = append(buyResult.Years, domain.YearlySnapshot{
			Year:             year,
			HomeValue:        homeValue,
			LoanBalance:      loanBalance,
			HomeEquity:       homeEquity,
			InvestmentValue:  buyerBalance,
			YearlyInterest:   yearlyInterest,
			TaxSavings:       taxSavings,
			PropertyTax:      homeValue.Mul(buy.PropertyTaxRate),
			NetWorth:         buyNetWorth,
			NetWorthAdjusted: PresentValue(buyNetWorth, year, buy.InflationRate),
		})

		annualRent := monthlyRent.Mul(twelve)
		annualHousingCost := annualRent.Add(rent.RentersInsurance)
		cumulativeRent = cumulativeRent.Add(annualHousingCost)
		rentNetWorth := renterBalance.Add(rent.EmergencyFund)
		rentResult.Years = append(rentResult.Years, domain.RentYearSnapshot{
			Year:               year,
			MonthlyRent:        monthlyRent,
			AnnualRentPaid:     annualRent,
			CumulativeRentPaid: cumulativeRent,
			AnnualHousingCost:  annualHousingCost,
			InvestmentValue:    renterBalance,
			HomeValueIfBought:  homeValue,
			NetWorth:           rentNetWorth,
			NetWorthAdjusted:   PresentValue(rentNetWorth, year, rent.InflationRate),
		})

		analysis.YearlyCosts = append(analysis.YearlyCosts, domain.HousingCostYear{
			Year:              year,
			OwnerMonthlyCost:  ownerMonthly,
			RenterMonthlyCost: renterMonthly,
			PMIMonthly:        pmi,
			MonthlySavings:    diff.Abs(),
			SaverIsBuyer:      saverIsBuyer,
			BuyerInvestment:   buyerBalance,
			RenterInvestment:  renterBalance,
		})
	}

	lastBuy := buyResult.Years[len(buyResult.Years)-1]
	buyResult.SellingCosts = lastBuy.HomeValue.Mul(costs.SellingCostRate)
	finalBuy := lastBuy.NetWorth.Sub(buyResult.SellingCosts)
	buyResult.FinalNetWorth = finalBuy
	buyResult.FinalNetWorthAdjusted = PresentValue(finalBuy, lastBuy.Year, buy.InflationRate)

	lastRent := rentResult.Years[len(rentResult.Years)-1]
	rentResult.TotalRentPaid = cumulativeRent
	rentResult.FinalNetWorth = lastRent.NetWorth
	rentResult.FinalNetWorthAdjusted = lastRent.NetWorthAdjusted

	analysis.BreakEven = compareTrajectories(buyResult, rentResult)
	return analysis, nil
}

// pmiWithCosts mirrors monthlyPMI but against an explicit cost model, since
// this analysis supplies defaults even when the engine itself carries none.
func (e *AnalysisEngine) pmiWithCosts(costs *domain.CostAssumptions, scenario *domain.MortgageScenario, homeValue, loanBalance, originationLTV decimal.Decimal) decimal.Decimal {
	if originationLTV.LessThanOrEqual(costs.PMIRequiredLTV) {
		return decimal.Zero
	}
	if loanBalance.LessThanOrEqual(decimal.Zero) || homeValue.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if loanBalance.Div(homeValue).LessThanOrEqual(costs.PMIRemovalLTV) {
		return decimal.Zero
	}
	return scenario.LoanAmount.Mul(costs.PMIRate).Div(twelve)
}
