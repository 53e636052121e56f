package calculation

import (
	"fmt"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// AnalyzeOpportunityCost models the "invest the difference" strategy: the
// holder of the cheaper long-term loan invests the monthly payment gap to the
// short-term loan. Once the short-term loan pays off, the accumulated balance
// carries forward as a lump sum and the contribution switches to
// postPayoffRate times the freed-up short-term payment; both components keep
// compounding together.
//
// The break-even year is the first year the longer-term strategy's nominal
// net worth plus the invested difference exceeds the shorter-term strategy's
// nominal net worth; zero means it never happens within the horizon.
func (e *AnalysisEngine) AnalyzeOpportunityCost(longerTerm, shorterTerm *domain.ScenarioResult, stockReturn, postPayoffRate decimal.Decimal) (*domain.OpportunityCostAnalysis, error) {
	if err := requireTrajectory(longerTerm.Name, len(longerTerm.Years)); err != nil {
		return nil, err
	}
	if err := requireTrajectory(shorterTerm.Name, len(shorterTerm.Years)); err != nil {
		return nil, err
	}
	if shorterTerm.TermYears >= longerTerm.TermYears {
		return nil, fmt.Errorf("scenario %s must have a shorter term than %s", shorterTerm.Name, longerTerm.Name)
	}
	if postPayoffRate.LessThan(decimal.Zero) || postPayoffRate.GreaterThan(one) {
		return nil, fmt.Errorf("post payoff investment rate must be between 0 and 1")
	}

	monthlyDiff := shorterTerm.MonthlyPayment.Sub(longerTerm.MonthlyPayment)
	if monthlyDiff.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("scenario %s payment is not higher than %s; nothing to invest", shorterTerm.Name, longerTerm.Name)
	}

	horizon := len(longerTerm.Years)
	if len(shorterTerm.Years) < horizon {
		horizon = len(shorterTerm.Years)
	}
	switchYear := shorterTerm.TermYears

	analysis := &domain.OpportunityCostAnalysis{
		MonthlyPaymentDifference: monthlyDiff,
		InvestmentGrowth:         make([]decimal.Decimal, 0, horizon),
		CumulativeExtraInterest:  make([]decimal.Decimal, 0, horizon),
	}

	// Balance at the moment the short-term loan retires; becomes the lump
	// that keeps compounding afterwards.
	lumpAtSwitch := FutureValue(decimal.Zero, monthlyDiff, stockReturn, switchYear)
	postPayoffContribution := shorterTerm.MonthlyPayment.Mul(postPayoffRate)

	cumExtraInterest := decimal.Zero
	for year := 1; year <= horizon; year++ {
		var balance decimal.Decimal
		if year <= switchYear {
			balance = FutureValue(decimal.Zero, monthlyDiff, stockReturn, year)
		} else {
			balance = FutureValue(lumpAtSwitch, postPayoffContribution, stockReturn, year-switchYear)
		}
		analysis.InvestmentGrowth = append(analysis.InvestmentGrowth, balance)

		extra := longerTerm.Years[year-1].YearlyInterest.Sub(shorterTerm.Years[year-1].YearlyInterest)
		cumExtraInterest = cumExtraInterest.Add(extra)
		analysis.CumulativeExtraInterest = append(analysis.CumulativeExtraInterest, cumExtraInterest)

		if analysis.BreakEvenYear == 0 {
			longerWealth := longerTerm.Years[year-1].NetWorth.Add(balance)
			if longerWealth.GreaterThan(shorterTerm.Years[year-1].NetWorth) {
				analysis.BreakEvenYear = year
			}
		}
	}

	return analysis, nil
}
