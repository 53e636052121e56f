package calculation

import (
	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// FirstCrossingYear scans two aligned inflation-adjusted net-worth series and
// returns the first 1-based year where A strictly exceeds B. The second
// return value is false when the series never cross within the horizon.
//
// The curves can be non-monotonic and cross more than once; only the first
// crossing is reported, which can understate a later reversal. That is the
// contract callers rely on, so callers wanting "permanent" dominance must
// inspect the full series themselves.
func FirstCrossingYear(a, b []decimal.Decimal) (int, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].GreaterThan(b[i]) {
			return i + 1, true
		}
	}
	return 0, false
}

// AdjustedNetWorthSeries extracts the real net-worth series of a buy
// trajectory for break-even scanning.
func AdjustedNetWorthSeries(years []domain.YearlySnapshot) []decimal.Decimal {
	series := make([]decimal.Decimal, len(years))
	for i, y := range years {
		series[i] = y.NetWorthAdjusted
	}
	return series
}

// RentAdjustedNetWorthSeries extracts the real net-worth series of a rent
// trajectory.
func RentAdjustedNetWorthSeries(years []domain.RentYearSnapshot) []decimal.Decimal {
	series := make([]decimal.Decimal, len(years))
	for i, y := range years {
		series[i] = y.NetWorthAdjusted
	}
	return series
}

// BreakEvenYear is the pairwise scenario comparison: the first year
// trajectory A's real net worth exceeds trajectory B's, or (0, false) when it
// never does.
func BreakEvenYear(a, b []domain.YearlySnapshot) (int, bool) {
	return FirstCrossingYear(AdjustedNetWorthSeries(a), AdjustedNetWorthSeries(b))
}

// BreakEvenRentVsBuy runs the simple-model projections for a buy scenario and
// the rent alternative and reports when buying first overtakes renting.
func (e *AnalysisEngine) BreakEvenRentVsBuy(buy *domain.MortgageScenario, rent *domain.RentScenario) (*domain.BreakEvenAnalysis, error) {
	buyResult, err := e.AnalyzeScenario(buy)
	if err != nil {
		return nil, err
	}
	rentResult, err := e.AnalyzeRentScenario(rent)
	if err != nil {
		return nil, err
	}
	analysis := compareTrajectories(buyResult, rentResult)
	return &analysis, nil
}

// compareTrajectories builds the year-by-year rent-vs-buy ledger and the
// first-crossing break-even from two completed projections.
func compareTrajectories(buy *domain.ScenarioResult, rent *domain.RentResult) domain.BreakEvenAnalysis {
	n := len(buy.Years)
	if len(rent.Years) < n {
		n = len(rent.Years)
	}

	analysis := domain.BreakEvenAnalysis{
		YearlyComparison:  make([]domain.YearComparison, 0, n),
		FinalRentNetWorth: rent.FinalNetWorthAdjusted,
		FinalBuyNetWorth:  buy.FinalNetWorthAdjusted,
	}
	analysis.TotalAdvantage = buy.FinalNetWorthAdjusted.Sub(rent.FinalNetWorthAdjusted)
	analysis.BreakEvenYear, _ = FirstCrossingYear(
		AdjustedNetWorthSeries(buy.Years), RentAdjustedNetWorthSeries(rent.Years))

	for i := 0; i < n; i++ {
		buyWorth := buy.Years[i].NetWorthAdjusted
		rentWorth := rent.Years[i].NetWorthAdjusted
		better := buyWorth.GreaterThan(rentWorth)
		analysis.YearlyComparison = append(analysis.YearlyComparison, domain.YearComparison{
			Year:         i + 1,
			RentNetWorth: rentWorth,
			BuyNetWorth:  buyWorth,
			BuyAdvantage: buyWorth.Sub(rentWorth),
			BuyIsBetter:  better,
		})
	}

	return analysis
}
