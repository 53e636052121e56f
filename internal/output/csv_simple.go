package output

import (
	"bytes"
	"encoding/csv"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "HomePrice", "DownPayment", "LoanAmount", "TermYears", "MonthlyPayment", "TotalInterest", "Year5NetWorth", "Year10NetWorth", "SellingCosts", "FinalNetWorth", "FinalNetWorthAdjusted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		year5, year10 := milestone(sc.Years, 5), milestone(sc.Years, 10)
		row := []string{
			sc.Name,
			sc.HomePrice.StringFixed(2),
			sc.DownPayment.StringFixed(2),
			sc.LoanAmount.StringFixed(2),
			intToString(sc.TermYears),
			sc.MonthlyPayment.StringFixed(2),
			sc.TotalInterest.StringFixed(2),
			snapshotNetWorth(year5),
			snapshotNetWorth(year10),
			sc.SellingCosts.StringFixed(2),
			sc.FinalNetWorth.StringFixed(2),
			sc.FinalNetWorthAdjusted.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func snapshotNetWorth(s *domain.YearlySnapshot) string {
	if s == nil {
		return ""
	}
	return s.NetWorth.StringFixed(2)
}
