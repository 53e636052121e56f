package output

import (
	"bytes"
	"encoding/csv"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
)

// CSVDetailedExporter provides raw annual projection detail per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "HomeValue", "LoanBalance", "HomeEquity", "InvestmentValue", "YearlyInterest", "TaxSavings", "PropertyTax", "NetWorth", "NetWorthAdjusted", "CashPurchase"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		cash := sc.LoanAmount.IsZero()
		for _, yr := range sc.Years {
			row := []string{
				sc.Name,
				intToString(yr.Year),
				yr.HomeValue.StringFixed(2),
				yr.LoanBalance.StringFixed(2),
				yr.HomeEquity.StringFixed(2),
				yr.InvestmentValue.StringFixed(2),
				yr.YearlyInterest.StringFixed(2),
				yr.TaxSavings.StringFixed(2),
				yr.PropertyTax.StringFixed(2),
				yr.NetWorth.StringFixed(2),
				yr.NetWorthAdjusted.StringFixed(2),
				boolToString(cash),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
