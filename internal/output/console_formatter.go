package output

import (
	"bytes"
	"fmt"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MORTGAGE SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Scenarios analyzed: %d\n", results.Stats.ScenariosAnalyzed)
	fmt.Fprintln(&buf)
	for _, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "%s: Payment=%s TotalInterest=%s Final=%s Adjusted=%s\n",
			sc.Name,
			FormatCurrency(sc.MonthlyPayment),
			FormatCurrency(sc.TotalInterest),
			FormatCurrency(sc.FinalNetWorth),
			FormatCurrency(sc.FinalNetWorthAdjusted),
		)
		if year10 := milestone(sc.Years, 10); year10 != nil {
			fmt.Fprintf(&buf, "  Year10: Equity=%s Investments=%s NetWorth=%s\n",
				FormatCurrency(year10.HomeEquity),
				FormatCurrency(year10.InvestmentValue),
				FormatCurrency(year10.NetWorth))
		}
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (ahead by %s / %s)\n",
			rec.ScenarioName, FormatCurrency(rec.WealthAdvantage), FormatPercentage(rec.PercentageAdvantage))
	}
	return buf.Bytes(), nil
}

// milestone returns the snapshot for a given year, nil when the trajectory is
// shorter.
func milestone(years []domain.YearlySnapshot, year int) *domain.YearlySnapshot {
	if year < 1 || year > len(years) {
		return nil
	}
	return &years[year-1]
}
