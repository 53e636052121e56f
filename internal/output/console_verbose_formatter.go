package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the full console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

// milestoneYears are the trajectory years highlighted in the detailed tables.
var milestoneYears = []int{1, 5, 10, 15, 20, 25, 30}

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "HOME PURCHASE WEALTH PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeScenarioTable(&buf, results)

	for i, scenario := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, scenario.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))

		fmt.Fprintln(&buf, "LOAN TERMS:")
		fmt.Fprintf(&buf, "  Home Price:            %s\n", FormatCurrency(scenario.HomePrice))
		fmt.Fprintf(&buf, "  Down Payment:          %s\n", FormatCurrency(scenario.DownPayment))
		if scenario.LoanAmount.GreaterThan(decimal.Zero) {
			fmt.Fprintf(&buf, "  Loan Amount:           %s\n", FormatCurrency(scenario.LoanAmount))
			fmt.Fprintf(&buf, "  Term:                  %d years\n", scenario.TermYears)
			fmt.Fprintf(&buf, "  Monthly Payment:       %s\n", FormatCurrency(scenario.MonthlyPayment))
			fmt.Fprintf(&buf, "  Total of Payments:     %s\n", FormatCurrency(scenario.TotalPayments))
			fmt.Fprintf(&buf, "  Total Interest:        %s\n", FormatCurrency(scenario.TotalInterest))
		} else {
			fmt.Fprintln(&buf, "  Purchased outright, no loan")
		}
		fmt.Fprintln(&buf)

		fmt.Fprintln(&buf, "TRAJECTORY:")
		fmt.Fprintf(&buf, "  %-6s %15s %15s %15s %15s %15s\n",
			"YEAR", "HOME VALUE", "LOAN BALANCE", "INVESTMENTS", "NET WORTH", "TODAY'S $")
		fmt.Fprintln(&buf, "  "+strings.Repeat("-", 86))
		for _, year := range milestoneYears {
			snapshot := milestone(scenario.Years, year)
			if snapshot == nil {
				continue
			}
			fmt.Fprintf(&buf, "  %-6d %15s %15s %15s %15s %15s\n",
				snapshot.Year,
				FormatCurrency(snapshot.HomeValue),
				FormatCurrency(snapshot.LoanBalance),
				FormatCurrency(snapshot.InvestmentValue),
				FormatCurrency(snapshot.NetWorth),
				FormatCurrency(snapshot.NetWorthAdjusted))
		}
		fmt.Fprintln(&buf)

		fmt.Fprintln(&buf, "FINAL POSITION:")
		if scenario.SellingCosts.GreaterThan(decimal.Zero) {
			fmt.Fprintf(&buf, "  Selling Costs:         %s\n", FormatCurrency(scenario.SellingCosts))
		}
		fmt.Fprintf(&buf, "  Final Net Worth:       %s\n", FormatCurrency(scenario.FinalNetWorth))
		fmt.Fprintf(&buf, "  In Today's Dollars:    %s\n", FormatCurrency(scenario.FinalNetWorthAdjusted))
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best scenario: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "Final wealth (today's dollars): %s\n", FormatCurrency(rec.FinalNetWorth))
		fmt.Fprintf(&buf, "Advantage over weakest: %s (%s)\n",
			FormatCurrency(rec.WealthAdvantage), FormatPercentage(rec.PercentageAdvantage))
	}

	return buf.Bytes(), nil
}

// writeScenarioTable prints the side-by-side ranking that opens the report.
func writeScenarioTable(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	fmt.Fprintln(buf, "=================================================================================")
	fmt.Fprintln(buf, "SCENARIO RANKING (by final net worth in today's dollars)")
	fmt.Fprintln(buf, "=================================================================================")
	fmt.Fprintf(buf, "%-4s %-28s %15s %15s %15s\n", "#", "SCENARIO", "PAYMENT", "FINAL", "TODAY'S $")
	fmt.Fprintln(buf, strings.Repeat("-", 81))
	for i, sc := range results.Scenarios {
		fmt.Fprintf(buf, "%-4d %-28s %15s %15s %15s\n",
			i+1,
			sc.Name,
			FormatCurrency(sc.MonthlyPayment),
			FormatCurrency(sc.FinalNetWorth),
			FormatCurrency(sc.FinalNetWorthAdjusted))
	}
	fmt.Fprintln(buf)
	stats := results.Stats
	if stats.ScenariosAnalyzed > 1 {
		fmt.Fprintf(buf, "Spread between best and worst: %s (%s)\n",
			FormatCurrency(stats.WealthDifference), FormatPercentage(stats.WealthDifferencePct))
		fmt.Fprintln(buf)
	}
}
