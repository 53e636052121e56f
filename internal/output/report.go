package output

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport runs the named formatter and writes its output to a
// timestamped file. "all" writes the verbose console report plus the detailed
// CSV in one call.
func GenerateReport(results *domain.ScenarioComparison, format string) error {
	if format == "all" {
		if _, err := WriteFormatted(ConsoleVerboseFormatter{}, results, "txt"); err != nil {
			return err
		}
		_, err := WriteFormatted(CSVDetailedExporter{}, results, "csv")
		return err
	}

	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	ext := f.Name()
	switch {
	case strings.Contains(ext, "console"):
		ext = "txt"
	case strings.Contains(ext, "csv"):
		ext = "csv"
	}
	_, err := WriteFormatted(f, results, ext)
	return err
}

// SaveConfiguration marshals any YAML-taggable configuration to a file. Used
// by the example generator.
func SaveConfiguration(config interface{}, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// RentVsBuyReport renders the realistic rent-vs-buy comparison as a console
// report.
func RentVsBuyReport(analysis *domain.RentVsBuyAnalysis) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "RENT VS BUY ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Buying:  %s (%s/mo mortgage)\n",
		analysis.BuyResult.Name, FormatCurrency(analysis.BuyResult.MonthlyPayment))
	fmt.Fprintf(&buf, "Renting: %s (%s/mo starting rent)\n",
		analysis.RentResult.Name, FormatCurrency(analysis.RentResult.MonthlyRent))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-6s %15s %15s %12s %18s %18s\n",
		"YEAR", "OWNER COST/MO", "RENT COST/MO", "PMI/MO", "BUYER NET WORTH", "RENTER NET WORTH")
	fmt.Fprintln(&buf, strings.Repeat("-", 88))
	for i, cost := range analysis.YearlyCosts {
		if !isMilestone(cost.Year) {
			continue
		}
		comparison := analysis.BreakEven.YearlyComparison[i]
		fmt.Fprintf(&buf, "%-6d %15s %15s %12s %18s %18s\n",
			cost.Year,
			FormatCurrency(cost.OwnerMonthlyCost),
			FormatCurrency(cost.RenterMonthlyCost),
			FormatCurrency(cost.PMIMonthly),
			FormatCurrency(comparison.BuyNetWorth),
			FormatCurrency(comparison.RentNetWorth))
	}
	fmt.Fprintln(&buf)

	writeBreakEven(&buf, &analysis.BreakEven)
	fmt.Fprintf(&buf, "Total rent paid over the horizon: %s\n", FormatCurrency(analysis.RentResult.TotalRentPaid))
	fmt.Fprintf(&buf, "Selling costs charged to the buyer: %s\n", FormatCurrency(analysis.BuyResult.SellingCosts))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "COST ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(analysis.Costs) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes()
}

// BreakEvenReport renders a standalone break-even comparison.
func BreakEvenReport(analysis *domain.BreakEvenAnalysis) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "BREAK-EVEN ANALYSIS")
	fmt.Fprintln(&buf, "===================")
	writeBreakEven(&buf, analysis)
	return buf.Bytes()
}

func writeBreakEven(buf *bytes.Buffer, analysis *domain.BreakEvenAnalysis) {
	if analysis.HasBreakEven() {
		fmt.Fprintf(buf, "Buying overtakes renting in year %d.\n", analysis.BreakEvenYear)
	} else {
		fmt.Fprintln(buf, "Buying never overtakes renting within the horizon.")
	}
	fmt.Fprintf(buf, "Final buy net worth (today's dollars):  %s\n", FormatCurrency(analysis.FinalBuyNetWorth))
	fmt.Fprintf(buf, "Final rent net worth (today's dollars): %s\n", FormatCurrency(analysis.FinalRentNetWorth))
	verdict := "buying"
	advantage := analysis.TotalAdvantage
	if advantage.IsNegative() {
		verdict = "renting"
		advantage = advantage.Neg()
	}
	fmt.Fprintf(buf, "Overall advantage: %s by %s\n", verdict, FormatCurrency(advantage))
	fmt.Fprintln(buf)
}

func isMilestone(year int) bool {
	for _, m := range milestoneYears {
		if m == year {
			return true
		}
	}
	return false
}
