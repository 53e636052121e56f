package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/domain"
	"github.com/knowyourmortgage/mortgage-analyzer/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func opportunityCmd() *cobra.Command {
	var postPayoffPct float64

	cmd := &cobra.Command{
		Use:   "opportunity [input.yaml]",
		Short: "Quantify investing the payment gap between a long and a short loan",
		Long: `Takes the longest-term and shortest-term financed scenarios in the input
and models the classic trade-off: the long-term borrower invests the monthly
payment difference, then keeps investing part of the freed-up payment once
the short loan would have been paid off.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := loadConfiguration(path)
			if err != nil {
				return err
			}

			longer, shorter := pickTermExtremes(cfg.Scenarios)
			if longer == nil {
				return fmt.Errorf("the input needs two financed scenarios with different terms")
			}

			engine := buildEngine(cfg, false)
			longerResult, err := engine.AnalyzeScenario(longer)
			if err != nil {
				return err
			}
			shorterResult, err := engine.AnalyzeScenario(shorter)
			if err != nil {
				return err
			}

			analysis, err := engine.AnalyzeOpportunityCost(longerResult, shorterResult,
				longer.StockReturnRate, decimal.NewFromFloat(postPayoffPct))
			if err != nil {
				return fmt.Errorf("opportunity cost analysis failed: %w", err)
			}

			writeOpportunityReport(longerResult, shorterResult, analysis)
			return nil
		},
	}

	cmd.Flags().Float64Var(&postPayoffPct, "post-payoff-rate", 0.75, "fraction of the freed-up payment invested after the short loan retires")
	return cmd
}

// pickTermExtremes returns the financed scenarios with the longest and
// shortest terms, or nils when no valid pair exists.
func pickTermExtremes(scenarios []domain.MortgageScenario) (longer, shorter *domain.MortgageScenario) {
	for i := range scenarios {
		s := &scenarios[i]
		if s.IsCashPurchase() {
			continue
		}
		if longer == nil || s.TermYears > longer.TermYears {
			longer = s
		}
		if shorter == nil || s.TermYears < shorter.TermYears {
			shorter = s
		}
	}
	if longer == nil || shorter == nil || longer.TermYears == shorter.TermYears {
		return nil, nil
	}
	return longer, shorter
}

func writeOpportunityReport(longer, shorter *domain.ScenarioResult, analysis *domain.OpportunityCostAnalysis) {
	w := os.Stdout
	fmt.Fprintln(w, "OPPORTUNITY COST ANALYSIS")
	fmt.Fprintln(w, "=========================")
	fmt.Fprintf(w, "Long loan:  %s (%d years, %s/mo)\n", longer.Name, longer.TermYears, output.FormatCurrency(longer.MonthlyPayment))
	fmt.Fprintf(w, "Short loan: %s (%d years, %s/mo)\n", shorter.Name, shorter.TermYears, output.FormatCurrency(shorter.MonthlyPayment))
	fmt.Fprintf(w, "Invested monthly difference: %s\n", output.FormatCurrency(analysis.MonthlyPaymentDifference))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-6s %20s %24s\n", "YEAR", "INVESTED DIFFERENCE", "EXTRA INTEREST TO DATE")
	fmt.Fprintln(w, strings.Repeat("-", 52))
	for _, year := range []int{1, 5, 10, 15, 20, 25, 30} {
		if year > len(analysis.InvestmentGrowth) {
			break
		}
		fmt.Fprintf(w, "%-6d %20s %24s\n", year,
			output.FormatCurrency(analysis.InvestmentGrowth[year-1]),
			output.FormatCurrency(analysis.CumulativeExtraInterest[year-1]))
	}
	fmt.Fprintln(w)

	if analysis.BreakEvenYear > 0 {
		fmt.Fprintf(w, "The long-loan strategy pulls ahead in year %d.\n", analysis.BreakEvenYear)
	} else {
		fmt.Fprintln(w, "The long-loan strategy never pulls ahead within the horizon.")
	}
}
