package main

import (
	"fmt"
	"os"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/calculation"
	"github.com/knowyourmortgage/mortgage-analyzer/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func buyingPowerCmd() *cobra.Command {
	var (
		rent    float64
		rate    float64
		downPct float64
	)

	cmd := &cobra.Command{
		Use:   "buying-power",
		Short: "Translate a monthly rent budget into an affordable home price",
		RunE: func(cmd *cobra.Command, args []string) error {
			fifteen, thirty, err := calculation.EstimateBuyingPowerRange(
				decimal.NewFromFloat(rent),
				decimal.NewFromFloat(rate),
				decimal.NewFromFloat(downPct))
			if err != nil {
				return err
			}

			w := os.Stdout
			fmt.Fprintf(w, "Monthly budget %s at %.2f%% with %.0f%% down:\n\n",
				output.FormatCurrency(decimal.NewFromFloat(rent)), rate*100, downPct*100)
			for _, est := range []*calculation.BuyingPowerEstimate{fifteen, thirty} {
				fmt.Fprintf(w, "%d-year loan: home up to %s (loan %s, down payment %s)\n",
					est.TermYears,
					output.FormatCurrency(est.AffordablePrice),
					output.FormatCurrency(est.MaxLoanAmount),
					output.FormatCurrency(est.DownPaymentNeeded))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&rent, "rent", 2500, "monthly housing budget")
	cmd.Flags().Float64Var(&rate, "rate", 0.061, "annual interest rate as a decimal")
	cmd.Flags().Float64Var(&downPct, "down-pct", 0.20, "down payment fraction of the price")
	return cmd
}
