package main

import (
	"fmt"
	"os"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/output"
	"github.com/spf13/cobra"
)

func rentVsBuyCmd() *cobra.Command {
	var scenarioName string

	cmd := &cobra.Command{
		Use:   "rent-vs-buy [input.yaml]",
		Short: "Compare buying a home against renting it under the full cost model",
		Long: `Runs the realistic rent-vs-buy comparison: each year the all-in monthly
cost of owning (mortgage, property tax, insurance, maintenance, PMI, net of
the tax deduction) is compared to renting, and whoever pays less invests the
difference. The input file must contain a rent scenario.`,
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
			if cfg.Rent == nil {
				return fmt.Errorf("the input has no rent scenario to compare against")
			}

			buy := &cfg.Scenarios[0]
			if scenarioName != "" {
				buy = nil
				for i := range cfg.Scenarios {
					if cfg.Scenarios[i].Name == scenarioName {
						buy = &cfg.Scenarios[i]
						break
					}
				}
				if buy == nil {
					return fmt.Errorf("no scenario named %q in the input", scenarioName)
				}
			}

			engine := buildEngine(cfg, true)
			analysis, err := engine.RunRentVsBuy(buy, cfg.Rent)
			if err != nil {
				return fmt.Errorf("rent-vs-buy analysis failed: %w", err)
			}
			_, err = os.Stdout.Write(output.RentVsBuyReport(analysis))
			return err
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "buy scenario to compare (default: first in the input)")
	return cmd
}
