package main

import (
	"fmt"
	"os"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/output"
	"github.com/spf13/cobra"
)

func breakEvenCmd() *cobra.Command {
	var realistic bool

	cmd := &cobra.Command{
		Use:   "break-even [input.yaml]",
		Short: "Find when buying first overtakes renting",
		Long: `Projects the first buy scenario and the rent alternative side by side and
reports the first year buying pulls ahead on net worth in today's dollars,
or that it never does within the horizon.`,
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

			engine := buildEngine(cfg, realistic)
			analysis, err := engine.BreakEvenRentVsBuy(&cfg.Scenarios[0], cfg.Rent)
			if err != nil {
				return fmt.Errorf("break-even analysis failed: %w", err)
			}
			_, err = os.Stdout.Write(output.BreakEvenReport(analysis))
			return err
		},
	}

	cmd.Flags().BoolVar(&realistic, "realistic", false, "include PMI, insurance, maintenance, and selling costs")
	return cmd
}
