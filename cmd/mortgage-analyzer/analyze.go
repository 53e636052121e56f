package main

import (
	"fmt"
	"os"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/output"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var (
		format    string
		save      bool
		realistic bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [input.yaml]",
		Short: "Project and rank all buy scenarios",
		Long: `Projects every scenario in the input file over the configured horizon and
ranks them by final net worth in today's dollars. Without an input file the
built-in example scenarios are analyzed.`,
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

			engine := buildEngine(cfg, realistic)
			comparison, err := engine.CompareScenarios(cfg.Scenarios)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if save {
				return output.GenerateReport(comparison, format)
			}
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q, try one of: %v", format, output.AvailableFormatterNames())
			}
			data, err := formatter.Format(comparison)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, console-lite, csv, detailed-csv, html, json)")
	cmd.Flags().BoolVar(&save, "save", false, "write the report to a timestamped file instead of stdout")
	cmd.Flags().BoolVar(&realistic, "realistic", false, "include PMI, insurance, maintenance, and selling costs")
	return cmd
}
