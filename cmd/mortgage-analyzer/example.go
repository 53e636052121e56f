package main

import (
	"fmt"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/config"
	"github.com/knowyourmortgage/mortgage-analyzer/internal/output"
	"github.com/spf13/cobra"
)

func exampleCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a starter configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, outputPath); err != nil {
				return fmt.Errorf("writing %s: %w", outputPath, err)
			}
			fmt.Printf("Wrote example configuration to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "mortgage-scenarios.yaml", "where to write the example file")
	return cmd
}
