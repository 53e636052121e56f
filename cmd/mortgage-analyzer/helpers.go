package main

import (
	"fmt"

	"github.com/knowyourmortgage/mortgage-analyzer/internal/calculation"
	"github.com/knowyourmortgage/mortgage-analyzer/internal/config"
	"go.uber.org/zap"
)

// loadConfiguration reads the analysis input file, or falls back to the
// built-in example set when no path is given.
func loadConfiguration(path string) (*config.Configuration, error) {
	if path == "" {
		logger.Info("no input file given, using the built-in example scenarios")
		return config.CreateExampleConfiguration(), nil
	}
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Info("loaded configuration",
		zap.String("file", path),
		zap.Int("scenarios", len(cfg.Scenarios)),
		zap.Bool("has_rent", cfg.Rent != nil))
	return cfg, nil
}

// buildEngine constructs the analysis engine a configuration describes,
// honoring the command-level realistic-costs override.
func buildEngine(cfg *config.Configuration, forceRealistic bool) *calculation.AnalysisEngine {
	engine := calculation.NewAnalysisEngine()
	engine.SetLogger(newEngineLogger())
	if cfg.HorizonYears > 0 {
		engine.HorizonYears = cfg.HorizonYears
	}
	if !cfg.Reference.IsZero() {
		engine.Reference = cfg.Reference
	}
	engine.Costs = cfg.EffectiveCosts()
	if forceRealistic && engine.Costs == nil {
		realistic := calculation.NewRealisticAnalysisEngine()
		engine.Costs = realistic.Costs
	}
	return engine
}
