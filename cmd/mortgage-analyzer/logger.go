package main

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger = zap.NewNop()

// setupLogging builds the process-wide zap logger from viper settings.
func setupLogging() error {
	var level zapcore.Level
	switch viper.GetString("logging.level") {
	case "debug":
		level = zapcore.DebugLevel
	case "info", "":
		level = zapcore.InfoLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		return fmt.Errorf("invalid log level: %s", viper.GetString("logging.level"))
	}

	var config zap.Config
	switch viper.GetString("logging.format") {
	case "console", "":
		config = zap.NewDevelopmentConfig()
	case "json":
		config = zap.NewProductionConfig()
	default:
		return fmt.Errorf("invalid log format: %s", viper.GetString("logging.format"))
	}
	config.Level = zap.NewAtomicLevelAt(level)

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = built
	return nil
}

// engineLogger adapts zap's sugared logger to the calculation engine's
// logging interface.
type engineLogger struct {
	sugar *zap.SugaredLogger
}

func newEngineLogger() engineLogger {
	return engineLogger{sugar: logger.Sugar()}
}

func (l engineLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l engineLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l engineLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l engineLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }
