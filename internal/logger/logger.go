// Package logger provides logging utilities for the demo server.
package logger

import (
	"log"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// L is the global logger instance. It is a no-op until InitLogger runs
// so that library code and tests can log unconditionally.
var L = zap.NewNop()

// Environment represents the application environment type.
type Environment string

const (
	// EnvironmentDevelopment represents the development environment.
	EnvironmentDevelopment Environment = "development"
	// EnvironmentProduction represents the production environment.
	EnvironmentProduction Environment = "production"
)

// InitLogger initializes the global logger with the specified
// environment and log level, and redirects the standard log and slog
// outputs to it.
func InitLogger(environment Environment, level string) {
	var cfg zap.Config

	if environment == EnvironmentDevelopment {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.Level.SetLevel(ParseLevel(level))

	var err error
	L, err = cfg.Build()
	if err != nil {
		log.Printf("Failed to initialize zap logger: %v", err)
		os.Exit(1)
	}

	zap.RedirectStdLog(L)

	slogHandler := zapslog.NewHandler(L.Core())
	slog.SetDefault(slog.New(slogHandler))
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = L.Sync()
}

// ParseLevel converts a level string to a zap level, defaulting to
// info for unknown values.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
