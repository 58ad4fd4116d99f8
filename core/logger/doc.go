// Package logger provides structured logging utilities built on Go's standard
// slog package: a factory with environment presets and a set of pre-built
// attribute helpers for common logging scenarios.
//
// # Basic Usage
//
// Create loggers using the factory function with configuration options:
//
//	import "github.com/dmitrymomot/statecast/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("tapedeck"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(
//		logger.WithProduction("tapedeck"),
//		logger.WithLevel(slog.LevelWarn),
//	)
//
//	log.Info("engine started",
//		logger.Component("audio"),
//		logger.Event("startup"),
//		logger.SampleRate(48000),
//	)
//
// # Attribute Helpers
//
// Helpers return empty attributes for nil or empty input, so they are safe
// to pass unconditionally:
//
//	log.Error("device open failed",
//		logger.Error(err), // empty Attr when err is nil
//		logger.Client(clientName),
//		logger.Elapsed(start),
//	)
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
//
// # Global Logger Setup
//
// Install a logger as the process-wide slog default:
//
//	logger.SetAsDefault(logger.New(logger.WithProduction("tapedeck")))
//	slog.Info("using global logger")
package logger
