// Package logger provides a global zap logger instance for JSON formatted logging
// across the entire requestkit project.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	once         sync.Once
)

// Config holds the logger configuration options
type Config struct {
	Level      zapcore.Level
	Encoding   string
	OutputPath string
	ErrorPath  string
}

// DefaultConfig returns a default logger configuration. Resolution traces are
// emitted at debug level, so they stay silent unless the level is lowered.
func DefaultConfig() Config {
	return Config{
		Level:      zapcore.InfoLevel,
		Encoding:   "json",
		OutputPath: "stderr",
		ErrorPath:  "stderr",
	}
}

// Init initializes the global logger with the provided configuration.
// It's safe to call multiple times - only the first call will initialize the logger.
func Init(config Config) error {
	var err error
	once.Do(func() {
		zapConfig := zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(config.Level)
		zapConfig.Encoding = config.Encoding
		zapConfig.OutputPaths = []string{config.OutputPath}
		zapConfig.ErrorOutputPaths = []string{config.ErrorPath}

		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.LevelKey = "level"
		zapConfig.EncoderConfig.MessageKey = "message"
		zapConfig.EncoderConfig.CallerKey = "caller"
		zapConfig.EncoderConfig.StacktraceKey = "stacktrace"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapConfig.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

		globalLogger, err = zapConfig.Build()
		if err != nil {
			// Fallback to no-op logger if configuration fails
			globalLogger = zap.NewNop()
		}
	})
	return err
}

// Get returns the global logger, initializing it with DefaultConfig when Init
// has not run yet. It is safe for concurrent use.
func Get() *zap.Logger {
	_ = Init(DefaultConfig())
	return globalLogger
}

// Named returns a child of the global logger scoped to the given component.
func Named(component string) *zap.Logger {
	return Get().Named(component)
}
