package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init configures the global logger.
// env: "development" uses a readable text handler at debug level,
// anything else emits JSON at info level.
func Init(env string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	if env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger returns the global logger, initializing a development
// fallback when Init was never called.
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With returns a logger with extra fields attached.
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}
