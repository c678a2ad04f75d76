package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paularlott/logger"
	logslog "github.com/paularlott/logger/slog"
)

var defaultLogger logger.Logger

func init() {
	defaultLogger = logslog.New(logslog.Config{
		Level:  "info",
		Format: "console",
		Writer: os.Stdout,
	})
}

var levels = map[string]string{
	"trace":   "trace",
	"debug":   "debug",
	"info":    "info",
	"warn":    "warn",
	"warning": "warn",
	"error":   "error",
}

// ParseLevel maps a level name, case-insensitively, to the logger's level.
func ParseLevel(level string) (string, error) {
	l, ok := levels[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return "", fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}

// ParseFormat accepts "console" or "json".
func ParseFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f != "console" && f != "json" {
		return "", fmt.Errorf("unknown log format %q", format)
	}
	return f, nil
}

// Configure replaces the package logger, writing to stdout. The current
// logger is kept when level or format is not recognised.
func Configure(level, format string) error {
	return ConfigureWriter(level, format, os.Stdout)
}

// ConfigureWriter replaces the package logger, writing to w.
func ConfigureWriter(level, format string, w io.Writer) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	defaultLogger = logslog.New(logslog.Config{
		Level:  l,
		Format: f,
		Writer: w,
	})
	return nil
}

// Logger returns the current package logger.
func Logger() logger.Logger {
	return defaultLogger
}

func Info(msg string, keysAndValues ...any) {
	defaultLogger.Info(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	defaultLogger.Warn(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	defaultLogger.Error(msg, keysAndValues...)
}

func Debug(msg string, keysAndValues ...any) {
	defaultLogger.Debug(msg, keysAndValues...)
}
