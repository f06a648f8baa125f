// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the global logger instance
var Logger *slog.Logger

// GlobalContext is the global ContextLogger instance
var GlobalContext *ContextLogger

// Options selects how log records are written.
type Options struct {
	Level       string
	Format      string // json or text
	OTelEnabled bool
	ServiceName string
	Output      io.Writer
}

// Init builds the logger, installs it as the slog default and returns it.
// Stdout records carry trace_id/span_id; with OTel enabled every record is
// also sent through the otelslog bridge.
func Init(opts Options) *slog.Logger {
	level := parseLevel(opts.Level)
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var stdout slog.Handler
	handlerOpts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(opts.Format, "text") {
		stdout = slog.NewTextHandler(out, handlerOpts)
	} else {
		stdout = slog.NewJSONHandler(out, handlerOpts)
	}

	var handler slog.Handler = NewTraceContextHandler(stdout)
	if opts.OTelEnabled {
		handler = NewMultiHandler(handler, NewOTelHandler(opts.ServiceName, level))
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
	GlobalContext = NewContextLogger(Logger)

	Logger.Info("Logger initialized", "level", level.String(), "otel", opts.OTelEnabled)

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OrDefault returns l, or slog.Default() when l is nil.
func OrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
