// Package logging builds the process slog logger: tint on stdout, optional
// rotated file output, and trace correlation when tracing is on.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Service    string
	Level      string
	Dir        string // empty: stdout only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Traced     bool // add trace_id/span_id from the record context
	Writer     io.Writer
}

func (o Options) withDefaults() Options {
	if o.Service == "" {
		o.Service = "app"
	}
	if o.MaxSizeMB <= 0 {
		o.MaxSizeMB = 20
	}
	if o.MaxBackups <= 0 {
		o.MaxBackups = 3
	}
	if o.MaxAgeDays <= 0 {
		o.MaxAgeDays = 14
	}
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
	return o
}

// New creates the logger and installs it as the slog default.
func New(opts Options) (*slog.Logger, error) {
	opts = opts.withDefaults()
	level := ParseLevel(opts.Level)

	dir := strings.TrimSpace(opts.Dir)
	if dir == "" {
		logger := newLogger(opts.Writer, level, false, opts.Traced)
		slog.SetDefault(logger)
		return logger, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir failed: %w", err)
	}
	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, opts.Service+".log"),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}

	logger := newLogger(io.MultiWriter(opts.Writer, file), level, true, opts.Traced)
	slog.SetDefault(logger)
	logger.Info("file_logging_enabled",
		slog.String("path", file.Filename),
		slog.Bool("otel_correlation", opts.Traced),
	)
	return logger, nil
}

func newLogger(w io.Writer, level slog.Level, noColor, traced bool) *slog.Logger {
	var handler slog.Handler = tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	})
	if traced {
		handler = &TraceHandler{inner: handler}
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level, info when unknown.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// TraceHandler adds trace_id and span_id of the active span to each record.
type TraceHandler struct {
	inner slog.Handler
}

// NewTraceHandler wraps inner.
func NewTraceHandler(inner slog.Handler) *TraceHandler {
	return &TraceHandler{inner: inner}
}

func (h *TraceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *TraceHandler) Handle(ctx context.Context, record slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		record.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	if err := h.inner.Handle(ctx, record); err != nil {
		return fmt.Errorf("handle log record: %w", err)
	}
	return nil
}

func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{inner: h.inner.WithGroup(name)}
}
