package logger

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logger struct {
	zl *zap.Logger
}

var global atomic.Pointer[logger]

func init() {
	global.Store(&logger{zl: zap.Must(zap.NewProduction(zap.AddCallerSkip(1)))})
}

// Init replaces the global logger. level is one of debug, info, warn, error.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl))
	global.Store(&logger{zl: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))})

	return nil
}

// SetNopLogger silences all output. Used by tests.
func SetNopLogger() {
	global.Store(&logger{zl: zap.NewNop()})
}

func L() *logger { return global.Load() }

func Sync() error { return L().zl.Sync() }

func With(fields ...Field) *logger { return L().With(fields...) }

func (l *logger) With(fields ...Field) *logger {
	return &logger{zl: l.zl.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, withSpan(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, withSpan(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zl.Warn(msg, withSpan(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, withSpan(ctx, fields)...)
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	L().zl.Debug(msg, withSpan(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	L().zl.Info(msg, withSpan(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	L().zl.Warn(msg, withSpan(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	L().zl.Error(msg, withSpan(ctx, fields)...)
}

// withSpan appends trace identifiers when ctx carries a valid span.
func withSpan(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return fields
	}

	return append(fields,
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
		zap.Bool("trace_sampled", sc.IsSampled()),
	)
}

// NoopLogger satisfies the small Info/Error logger interfaces without output.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
