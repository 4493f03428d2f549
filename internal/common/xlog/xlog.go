// Package xlog is a thin structured-logging layer over zap. Every log call
// takes a context so request-scoped data (correlation id, host) is attached
// without the caller threading it manually.
package xlog

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common/xlog/ctxdata"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var base = zap.NewNop()

type options struct {
	logTo      string
	env        string
	withCaller bool
	callerSkip int
	level      zapcore.Level
}

type Option func(*options)

func WithLogToOption(logTo string) Option {
	return func(o *options) { o.logTo = logTo }
}

func WithLogEnvOption(env string) Option {
	return func(o *options) { o.env = env }
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.withCaller = enabled }
}

func AddCallerSkip(skip int) Option {
	return func(o *options) { o.callerSkip = skip }
}

func DebugLogLevel() Option {
	return func(o *options) { o.level = zapcore.DebugLevel }
}

func InfoLogLevel() Option {
	return func(o *options) { o.level = zapcore.InfoLevel }
}

// Init replaces the process logger. Local env gets a human-readable console
// encoder, everything else logs JSON to stdout.
func Init(appName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, withCaller: true, callerSkip: 1}
	for _, opt := range opts {
		opt(o)
	}

	var encoder zapcore.Encoder
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if o.env == "local" || o.env == "" {
		devCfg := zap.NewDevelopmentEncoderConfig()
		devCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewConsoleEncoder(devCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	sink := zapcore.Lock(os.Stdout)
	if o.logTo == "stderr" {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(encoder, sink, o.level)

	zapOpts := []zap.Option{}
	if o.withCaller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(o.callerSkip))
	}

	base = zap.New(core, zapOpts...).Named(appName)
}

// InitForTest swaps in a no-op logger so package init logging stays quiet
// under go test.
func InitForTest() {
	base = zap.NewNop()
}

// Base exposes the underlying zap logger for integrations that need it
// directly (newrelic log forwarding).
func Base() *zap.Logger {
	return base
}

func Sync() {
	_ = base.Sync()
}

func String(key, value string) Field                 { return zap.String(key, value) }
func Int(key string, value int) Field                { return zap.Int(key, value) }
func Int32(key string, value int32) Field            { return zap.Int32(key, value) }
func Int64(key string, value int64) Field            { return zap.Int64(key, value) }
func Uint64(key string, value uint64) Field          { return zap.Uint64(key, value) }
func Float64(key string, value float64) Field        { return zap.Float64(key, value) }
func Bool(key string, value bool) Field              { return zap.Bool(key, value) }
func Time(key string, value time.Time) Field         { return zap.Time(key, value) }
func Duration(key string, value time.Duration) Field { return zap.Duration(key, value) }
func Any(key string, value interface{}) Field        { return zap.Any(key, value) }
func Err(err error) Field                            { return zap.Error(err) }

func withCtx(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if cid := ctxdata.GetCorrelationId(ctx); cid != "" {
		fields = append(fields, zap.String("x-correlation-id", cid))
	}
	if host := ctxdata.GetHost(ctx); host != "" {
		fields = append(fields, zap.String("host", host))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	base.Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	base.Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	base.Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	base.Error(msg, withCtx(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	base.Panic(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	base.Debug(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	base.Info(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	base.Warn(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	base.Error(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	base.Fatal(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}
