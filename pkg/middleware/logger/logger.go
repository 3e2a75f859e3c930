package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path       string
	LogLevel   string
	ServiceEnv ServiceEnv
}

var (
	global *zap.SugaredLogger
	once   sync.Once
)

func Init(cfg *LogConfig) {
	once.Do(func() {
		level := parseLevel(cfg.LogLevel)

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		cores := []zapcore.Core{
			zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), level),
		}
		if cfg.Path != "" {
			rotate := &lumberjack.Logger{
				Filename:   cfg.Path,
				MaxSize:    100, // MB
				MaxBackups: 5,
				MaxAge:     30, // days
				Compress:   true,
			}
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotate), level))
		}

		lg := zap.New(zapcore.NewTee(cores...), zap.AddCallerSkip(1)).With(
			zap.String("platform", cfg.ServiceEnv.Platform),
			zap.String("service", cfg.ServiceEnv.Service),
			zap.String("env", cfg.ServiceEnv.Env),
		)
		global = lg.Sugar()
	})
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func logger() *zap.SugaredLogger {
	if global == nil {
		Init(&LogConfig{LogLevel: "info"})
	}
	return global
}

func Close() {
	if global != nil {
		_ = global.Sync()
	}
}

func Debugf(ctx context.Context, format string, args ...any) {
	withRequestID(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	withRequestID(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	withRequestID(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	withRequestID(ctx).Errorf(format, args...)
}

func withRequestID(ctx context.Context) *zap.SugaredLogger {
	l := logger()
	if ctx == nil {
		return l
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return l.With("request_id", id)
	}
	return l
}
