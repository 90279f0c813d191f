package logger

import (
	"go.uber.org/zap"
)

// Package-level logger. No-op until Init so library code and tests
// can log without configuring anything.
var log = zap.NewNop()

func Init() {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		panic("logger: " + err.Error())
	}

	log = l
	log.Info("logger initialized")
}

func Info(msg string, fields map[string]any) {
	log.Info(msg, toZap(fields)...)
}

func Warn(msg string, fields map[string]any) {
	log.Warn(msg, toZap(fields)...)
}

func Error(msg string, fields map[string]any) {
	log.Error(msg, toZap(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	log.Fatal(msg, toZap(fields)...)
}

func toZap(fields map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}
