package session

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.SugaredLogger to the session Logger interface.
type ZapLogger struct {
	log *zap.SugaredLogger
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger creates a structured JSON logger at the given level.
func NewZapLogger(level string) (*ZapLogger, error) {
	parsed := zapcore.InfoLevel
	if err := parsed.Set(strings.ToLower(level)); err != nil {
		parsed = zapcore.InfoLevel
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(parsed),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "message",
			LevelKey:   "level",
			TimeKey:    "ts",
			EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(l.String())
			},
			EncodeTime: zapcore.ISO8601TimeEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return &ZapLogger{log: logger.Sugar()}, nil
}

func (l *ZapLogger) Debug(format string, args ...any) { l.log.Debugw(format, args...) }
func (l *ZapLogger) Info(format string, args ...any) { l.log.Infow(format, args...) }
func (l *ZapLogger) Warn(format string, args ...any) { l.log.Warnw(format, args...) }
func (l *ZapLogger) Error(format string, args ...any) { l.log.Errorw(format, args...) }
