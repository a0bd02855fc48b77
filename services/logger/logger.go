package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel chuyển chuỗi cấu hình thành Level, mặc định là InfoLevel
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// ZapLogger implement Logger interface trên nền zap
type ZapLogger struct {
	sugar *zap.SugaredLogger
	base  *zap.Logger
}

// NewZapLogger tạo logger; format "console" cho môi trường dev, còn lại là JSON
func NewZapLogger(level Level, format string, serviceName string) (*ZapLogger, error) {
	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}
	cfg.Level = zap.NewAtomicLevelAt(toZapLevel(level))

	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if serviceName != "" {
		base = base.With(zap.String("service_name", serviceName))
	}
	return FromZap(base), nil
}

// FromZap bọc một *zap.Logger có sẵn
func FromZap(base *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: base.Sugar(), base: base}
}

// NewNop trả về logger không ghi gì, dùng trong test
func NewNop() *ZapLogger {
	return FromZap(zap.NewNop())
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Zap trả về *zap.Logger gốc cho các middleware cần field có cấu trúc
func (l *ZapLogger) Zap() *zap.Logger {
	return l.base
}

// Info log thông tin
func (l *ZapLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Error log lỗi
func (l *ZapLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Debug log debug
func (l *ZapLogger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Sync flush buffer trước khi thoát
func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}
