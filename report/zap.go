package report

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Zap sends reports to a structured logger. Success has no level of its own, so
// it is logged at info with an outcome field.
type Zap struct {
	logger *zap.Logger
}

func NewZap(logger *zap.Logger) *Zap {
	return &Zap{logger: logger}
}

func (z *Zap) Report(message string, severity Severity) {
	field := zap.Stringer("severity", severity)
	switch severity {
	case Success:
		z.logger.Info(message, field, zap.String("outcome", "success"))
	case Warning:
		z.logger.Warn(message, field)
	case Error:
		z.logger.Error(message, field)
	default:
		z.logger.Info(message, field)
	}
}

// Sync flushes the underlying logger. The error is dropped, since syncing a
// terminal fails on some platforms for no useful reason.
func (z *Zap) Sync() {
	_ = z.logger.Sync()
}

// FileLogger builds a JSON logger that writes to a rotated file.
func FileLogger(path string, maxSizeMB int) *zap.Logger {
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
	})
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, writer, zap.InfoLevel))
}
