package common

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a console zap logger writing to w (stderr when nil).
// Development mode logs at debug with colored levels and caller info;
// otherwise only warnings and errors are shown.
func NewLogger(development bool, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.WarnLevel
	var opts []zap.Option
	if development {
		level = zap.DebugLevel
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		opts = append(opts, zap.AddCaller())
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	if w == nil {
		w = os.Stderr
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core, opts...)
}
