package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing human-readable debug output to w.
// When verbose is false the logger discards everything.
func New(verbose bool, w io.Writer) *zap.SugaredLogger {
	if !verbose || w == nil {
		return zap.NewNop().Sugar()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core).Sugar()
}
