package log

import (
	"os"

	"github.com/chenkham/appfolio/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func InitZap(logName string) {

	var logger *zap.Logger

	if config.IsLocal() {
		logger = zap.New(
			getStandardCore(),
			zap.AddStacktrace(zap.WarnLevel),
			zap.AddCaller(),
			zap.Development(),
		)
	} else {
		logger = zap.New(
			getStandardCore(),
			zap.AddStacktrace(zap.WarnLevel),
			zap.AddCaller(),
		)
	}

	logger = logger.Named(logName)

	zap.ReplaceGlobals(logger)
}

func getStandardCore() zapcore.Core {

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	output := zapcore.Lock(os.Stdout)
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)

	return zapcore.NewCore(encoder, output, level)
}

func Flush() {
	_ = zap.L().Sync()
}
