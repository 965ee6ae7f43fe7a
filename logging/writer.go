package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// getWriteSyncer builds the output sink: a lumberjack-rotated file under
// config.Director, optionally teed to stdout. An empty Director means
// terminal only.
func getWriteSyncer(config Config) zapcore.WriteSyncer {
	if config.Director == "" {
		return zapcore.AddSync(os.Stdout)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(config.Director, "resolution.log"),
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
		LocalTime:  true,
	}

	if config.LogInTerminal {
		return zapcore.NewMultiWriteSyncer(
			zapcore.AddSync(os.Stdout),
			zapcore.AddSync(fileWriter),
		)
	}
	return zapcore.AddSync(fileWriter)
}
