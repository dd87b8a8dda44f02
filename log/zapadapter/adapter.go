// Package zapadapter provides a logger that writes to a go.uber.org/zap.Logger.
package zapadapter

import (
	"context"

	"github.com/gaussdb-go/gaussdb"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	logger *zap.Logger
}

func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func (pl *Logger) Log(ctx context.Context, level gaussdb.LogLevel, msg string, data map[string]any) {
	fields := make([]zapcore.Field, len(data))
	i := 0
	for k, v := range data {
		fields[i] = zap.Any(k, v)
		i++
	}

	switch level {
	case gaussdb.LogLevelTrace:
		pl.logger.Debug(msg, append(fields, zap.Stringer("GAUSSDB_LOG_LEVEL", level))...)
	case gaussdb.LogLevelDebug:
		pl.logger.Debug(msg, fields...)
	case gaussdb.LogLevelInfo:
		pl.logger.Info(msg, fields...)
	case gaussdb.LogLevelWarn:
		pl.logger.Warn(msg, fields...)
	case gaussdb.LogLevelError:
		pl.logger.Error(msg, fields...)
	default:
		pl.logger.Error(msg, append(fields, zap.Int("INVALID_GAUSSDB_LOG_LEVEL", int(level)))...)
	}
}
