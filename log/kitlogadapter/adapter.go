package kitlogadapter

import (
	"context"

	"github.com/gaussdb-go/gaussdb"
	"github.com/go-kit/log"
	kitlevel "github.com/go-kit/log/level"
)

type Logger struct {
	l log.Logger
}

func NewLogger(l log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level gaussdb.LogLevel, msg string, data map[string]any) {
	logger := l.l
	for k, v := range data {
		logger = log.With(logger, k, v)
	}

	switch level {
	case gaussdb.LogLevelTrace:
		logger.Log("GAUSSDB_LOG_LEVEL", level, "msg", msg)
	case gaussdb.LogLevelDebug:
		kitlevel.Debug(logger).Log("msg", msg)
	case gaussdb.LogLevelInfo:
		kitlevel.Info(logger).Log("msg", msg)
	case gaussdb.LogLevelWarn:
		kitlevel.Warn(logger).Log("msg", msg)
	case gaussdb.LogLevelError:
		kitlevel.Error(logger).Log("msg", msg)
	default:
		logger.Log("INVALID_GAUSSDB_LOG_LEVEL", int(level), "error", msg)
	}
}
