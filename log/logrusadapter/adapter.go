// Package logrusadapter provides a logger that writes to a github.com/sirupsen/logrus.Logger
// log.
package logrusadapter

import (
	"context"

	"github.com/gaussdb-go/gaussdb"
	"github.com/sirupsen/logrus"
)

type Logger struct {
	l logrus.FieldLogger
}

func NewLogger(l logrus.FieldLogger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level gaussdb.LogLevel, msg string, data map[string]any) {
	var logger logrus.FieldLogger
	if data != nil {
		logger = l.l.WithFields(data)
	} else {
		logger = l.l
	}

	switch level {
	case gaussdb.LogLevelTrace:
		logger.WithField("GAUSSDB_LOG_LEVEL", level.String()).Debug(msg)
	case gaussdb.LogLevelDebug:
		logger.Debug(msg)
	case gaussdb.LogLevelInfo:
		logger.Info(msg)
	case gaussdb.LogLevelWarn:
		logger.Warn(msg)
	case gaussdb.LogLevelError:
		logger.Error(msg)
	default:
		logger.WithField("INVALID_GAUSSDB_LOG_LEVEL", int(level)).Error(msg)
	}
}
