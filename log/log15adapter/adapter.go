// Package log15adapter provides a logger that writes to a github.com/inconshreveable/log15.Logger
// log.
package log15adapter

import (
	"context"
	"sort"

	"github.com/gaussdb-go/gaussdb"
)

// Log15Logger interface defines the subset of
// github.com/inconshreveable/log15.Logger that this adapter uses.
type Log15Logger interface {
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Crit(msg string, ctx ...any)
}

type Logger struct {
	l Log15Logger
}

func NewLogger(l Log15Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level gaussdb.LogLevel, msg string, data map[string]any) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	logCtx := make([]any, 0, 2*len(data)+2)
	for _, k := range keys {
		logCtx = append(logCtx, k, data[k])
	}

	switch level {
	case gaussdb.LogLevelTrace:
		l.l.Debug(msg, append(logCtx, "GAUSSDB_LOG_LEVEL", level)...)
	case gaussdb.LogLevelDebug:
		l.l.Debug(msg, logCtx...)
	case gaussdb.LogLevelInfo:
		l.l.Info(msg, logCtx...)
	case gaussdb.LogLevelWarn:
		l.l.Warn(msg, logCtx...)
	case gaussdb.LogLevelError:
		l.l.Error(msg, logCtx...)
	default:
		l.l.Error(msg, append(logCtx, "INVALID_GAUSSDB_LOG_LEVEL", level)...)
	}
}
