package logrusadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/gaussdb-go/gaussdb"
	"github.com/gaussdb-go/gaussdb/log/logrusadapter"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogrus(buf *bytes.Buffer) *logrus.Logger {
	l := logrus.New()
	l.Out = buf
	l.Formatter = &logrus.JSONFormatter{DisableTimestamp: true}
	l.Level = logrus.DebugLevel
	return l
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		level     gaussdb.LogLevel
		wantLevel string
		wantField string
	}{
		{gaussdb.LogLevelTrace, "debug", "GAUSSDB_LOG_LEVEL"},
		{gaussdb.LogLevelDebug, "debug", ""},
		{gaussdb.LogLevelInfo, "info", ""},
		{gaussdb.LogLevelWarn, "warning", ""},
		{gaussdb.LogLevelError, "error", ""},
		{gaussdb.LogLevel(42), "error", "INVALID_GAUSSDB_LOG_LEVEL"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := logrusadapter.NewLogger(newLogrus(&buf))
		logger.Log(context.Background(), tt.level, "type lookup", map[string]any{"type": "mood"})

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "%v", tt.level)
		assert.Equal(t, tt.wantLevel, entry["level"], "%v", tt.level)
		assert.Equal(t, "type lookup", entry["msg"])
		assert.Equal(t, "mood", entry["type"])
		if tt.wantField != "" {
			assert.Contains(t, entry, tt.wantField)
		}
	}
}

func TestLoggerNilData(t *testing.T) {
	var buf bytes.Buffer
	logger := logrusadapter.NewLogger(newLogrus(&buf))
	logger.Log(context.Background(), gaussdb.LogLevelInfo, "reset", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, map[string]any{"level": "info", "msg": "reset"}, entry)
}
