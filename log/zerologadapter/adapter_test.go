package zerologadapter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/gaussdb-go/gaussdb"
	"github.com/gaussdb-go/gaussdb/log/zerologadapter"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		var buf bytes.Buffer
		zlogger := zerolog.New(&buf)
		logger := zerologadapter.NewLogger(zlogger)
		logger.Log(context.Background(), gaussdb.LogLevelInfo, "hello", map[string]any{"one": "two"})
		const want = `{"level":"info","module":"gaussdb","one":"two","message":"hello"}
`
		assert.Equal(t, want, buf.String())
	})

	t.Run("disable module", func(t *testing.T) {
		var buf bytes.Buffer
		zlogger := zerolog.New(&buf)
		logger := zerologadapter.NewLogger(zlogger, zerologadapter.WithoutModule())
		logger.Log(context.Background(), gaussdb.LogLevelWarn, "hello", nil)
		const want = `{"level":"warn","message":"hello"}
`
		assert.Equal(t, want, buf.String())
	})

	t.Run("from context", func(t *testing.T) {
		var buf bytes.Buffer
		zlogger := zerolog.New(&buf)
		ctx := zlogger.WithContext(context.Background())
		logger := zerologadapter.NewContextLogger()
		logger.Log(ctx, gaussdb.LogLevelInfo, "hello", map[string]any{"one": "two"})
		const want = `{"level":"info","module":"gaussdb","one":"two","message":"hello"}
`
		assert.Equal(t, want, buf.String())
	})

	var buf bytes.Buffer
	type key string
	var ck key
	zlogger := zerolog.New(&buf)
	logger := zerologadapter.NewLogger(zlogger,
		zerologadapter.WithContextFunc(func(ctx context.Context, logWith zerolog.Context) zerolog.Context {
			id, ok := ctx.Value(ck).(string)
			if ok {
				logWith = logWith.Str("req_id", id)
			}
			return logWith
		}),
	)

	t.Run("no request id", func(t *testing.T) {
		buf.Reset()
		logger.Log(context.Background(), gaussdb.LogLevelInfo, "hello", nil)
		const want = `{"level":"info","module":"gaussdb","message":"hello"}
`
		assert.Equal(t, want, buf.String())
	})

	t.Run("with request id", func(t *testing.T) {
		buf.Reset()
		ctx := context.WithValue(context.Background(), ck, "1")
		logger.Log(ctx, gaussdb.LogLevelInfo, "hello", map[string]any{"two": "2"})
		const want = `{"level":"info","module":"gaussdb","req_id":"1","two":"2","message":"hello"}
`
		assert.Equal(t, want, buf.String())
	})
}
