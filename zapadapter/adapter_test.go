package zapadapter_test

import (
	"errors"
	"testing"

	"github.com/Station-Manager/logger"
	"github.com/Station-Manager/logger/fields"
	"github.com/Station-Manager/logger/zapadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type discardingWriter struct{}

func (*discardingWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func (*discardingWriter) Sync() (err error) {
	return nil
}

func zapLogger() (*zap.Logger, *observer.ObservedLogs) {
	discardingCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		&discardingWriter{},
		zapcore.DebugLevel,
	)

	testCore, logs := observer.New(zapcore.DebugLevel)

	return zap.New(zapcore.NewTee(discardingCore, testCore)), logs
}

func newAdapter(opts ...zapadapter.Option) (logger.Adapter, *observer.ObservedLogs) {
	lgr, logs := zapLogger()

	return zapadapter.New(lgr, opts...), logs
}

func TestAdapter(t *testing.T) {
	t.Run(".Log()", func(t *testing.T) {
		adapter, logs := newAdapter()

		adapter.Log(42, "foo")

		require.Equal(t, 2, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
		assert.Equal(t, int64(42), logs.All()[0].ContextMap()["got-level"])
		assert.Equal(t, zapcore.InfoLevel, logs.All()[1].Level)
		assert.Equal(t, "foo", logs.All()[1].Message)

		tt := []struct {
			level    int
			zapLevel zapcore.Level
			msg      string
		}{
			{logger.LevelDebug, zapcore.DebugLevel, "debug"},
			{logger.LevelInfo, zapcore.InfoLevel, "info"},
			{logger.LevelWarning, zapcore.WarnLevel, "warning"},
			{logger.LevelError, zapcore.ErrorLevel, "error"},
			{logger.LevelTrace, zapcore.DebugLevel, "trace"},
		}

		for _, tc := range tt {
			logs.TakeAll()

			adapter.Log(tc.level, tc.msg, fields.F("k", tc.msg))

			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tc.zapLevel, logs.All()[0].Level)
			assert.Equal(t, tc.msg, logs.All()[0].Message)
			assert.Equal(t, tc.msg, logs.All()[0].ContextMap()["k"])
		}
	})

	t.Run(".WithFields()", func(t *testing.T) {
		src, logs := newAdapter()
		adapter := src.WithFields(fields.F("foo", "bar"), fields.F("baz", 42))

		adapter.Log(logger.LevelInfo, "test")
		adapter.Log(logger.LevelDebug, "test", fields.F("bux", "qux"))
		src.Log(logger.LevelInfo, "parent")

		require.Equal(t, 3, logs.Len())

		assert.Equal(t, "bar", logs.All()[0].ContextMap()["foo"])
		assert.Equal(t, int64(42), logs.All()[0].ContextMap()["baz"])

		assert.Equal(t, "bar", logs.All()[1].ContextMap()["foo"])
		assert.Equal(t, "qux", logs.All()[1].ContextMap()["bux"])

		assert.NotContains(t, logs.All()[2].ContextMap(), "foo")
	})

	t.Run("custom level mapper", func(t *testing.T) {
		adapter, logs := newAdapter(zapadapter.WithLevelMapper(func(level int) (zapcore.Level, bool) {
			if level == logger.LevelTrace {
				return zapcore.DebugLevel - 1, true
			}
			return zapadapter.DefaultLevelMapper(level)
		}))

		adapter.Log(logger.LevelTrace, "trace")

		require.Equal(t, 0, logs.Len(), "below the core's debug level")
	})

	t.Run(".Flush()", func(t *testing.T) {
		adapter, _ := newAdapter()
		assert.NoError(t, adapter.Flush())
	})

	t.Run("NewErrorLogger()", func(t *testing.T) {
		adapter, logs := newAdapter()
		lgr := logger.New(adapter, logger.WithMaxLevel(logger.LevelError))
		errorLogger := logger.NewErrorLogger(lgr, logger.LevelError)

		errorLogger("test", errors.New("test"))

		require.Equal(t, 1, logs.Len())

		assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
		assert.Equal(t, "test", logs.All()[0].Message)
		assert.Equal(t, "test", logs.All()[0].ContextMap()["error"])
	})
}
