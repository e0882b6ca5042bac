// Package zapadapter bridges logger.Logger to go.uber.org/zap.
package zapadapter

import (
	"github.com/Station-Manager/logger"
	"github.com/Station-Manager/logger/fields"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelMapper maps a logger level to a zap level. It returns false for
// levels it does not know.
type LevelMapper func(level int) (zapcore.Level, bool)

// Option configures an Adapter.
type Option func(*Adapter)

// WithLevelMapper replaces DefaultLevelMapper.
func WithLevelMapper(m LevelMapper) Option {
	return func(a *Adapter) {
		if m != nil {
			a.levelMapper = m
		}
	}
}

// Adapter of zap logger for logger.Logger.
//
// zap has no trace level, LevelTrace is written as debug.
type Adapter struct {
	lgr         *zap.Logger
	levelMapper LevelMapper
}

var _ logger.Adapter = (*Adapter)(nil)

// New creates a logging adapter using the provided zap.Logger.
//
// Note, that by the contract of logger.Logger, the adapter does not filter
// by level: build the zap core with zapcore.DebugLevel.
func New(lgr *zap.Logger, opts ...Option) *Adapter {
	a := &Adapter{
		lgr:         lgr,
		levelMapper: DefaultLevelMapper,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// DefaultLevelMapper maps the stock logger levels to zap levels.
func DefaultLevelMapper(level int) (zapcore.Level, bool) {
	switch level {
	case logger.LevelError:
		return zapcore.ErrorLevel, true
	case logger.LevelWarning:
		return zapcore.WarnLevel, true
	case logger.LevelInfo:
		return zapcore.InfoLevel, true
	case logger.LevelDebug, logger.LevelTrace:
		return zapcore.DebugLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

func (a *Adapter) Log(level int, msg string, fs ...fields.Field) {
	zl, ok := a.levelMapper(level)
	if !ok {
		a.lgr.Warn("unknown log level", zap.Int("got-level", level))
		zl = zapcore.InfoLevel
	}

	a.lgr.Log(zl, msg, zapFields(fs)...)
}

func (a *Adapter) WithFields(fs ...fields.Field) logger.Adapter {
	return &Adapter{
		lgr:         a.lgr.With(zapFields(fs)...),
		levelMapper: a.levelMapper,
	}
}

// Flush syncs the zap core.
func (a *Adapter) Flush() error {
	return a.lgr.Sync() //nolint:wrapcheck
}

func zapFields(fs fields.List) []zap.Field {
	if len(fs) == 0 {
		return nil
	}

	zfs := make([]zap.Field, 0, len(fs))
	for _, f := range fs {
		zfs = append(zfs, zap.Any(f.K, f.V))
	}

	return zfs
}
