// Package slogadapter bridges logger.Logger to the standard log/slog.
package slogadapter

import (
	"context"
	"log/slog"

	"github.com/Station-Manager/logger"
	"github.com/Station-Manager/logger/fields"
)

// LevelTrace is the slog level LevelTrace maps to by default.
const LevelTrace = slog.LevelDebug - 4

// LevelMapper maps a logger level to a slog level. It returns false for
// levels it does not know.
type LevelMapper func(level int) (slog.Level, bool)

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

// Adapter of slog logger for logger.Logger.
type Adapter struct {
	lgr         *slog.Logger
	levelMapper LevelMapper
}

var _ logger.Adapter = (*Adapter)(nil)

// New creates a logging adapter using the provided slog.Logger.
//
// Note, that by the contract of logger.Logger, the adapter does not filter
// by level: configure the handler with LevelTrace as its minimum level.
func New(lgr *slog.Logger, opts ...Option) *Adapter {
	a := &Adapter{
		lgr:         lgr,
		levelMapper: DefaultLevelMapper,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// DefaultLevelMapper maps the stock logger levels to slog levels.
func DefaultLevelMapper(level int) (slog.Level, bool) {
	switch level {
	case logger.LevelError:
		return slog.LevelError, true
	case logger.LevelWarning:
		return slog.LevelWarn, true
	case logger.LevelInfo:
		return slog.LevelInfo, true
	case logger.LevelDebug:
		return slog.LevelDebug, true
	case logger.LevelTrace:
		return LevelTrace, true
	default:
		return slog.LevelInfo, false
	}
}

func (a *Adapter) Log(level int, msg string, fs ...fields.Field) {
	sl, ok := a.levelMapper(level)
	if !ok {
		a.lgr.LogAttrs(context.Background(), slog.LevelWarn, "unknown log level", slog.Int("got-level", level))
		sl = slog.LevelInfo
	}

	a.lgr.LogAttrs(context.Background(), sl, msg, attrs(fs)...)
}

func (a *Adapter) WithFields(fs ...fields.Field) logger.Adapter {
	return &Adapter{
		lgr:         slog.New(a.lgr.Handler().WithAttrs(attrs(fs))),
		levelMapper: a.levelMapper,
	}
}

// Flush is a no-op, slog handlers have no flush primitive.
func (*Adapter) Flush() error {
	return nil
}

func attrs(fs fields.List) []slog.Attr {
	if len(fs) == 0 {
		return nil
	}

	out := make([]slog.Attr, 0, len(fs))
	for _, f := range fs {
		out = append(out, slog.Any(f.K, f.V))
	}

	return out
}
