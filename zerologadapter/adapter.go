// Package zerologadapter bridges logger.Logger to rs/zerolog.
package zerologadapter

import (
	"github.com/Station-Manager/logger"
	"github.com/Station-Manager/logger/fields"
	"github.com/rs/zerolog"
)

// LevelMapper maps a logger level to a zerolog level. It returns false for
// levels it does not know.
type LevelMapper func(level int) (zerolog.Level, bool)

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

// WithFlusher sets the function called by Flush, e.g. the Sync method of
// the file zerolog writes to.
func WithFlusher(f func() error) Option {
	return func(a *Adapter) {
		a.flush = f
	}
}

// Adapter of zerolog logger for logger.Logger.
type Adapter struct {
	lgr         zerolog.Logger
	levelMapper LevelMapper
	flush       func() error
}

var _ logger.Adapter = (*Adapter)(nil)

// New creates a logging adapter using the provided zerolog.Logger.
//
// Note, that by the contract of logger.Logger, the adapter does not filter
// by level: keep the zerolog logger at its most verbose level and let
// logger.Logger do the filtering.
func New(lgr zerolog.Logger, opts ...Option) *Adapter {
	a := &Adapter{
		lgr:         lgr,
		levelMapper: DefaultLevelMapper,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// DefaultLevelMapper maps the stock logger levels to their zerolog
// counterparts.
func DefaultLevelMapper(level int) (zerolog.Level, bool) {
	switch level {
	case logger.LevelError:
		return zerolog.ErrorLevel, true
	case logger.LevelWarning:
		return zerolog.WarnLevel, true
	case logger.LevelInfo:
		return zerolog.InfoLevel, true
	case logger.LevelDebug:
		return zerolog.DebugLevel, true
	case logger.LevelTrace:
		return zerolog.TraceLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

func (a *Adapter) Log(level int, msg string, fs ...fields.Field) {
	zl, ok := a.levelMapper(level)
	if !ok {
		a.lgr.Warn().Int("got-level", level).Msg("unknown log level")
		zl = zerolog.InfoLevel
	}

	e := a.lgr.WithLevel(zl)
	if len(fs) > 0 {
		e = e.Fields(keyValues(fs))
	}

	e.Msg(msg)
}

func (a *Adapter) WithFields(fs ...fields.Field) logger.Adapter {
	return &Adapter{
		lgr:         a.lgr.With().Fields(keyValues(fs)).Logger(),
		levelMapper: a.levelMapper,
		flush:       a.flush,
	}
}

func (a *Adapter) Flush() error {
	if a.flush == nil {
		return nil
	}

	return a.flush()
}

// keyValues converts fields into the ordered key/value slice accepted by
// zerolog's Fields.
func keyValues(fs fields.List) []any {
	kv := make([]any, 0, len(fs)*2)
	for _, f := range fs {
		kv = append(kv, f.K, f.V)
	}

	return kv
}
