// Package logrusadapter bridges logger.Logger to sirupsen/logrus.
//
// logrus keeps fields in a map, so their order is not preserved and for
// duplicate keys the last one wins.
package logrusadapter

import (
	"github.com/Station-Manager/logger"
	"github.com/Station-Manager/logger/fields"
	"github.com/sirupsen/logrus"
)

// LevelMapper maps a logger level to a logrus level. It returns false for
// levels it does not know.
type LevelMapper func(level int) (logrus.Level, bool)

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

// Adapter of logrus logger for logger.Logger.
type Adapter struct {
	lgr         *logrus.Entry
	levelMapper LevelMapper
}

var _ logger.Adapter = (*Adapter)(nil)

// New creates a logging adapter using the provided logrus.Entry.
//
// Note, that by the contract of logger.Logger, the adapter does not filter
// by level: set the logrus logger to logrus.TraceLevel.
func New(lgr *logrus.Entry, opts ...Option) *Adapter {
	a := &Adapter{
		lgr:         lgr,
		levelMapper: DefaultLevelMapper,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// DefaultLevelMapper maps the stock logger levels to logrus levels.
func DefaultLevelMapper(level int) (logrus.Level, bool) {
	switch level {
	case logger.LevelError:
		return logrus.ErrorLevel, true
	case logger.LevelWarning:
		return logrus.WarnLevel, true
	case logger.LevelInfo:
		return logrus.InfoLevel, true
	case logger.LevelDebug:
		return logrus.DebugLevel, true
	case logger.LevelTrace:
		return logrus.TraceLevel, true
	default:
		return logrus.InfoLevel, false
	}
}

func (a *Adapter) Log(level int, msg string, fs ...fields.Field) {
	ll, ok := a.levelMapper(level)
	if !ok {
		a.lgr.WithField("got-level", level).Warn("unknown log level")
		ll = logrus.InfoLevel
	}

	lgr := a.lgr
	if len(fs) > 0 {
		lgr = lgr.WithFields(logrusFields(fs))
	}

	lgr.Log(ll, msg)
}

func (a *Adapter) WithFields(fs ...fields.Field) logger.Adapter {
	return &Adapter{
		lgr:         a.lgr.WithFields(logrusFields(fs)),
		levelMapper: a.levelMapper,
	}
}

// Flush is a no-op, logrus writes synchronously.
func (*Adapter) Flush() error {
	return nil
}

func logrusFields(fs fields.List) logrus.Fields {
	lfs := make(logrus.Fields, len(fs))
	for _, f := range fs {
		lfs[f.K] = f.V
	}

	return lfs
}
