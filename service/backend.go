package service

import (
	"io"
	"log/slog"

	"github.com/Station-Manager/logger"
	"github.com/Station-Manager/logger/logrusadapter"
	"github.com/Station-Manager/logger/slogadapter"
	"github.com/Station-Manager/logger/zapadapter"
	"github.com/Station-Manager/logger/zerologadapter"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newAdapter builds the configured backend on top of w. Backends are kept
// at their most verbose level, logger.Logger does the filtering.
func (s *Service) newAdapter(w io.Writer) logger.Adapter {
	switch s.backend() {
	case BackendZap:
		return newZapAdapter(w, s.Config.WithTimestamp)
	case BackendLogrus:
		return newLogrusAdapter(w, s.Config.WithTimestamp)
	case BackendSlog:
		return newSlogAdapter(w, s.Config.WithTimestamp)
	default:
		return newZerologAdapter(w, s.Config.WithTimestamp)
	}
}

func newZerologAdapter(w io.Writer, withTimestamp bool) logger.Adapter {
	zl := zerolog.New(w).Level(zerolog.TraceLevel)
	if withTimestamp {
		zl = zl.With().Timestamp().Logger()
	}

	return zerologadapter.New(zl)
}

func newZapAdapter(w io.Writer, withTimestamp bool) logger.Adapter {
	encCfg := zap.NewProductionEncoderConfig()
	if !withTimestamp {
		encCfg.TimeKey = emptyString
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)

	return zapadapter.New(zap.New(core))
}

func newLogrusAdapter(w io.Writer, withTimestamp bool) logger.Adapter {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.TraceLevel)
	l.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: !withTimestamp})

	return logrusadapter.New(logrus.NewEntry(l))
}

func newSlogAdapter(w io.Writer, withTimestamp bool) logger.Adapter {
	opts := &slog.HandlerOptions{Level: slogadapter.LevelTrace}
	if !withTimestamp {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		}
	}

	return slogadapter.New(slog.New(slog.NewJSONHandler(w, opts)))
}
