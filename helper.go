package logger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Station-Manager/logger/fields"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised level names.
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel parses a level name (case-insensitive): error, warn, warning,
// info, debug or trace.
func ParseLevel(level string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// LevelString returns the name of a standard level, or "level(N)" for a
// custom one.
func LevelString(level int) string {
	switch level {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "level(" + strconv.Itoa(level) + ")"
	}
}

// ErrorLogger logs a message with an error at a level fixed when it was
// created.
type ErrorLogger func(msg string, err error, fs ...fields.Field)

// NewErrorLogger creates an ErrorLogger that logs through lgr with the given
// level.
//
// It is most useful where the level is configured after the logger is
// created, such as in middlewares.
func NewErrorLogger(lgr Logger, level int) ErrorLogger {
	return func(msg string, err error, fs ...fields.Field) {
		lgr.log(callerSkip, level, msg, err, fs)
	}
}
