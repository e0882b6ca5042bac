package logger

import "math"

// Standard log levels, from the most important to the least important.
// Any int is a valid level; these are the ones with their own methods.
const (
	LevelError   = 10
	LevelWarning = 20
	LevelInfo    = 30
	LevelDebug   = 40
	LevelTrace   = 50
)

// DefaultMaxLevel is the max level of a Logger created without WithMaxLevel.
const DefaultMaxLevel = LevelInfo

// Keys of the fields produced by the default mappers.
const (
	NameKey       = "logger-name"
	ErrorKey      = "error"
	StackTraceKey = "stacktrace"
	CallerKey     = "caller"
)

const (
	emptyString   = ""
	nameSeparator = ":"
	nilErrorValue = "<nil>"

	// No level is less than or equal to it.
	callerDisabled = math.MinInt

	// Frames between the application call site and stacktrace.CaptureCaller:
	// log, then the exported method or the ErrorLogger closure.
	callerSkip = 2
)
