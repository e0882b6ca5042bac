package logger

import (
	"fmt"
	"reflect"

	"github.com/Station-Manager/logger/fields"
	"github.com/Station-Manager/logger/stacktrace"
)

// NameMapper converts a logger name into a field.
type NameMapper func(name string) fields.Field

// ErrorMapper converts a non-nil error into a field.
type ErrorMapper func(err error) fields.Field

// StackTraceMapper converts a captured stack into a field.
type StackTraceMapper func(stack stacktrace.Stack) fields.Field

// CallerMapper converts the call-site frame into a field.
type CallerMapper func(frame stacktrace.Frame) fields.Field

// NameFormatter combines the current logger name with a new one.
type NameFormatter func(prev, next string) string

// mappers is created once by New and shared, never modified, by every
// logger derived from it.
type mappers struct {
	name       NameMapper
	err        ErrorMapper
	stackTrace StackTraceMapper
	caller     CallerMapper
}

type config struct {
	maxLevel       int
	callerMaxLevel int
	nameFormatter  NameFormatter
	mappers        mappers
}

// Option configures a Logger created by New.
type Option func(*config)

// WithMaxLevel sets the least important level that is still emitted.
// The default is LevelInfo.
func WithMaxLevel(level int) Option {
	return func(c *config) {
		c.maxLevel = level
	}
}

// WithCallerAtLevel enables call-site capture for every record whose level
// is level or more important. Capture is disabled by default.
func WithCallerAtLevel(level int) Option {
	return func(c *config) {
		c.callerMaxLevel = level
	}
}

// WithNameMapper overrides DefaultNameMapper.
func WithNameMapper(m NameMapper) Option {
	return func(c *config) {
		if m != nil {
			c.mappers.name = m
		}
	}
}

// WithNameFormatter overrides HierarchicalNameFormatter.
func WithNameFormatter(f NameFormatter) Option {
	return func(c *config) {
		if f != nil {
			c.nameFormatter = f
		}
	}
}

// WithErrorMapper overrides DefaultErrorMapper. The mapper is invoked under
// a recover guard, a panicking mapper yields a placeholder error field.
func WithErrorMapper(m ErrorMapper) Option {
	return func(c *config) {
		if m != nil {
			c.mappers.err = m
		}
	}
}

// WithStackTraceMapper overrides DefaultStackTraceMapper.
func WithStackTraceMapper(m StackTraceMapper) Option {
	return func(c *config) {
		if m != nil {
			c.mappers.stackTrace = m
		}
	}
}

// WithCallerMapper overrides DefaultCallerMapper.
func WithCallerMapper(m CallerMapper) Option {
	return func(c *config) {
		if m != nil {
			c.mappers.caller = m
		}
	}
}

func defaultConfig() config {
	return config{
		maxLevel:       DefaultMaxLevel,
		callerMaxLevel: callerDisabled,
		nameFormatter:  HierarchicalNameFormatter,
		mappers: mappers{
			name:       DefaultNameMapper,
			err:        DefaultErrorMapper,
			stackTrace: DefaultStackTraceMapper,
			caller:     DefaultCallerMapper,
		},
	}
}

// DefaultNameMapper renders the name under NameKey.
func DefaultNameMapper(name string) fields.Field {
	return fields.F(NameKey, name)
}

// DefaultErrorMapper renders err.Error() under ErrorKey.
//
// A panic raised by Error() is recovered: a nil pointer receiver (the typed
// nil interface case) renders as "<nil>", anything else as "<PANIC=...>".
func DefaultErrorMapper(err error) fields.Field {
	return fields.F(ErrorKey, ErrorString(err))
}

// DefaultStackTraceMapper renders the stack under StackTraceKey.
func DefaultStackTraceMapper(stack stacktrace.Stack) fields.Field {
	return fields.F(StackTraceKey, stack.String())
}

// DefaultCallerMapper renders the frame as "path:line" under CallerKey.
func DefaultCallerMapper(frame stacktrace.Frame) fields.Field {
	return fields.F(CallerKey, frame.String())
}

// HierarchicalNameFormatter joins names with a colon: "db" then "pool"
// gives "db:pool". An empty previous name yields next unchanged.
func HierarchicalNameFormatter(prev, next string) string {
	if prev == emptyString {
		return next
	}

	return prev + nameSeparator + next
}

// ReplaceNameFormatter discards the previous name.
func ReplaceNameFormatter(_, next string) string {
	return next
}

// ErrorString returns err.Error(), recovering from a panic inside it.
func ErrorString(err error) (s string) {
	if err == nil {
		return nilErrorValue
	}

	defer func() {
		if r := recover(); r != nil {
			s = panicPlaceholder(err, r)
		}
	}()

	return err.Error()
}

func panicPlaceholder(err error, r any) string {
	if v := reflect.ValueOf(err); v.Kind() == reflect.Pointer && v.IsNil() {
		return nilErrorValue
	}

	return fmt.Sprintf("<PANIC=%v>", r)
}
