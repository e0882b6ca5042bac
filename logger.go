package logger

import (
	"math"
	"reflect"

	"github.com/Station-Manager/logger/fields"
	"github.com/Station-Manager/logger/stacktrace"
)

// Logger is the logging facade. It is a small value that is never modified
// after construction: every With* method returns a new Logger, so a Logger
// can be shared between goroutines as long as its adapter is safe for
// concurrent use.
//
// Use New or NewNop to create one. A zero Logger must not be used for
// logging; IsZero reports that case.
type Logger struct {
	// maxLevel is the least important level that is passed to the adapter.
	// Levels are ordered from the most important to the least important, so
	// a record is dropped when its level is greater than maxLevel.
	maxLevel int

	// callerMaxLevel is the least important level that gets a caller field.
	callerMaxLevel int

	adapter       Adapter
	mappers       *mappers
	name          string
	nameFormatter NameFormatter

	// nop is set by NewNop only, to tell a no-op Logger from a zero one.
	nop bool
}

// New creates a Logger on top of adapter.
//
// It panics if adapter is nil; use NewNop when logging must be disabled.
func New(adapter Adapter, opts ...Option) Logger {
	if adapter == nil {
		panic("logger: New called with nil adapter, use NewNop for a disabled logger")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := cfg.mappers

	return Logger{
		maxLevel:       cfg.maxLevel,
		callerMaxLevel: cfg.callerMaxLevel,
		adapter:        adapter,
		mappers:        &m,
		nameFormatter:  cfg.nameFormatter,
	}
}

// NewNop creates a Logger that does nothing, whatever method is called.
func NewNop() Logger {
	return Logger{
		maxLevel:       math.MaxInt,
		callerMaxLevel: callerDisabled,
		nop:            true,
	}
}

// IsNop reports whether the logger does nothing.
func (l Logger) IsNop() bool {
	return l.adapter == nil
}

// IsZero reports whether the logger was never constructed by New or NewNop.
func (l Logger) IsZero() bool {
	return l.adapter == nil && !l.nop
}

// Error logs a message with the LevelError level.
//
// Use Error for failures the application cannot recover from, such as a
// failed database write. It's OK to pass a nil error.
func (l Logger) Error(msg string, err error, fs ...fields.Field) {
	l.log(callerSkip, LevelError, msg, err, fs)
}

// Warning logs a message with the LevelWarning level.
func (l Logger) Warning(msg string, fs ...fields.Field) {
	l.log(callerSkip, LevelWarning, msg, nil, fs)
}

// WarningE logs a message with the LevelWarning level and an error.
//
// Use it for recoverable errors, e.g. a remote call that will be retried.
func (l Logger) WarningE(msg string, err error, fs ...fields.Field) {
	l.log(callerSkip, LevelWarning, msg, err, fs)
}

// Info logs a message with the LevelInfo level.
func (l Logger) Info(msg string, fs ...fields.Field) {
	l.log(callerSkip, LevelInfo, msg, nil, fs)
}

// InfoE logs a message with the LevelInfo level and an error.
func (l Logger) InfoE(msg string, err error, fs ...fields.Field) {
	l.log(callerSkip, LevelInfo, msg, err, fs)
}

// Debug logs a message with the LevelDebug level.
func (l Logger) Debug(msg string, fs ...fields.Field) {
	l.log(callerSkip, LevelDebug, msg, nil, fs)
}

// DebugE logs a message with the LevelDebug level and an error.
func (l Logger) DebugE(msg string, err error, fs ...fields.Field) {
	l.log(callerSkip, LevelDebug, msg, err, fs)
}

// Trace logs a message with the LevelTrace level.
func (l Logger) Trace(msg string, fs ...fields.Field) {
	l.log(callerSkip, LevelTrace, msg, nil, fs)
}

// TraceE logs a message with the LevelTrace level and an error.
func (l Logger) TraceE(msg string, err error, fs ...fields.Field) {
	l.log(callerSkip, LevelTrace, msg, err, fs)
}

// Log logs a message with an arbitrary level, optional error and fields.
func (l Logger) Log(level int, msg string, err error, fs ...fields.Field) {
	l.log(callerSkip, level, msg, err, fs)
}

// log must be called directly by the exported logging methods; skip counts
// the frames up to the application call site.
func (l Logger) log(skip, level int, msg string, err error, fs []fields.Field) {
	if l.adapter == nil || level > l.maxLevel {
		return
	}

	withCaller := level <= l.callerMaxLevel
	withName := l.name != emptyString
	withErr := err != nil

	if !withCaller && !withName && !withErr {
		l.adapter.Log(level, msg, fs...)
		return
	}

	n := len(fs)
	for _, b := range [...]bool{withCaller, withName, withErr} {
		if b {
			n++
		}
	}

	all := make([]fields.Field, 0, n)

	if withCaller {
		all = append(all, l.mappers.caller(stacktrace.CaptureCaller(skip)))
	}

	if withName {
		all = append(all, l.mappers.name(l.name))
	}

	if withErr {
		all = append(all, l.errorField(err))
	}

	all = append(all, fs...)

	l.adapter.Log(level, msg, all...)
}

// errorField runs the error mapper, which may be user supplied, under a
// recover guard.
func (l Logger) errorField(err error) (f fields.Field) {
	defer func() {
		if r := recover(); r != nil {
			f = fields.F(ErrorKey, panicPlaceholder(err, r))
		}
	}()

	return l.mappers.err(err)
}

// WithFields returns a child logger that attaches fs to every record.
func (l Logger) WithFields(fs ...fields.Field) Logger {
	if l.adapter == nil || len(fs) == 0 {
		return l
	}

	//revive:disable-next-line:modifies-value-receiver
	l.adapter = l.adapter.WithFields(fs...)

	return l
}

// WithStackTrace returns a child logger with the current stack trace
// attached. The stack is captured now, not at every log call. skip of 0
// starts the trace at the caller of WithStackTrace.
func (l Logger) WithStackTrace(skip int) Logger {
	if l.adapter == nil {
		return l
	}

	stack := stacktrace.CaptureStack(skip+1, stacktrace.DefaultDepth)

	//revive:disable-next-line:modifies-value-receiver
	l.adapter = l.adapter.WithFields(l.mappers.stackTrace(stack))

	return l
}

// WithName returns a child logger whose name is the current name combined
// with name by the logger's NameFormatter. The name is rendered into a
// field at log time by the NameMapper.
func (l Logger) WithName(name string) Logger {
	if l.adapter == nil {
		return l
	}

	//revive:disable-next-line:modifies-value-receiver
	l.name = l.nameFormatter(l.name, name)

	return l
}

// Name returns the accumulated logger name.
func (l Logger) Name() string {
	return l.name
}

// MaxLevel returns the least important level the logger emits.
func (l Logger) MaxLevel() int {
	return l.maxLevel
}

// Enabled reports whether a record of the given level would be emitted.
func (l Logger) Enabled(level int) bool {
	return l.adapter != nil && level <= l.maxLevel
}

// Flush flushes the underlying adapter. It is the application's
// responsibility to call Flush before exiting.
func (l Logger) Flush() error {
	if l.adapter == nil {
		return nil
	}

	return l.adapter.Flush() //nolint:wrapcheck
}

// IsEqual reports whether two loggers behave the same: same levels, same
// adapter, same name, same mappers and same name formatter.
//
// Functions are compared by code pointer, so two formatters with the same
// behaviour but different definitions are not equal. Use it in tests only.
func IsEqual(l1, l2 Logger) bool {
	return l1.maxLevel == l2.maxLevel &&
		l1.callerMaxLevel == l2.callerMaxLevel &&
		l1.nop == l2.nop &&
		l1.name == l2.name &&
		l1.mappers == l2.mappers &&
		sameAdapter(l1.adapter, l2.adapter) &&
		funcPointer(l1.nameFormatter) == funcPointer(l2.nameFormatter)
}

// sameAdapter compares adapters by identity. Adapters of an uncomparable
// dynamic type are never equal, instead of panicking like == would.
func sameAdapter(a, b Adapter) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}

func funcPointer(f NameFormatter) uintptr {
	if f == nil {
		return 0
	}

	return reflect.ValueOf(f).Pointer()
}
