// Package stacktrace captures call-site frames and bounded stack traces for
// attaching to log records.
//
//	frame := stacktrace.CaptureCaller(0) // the function calling CaptureCaller
//	stack := stacktrace.CaptureStack(0, stacktrace.DefaultDepth)
//	fmt.Println(frame, stack)
package stacktrace

import (
	"runtime"
	"strconv"
	"strings"
)

// DefaultDepth is the default maximum number of frames captured by
// CaptureStack.
const DefaultDepth = 32

const unknown = "<unknown>"

// Frame is a single resolved stack frame.
type Frame struct {
	Function string
	File     string
	Line     int
}

// UnknownFrame is returned when a frame cannot be resolved.
var UnknownFrame = Frame{}

// String renders the frame as "path/to/file.go:123".
func (f Frame) String() string {
	if f.File == "" {
		return unknown
	}

	return f.File + ":" + strconv.Itoa(f.Line)
}

// Stack is an ordered list of frames, innermost first.
type Stack struct {
	frames []Frame
}

// Frames returns a copy of the captured frames.
func (s Stack) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)

	return out
}

// Len returns the number of captured frames.
func (s Stack) Len() int {
	return len(s.frames)
}

// String renders the stack one frame per two lines:
//
//	main.handler
//		/app/main.go:42
func (s Stack) String() string {
	var b strings.Builder

	for i, f := range s.frames {
		if i > 0 {
			b.WriteByte('\n')
		}

		fn := f.Function
		if fn == "" {
			fn = unknown
		}

		b.WriteString(fn)
		b.WriteString("\n\t")
		b.WriteString(f.String())
	}

	return b.String()
}

// CaptureCaller returns the frame skip levels above its caller. A skip of 0
// is the function that called CaptureCaller.
func CaptureCaller(skip int) Frame {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return UnknownFrame
	}

	f := Frame{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		f.Function = fn.Name()
	}

	return f
}

// CaptureStack captures up to depth frames, starting skip levels above its
// caller. A depth of zero or less means DefaultDepth.
func CaptureStack(skip, depth int) Stack {
	if depth <= 0 {
		depth = DefaultDepth
	}

	pcs := make([]uintptr, depth)
	// +2 skips runtime.Callers and CaptureStack itself.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return Stack{}
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := Stack{frames: make([]Frame, 0, n)}

	for {
		frame, more := frames.Next()

		stack.frames = append(stack.frames, Frame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})

		if !more || len(stack.frames) == depth {
			break
		}
	}

	return stack
}
