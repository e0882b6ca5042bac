package stacktrace_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/Station-Manager/logger/stacktrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:noinline
func callerOfHelper() stacktrace.Frame {
	return helper()
}

//go:noinline
func helper() stacktrace.Frame {
	return stacktrace.CaptureCaller(1)
}

//go:noinline
func recurse(n, depth int) stacktrace.Stack {
	if n == 0 {
		return stacktrace.CaptureStack(0, depth)
	}

	return recurse(n-1, depth)
}

func TestCaptureCaller(t *testing.T) {
	t.Run("skip zero is the calling function", func(t *testing.T) {
		f := stacktrace.CaptureCaller(0)
		assert.True(t, strings.HasSuffix(f.File, "stacktrace_test.go"))
		assert.Contains(t, f.Function, "TestCaptureCaller")
		assert.Positive(t, f.Line)
		assert.Equal(t, f.File+":"+itoa(f.Line), f.String())
	})

	t.Run("skip walks up", func(t *testing.T) {
		f := callerOfHelper()
		assert.Contains(t, f.Function, "callerOfHelper")
	})

	t.Run("out of range yields placeholder", func(t *testing.T) {
		f := stacktrace.CaptureCaller(10_000)
		assert.Equal(t, stacktrace.UnknownFrame, f)
		assert.Equal(t, "<unknown>", f.String())
	})
}

func TestCaptureStack(t *testing.T) {
	t.Run("starts at the caller", func(t *testing.T) {
		s := stacktrace.CaptureStack(0, 0)
		require.Positive(t, s.Len())
		assert.Contains(t, s.Frames()[0].Function, "TestCaptureStack")
		assert.LessOrEqual(t, s.Len(), stacktrace.DefaultDepth)
	})

	t.Run("depth is bounded", func(t *testing.T) {
		s := recurse(100, 8)
		require.Equal(t, 8, s.Len())

		for _, f := range s.Frames() {
			assert.Contains(t, f.Function, "recurse")
		}
	})

	t.Run("string rendering", func(t *testing.T) {
		s := recurse(1, 2)
		lines := strings.Split(s.String(), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[0], "recurse")
		assert.True(t, strings.HasPrefix(lines[1], "\t"))
		assert.Contains(t, lines[1], "stacktrace_test.go:")
	})

	t.Run("empty stack renders empty", func(t *testing.T) {
		assert.Empty(t, stacktrace.Stack{}.String())
		assert.Zero(t, stacktrace.CaptureStack(10_000, 4).Len())
	})
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
