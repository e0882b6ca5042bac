package service

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCloser struct {
	calls int
	err   error
}

func (c *countingCloser) Close() error {
	c.calls++
	return c.err
}

func TestClosableWriter(t *testing.T) {
	t.Run("forwards until closed", func(t *testing.T) {
		var buf bytes.Buffer
		closer := &countingCloser{}
		w := newClosableWriter(&buf, closer)

		n, err := w.Write([]byte("one"))
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		require.NoError(t, w.Close())

		n, err = w.Write([]byte("two"))
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, "one", buf.String())
	})

	t.Run("closes once", func(t *testing.T) {
		closer := &countingCloser{err: errors.New("close failed")}
		w := newClosableWriter(&bytes.Buffer{}, closer)

		assert.Error(t, w.Close())
		assert.NoError(t, w.Close())
		assert.Equal(t, 1, closer.calls)
	})

	t.Run("nil closer", func(t *testing.T) {
		w := newClosableWriter(&bytes.Buffer{}, nil)
		assert.NoError(t, w.Close())
	})

	t.Run("concurrent writes and close", func(t *testing.T) {
		buf := &threadSafeBuffer{}
		w := newClosableWriter(buf, &countingCloser{})

		var wg sync.WaitGroup

		for range 8 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				for range 100 {
					_, _ = w.Write([]byte("x"))
				}
			}()
		}

		require.NoError(t, w.Close())
		wg.Wait()

		written := buf.Len()
		_, _ = w.Write([]byte("late"))
		assert.Equal(t, written, buf.Len())
	})
}
