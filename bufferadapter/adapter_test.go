package bufferadapter_test

import (
	"sync"
	"testing"

	"github.com/Station-Manager/logger/bufferadapter"
	"github.com/Station-Manager/logger/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter(t *testing.T) {
	t.Run(".Log()", func(t *testing.T) {
		buff := &bufferadapter.Buffer{}
		adapter := bufferadapter.New(buff)

		adapter.Log(42, "foo")
		require.Equal(t, 1, buff.Len())
		assert.Equal(t, bufferadapter.LogEntry{Level: 42, Msg: "foo"}, buff.Entries()[0])

		adapter.Log(42, "foo", fields.F("foo", "bar"))
		require.Equal(t, 2, buff.Len())
		assert.Equal(t, bufferadapter.LogEntry{
			Level:  42,
			Msg:    "foo",
			Fields: fields.List{fields.F("foo", "bar")},
		}, buff.Entries()[1])

		buff.Reset()
		assert.Zero(t, buff.Len())
	})

	t.Run(".WithFields()", func(t *testing.T) {
		buff := &bufferadapter.Buffer{}
		src := bufferadapter.New(buff)
		adapter := src.WithFields(fields.F("foo", "bar"))

		require.NotSame(t, src, adapter)

		adapter.Log(42, "foo", fields.F("baz", "qux"))
		src.Log(42, "src")

		entries := buff.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, fields.List{fields.F("foo", "bar"), fields.F("baz", "qux")}, entries[0].Fields)
		assert.Empty(t, entries[1].Fields)
	})

	t.Run(".Flush()", func(t *testing.T) {
		assert.NoError(t, bufferadapter.New(&bufferadapter.Buffer{}).Flush())
	})

	t.Run("concurrent Log", func(t *testing.T) {
		buff := &bufferadapter.Buffer{}
		adapter := bufferadapter.New(buff)

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				adapter.Log(i, "msg")
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, buff.Len())
	})
}
