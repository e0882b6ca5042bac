// Package bufferadapter provides a logger.Adapter that keeps records in
// memory. It is meant for tests.
package bufferadapter

import (
	"sync"

	"github.com/Station-Manager/logger"
	"github.com/Station-Manager/logger/fields"
)

// LogEntry is a single recorded log call.
type LogEntry struct {
	Level  int
	Msg    string
	Fields fields.List
}

// Buffer collects log entries. It is safe for concurrent use.
type Buffer struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Entries returns a snapshot of the recorded entries.
func (b *Buffer) Entries() []LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]LogEntry, len(b.entries))
	copy(out, b.entries)

	return out
}

// Len returns the number of recorded entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.entries)
}

// Reset drops all recorded entries.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
}

func (b *Buffer) add(e LogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, e)
}

// Adapter writes log records into a Buffer.
type Adapter struct {
	buff *Buffer
	fs   fields.List
}

var _ logger.Adapter = (*Adapter)(nil)

// New creates an Adapter writing to buff.
func New(buff *Buffer) *Adapter {
	return &Adapter{buff: buff}
}

// Log records the call. Attached fields come first, then fs.
func (a *Adapter) Log(level int, msg string, fs ...fields.Field) {
	a.buff.add(LogEntry{
		Level:  level,
		Msg:    msg,
		Fields: fields.Concat(a.fs, fs),
	})
}

// WithFields returns a new Adapter sharing the buffer with fs attached.
func (a *Adapter) WithFields(fs ...fields.Field) logger.Adapter {
	return &Adapter{
		buff: a.buff,
		fs:   fields.Concat(a.fs, fs),
	}
}

// Flush is a no-op.
func (*Adapter) Flush() error {
	return nil
}
