package logger

import "github.com/Station-Manager/logger/fields"

// Adapter is the seam between Logger and a concrete logging backend.
//
// Implementations must be safe for concurrent use of Log.
type Adapter interface {
	// Log emits a record. It must not filter by level, that is the job of
	// Logger, and it must not panic or report failures to the caller.
	Log(level int, msg string, fs ...fields.Field)

	// WithFields returns an adapter that attaches fs to every record it
	// emits. The receiver must not be modified.
	WithFields(fs ...fields.Field) Adapter

	// Flush writes out any buffered records. It is a no-op for unbuffered
	// backends.
	//
	// It is the application's responsibility to call it before exiting.
	Flush() error
}
