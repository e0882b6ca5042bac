// Package fields provides the structured attribute model shared by the logger
// and its adapters: a Field is a single key/value pair and a List is an
// ordered sequence of them.
//
// Lists are never modified in place by this package. Every helper that
// "adds" fields returns a new List, so a List handed to a logger or adapter
// can be shared safely.
package fields

import (
	"fmt"
	"strings"
)

// Field is a single structured log attribute.
type Field struct {
	K string
	V any
}

// F creates a Field with the given key and value.
func F(key string, value any) Field {
	return Field{K: key, V: value}
}

// String renders the field as "key=value".
func (f Field) String() string {
	var b strings.Builder
	f.writeTo(&b)

	return b.String()
}

func (f Field) writeTo(b *strings.Builder) {
	b.WriteString(f.K)
	b.WriteByte('=')
	_, _ = fmt.Fprintf(b, "%v", f.V)
}
