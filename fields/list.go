package fields

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// List is an ordered list of fields. Duplicate keys are legal; how they are
// rendered is up to the consumer.
type List []Field

// Dict is an unordered key/value view of fields.
type Dict map[string]any

// Concat builds a new List holding the fields of all given lists in order.
// None of the inputs is modified.
func Concat(lists ...List) List {
	n := 0
	for _, l := range lists {
		n += len(l)
	}

	if n == 0 {
		return nil
	}

	out := make(List, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}

	return out
}

// With returns a new List with fs appended after the receiver's fields.
func (l List) With(fs ...Field) List {
	return Concat(l, fs)
}

// All returns an iterator over the key/value pairs of the list, in order.
func (l List) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, f := range l {
			if !yield(f.K, f.V) {
				return
			}
		}
	}
}

// ToDict converts the list into a Dict. For duplicate keys the last one wins.
func (l List) ToDict() Dict {
	d := make(Dict, len(l))
	for _, f := range l {
		d[f.K] = f.V
	}

	return d
}

// String renders the list as "(k1=v1, k2=v2)". An empty list renders as an
// empty string.
func (l List) String() string {
	if len(l) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteByte('(')

	for i, f := range l {
		if i > 0 {
			b.WriteString(", ")
		}

		f.writeTo(&b)
	}

	b.WriteByte(')')

	return b.String()
}

// ToList converts the dict into a List ordered by key.
func (d Dict) ToList() List {
	if len(d) == 0 {
		return nil
	}

	l := make(List, 0, len(d))
	for _, k := range slices.Sorted(maps.Keys(d)) {
		l = append(l, F(k, d[k]))
	}

	return l
}
