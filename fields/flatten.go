package fields

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth of Flatten.
const maxFlattenDepth = 10

// Maximum number of slice/array elements Flatten expands.
const maxFlattenElements = 10

// Placeholder values emitted by Flatten.
const (
	NilValue      = "<nil>"
	CircularValue = "<circular reference>"
	MaxDepthValue = "<max depth reached>"
)

// Flatten turns v into a list of fields with dotted keys rooted at prefix.
//
// Structs contribute their exported fields, maps their entries (as
// prefix[key]) and slices/arrays up to the first 10 elements (as prefix[i]);
// anything else becomes a single field. Pointers are followed with cycle
// detection along the current path, so a value shared by two fields is
// rendered twice. A nil v yields a single field holding NilValue.
func Flatten(prefix string, v any) List {
	f := flattener{visited: make(map[uintptr]bool)}
	f.walk(v, prefix, 0)

	return f.out
}

type flattener struct {
	out     List
	visited map[uintptr]bool
}

func (f *flattener) add(key string, value any) {
	f.out = append(f.out, F(key, value))
}

func (f *flattener) walk(v any, prefix string, depth int) {
	if depth > maxFlattenDepth {
		f.add(prefix, MaxDepthValue)
		return
	}

	if v == nil {
		f.add(prefix, NilValue)
		return
	}

	val := reflect.ValueOf(v)

unwrap:
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				f.add(prefix, NilValue)
				return
			}

			val = val.Elem()
		case reflect.Pointer:
			if val.IsNil() {
				f.add(prefix, NilValue)
				return
			}

			ptr := val.Pointer()
			if f.visited[ptr] {
				f.add(prefix, CircularValue)
				return
			}

			f.visited[ptr] = true
			defer delete(f.visited, ptr)

			val = val.Elem()
		default:
			break unwrap
		}
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		n := 0

		for i := range val.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}

			n++
			f.walk(val.Field(i).Interface(), join(prefix, field.Name), depth+1)
		}

		if n == 0 {
			f.add(prefix, fmt.Sprintf("%v", val.Interface()))
		}

	case reflect.Map:
		iter := val.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("%s[%v]", prefix, iter.Key().Interface())
			f.walk(iter.Value().Interface(), key, depth+1)
		}

	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len() && i < maxFlattenElements; i++ {
			f.walk(val.Index(i).Interface(), fmt.Sprintf("%s[%d]", prefix, i), depth+1)
		}

		if val.Len() > maxFlattenElements {
			f.add(prefix+"[...]", fmt.Sprintf("%d more elements", val.Len()-maxFlattenElements))
		}

	default:
		f.add(prefix, val.Interface())
	}
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
