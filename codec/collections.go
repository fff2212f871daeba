package codec

import (
	"slices"

	jsoniter "github.com/json-iterator/go"
)

type list[T any] struct {
	elem Value[T]
}

// List encodes a slice as a JSON array. Absent elements are skipped on
// write and dropped on read; JSON null decodes to a nil slice and [] to an
// empty one.
func List[T any](elem Value[T]) Value[[]T] {
	return list[T]{elem: elem}
}

// ListOf is List for a slice of records.
func ListOf[R any](s *Struct[R]) Value[[]*R] {
	return list[*R]{elem: s}
}

func (c list[T]) Write(w *Writer, v []T) {
	s := w.stream
	if v == nil {
		s.WriteNil()
		return
	}
	s.WriteArrayStart()
	n := 0
	for _, e := range v {
		if c.elem.Absent(e) {
			continue
		}
		if n > 0 {
			s.WriteMore()
		}
		c.elem.Write(w, e)
		if s.Error != nil {
			return
		}
		n++
	}
	s.WriteArrayEnd()
}

func (c list[T]) Read(r *Reader) []T {
	switch next := r.Next(); next {
	case jsoniter.NilValue:
		r.Skip()
		return nil
	case jsoniter.ArrayValue:
	default:
		r.mismatch(jsoniter.ArrayValue, next)
		return nil
	}
	out := make([]T, 0)
	r.iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		e := c.elem.Read(r)
		if it.Error != nil {
			return false
		}
		if !c.elem.Absent(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

func (list[T]) Absent(v []T) bool { return v == nil }

type mapping[T any] struct {
	elem Value[T]
}

// Map encodes a string-keyed map as a JSON object with keys in sorted
// order. Absent values are skipped on write and dropped on read.
func Map[T any](elem Value[T]) Value[map[string]T] {
	return mapping[T]{elem: elem}
}

// MapOf is Map for record values.
func MapOf[R any](s *Struct[R]) Value[map[string]*R] {
	return mapping[*R]{elem: s}
}

func (c mapping[T]) Write(w *Writer, v map[string]T) {
	s := w.stream
	if v == nil {
		s.WriteNil()
		return
	}
	keys := make([]string, 0, len(v))
	for k, e := range v {
		if !c.elem.Absent(e) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	s.WriteObjectStart()
	for i, k := range keys {
		if i > 0 {
			s.WriteMore()
		}
		s.WriteObjectField(k)
		c.elem.Write(w, v[k])
		if s.Error != nil {
			w.within(k)
			return
		}
	}
	s.WriteObjectEnd()
}

func (c mapping[T]) Read(r *Reader) map[string]T {
	switch next := r.Next(); next {
	case jsoniter.NilValue:
		r.Skip()
		return nil
	case jsoniter.ObjectValue:
	default:
		r.mismatch(jsoniter.ObjectValue, next)
		return nil
	}
	out := make(map[string]T)
	r.iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		e := c.elem.Read(r)
		if it.Error != nil {
			r.within(key)
			return false
		}
		if !c.elem.Absent(e) {
			out[key] = e
		}
		return true
	})
	return out
}

func (mapping[T]) Absent(v map[string]T) bool { return v == nil }
