package codec

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Field describes one member of a record: its wire name and how to reach
// and encode the Go field behind it.
type Field[R any] struct {
	name    string
	kind    Kind
	present func(rec *R) bool
	write   func(w *Writer, rec *R)
	read    func(r *Reader, rec *R)
}

// Member declares a field. at returns the address of the Go field on a
// record, serving as both getter and setter.
//
//	codec.Member("UserPoolId", codec.String, func(r *Input) **string { return &r.UserPoolId })
func Member[R, T any](name string, v Value[T], at func(rec *R) *T) Field[R] {
	return Field[R]{
		name:    name,
		kind:    kindOf(v),
		present: func(rec *R) bool { return !v.Absent(*at(rec)) },
		write:   func(w *Writer, rec *R) { v.Write(w, *at(rec)) },
		read:    func(r *Reader, rec *R) { *at(rec) = v.Read(r) },
	}
}

// Name returns the wire name.
func (f Field[R]) Name() string { return f.name }

// Kind reports the JSON kind the field is written as.
func (f Field[R]) Kind() Kind { return f.kind }

// Struct is the field table of one record type. It implements Value[*R] so
// records nest inside other records, lists and maps.
type Struct[R any] struct {
	name   string
	fields []Field[R]
	byName map[string]int
}

// NewStruct builds the table for a record type. Fields are written in the
// order given. It panics on an empty or repeated wire name.
func NewStruct[R any](name string, fields ...Field[R]) *Struct[R] {
	s := &Struct[R]{
		name:   name,
		fields: fields,
		byName: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.name == "" {
			panic(fmt.Sprintf("codec: %s: field %d has no wire name", name, i))
		}
		if _, dup := s.byName[f.name]; dup {
			panic(fmt.Sprintf("codec: %s: duplicate wire name %q", name, f.name))
		}
		s.byName[f.name] = i
	}
	return s
}

// Name returns the record type's shape name.
func (s *Struct[R]) Name() string { return s.name }

// WireNames lists the wire names in declaration order.
func (s *Struct[R]) WireNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// HasField reports whether name is one of the table's wire names. The match
// is exact and case-sensitive.
func (s *Struct[R]) HasField(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// FieldKind returns the kind of the named member.
func (s *Struct[R]) FieldKind(name string) (Kind, bool) {
	i, ok := s.byName[name]
	if !ok {
		return KindOther, false
	}
	return s.fields[i].kind, true
}

func (s *Struct[R]) Write(w *Writer, rec *R) {
	if rec == nil {
		w.stream.WriteNil()
		return
	}
	s.encode(w, rec, false)
}

// Read decodes a nested record. Anything other than an object is skipped,
// and an object without members is treated the same as null.
func (s *Struct[R]) Read(r *Reader) *R {
	if r.Next() != jsoniter.ObjectValue {
		r.Skip()
		return nil
	}
	rec := new(R)
	if s.decode(r, rec) == 0 {
		return nil
	}
	return rec
}

func (s *Struct[R]) Absent(rec *R) bool { return rec == nil }

func (s *Struct[R]) encode(w *Writer, rec *R, top bool) {
	st := w.stream
	st.WriteObjectStart()
	n := 0
	for i := range s.fields {
		f := &s.fields[i]
		if !f.present(rec) {
			continue
		}
		if n > 0 {
			st.WriteMore()
		}
		st.WriteObjectField(f.name)
		f.write(w, rec)
		if st.Error != nil {
			w.within(f.name)
			return
		}
		n++
		if top {
			w.flush()
			if st.Error != nil {
				return
			}
		}
	}
	st.WriteObjectEnd()
}

// decode reads object members into rec and reports how many it saw,
// including unknown ones.
func (s *Struct[R]) decode(r *Reader, rec *R) int {
	members := 0
	r.iter.ReadObjectCB(func(it *jsoniter.Iterator, name string) bool {
		members++
		i, ok := s.byName[name]
		if !ok {
			it.Skip()
			return it.Error == nil
		}
		s.fields[i].read(r, rec)
		if it.Error != nil {
			r.within(name)
			return false
		}
		return true
	})
	return members
}
