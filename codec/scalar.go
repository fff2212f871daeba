package codec

import (
	"encoding/base64"

	jsoniter "github.com/json-iterator/go"
)

// scalar adapts one jsoniter primitive to a nullable pointer field.
type scalar[T any] struct {
	kind  jsoniter.ValueType
	write func(s *jsoniter.Stream, v T)
	read  func(it *jsoniter.Iterator) T
}

func (c scalar[T]) Write(w *Writer, v *T) {
	if v == nil {
		w.stream.WriteNil()
		return
	}
	c.write(w.stream, *v)
}

func (c scalar[T]) Read(r *Reader) *T {
	switch next := r.Next(); next {
	case jsoniter.NilValue:
		r.Skip()
		return nil
	case c.kind:
		v := c.read(r.iter)
		if r.iter.Error != nil {
			return nil
		}
		return &v
	default:
		r.mismatch(c.kind, next)
		return nil
	}
}

func (scalar[T]) Absent(v *T) bool { return v == nil }

func (c scalar[T]) wireKind() Kind {
	switch c.kind {
	case jsoniter.StringValue:
		return KindString
	case jsoniter.NumberValue:
		return KindNumber
	case jsoniter.BoolValue:
		return KindBool
	}
	return KindOther
}

var (
	String Value[*string] = scalar[string]{
		kind:  jsoniter.StringValue,
		write: (*jsoniter.Stream).WriteString,
		read:  (*jsoniter.Iterator).ReadString,
	}

	Bool Value[*bool] = scalar[bool]{
		kind:  jsoniter.BoolValue,
		write: (*jsoniter.Stream).WriteBool,
		read:  (*jsoniter.Iterator).ReadBool,
	}

	Int32 Value[*int32] = scalar[int32]{
		kind:  jsoniter.NumberValue,
		write: (*jsoniter.Stream).WriteInt32,
		read:  (*jsoniter.Iterator).ReadInt32,
	}

	Int64 Value[*int64] = scalar[int64]{
		kind:  jsoniter.NumberValue,
		write: (*jsoniter.Stream).WriteInt64,
		read:  (*jsoniter.Iterator).ReadInt64,
	}

	Float64 Value[*float64] = scalar[float64]{
		kind:  jsoniter.NumberValue,
		write: (*jsoniter.Stream).WriteFloat64,
		read:  (*jsoniter.Iterator).ReadFloat64,
	}
)

// Enum returns the codec for a string enumeration. Values outside the known
// set are kept as-is so newer service responses still decode.
func Enum[E ~string]() Value[*E] {
	return scalar[E]{
		kind:  jsoniter.StringValue,
		write: func(s *jsoniter.Stream, v E) { s.WriteString(string(v)) },
		read:  func(it *jsoniter.Iterator) E { return E(it.ReadString()) },
	}
}

type blob struct{}

// Blob carries binary data as a standard base64 string.
var Blob Value[[]byte] = blob{}

func (blob) Write(w *Writer, v []byte) {
	if v == nil {
		w.stream.WriteNil()
		return
	}
	w.stream.WriteString(base64.StdEncoding.EncodeToString(v))
}

func (blob) Read(r *Reader) []byte {
	switch next := r.Next(); next {
	case jsoniter.NilValue:
		r.Skip()
		return nil
	case jsoniter.StringValue:
		s := r.iter.ReadString()
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			r.Fail("Blob", err.Error())
			return nil
		}
		return b
	default:
		r.mismatch(jsoniter.StringValue, next)
		return nil
	}
}

func (blob) Absent(v []byte) bool { return v == nil }

func (blob) wireKind() Kind { return KindString }
