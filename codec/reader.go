package codec

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Reader is the parse context of an unmarshal call: a pull-style cursor over
// one JSON document. The first error stops all further reading.
type Reader struct {
	iter *jsoniter.Iterator
}

// NewReader wraps a jsoniter iterator for use by custom Value implementations.
func NewReader(iter *jsoniter.Iterator) *Reader {
	return &Reader{iter: iter}
}

// Iter exposes the underlying jsoniter iterator.
func (r *Reader) Iter() *jsoniter.Iterator { return r.iter }

// Err returns the first error recorded while reading.
func (r *Reader) Err() error { return r.iter.Error }

// Next reports the kind of the next value without consuming it.
func (r *Reader) Next() jsoniter.ValueType { return r.iter.WhatIsNext() }

// Skip consumes the next value without decoding it.
func (r *Reader) Skip() { r.iter.Skip() }

// Fail records a decode error unless an earlier error is already set.
func (r *Reader) Fail(op, msg string) { r.iter.ReportError(op, msg) }

func (r *Reader) mismatch(want, got jsoniter.ValueType) {
	r.Fail("decode", fmt.Sprintf("expected %s but found %s", kindName(want), kindName(got)))
}

func (r *Reader) within(member string) {
	if r.iter.Error != nil {
		r.iter.Error = fmt.Errorf("%s: %w", member, r.iter.Error)
	}
}

func kindName(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "boolean"
	case jsoniter.ArrayValue:
		return "array"
	case jsoniter.ObjectValue:
		return "object"
	default:
		return "invalid value"
	}
}
