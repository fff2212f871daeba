package codec

import (
	"fmt"
	"reflect"
	"sync"
)

// Erased is a Struct seen through its record type's reflect.Type, for
// callers that only hold values of type any.
type Erased interface {
	Name() string
	WireNames() []string
	MarshalValue(v any, opts ...Option) ([]byte, error)
	UnmarshalValue(data []byte, dst any, opts ...Option) error
}

var registry sync.Map

// Register publishes s as the table for R and returns the table that is
// registered, which is the first one if R was already registered.
func Register[R any](s *Struct[R]) *Struct[R] {
	actual, _ := registry.LoadOrStore(reflect.TypeFor[R](), s)
	return actual.(*Struct[R])
}

// For returns the registered table for R.
func For[R any]() (*Struct[R], bool) {
	v, ok := registry.Load(reflect.TypeFor[R]())
	if !ok {
		return nil, false
	}
	return v.(*Struct[R]), true
}

// Lookup returns the registered table for t or, if t is a pointer, for the
// type it points to.
func Lookup(t reflect.Type) (Erased, bool) {
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	v, ok := registry.Load(t)
	if !ok {
		return nil, false
	}
	return v.(Erased), true
}

// MarshalValue accepts R or *R.
func (s *Struct[R]) MarshalValue(v any, opts ...Option) ([]byte, error) {
	switch rec := v.(type) {
	case *R:
		return Marshal(s, rec, opts...)
	case R:
		return Marshal(s, &rec, opts...)
	default:
		return nil, fmt.Errorf("codec: marshal %s: unexpected %T: %w", s.name, v, ErrInvalidArgument)
	}
}

// UnmarshalValue decodes into dst, which must be a non-nil *R.
func (s *Struct[R]) UnmarshalValue(data []byte, dst any, opts ...Option) error {
	p, ok := dst.(*R)
	if !ok || p == nil {
		return fmt.Errorf("codec: unmarshal %s: destination %T: %w", s.name, dst, ErrInvalidArgument)
	}
	rec, err := Unmarshal(s, data, opts...)
	if err != nil {
		return err
	}
	*p = *rec
	return nil
}
