package codecs

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ripkitten-co/idpcodec/codec"
)

// ErrUnregistered is returned when a value's type has no registered field
// table and no fallback codec is configured.
var ErrUnregistered = errors.New("no field table registered")

// TableCodec encodes records through the field table registered for their
// type, so the bytes match the service wire form. Other values go to the
// inner codec when one is set.
type TableCodec struct {
	inner Codec
	opts  []codec.Option
}

// NewTable returns a TableCodec. inner may be nil.
func NewTable(inner Codec, opts ...codec.Option) *TableCodec {
	return &TableCodec{inner: inner, opts: opts}
}

func (c *TableCodec) Marshal(v any) ([]byte, error) {
	if s, ok := codec.Lookup(reflect.TypeOf(v)); ok {
		return s.MarshalValue(v, c.opts...)
	}
	if c.inner != nil {
		return c.inner.Marshal(v)
	}
	return nil, fmt.Errorf("codecs: marshal %T: %w", v, ErrUnregistered)
}

func (c *TableCodec) Unmarshal(data []byte, v any) error {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Ptr {
		if s, ok := codec.Lookup(t.Elem()); ok {
			return s.UnmarshalValue(data, v, c.opts...)
		}
	}
	if c.inner != nil {
		return c.inner.Unmarshal(data, v)
	}
	return fmt.Errorf("codecs: unmarshal %T: %w", v, ErrUnregistered)
}
