package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Marshal encodes rec as a JSON object.
func Marshal[R any](s *Struct[R], rec *R, opts ...Option) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("codec: marshal %s: nil record: %w", s.name, ErrInvalidArgument)
	}
	cfg := newConfig(opts)
	stream := cfg.api.BorrowStream(nil)
	defer cfg.api.ReturnStream(stream)

	s.encode(newWriter(stream, cfg), rec, true)
	if stream.Error != nil {
		return nil, &MarshalError{Type: s.name, Err: stream.Error}
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// MarshalTo streams rec to out, flushing between top-level members once the
// buffer fills. On error, whatever reached out is incomplete.
func MarshalTo[R any](out io.Writer, s *Struct[R], rec *R, opts ...Option) error {
	if rec == nil {
		return fmt.Errorf("codec: marshal %s: nil record: %w", s.name, ErrInvalidArgument)
	}
	if out == nil {
		return fmt.Errorf("codec: marshal %s: nil writer: %w", s.name, ErrInvalidArgument)
	}
	cfg := newConfig(opts)
	stream := jsoniter.NewStream(cfg.api, out, cfg.bufSize)

	s.encode(newWriter(stream, cfg), rec, true)
	if stream.Error == nil {
		_ = stream.Flush()
	}
	if stream.Error != nil {
		return &MarshalError{Type: s.name, Err: stream.Error}
	}
	return nil
}

// Unmarshal decodes a top-level object. Empty input and JSON null both
// yield a record with every field absent.
func Unmarshal[R any](s *Struct[R], data []byte, opts ...Option) (*R, error) {
	cfg := newConfig(opts)
	iter := cfg.api.BorrowIterator(data)
	defer cfg.api.ReturnIterator(iter)
	return unmarshal(s, NewReader(iter), func() bool {
		src := &eofReader{r: bytes.NewReader(data)}
		probe := jsoniter.Parse(cfg.api, src, probeBufferSize)
		probe.Skip()
		return probe.Error != nil && src.hit
	})
}

// UnmarshalFrom decodes a top-level object read from in.
func UnmarshalFrom[R any](in io.Reader, s *Struct[R], opts ...Option) (*R, error) {
	if in == nil {
		return nil, fmt.Errorf("codec: unmarshal %s: nil reader: %w", s.name, ErrInvalidArgument)
	}
	cfg := newConfig(opts)
	src := &eofReader{r: in}
	iter := jsoniter.Parse(cfg.api, src, cfg.bufSize)
	return unmarshal(s, NewReader(iter), func() bool { return src.hit })
}

// unmarshal decodes the top-level object, which must be the whole input.
// truncated is consulted only after a decode failure and reports whether the
// input ended mid-document.
func unmarshal[R any](s *Struct[R], r *Reader, truncated func() bool) (*R, error) {
	rec := new(R)
	if r.Next() == jsoniter.InvalidValue && errors.Is(r.Err(), io.EOF) {
		return rec, nil
	}
	s.decode(r, rec)
	if err := r.Err(); err != nil {
		if errors.Is(err, io.EOF) || truncated() {
			err = fmt.Errorf("%w: %w", io.ErrUnexpectedEOF, err)
		}
		return nil, &UnmarshalError{Type: s.name, Err: err}
	}
	if r.Next() != jsoniter.InvalidValue || !errors.Is(r.Err(), io.EOF) {
		r.Fail("Unmarshal", "unexpected data after top-level value")
		return nil, &UnmarshalError{Type: s.name, Err: r.Err()}
	}
	return rec, nil
}

const probeBufferSize = 512

// eofReader records whether a read came back empty at end of input.
type eofReader struct {
	r   io.Reader
	hit bool
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if n == 0 && errors.Is(err, io.EOF) {
		e.hit = true
	}
	return n, err
}
