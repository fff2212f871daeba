package codec

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Writer is the output side of a marshal call. It owns nothing beyond the
// stream cursor; errors are recorded on the stream and stop further output.
type Writer struct {
	stream     *jsoniter.Stream
	timestamps TimestampFormat
	flushAt    int
}

// NewWriter wraps a jsoniter stream for use by custom Value implementations.
func NewWriter(stream *jsoniter.Stream, opts ...Option) *Writer {
	return newWriter(stream, newConfig(opts))
}

func newWriter(stream *jsoniter.Stream, cfg *config) *Writer {
	return &Writer{
		stream:     stream,
		timestamps: cfg.timestamps,
		flushAt:    cfg.bufSize,
	}
}

// Stream exposes the underlying jsoniter stream.
func (w *Writer) Stream() *jsoniter.Stream { return w.stream }

// Err returns the first error recorded while writing.
func (w *Writer) Err() error { return w.stream.Error }

// TimestampFormat is the default format for Timestamp fields.
func (w *Writer) TimestampFormat() TimestampFormat { return w.timestamps }

// Fail records err unless an earlier error is already set.
func (w *Writer) Fail(err error) {
	if w.stream.Error == nil {
		w.stream.Error = err
	}
}

func (w *Writer) within(member string) {
	if w.stream.Error != nil {
		w.stream.Error = fmt.Errorf("%s: %w", member, w.stream.Error)
	}
}

// flush hands buffered output to the destination once the buffer is full.
// It is a no-op for in-memory streams.
func (w *Writer) flush() {
	if len(w.stream.Buffer()) >= w.flushAt {
		_ = w.stream.Flush()
	}
}
