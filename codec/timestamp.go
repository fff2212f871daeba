package codec

import (
	"math"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const isoLayout = "2006-01-02T15:04:05.999Z07:00"

type timestamp struct {
	format TimestampFormat
	fixed  bool
}

// Timestamp writes in the Writer's configured format (EpochSeconds unless
// changed with WithTimestampFormat) and reads both epoch numbers and ISO 8601
// strings. Precision on the wire is one millisecond.
var Timestamp Value[*time.Time] = timestamp{}

// TimestampAs pins a field to one write format regardless of configuration.
func TimestampAs(f TimestampFormat) Value[*time.Time] {
	return timestamp{format: f, fixed: true}
}

func (c timestamp) Write(w *Writer, v *time.Time) {
	if v == nil {
		w.stream.WriteNil()
		return
	}
	f := w.timestamps
	if c.fixed {
		f = c.format
	}
	switch f {
	case ISO8601:
		w.stream.WriteString(v.UTC().Truncate(time.Millisecond).Format(isoLayout))
	default:
		w.stream.WriteRaw(formatEpoch(v.UnixMilli()))
	}
}

func (timestamp) Read(r *Reader) *time.Time {
	var t time.Time
	switch next := r.Next(); next {
	case jsoniter.NilValue:
		r.Skip()
		return nil
	case jsoniter.NumberValue:
		secs := r.iter.ReadFloat64()
		if r.iter.Error != nil {
			return nil
		}
		ms := math.Round(secs * 1e3)
		if math.IsNaN(ms) || ms < math.MinInt64 || ms >= math.MaxInt64 {
			r.Fail("Timestamp", "epoch seconds out of range: "+strconv.FormatFloat(secs, 'g', -1, 64))
			return nil
		}
		t = time.UnixMilli(int64(ms)).UTC()
	case jsoniter.StringValue:
		s := r.iter.ReadString()
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			r.Fail("Timestamp", err.Error())
			return nil
		}
		t = parsed
	default:
		r.mismatch(jsoniter.NumberValue, next)
		return nil
	}
	return &t
}

func (timestamp) Absent(v *time.Time) bool { return v == nil }

func (timestamp) wireKind() Kind { return KindTimestamp }

func formatEpoch(ms int64) string {
	return strconv.FormatFloat(float64(ms)/1e3, 'f', -1, 64)
}
