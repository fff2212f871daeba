package codec

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// TimestampFormat selects how timestamps are written. Reading accepts
// every format regardless of this setting.
type TimestampFormat int

const (
	// EpochSeconds writes seconds since the Unix epoch as a JSON number with
	// millisecond fractions, e.g. 1469726337.123.
	EpochSeconds TimestampFormat = iota
	// ISO8601 writes an RFC 3339 string in UTC, e.g. "2016-07-28T17:18:57.123Z".
	ISO8601
)

func (f TimestampFormat) String() string {
	switch f {
	case EpochSeconds:
		return "epoch-seconds"
	case ISO8601:
		return "iso8601"
	default:
		return fmt.Sprintf("TimestampFormat(%d)", int(f))
	}
}

// ParseTimestampFormat accepts the names returned by TimestampFormat.String,
// case-insensitively.
func ParseTimestampFormat(s string) (TimestampFormat, error) {
	switch strings.ToLower(s) {
	case "epoch-seconds", "epoch":
		return EpochSeconds, nil
	case "iso8601", "iso":
		return ISO8601, nil
	}
	return 0, fmt.Errorf("codec: unknown timestamp format %q", s)
}

// wireAPI writes compact JSON without HTML escaping, matching what the
// service emits.
var wireAPI = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

const defaultBufferSize = 4096

type Option func(*config)

type config struct {
	api        jsoniter.API
	timestamps TimestampFormat
	bufSize    int
}

func defaultConfig() *config {
	return &config{
		api:        wireAPI,
		timestamps: EpochSeconds,
		bufSize:    defaultBufferSize,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithTimestampFormat sets the format used by the Timestamp codec. Fields
// declared with TimestampAs keep their own format.
func WithTimestampFormat(f TimestampFormat) Option {
	return func(cfg *config) {
		cfg.timestamps = f
	}
}

// WithAPI replaces the frozen jsoniter configuration used to borrow
// streams and iterators.
func WithAPI(api jsoniter.API) Option {
	return func(cfg *config) {
		if api != nil {
			cfg.api = api
		}
	}
}

// WithBufferSize sets the stream buffer size for MarshalTo and
// UnmarshalFrom. MarshalTo flushes to the destination whenever the buffer
// reaches this size between top-level members.
func WithBufferSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.bufSize = n
		}
	}
}
