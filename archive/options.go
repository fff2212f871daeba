package archive

import (
	"log/slog"

	"github.com/ripkitten-co/idpcodec/codec"
	"github.com/ripkitten-co/idpcodec/internal/codecs"
)

type Option func(*storeConfig)

type storeConfig struct {
	codec      codecs.Codec
	timestamps codec.TimestampFormat
	logger     *slog.Logger
}

// Stored documents use ISO 8601 timestamps so they read well in SQL. Queries
// compare timestamp members as timestamptz in either format.
func defaultConfig() *storeConfig {
	return &storeConfig{
		timestamps: codec.ISO8601,
		logger:     slog.Default(),
	}
}

// WithCodec replaces the codec used to encode stored records.
func WithCodec(c codecs.Codec) Option {
	return func(cfg *storeConfig) {
		cfg.codec = c
	}
}

// WithTimestampFormat sets how timestamps are written into stored
// documents. It has no effect when WithCodec is used.
func WithTimestampFormat(f codec.TimestampFormat) Option {
	return func(cfg *storeConfig) {
		cfg.timestamps = f
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cfg *storeConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}
