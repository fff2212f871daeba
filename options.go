package idpcodec

import (
	"log/slog"

	"github.com/ripkitten-co/idpcodec/codec"
)

type Option func(*serviceConfig)

type serviceConfig struct {
	logger     *slog.Logger
	timestamps codec.TimestampFormat
}

func defaultConfig() *serviceConfig {
	return &serviceConfig{
		logger:     slog.Default(),
		timestamps: codec.EpochSeconds,
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cfg *serviceConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithTimestampFormat sets how timestamp members are written. Reads accept
// both formats regardless.
func WithTimestampFormat(f codec.TimestampFormat) Option {
	return func(cfg *serviceConfig) {
		cfg.timestamps = f
	}
}
