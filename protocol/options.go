package protocol

import (
	"log/slog"

	"github.com/ripkitten-co/idpcodec/codec"
)

type Option func(*config)

type config struct {
	prefix    string
	logger    *slog.Logger
	codecOpts []codec.Option
}

func defaultConfig() *config {
	return &config{
		logger: slog.Default(),
	}
}

// WithTargetPrefix sets the service name placed before the operation in
// the X-Amz-Target header.
func WithTargetPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.prefix = prefix
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithCodecOptions appends options passed to every marshal and unmarshal.
func WithCodecOptions(opts ...codec.Option) Option {
	return func(cfg *config) {
		cfg.codecOpts = append(cfg.codecOpts, opts...)
	}
}
