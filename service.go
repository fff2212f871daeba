// Package idpcodec encodes and decodes identity-provider service requests
// and responses in the aws-json-1.1 protocol.
//
// Typed callers use the operations in the model package directly:
//
//	p := model.NewProtocol()
//	req, err := model.SignUp.MarshalRequest(ctx, p, &model.SignUpInput{...})
//
// Service is the name-driven entry point for callers holding raw JSON.
package idpcodec

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ripkitten-co/idpcodec/codec"
	"github.com/ripkitten-co/idpcodec/model"
	"github.com/ripkitten-co/idpcodec/protocol"
)

// Service bundles the operation catalog with a configured protocol. It is
// safe for concurrent use.
type Service struct {
	proto  *protocol.Protocol
	ops    *protocol.Catalog
	logger *slog.Logger
}

func New(opts ...Option) *Service {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	return &Service{
		proto: model.NewProtocol(
			protocol.WithLogger(cfg.logger),
			protocol.WithCodecOptions(codec.WithTimestampFormat(cfg.timestamps)),
		),
		ops:    model.Operations(),
		logger: cfg.logger,
	}
}

// Protocol returns the protocol used for typed calls that should share the
// service's configuration.
func (s *Service) Protocol() *protocol.Protocol { return s.proto }

// Operations returns the operation names, sorted.
func (s *Service) Operations() []string { return s.ops.Names() }

func (s *Service) Operation(name string) (protocol.Descriptor, error) {
	op, ok := s.ops.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("idpcodec: %q: %w", name, ErrUnknownOperation)
	}
	return op, nil
}

// EncodeRequest decodes input through the operation's input table and
// frames the canonical body. Members the table does not know are dropped.
func (s *Service) EncodeRequest(ctx context.Context, name string, input []byte) (*protocol.Request, error) {
	op, err := s.Operation(name)
	if err != nil {
		return nil, err
	}
	return op.TranscodeInput(ctx, s.proto, input)
}

// DecodeResponse returns the canonical JSON of a success response. Error
// responses come back as *protocol.ResponseError.
func (s *Service) DecodeResponse(ctx context.Context, name string, resp *protocol.Response) ([]byte, error) {
	op, err := s.Operation(name)
	if err != nil {
		return nil, err
	}
	out, err := op.TranscodeOutput(ctx, s.proto, resp)
	if err != nil {
		s.logger.DebugContext(ctx, "decode failed", "operation", name, "error", err)
		return nil, err
	}
	return out, nil
}
