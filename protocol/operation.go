package protocol

import (
	"context"
	"fmt"

	"github.com/ripkitten-co/idpcodec/codec"
)

// Descriptor is an Operation with its record types erased, for callers
// that work with raw JSON.
type Descriptor interface {
	Name() string
	Input() codec.Erased
	Output() codec.Erased

	// TranscodeInput decodes caller JSON through the input table and frames
	// it as a request. Unknown members are dropped.
	TranscodeInput(ctx context.Context, p *Protocol, data []byte) (*Request, error)

	// TranscodeOutput decodes a response through the output table and
	// re-encodes it canonically. Service errors are returned as errors.
	TranscodeOutput(ctx context.Context, p *Protocol, resp *Response) ([]byte, error)
}

// Operation binds an operation name to its input and output tables.
type Operation[In, Out any] struct {
	name string
	in   *codec.Struct[In]
	out  *codec.Struct[Out]
}

func NewOperation[In, Out any](name string, in *codec.Struct[In], out *codec.Struct[Out]) *Operation[In, Out] {
	if name == "" || in == nil || out == nil {
		panic("protocol: operation needs a name and both tables")
	}
	return &Operation[In, Out]{name: name, in: in, out: out}
}

func (o *Operation[In, Out]) Name() string         { return o.name }
func (o *Operation[In, Out]) Input() codec.Erased  { return o.in }
func (o *Operation[In, Out]) Output() codec.Erased { return o.out }

// MarshalRequest encodes in as the request body and sets the framing
// headers.
func (o *Operation[In, Out]) MarshalRequest(ctx context.Context, p *Protocol, in *In) (*Request, error) {
	body, err := codec.Marshal(o.in, in, p.codecOpts...)
	if err != nil {
		return nil, fmt.Errorf("protocol: %s: %w", o.name, err)
	}
	return p.frame(ctx, o.name, body), nil
}

// UnmarshalResponse decodes a success body into the output record. A status
// of 300 or above is decoded as a service error.
func (o *Operation[In, Out]) UnmarshalResponse(ctx context.Context, p *Protocol, resp *Response) (*Out, error) {
	if resp == nil {
		return nil, fmt.Errorf("protocol: %s: %w", o.name, ErrNilResponse)
	}
	if resp.StatusCode >= 300 {
		return nil, p.UnmarshalError(ctx, o.name, resp)
	}
	out, err := codec.Unmarshal(o.out, resp.Body, p.codecOpts...)
	if err != nil {
		return nil, fmt.Errorf("protocol: %s: %w", o.name, err)
	}
	return out, nil
}

func (o *Operation[In, Out]) TranscodeInput(ctx context.Context, p *Protocol, data []byte) (*Request, error) {
	in, err := codec.Unmarshal(o.in, data, p.codecOpts...)
	if err != nil {
		return nil, fmt.Errorf("protocol: %s: %w", o.name, err)
	}
	return o.MarshalRequest(ctx, p, in)
}

func (o *Operation[In, Out]) TranscodeOutput(ctx context.Context, p *Protocol, resp *Response) ([]byte, error) {
	out, err := o.UnmarshalResponse(ctx, p, resp)
	if err != nil {
		return nil, err
	}
	data, err := codec.Marshal(o.out, out, p.codecOpts...)
	if err != nil {
		return nil, fmt.Errorf("protocol: %s: %w", o.name, err)
	}
	return data, nil
}
