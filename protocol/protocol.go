package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/smithy-go"
	"github.com/ripkitten-co/idpcodec/codec"
)

const (
	ContentType = "application/x-amz-json-1.1"

	HeaderTarget    = "X-Amz-Target"
	HeaderErrorType = "X-Amzn-ErrorType"
	HeaderRequestID = "X-Amzn-RequestId"

	unknownErrorCode = "UnknownError"
)

// Request is a framed call ready for a transport: method, path, headers
// and the JSON body.
type Request struct {
	Operation string
	Method    string
	Path      string
	Header    http.Header
	Body      []byte
}

// Response is what a transport hands back for decoding.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Protocol holds the settings shared by every operation of one service.
// It is immutable and safe for concurrent use.
type Protocol struct {
	prefix    string
	logger    *slog.Logger
	codecOpts []codec.Option
}

func New(opts ...Option) *Protocol {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	return &Protocol{
		prefix:    cfg.prefix,
		logger:    cfg.logger,
		codecOpts: cfg.codecOpts,
	}
}

// Target returns the X-Amz-Target value for op.
func (p *Protocol) Target(op string) string {
	if p.prefix == "" {
		return op
	}
	return p.prefix + "." + op
}

func (p *Protocol) frame(ctx context.Context, op string, body []byte) *Request {
	h := make(http.Header, 3)
	h.Set("Content-Type", ContentType)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	h.Set(HeaderTarget, p.Target(op))

	p.logger.DebugContext(ctx, "marshalled request",
		"operation", op,
		"target", h.Get(HeaderTarget),
		"content_length", len(body),
	)
	return &Request{
		Operation: op,
		Method:    http.MethodPost,
		Path:      "/",
		Header:    h,
		Body:      body,
	}
}

type errorBody struct {
	Type         *string
	Code         *string
	Message      *string
	MessageUpper *string
}

var errorBodyTable = codec.NewStruct("ErrorBody",
	codec.Member("__type", codec.String, func(r *errorBody) **string { return &r.Type }),
	codec.Member("code", codec.String, func(r *errorBody) **string { return &r.Code }),
	codec.Member("message", codec.String, func(r *errorBody) **string { return &r.Message }),
	codec.Member("Message", codec.String, func(r *errorBody) **string { return &r.MessageUpper }),
)

// UnmarshalError decodes a non-2xx response into a *ResponseError. The
// error code comes from the X-Amzn-ErrorType header when set, otherwise
// from the body's __type or code member.
func (p *Protocol) UnmarshalError(ctx context.Context, op string, resp *Response) error {
	if resp == nil {
		return fmt.Errorf("protocol: %s: %w", op, ErrNilResponse)
	}
	body, err := codec.Unmarshal(errorBodyTable, resp.Body, p.codecOpts...)
	if err != nil {
		return fmt.Errorf("protocol: %s: status %d: %w: %w", op, resp.StatusCode, ErrMalformedError, err)
	}

	code := ""
	if resp.Header != nil {
		code = resp.Header.Get(HeaderErrorType)
	}
	if code == "" {
		code = firstOf(body.Type, body.Code)
	}
	code = SanitizeErrorCode(code)
	if code == "" {
		code = unknownErrorCode
	}

	fault := smithy.FaultClient
	if resp.StatusCode >= 500 {
		fault = smithy.FaultServer
	}

	rerr := &ResponseError{
		Operation:  op,
		StatusCode: resp.StatusCode,
		Err: &smithy.GenericAPIError{
			Code:    code,
			Message: firstOf(body.Message, body.MessageUpper),
			Fault:   fault,
		},
	}
	if resp.Header != nil {
		rerr.RequestID = resp.Header.Get(HeaderRequestID)
	}

	p.logger.WarnContext(ctx, "service error",
		"operation", op,
		"status", resp.StatusCode,
		"code", code,
		"request_id", rerr.RequestID,
	)
	return rerr
}

// SanitizeErrorCode strips a namespace prefix ("ns#Code") and a trailing
// type URI ("Code:http://...") from an error code.
func SanitizeErrorCode(code string) string {
	if i := strings.IndexByte(code, ':'); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndexByte(code, '#'); i >= 0 {
		code = code[i+1:]
	}
	return strings.TrimSpace(code)
}

func firstOf(vals ...*string) string {
	for _, v := range vals {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
