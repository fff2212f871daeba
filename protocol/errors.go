package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrNilResponse is returned when a response to decode is nil.
	ErrNilResponse = errors.New("nil response")

	// ErrMalformedError is returned when a service error document cannot be
	// parsed.
	ErrMalformedError = errors.New("malformed error response")
)

// ResponseError is a non-2xx response decoded into a service error. Err is a
// *smithy.GenericAPIError, so errors.As with smithy.APIError yields the code,
// message and fault.
type ResponseError struct {
	Operation  string
	StatusCode int
	RequestID  string
	Err        error
}

func (e *ResponseError) Error() string {
	if e.RequestID == "" {
		return fmt.Sprintf("operation %s: https response error StatusCode: %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("operation %s: https response error StatusCode: %d, RequestID: %s: %v",
		e.Operation, e.StatusCode, e.RequestID, e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }
