package codec

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a nil record or destination is passed
// to a top-level marshal call.
var ErrInvalidArgument = errors.New("invalid argument")

// MarshalError reports a failure while writing a record. Output produced
// before the failure must be discarded.
type MarshalError struct {
	Type string
	Err  error
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("unable to marshal %s: %v", e.Type, e.Err)
}

func (e *MarshalError) Unwrap() error { return e.Err }

// UnmarshalError reports a failure while reading a record. Err carries the
// member path down to the offending value.
type UnmarshalError struct {
	Type string
	Err  error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("unable to unmarshal %s: %v", e.Type, e.Err)
}

func (e *UnmarshalError) Unwrap() error { return e.Err }
