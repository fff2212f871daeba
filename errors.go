package idpcodec

import "errors"

// ErrUnknownOperation is returned when an operation name is not in the
// catalog.
var ErrUnknownOperation = errors.New("unknown operation")
