package window

import "errors"

// ErrUnknownType is returned by ParseType for an unrecognised name.
var ErrUnknownType = errors.New("window: unknown type")

var errMismatchedLength = errors.New("samples and coefficients must have same length")
