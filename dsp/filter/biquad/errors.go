package biquad

import "errors"

// ErrUnknownKind is returned for names or values outside the closed set of
// realizations.
var ErrUnknownKind = errors.New("biquad: unknown topology")
