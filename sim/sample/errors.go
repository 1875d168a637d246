package sample

import "errors"

// ErrInsufficientMass is returned when a weighted sample is requested with
// zero total weight but a nonzero sample count.
var ErrInsufficientMass = errors.New("sample: zero total weight for nonzero sample request")
