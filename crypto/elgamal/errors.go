package elgamal

import "errors"

// ErrInvalidPrivateKey is returned when a private scalar is nil or zero.
var ErrInvalidPrivateKey = errors.New("elgamal: invalid or zero private key")

// ErrEmptyAggregate is returned when Aggregate is called with no ciphertexts.
var ErrEmptyAggregate = errors.New("elgamal: cannot aggregate zero ciphertexts")

// ErrCastOutOfRange is returned when a ballot's option index is outside
// [0, k) for the k options of the base schedule it is encoded against.
var ErrCastOutOfRange = errors.New("elgamal: option index out of range")
