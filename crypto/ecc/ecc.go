// Package ecc defines the minimal elliptic-curve point contract shared by
// the ballot tally decryptor. Curve arithmetic itself (point addition,
// scalar multiplication, projective/affine conversion, equality) is treated
// as an external collaborator: this package only pins down the interface
// the rest of the module programs against. The Baby Jubjub implementation,
// backed by the iden3 library, lives in the crypto/ecc/bjj subpackage.
package ecc

import "math/big"

// Point is a point on an elliptic curve group used for additively
// homomorphic ElGamal. Implementations are mutable: methods write their
// result into the receiver, mirroring the gnark-crypto/iden3 style of
// in-place curve arithmetic.
type Point interface {
	// New returns a fresh identity-element point on the same curve.
	New() Point
	// Order returns the prime order of the curve's scalar field.
	Order() *big.Int
	// Add sets the receiver to a + b.
	Add(a, b Point)
	// ScalarMult sets the receiver to scalar * a.
	ScalarMult(a Point, scalar *big.Int)
	// ScalarBaseMult sets the receiver to scalar * G.
	ScalarBaseMult(scalar *big.Int)
	// Neg sets the receiver to the negation of a.
	Neg(a Point)
	// SetZero sets the receiver to the curve's identity element.
	SetZero()
	// Set copies the value of a into the receiver.
	Set(a Point)
	// SetGenerator sets the receiver to the curve's fixed generator G.
	SetGenerator()
	// Equal reports whether the receiver and a are the same affine point.
	Equal(a Point) bool
	// Marshal returns a canonical, deterministic byte encoding of the point.
	Marshal() []byte
	// Point returns the affine (x, y) coordinates of the receiver.
	Point() (*big.Int, *big.Int)
	// Type identifies the concrete curve implementation.
	Type() string
}
