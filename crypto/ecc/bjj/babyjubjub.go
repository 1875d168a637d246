// Package bjj implements the Baby Jubjub elliptic curve group used by the
// ballot tally decryptor. It wraps the iden3 implementation to conform to
// the ecc.Point interface, the same adapter shape the teacher repo uses for
// its own curve backends.
package bjj

import (
	"fmt"
	"math/big"

	babyjubjub "github.com/iden3/go-iden3-crypto/babyjub"

	"github.com/vocdoni/davinci-tally-tools/crypto/ecc"
)

// CurveType identifies this curve implementation.
const CurveType = "bjj_iden3"

// BJJ is the affine representation of a Baby Jubjub group element.
type BJJ struct {
	inner *babyjubjub.Point
}

// New creates a new BJJ point (identity element by default).
func New() ecc.Point {
	return &BJJ{inner: babyjubjub.NewPoint()}
}

// New creates a new BJJ point (identity element by default).
func (g *BJJ) New() ecc.Point {
	return &BJJ{inner: babyjubjub.NewPoint()}
}

// Order returns the order of the Baby Jubjub curve subgroup.
func (g *BJJ) Order() *big.Int {
	return babyjubjub.SubOrder
}

// Add computes the addition of two curve points and stores the result in
// the receiver. Addition is performed in projective coordinates and
// normalized back to affine, matching the teacher's projective/affine
// round-trip for curve addition.
func (g *BJJ) Add(a, b ecc.Point) {
	g.inner = g.inner.Projective().Add(a.(*BJJ).inner.Projective(), b.(*BJJ).inner.Projective()).Affine()
}

// ScalarMult computes the scalar multiplication of a point and stores the
// result in the receiver.
func (g *BJJ) ScalarMult(a ecc.Point, scalar *big.Int) {
	g.inner = g.inner.Mul(scalar, a.(*BJJ).inner)
}

// ScalarBaseMult computes scalar * G and stores the result in the receiver.
func (g *BJJ) ScalarBaseMult(scalar *big.Int) {
	g.inner = g.inner.Mul(scalar, babyjubjub.B8)
}

// Neg computes the negation of a curve point and stores the result in the
// receiver. On a twisted Edwards curve, negation flips only the x-coordinate.
func (g *BJJ) Neg(a ecc.Point) {
	g.Set(a)
	proj := g.inner.Projective()
	proj.X = proj.X.Neg(proj.X)
	g.inner.X = g.inner.X.Set(proj.Affine().X)
}

// SetZero sets the point to the identity element (0, 1).
func (g *BJJ) SetZero() {
	p := g.inner.Projective()
	p.X.SetZero()
	p.Y.SetOne()
	p.Z.SetOne()
	g.inner = p.Affine()
}

// Set copies the value from another curve point.
func (g *BJJ) Set(a ecc.Point) {
	g.inner.X = g.inner.X.Set(a.(*BJJ).inner.X)
	g.inner.Y = g.inner.Y.Set(a.(*BJJ).inner.Y)
}

// SetGenerator sets the point to the base generator B8 of the curve.
func (g *BJJ) SetGenerator() {
	gen := babyjubjub.B8
	g.inner.X = g.inner.X.Set(gen.X)
	g.inner.Y = g.inner.Y.Set(gen.Y)
}

// Equal checks if two curve points are equal in affine coordinates.
func (g *BJJ) Equal(a ecc.Point) bool {
	return g.inner.X.Cmp(a.(*BJJ).inner.X) == 0 && g.inner.Y.Cmp(a.(*BJJ).inner.Y) == 0
}

// Marshal compresses and serializes the point to a byte slice.
func (g *BJJ) Marshal() []byte {
	b := g.inner.Compress()
	return b[:]
}

// Point returns the x and y coordinates of the point.
func (g *BJJ) Point() (*big.Int, *big.Int) {
	return g.inner.X, g.inner.Y
}

// Type returns the curve type identifier.
func (g *BJJ) Type() string {
	return CurveType
}

// String returns a compact debug representation of the point.
func (g *BJJ) String() string {
	return fmt.Sprintf("%s,%s", g.inner.X.String(), g.inner.Y.String())
}
