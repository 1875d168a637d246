package bjj

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	c := qt.New(t)

	g := New()
	g.SetGenerator()

	zero := g.New()
	zero.SetZero()

	sum := g.New()
	sum.Add(g, zero)

	c.Assert(sum.Equal(g), qt.IsTrue)
}

func TestNegationCancels(t *testing.T) {
	c := qt.New(t)

	g := New()
	g.SetGenerator()

	negG := g.New()
	negG.Neg(g)

	sum := g.New()
	sum.Add(g, negG)

	zero := g.New()
	zero.SetZero()

	c.Assert(sum.Equal(zero), qt.IsTrue)
}

func TestScalarBaseMultMatchesScalarMultOnGenerator(t *testing.T) {
	c := qt.New(t)

	g := New()
	g.SetGenerator()

	viaBase := g.New()
	viaBase.ScalarBaseMult(big.NewInt(7))

	viaScalar := g.New()
	viaScalar.ScalarMult(g, big.NewInt(7))

	c.Assert(viaBase.Equal(viaScalar), qt.IsTrue)
}

func TestTypeAndMarshal(t *testing.T) {
	c := qt.New(t)

	g := New()
	g.SetGenerator()
	c.Assert(g.Type(), qt.Equals, CurveType)
	c.Assert(len(g.Marshal()) > 0, qt.IsTrue)
}
