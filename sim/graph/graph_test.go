package graph

import (
	"math/rand/v2"
	"testing"

	qt "github.com/frankban/quicktest"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestCompleteAdjacencyIsAllOtherNodes(t *testing.T) {
	c := qt.New(t)

	g, err := Complete(10)
	c.Assert(err, qt.IsNil)
	for v := range g.N {
		c.Assert(len(g.Adj[v]), qt.Equals, g.N-1)
		c.Assert(g.Degree[v], qt.Equals, g.N-1)
		seen := make(map[int]bool, len(g.Adj[v]))
		for _, u := range g.Adj[v] {
			c.Assert(u, qt.Not(qt.Equals), v)
			seen[u] = true
		}
		c.Assert(len(seen), qt.Equals, g.N-1)
	}
}

func TestRandomOutRegularOutDegreeExactlyK(t *testing.T) {
	c := qt.New(t)

	const n, k = 50, 7
	g, err := RandomOutRegular(n, k, newRNG())
	c.Assert(err, qt.IsNil)
	c.Assert(g.N, qt.Equals, n)
	for v := range n {
		c.Assert(len(g.Adj[v]), qt.Equals, k)
		c.Assert(g.Degree[v], qt.Equals, k)
		seen := make(map[int]bool, k)
		for _, u := range g.Adj[v] {
			c.Assert(u, qt.Not(qt.Equals), v)
			c.Assert(seen[u], qt.IsFalse)
			seen[u] = true
		}
	}
}

func TestRandomOutRegularRejectsInvalidDegree(t *testing.T) {
	c := qt.New(t)

	_, err := RandomOutRegular(10, 10, newRNG())
	c.Assert(err, qt.Equals, ErrInvalidDegree)

	_, err = RandomOutRegular(10, 0, newRNG())
	c.Assert(err, qt.Equals, ErrInvalidDegree)
}

func TestBarabasiAlbertEveryNewNodeHasOutDegreeK(t *testing.T) {
	c := qt.New(t)

	const n, k = 100, 5
	g, err := BarabasiAlbert(n, k, newRNG())
	c.Assert(err, qt.IsNil)
	for v := k; v < n; v++ {
		c.Assert(len(g.Adj[v]), qt.Equals, k)
	}
}

func TestBarabasiAlbertSingleGuardianSeedEdge(t *testing.T) {
	c := qt.New(t)

	g, err := BarabasiAlbert(20, 1, newRNG())
	c.Assert(err, qt.IsNil)
	c.Assert(g.Adj[0], qt.DeepEquals, []int{1})
	c.Assert(g.Adj[1], qt.DeepEquals, []int{0})
}
