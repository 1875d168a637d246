package sample

import (
	"math/rand/v2"
	"testing"

	qt "github.com/frankban/quicktest"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(3, 4))
}

func TestWeightedSampleZeroCountIsEmpty(t *testing.T) {
	c := qt.New(t)

	out, err := WeightedSample([]int{1, 2, 3}, 0, newRNG())
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.IsNil)
}

func TestWeightedSampleInsufficientMass(t *testing.T) {
	c := qt.New(t)

	_, err := WeightedSample([]int{0, 0, 0}, 1, newRNG())
	c.Assert(err, qt.Equals, ErrInsufficientMass)
}

func TestWeightedSampleEqualWeightsAreUniform(t *testing.T) {
	c := qt.New(t)

	weights := make([]int, 10)
	for i := range weights {
		weights[i] = 1
	}

	counts := make([]int, 10)
	rng := newRNG()
	const trials = 20000
	for i := 0; i < trials; i++ {
		out, err := WeightedSample(weights, 1, rng)
		c.Assert(err, qt.IsNil)
		counts[out[0]]++
	}

	for _, count := range counts {
		freq := float64(count) / float64(trials)
		c.Assert(freq > 0.05 && freq < 0.15, qt.IsTrue)
	}
}

func TestWeightedSampleHeavilySkewed(t *testing.T) {
	c := qt.New(t)

	weights := []int{1, 1, 1, 1, 96}
	rng := newRNG()
	hits := 0
	const trials = 5000
	for i := 0; i < trials; i++ {
		out, err := WeightedSample(weights, 1, rng)
		c.Assert(err, qt.IsNil)
		if out[0] == 4 {
			hits++
		}
	}
	freq := float64(hits) / float64(trials)
	c.Assert(freq > 0.9, qt.IsTrue)
}

func TestWeightedSampleSubsetRestrictsToIndices(t *testing.T) {
	c := qt.New(t)

	weights := []int{5, 5, 5, 5, 5}
	indices := []int{1, 3}
	rng := newRNG()

	for i := 0; i < 100; i++ {
		out, err := WeightedSampleSubset(indices, weights, 1, rng)
		c.Assert(err, qt.IsNil)
		c.Assert(out[0] == 1 || out[0] == 3, qt.IsTrue)
	}
}
