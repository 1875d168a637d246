// Package sample implements the degree-weighted sampler the liveness
// simulator uses to pick producer and tallier sets (spec §4.6): sampling
// without replacement, proportional to a weight array, via a prefix-sum
// cumulative array and binary search.
package sample

import (
	"math/rand/v2"
	"sort"
)

// WeightedSample draws m distinct indices into weights, with probability
// proportional to weights[i], without replacement. It returns an empty,
// nil-error result for m == 0, and ErrInsufficientMass if the total weight
// is zero but m > 0.
func WeightedSample(weights []int, m int, rng *rand.Rand) ([]int, error) {
	return weightedSampleIndexed(indexIdentity(len(weights)), weights, m, rng)
}

// WeightedSampleSubset draws m distinct elements from indices (a subset of
// the full node set), weighted by weights[indices[i]] — used to sample
// talliers separately from the producer and non-producer partitions.
func WeightedSampleSubset(indices []int, weights []int, m int, rng *rand.Rand) ([]int, error) {
	return weightedSampleIndexed(indices, weights, m, rng)
}

func weightedSampleIndexed(indices []int, weights []int, m int, rng *rand.Rand) ([]int, error) {
	if m == 0 {
		return nil, nil
	}

	cumulative := make([]int, len(indices))
	total := 0
	for i, idx := range indices {
		total += weights[idx]
		cumulative[i] = total
	}
	if total == 0 {
		return nil, ErrInsufficientMass
	}

	selected := make(map[int]struct{}, m)
	out := make([]int, 0, m)
	for len(out) < m {
		r := rng.IntN(total)
		local := binarySearchCumulative(cumulative, r)
		global := indices[local]
		if _, dup := selected[global]; dup {
			continue
		}
		selected[global] = struct{}{}
		out = append(out, global)
	}
	return out, nil
}

// binarySearchCumulative returns the smallest index i such that
// cumulative[i] > val.
func binarySearchCumulative(cumulative []int, val int) int {
	return sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > val
	})
}

func indexIdentity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
