// Package trial implements the Monte-Carlo liveness trial (spec §4.7):
// given one synthetic participant graph, sample producer and tallier
// sets and check whether every producer can reconstruct its secret from
// the talliers among its guardians.
package trial

import (
	"math/rand/v2"

	"github.com/vocdoni/davinci-tally-tools/sim/graph"
	"github.com/vocdoni/davinci-tally-tools/sim/sample"
)

// RoleAssignment records which nodes were selected as producers and as
// talliers for one trial.
type RoleAssignment struct {
	IsProducer []bool
	IsTallier  []bool
}

// AssignRoles samples the producer set by degree-weighted sampling over
// all nodes, then samples talliers separately from the producer partition
// (retention, probability pRet) and the non-producer partition (new
// participation, probability pNew), unioning the two tallier sets.
func AssignRoles(g *graph.Graph, pProducer, pRet, pNew float64, rng *rand.Rand) (*RoleAssignment, error) {
	producerCount := int(float64(g.N) * pProducer)
	producers, err := sample.WeightedSample(g.Degree, producerCount, rng)
	if err != nil {
		return nil, err
	}

	isProducer := make([]bool, g.N)
	for _, v := range producers {
		isProducer[v] = true
	}

	nonProducers := make([]int, 0, g.N-len(producers))
	for v := range g.N {
		if !isProducer[v] {
			nonProducers = append(nonProducers, v)
		}
	}

	retSize := int(float64(len(producers)) * pRet)
	talliersFromProducers, err := sample.WeightedSampleSubset(producers, g.Degree, retSize, rng)
	if err != nil {
		return nil, err
	}

	newSize := int(float64(len(nonProducers)) * pNew)
	talliersFromNonProducers, err := sample.WeightedSampleSubset(nonProducers, g.Degree, newSize, rng)
	if err != nil {
		return nil, err
	}

	isTallier := make([]bool, g.N)
	for _, v := range talliersFromProducers {
		isTallier[v] = true
	}
	for _, v := range talliersFromNonProducers {
		isTallier[v] = true
	}

	return &RoleAssignment{IsProducer: isProducer, IsTallier: isTallier}, nil
}

// Decipherable reports whether every producer, unless it is itself a
// tallier, has at least t of its guardians among the talliers. A
// threshold of zero is treated as undefined and always fails.
func (r *RoleAssignment) Decipherable(g *graph.Graph, t int) bool {
	if t == 0 {
		return false
	}
	for v := range g.N {
		if !r.IsProducer[v] || r.IsTallier[v] {
			continue
		}
		participating := 0
		for _, guardian := range g.Adj[v] {
			if r.IsTallier[guardian] {
				participating++
				if participating >= t {
					break
				}
			}
		}
		if participating < t {
			return false
		}
	}
	return true
}

// Run performs one full trial on g: sample roles, then check the
// threshold-reconstruction property.
func Run(g *graph.Graph, t int, pProducer, pRet, pNew float64, rng *rand.Rand) (bool, error) {
	roles, err := AssignRoles(g, pProducer, pRet, pNew, rng)
	if err != nil {
		return false, err
	}
	return roles.Decipherable(g, t), nil
}
