// Package graph builds the synthetic directed participant graphs the
// liveness simulator draws its producer/guardian relationships from
// (spec §4.5): Barabási–Albert preferential attachment, uniform random
// out-regular, and complete.
package graph

import "math/rand/v2"

// Graph is a directed graph over [0, N) where Adj[v] lists v's guardians
// (out-neighbors). Degree is the weight the degree-weighted sampler uses:
// out-degree for RN/complete, attachment-list popularity for BA (spec
// §4.5's "or, for BA, the multiplicity-based popularity" allowance).
type Graph struct {
	N      int
	Adj    [][]int
	Degree []int
}

// Complete connects every node to every other node: Adj[v] = [0,n) \ {v}.
func Complete(n int) (*Graph, error) {
	if n < 2 {
		return nil, ErrInvalidDegree
	}
	adj := make([][]int, n)
	degree := make([]int, n)
	for v := range n {
		neighbors := make([]int, 0, n-1)
		for u := range n {
			if u != v {
				neighbors = append(neighbors, u)
			}
		}
		adj[v] = neighbors
		degree[v] = n - 1
	}
	return &Graph{N: n, Adj: adj, Degree: degree}, nil
}

// RandomOutRegular samples, for every node v, k distinct targets uniformly
// from [0,n) \ {v} and emits the directed edges v → target. Every node
// ends up with out-degree exactly k (spec §8 invariant).
func RandomOutRegular(n, k int, rng *rand.Rand) (*Graph, error) {
	if k < 1 || k > n-1 {
		return nil, ErrInvalidDegree
	}
	adj := make([][]int, n)
	degree := make([]int, n)
	for v := range n {
		chosen := make(map[int]struct{}, k)
		targets := make([]int, 0, k)
		for len(targets) < k {
			j := rng.IntN(n)
			if j == v {
				continue
			}
			if _, dup := chosen[j]; dup {
				continue
			}
			chosen[j] = struct{}{}
			targets = append(targets, j)
		}
		adj[v] = targets
		degree[v] = k
	}
	return &Graph{N: n, Adj: adj, Degree: degree}, nil
}

// BarabasiAlbert grows a preferential-attachment graph: a seed clique (or
// single bidirectional edge when k == 1) on the first k nodes, then for
// each new node v it picks k distinct targets weighted by current
// popularity and emits the directed edges v → target only — unlike the
// attachment list, which records both endpoints of every edge so later
// nodes see accumulated popularity on both sides of past connections.
func BarabasiAlbert(n, k int, rng *rand.Rand) (*Graph, error) {
	if k < 1 || k > n-1 {
		return nil, ErrInvalidDegree
	}
	adj := make([][]int, n)
	degree := make([]int, n)
	attachmentList := make([]int, 0, 2*n*k)

	addSeedEdge := func(i, j int) {
		adj[i] = append(adj[i], j)
		degree[i]++
		attachmentList = append(attachmentList, i)
	}

	if k == 1 && n > 1 {
		addSeedEdge(0, 1)
		addSeedEdge(1, 0)
	} else {
		for i := range k {
			for j := range k {
				if i != j {
					addSeedEdge(i, j)
				}
			}
		}
	}

	// The k == 1 seed edge already covers nodes 0 and 1.
	start := k
	if k == 1 {
		start = 2
	}
	for v := start; v < n; v++ {
		targets := make(map[int]struct{}, k)
		for len(targets) < k {
			target := attachmentList[rng.IntN(len(attachmentList))]
			if target == v {
				continue
			}
			if _, dup := targets[target]; dup {
				continue
			}
			targets[target] = struct{}{}
			adj[v] = append(adj[v], target)
			degree[v]++
			degree[target]++
			attachmentList = append(attachmentList, v, target)
		}
	}

	return &Graph{N: n, Adj: adj, Degree: degree}, nil
}
