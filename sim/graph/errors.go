package graph

import "errors"

// ErrInvalidDegree is returned when the requested guardian count k cannot
// be satisfied: k must be in [1, n-1] so that every node can pick k
// distinct targets other than itself.
var ErrInvalidDegree = errors.New("graph: guardian count out of range for node count")
