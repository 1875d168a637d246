package sweep

import (
	"context"
	"math/rand/v2"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/davinci-tally-tools/sim/graph"
)

func TestRunCompleteGraphHighRetentionSucceeds(t *testing.T) {
	c := qt.New(t)

	factory := func(n, k int, rng *rand.Rand) (*graph.Graph, error) {
		return graph.Complete(n)
	}

	configs := []Config{
		{N: 10, K: 9, T: 5, PProducer: 1.0, PRet: 0.6, PNew: 0.0},
	}

	var got []ExperimentResult
	err := Run(context.Background(), factory, configs, 200, func(r ExperimentResult) error {
		got = append(got, r)
		return nil
	})
	c.Assert(err, qt.IsNil)
	c.Assert(len(got), qt.Equals, 1)
	// floor(10*0.6) = 6 >= threshold 5, so every trial should succeed.
	c.Assert(got[0].SuccessRate, qt.Equals, 1.0)
}

func TestRunRNLowRetentionMostlyFails(t *testing.T) {
	c := qt.New(t)

	factory := func(n, k int, rng *rand.Rand) (*graph.Graph, error) {
		return graph.RandomOutRegular(n, k, rng)
	}

	configs := []Config{
		{N: 200, K: 10, T: 10, PProducer: 1.0, PRet: 0.5, PNew: 0.0},
	}

	var got []ExperimentResult
	err := Run(context.Background(), factory, configs, 100, func(r ExperimentResult) error {
		got = append(got, r)
		return nil
	})
	c.Assert(err, qt.IsNil)
	c.Assert(got[0].SuccessRate < 0.1, qt.IsTrue)
}

func TestDegreeSummaryBarabasiAlbertPowerLawTail(t *testing.T) {
	c := qt.New(t)

	rng := rand.New(rand.NewPCG(7, 8))
	g, err := graph.BarabasiAlbert(1000, 5, rng)
	c.Assert(err, qt.IsNil)

	median, p90, err := DegreeSummary(g)
	c.Assert(err, qt.IsNil)
	c.Assert(p90 >= 3*median, qt.IsTrue)
}
