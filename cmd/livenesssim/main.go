// Command livenesssim is the driver for Core B (spec §6 CLI Core B): a
// Monte-Carlo sweep over node count, guardian count, threshold, and
// producer/tallier participation rates, for one of three graph models
// selected by a positional argument, emitting one CSV per node count.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/vocdoni/davinci-tally-tools/internal/csvsink"
	"github.com/vocdoni/davinci-tally-tools/log"
	"github.com/vocdoni/davinci-tally-tools/sim/graph"
	"github.com/vocdoni/davinci-tally-tools/sim/sweep"
)

const trialsPerConfig = 1000

var nodeCounts = []int{200, 500, 1000}

func main() {
	logLevel := flag.String("loglevel", "info", "log level")
	flag.Parse()
	log.Init(*logLevel, "stderr")

	if flag.NArg() != 1 {
		log.Error("usage: livenesssim <BA|RN|DKG>")
		os.Exit(1)
	}

	model := flag.Arg(0)
	factory, err := factoryForModel(model)
	if err != nil {
		log.Errorw(err, "invalid graph model")
		os.Exit(1)
	}

	rng := rand.New(rand.NewPCG(1, uint64(len(model))))

	for _, n := range nodeCounts {
		configs := buildGrid(model, n)
		outPath := fmt.Sprintf("full_simulation_results_nodes_%s_%d.csv", model, n)
		sink, err := csvsink.Open(outPath, []string{
			"nodes", "guardians", "threshold",
			"fdkgPercentage", "tallierRetPct", "tallierNewPct", "successRate",
		})
		if err != nil {
			log.Errorw(err, "failed to open results CSV", "path", outPath)
			os.Exit(1)
		}

		log.Infow("starting simulations", "nodes", n, "configurations", len(configs))

		if len(configs) > 0 {
			if sample, sampleErr := factory(n, configs[0].K, rng); sampleErr == nil {
				if median, p90, summaryErr := sweep.DegreeSummary(sample); summaryErr == nil {
					log.Infow("degree distribution summary", "nodes", n, "k", configs[0].K, "median", median, "p90", p90)
				}
			}
		}

		err = sweep.Run(context.Background(), factory, configs, trialsPerConfig, func(r sweep.ExperimentResult) error {
			return sink.WriteRow([]string{
				fmt.Sprintf("%d", r.N),
				fmt.Sprintf("%d", r.K),
				fmt.Sprintf("%d", r.T),
				fmt.Sprintf("%g", r.PProducer),
				fmt.Sprintf("%g", r.PRet),
				fmt.Sprintf("%g", r.PNew),
				fmt.Sprintf("%g", r.SuccessRate),
			})
		})
		sink.Close()
		if err != nil {
			log.Errorw(err, "sweep failed", "nodes", n)
			os.Exit(1)
		}

		log.Infow("intermediate results saved", "path", outPath)
	}
}

func factoryForModel(model string) (sweep.GraphFactory, error) {
	switch model {
	case "BA":
		return func(n, k int, rng *rand.Rand) (*graph.Graph, error) {
			return graph.BarabasiAlbert(n, k, rng)
		}, nil
	case "RN":
		return func(n, k int, rng *rand.Rand) (*graph.Graph, error) {
			return graph.RandomOutRegular(n, k, rng)
		}, nil
	case "DKG":
		return func(n, k int, rng *rand.Rand) (*graph.Graph, error) {
			return graph.Complete(n)
		}, nil
	default:
		return nil, fmt.Errorf("livenesssim: unknown graph model %q (want BA, RN, or DKG)", model)
	}
}

// minGuardianStep returns the step (and starting value) the BA/RN grid
// uses for the guardian count k, given n.
func minGuardianStep(n int) int {
	return max(5, (n-1)/20)
}

// buildGrid constructs the built-in configuration grid for one node count
// (spec §6 CLI Core B): DKG uses k = n-1 with every threshold in [1, k];
// BA/RN step k and t as described, and both cross the full
// {0.0,...,1.0} producer/retention grid with p_new fixed at 0.0.
func buildGrid(model string, n int) []sweep.Config {
	var configs []sweep.Config
	participation := []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	const pNew = 0.0

	addConfigs := func(k, t int) {
		for _, pProducer := range participation {
			for _, pRet := range participation {
				configs = append(configs, sweep.Config{
					N: n, K: k, T: t,
					PProducer: pProducer, PRet: pRet, PNew: pNew,
				})
			}
		}
	}

	if model == "DKG" {
		k := n - 1
		for t := 1; t <= k; t++ {
			addConfigs(k, t)
		}
		return configs
	}

	kStep := minGuardianStep(n)
	for k := kStep; k <= n-1; k += kStep {
		tStep := max(1, k/20)
		for t := tStep; t <= k; t += tStep {
			addConfigs(k, t)
		}
	}
	return configs
}
