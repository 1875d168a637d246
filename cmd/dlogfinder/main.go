// Command dlogfinder is the driver/benchmark harness for Core A (spec §6
// CLI Core A): it sweeps a built-in (options, voters) grid, encrypts a
// deterministic round-robin ballot cast, aggregates, partial-decrypts, and
// times the exhaustive tally search, appending one CSV row per
// configuration.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/vocdoni/davinci-tally-tools/crypto/ecc"
	"github.com/vocdoni/davinci-tally-tools/crypto/ecc/bjj"
	"github.com/vocdoni/davinci-tally-tools/crypto/elgamal"
	"github.com/vocdoni/davinci-tally-tools/crypto/tally"
	"github.com/vocdoni/davinci-tally-tools/internal/csvsink"
	"github.com/vocdoni/davinci-tally-tools/log"
)

func main() {
	var (
		outPath  = flag.String("out", "./results.csv", "CSV output path")
		logLevel = flag.String("loglevel", "info", "log level")
		minOpts  = flag.Int("min-options", 6, "smallest option count in the sweep")
		maxOpts  = flag.Int("max-options", 10, "largest option count in the sweep")
		voterCap = flag.Int("voter-budget", 3000, "numerator of the per-options voter cap (voterCap/options^2)")
	)
	flag.Parse()
	log.Init(*logLevel, "stderr")

	sink, err := csvsink.Open(*outPath, []string{"Voters", "Options", "Time"})
	if err != nil {
		log.Errorw(err, "failed to open results CSV")
		os.Exit(1)
	}
	defer sink.Close()

	curve := bjj.New()

	for options := *minOpts; options <= *maxOpts; options++ {
		maxVoters := uint64(*voterCap) / uint64(options*options)
		for voters := uint64(10); voters < maxVoters; voters += 10 {
			elapsed, err := runOne(curve, options, voters)
			if err != nil {
				log.Errorw(err, "decryption failed", "voters", voters, "options", options)
				os.Exit(1)
			}
			if err := sink.WriteRow([]string{
				fmt.Sprintf("%d", voters),
				fmt.Sprintf("%d", options),
				fmt.Sprintf("%d", elapsed.Milliseconds()),
			}); err != nil {
				log.Errorw(err, "failed to append result row")
			}
			log.Infow("decryption complete", "voters", voters, "options", options, "ms", elapsed.Milliseconds())
		}
	}
}

// runOne encrypts a deterministic round-robin cast (cast[i % options]++
// for i in [0, voters)), aggregates, partial-decrypts, and times the
// exhaustive search that recovers the tally vector.
func runOne(curve ecc.Point, options int, voters uint64) (time.Duration, error) {
	keys, err := elgamal.GenerateKey(curve)
	if err != nil {
		return 0, err
	}

	schedule, err := tally.NewBaseSchedule(voters, options)
	if err != nil {
		return 0, err
	}

	cast := make([]uint64, options)
	c1s := make([]ecc.Point, 0, voters)
	c2s := make([]ecc.Point, 0, voters)
	for i := uint64(0); i < voters; i++ {
		option := int(i % uint64(options))
		cast[option]++
		c1, c2, _, err := elgamal.EncodeBallot(keys.PublicKey, option, schedule)
		if err != nil {
			return 0, err
		}
		c1s = append(c1s, c1)
		c2s = append(c2s, c2)
	}

	aggC1, aggC2, err := elgamal.Aggregate(c1s, c2s)
	if err != nil {
		return 0, err
	}

	M, err := elgamal.PartialDecrypt(aggC1, aggC2, keys.PrivateKey)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	recovered, err := tally.Search(context.Background(), curve, M, voters, schedule)
	elapsed := time.Since(start)
	if err != nil {
		return 0, err
	}

	for i, want := range cast {
		if recovered[i] != want {
			return 0, fmt.Errorf("dlogfinder: recovered tally mismatch at option %d: got %d want %d", i, recovered[i], want)
		}
	}
	return elapsed, nil
}
