package tally

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"

	"github.com/vocdoni/davinci-tally-tools/crypto/ecc"
)

// TallyVector is a recovered vote count per option, (x_1, ..., x_k).
type TallyVector []uint64

// Sum returns Σ x_i.
func (v TallyVector) Sum() uint64 {
	var s uint64
	for _, x := range v {
		s += x
	}
	return s
}

// Search recovers the tally vector encoded in curve point M: the unique
// (x_1, ..., x_k), x_i >= 0, Σx_i <= n, such that (Σ x_i*b_i)·G == M, where
// G is curve's generator and b_i comes from schedule. It fails with
// ErrTallyUndecodable if no such tuple exists, or ErrArithmeticOverflow if
// a partial sum would leave the supported 128-bit range.
//
// The search is parallel over x_1 ∈ [0, n]: the range is split into
// contiguous slices, one per worker, each enumerating its slice's inner
// tuples in strict nested index order. A shared atomic "found" flag is
// polled at each outer-slice boundary and at the entrance to each worker's
// innermost loop, so once any worker finds a match the others stop
// starting new branches; the reduction surfaces whichever tuple was found
// first, any of which is correct since digit positions cannot interfere
// (schedule.BitWidth() bits per digit, n < 2^BitWidth()).
func Search(ctx context.Context, curve ecc.Point, target ecc.Point, n uint64, schedule *BaseSchedule) (TallyVector, error) {
	k := schedule.K()
	if k < 2 || k > 10 {
		return nil, ErrInvalidOptionCount
	}

	numWorkers := min(runtime.GOMAXPROCS(0), int(n)+1)
	if numWorkers < 1 {
		numWorkers = 1
	}

	var found atomic.Bool
	var result atomic.Pointer[TallyVector]

	g, gctx := errgroup.WithContext(ctx)
	sliceSize := (n + 1 + uint64(numWorkers) - 1) / uint64(numWorkers)

	for w := range numWorkers {
		lo := uint64(w) * sliceSize
		if lo > n {
			break
		}
		hi := lo + sliceSize - 1
		if hi > n {
			hi = n
		}

		g.Go(func() error {
			e := &enumerator{
				schedule: schedule,
				n:        n,
				target:   target,
				curve:    curve,
				found:    &found,
				x:        make([]uint64, k),
			}
			for x1 := lo; x1 <= hi; x1++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if found.Load() {
					return nil
				}
				zero := new(uint256.Int)
				sum, err := checkedMulAdd(zero, x1, schedule.Base(0))
				if err != nil {
					return err
				}
				e.x[0] = x1
				tuple, matched, err := e.enumerate(1, n-x1, sum)
				if err != nil {
					return err
				}
				if matched {
					found.Store(true)
					cp := tuple
					result.Store(&cp)
					return nil
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if r := result.Load(); r != nil {
		return *r, nil
	}
	return nil, ErrTallyUndecodable
}

// enumerator holds the per-worker state for the recursive tuple walk. x is
// reused as scratch space across the whole worker's slice; the last digit
// level copies it out on a match and the outer levels return that copy,
// so the result never aliases the shared backing array.
type enumerator struct {
	schedule *BaseSchedule
	n        uint64
	target   ecc.Point
	curve    ecc.Point
	found    *atomic.Bool
	x        []uint64
}

// enumerate walks digit positions [idx, k) given the partial sum of digits
// [0, idx) already fixed in e.x and accumulated in sumSoFar. budget is the
// remaining vote count available to positions [idx, k). sumSoFar is never
// mutated in place across sibling iterations: each call computes its own
// sum_j = sum_{j-1} + x_j*b_j from the value handed down by its caller, so
// a sibling at the same depth never sees a stale accumulation left behind
// by a previously-explored branch (spec §9's recompute-per-level rule).
func (e *enumerator) enumerate(idx int, budget uint64, sumSoFar *uint256.Int) (TallyVector, bool, error) {
	k := e.schedule.K()
	if idx == k-1 {
		for x := uint64(0); x <= budget; x++ {
			if e.found.Load() {
				return nil, false, nil
			}
			sum, err := checkedMulAdd(sumSoFar, x, e.schedule.Base(idx))
			if err != nil {
				return nil, false, err
			}
			ok, err := e.matches(sum)
			if err != nil {
				return nil, false, err
			}
			if ok {
				e.x[idx] = x
				out := make(TallyVector, k)
				copy(out, e.x)
				return out, true, nil
			}
		}
		return nil, false, nil
	}

	for x := uint64(0); x <= budget; x++ {
		if e.found.Load() {
			return nil, false, nil
		}
		sum, err := checkedMulAdd(sumSoFar, x, e.schedule.Base(idx))
		if err != nil {
			return nil, false, err
		}
		e.x[idx] = x
		tuple, matched, err := e.enumerate(idx+1, budget-x, sum)
		if err != nil {
			return nil, false, err
		}
		if matched {
			return tuple, true, nil
		}
	}
	return nil, false, nil
}

// matches tests whether sum*G == target, the curve-point-equality oracle
// the whole search bottoms out on.
func (e *enumerator) matches(sum *uint256.Int) (bool, error) {
	candidate := e.curve.New()
	candidate.ScalarBaseMult(sum.ToBig())
	return candidate.Equal(e.target), nil
}
