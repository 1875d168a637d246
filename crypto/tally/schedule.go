// Package tally implements the exhaustive discrete-log search that recovers
// a homomorphically-summed ballot tally vector from a single curve point
// (spec §4.4, the "hard part" of the ballot tally decryptor).
package tally

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// maxDigit128 is the exclusive upper bound on any value this package treats
// as in-range 128-bit arithmetic; exceeding it is ArithmeticOverflow.
var maxDigit128 = new(uint256.Int).Lsh(uint256.NewInt(1), 128)

// BitWidth returns the smallest m such that 2^m > n; for n == 0 this is 0.
// This is the digit width B used both by the ballot encoder (scalar
// exponent c·B) and by the base schedule (digit base 2^B).
func BitWidth(n uint64) int {
	return bits.Len64(n)
}

// BaseSchedule precomputes the per-option digit bases b_i = (2^B)^i for
// i in [0, k), where B = BitWidth(n) and n is the voter count the tally
// was built for. Digits are independently recoverable because every
// x_i <= n fits in B bits, so b_{i+1} > n*b_i: summing up to n ballots per
// option can never carry into a neighboring digit.
type BaseSchedule struct {
	bitWidth int
	bases    []*uint256.Int
}

// NewBaseSchedule builds the digit base schedule for k options and n
// voters. It fails with ArithmeticOverflow if any b_i would not fit in the
// 128-bit range the searcher operates in.
func NewBaseSchedule(n uint64, k int) (*BaseSchedule, error) {
	if k < 1 {
		return nil, ErrInvalidOptionCount
	}
	m := BitWidth(n)
	bases := make([]*uint256.Int, k)
	for i := range k {
		shift := i * m
		if shift >= 256 {
			return nil, ErrArithmeticOverflow
		}
		b := new(uint256.Int).Lsh(uint256.NewInt(1), uint(shift))
		if b.Cmp(maxDigit128) >= 0 {
			return nil, ErrArithmeticOverflow
		}
		bases[i] = b
	}
	return &BaseSchedule{bitWidth: m, bases: bases}, nil
}

// BitWidth returns B, the per-digit bit width this schedule was built with.
func (s *BaseSchedule) BitWidth() int { return s.bitWidth }

// Base returns b_i, the digit base for option i.
func (s *BaseSchedule) Base(i int) *uint256.Int { return s.bases[i] }

// K returns the number of options (digit positions) this schedule covers.
func (s *BaseSchedule) K() int { return len(s.bases) }

// checkedMulAdd computes sum + x*base, reporting ArithmeticOverflow if
// either the multiplication or the addition leaves the 128-bit range.
func checkedMulAdd(sum *uint256.Int, x uint64, base *uint256.Int) (*uint256.Int, error) {
	term, overflow := new(uint256.Int).MulOverflow(base, uint256.NewInt(x))
	if overflow || term.Cmp(maxDigit128) >= 0 {
		return nil, ErrArithmeticOverflow
	}
	out, overflow := new(uint256.Int).AddOverflow(sum, term)
	if overflow || out.Cmp(maxDigit128) >= 0 {
		return nil, ErrArithmeticOverflow
	}
	return out, nil
}
