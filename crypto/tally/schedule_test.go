package tally

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/holiman/uint256"
)

func TestBitWidth(t *testing.T) {
	c := qt.New(t)

	c.Assert(BitWidth(0), qt.Equals, 0)
	c.Assert(BitWidth(1), qt.Equals, 1)
	c.Assert(BitWidth(9), qt.Equals, 4)
	c.Assert(BitWidth(10), qt.Equals, 4)
	c.Assert(BitWidth(16), qt.Equals, 5)
}

func TestNewBaseScheduleInvariant(t *testing.T) {
	c := qt.New(t)

	const n = uint64(100)
	schedule, err := NewBaseSchedule(n, 5)
	c.Assert(err, qt.IsNil)

	// b_{i+1} must exceed n*b_i, so summing up to n ballots into digit i
	// can never carry into digit i+1.
	nBig := uint256.NewInt(n)
	for i := 0; i < schedule.K()-1; i++ {
		bound := new(uint256.Int).Mul(schedule.Base(i), nBig)
		c.Assert(schedule.Base(i+1).Cmp(bound) > 0, qt.IsTrue)
	}
}

func TestNewBaseScheduleRejectsInvalidK(t *testing.T) {
	c := qt.New(t)

	_, err := NewBaseSchedule(10, 0)
	c.Assert(err, qt.Equals, ErrInvalidOptionCount)
}

func TestNewBaseScheduleOverflowsOnLargeKAndN(t *testing.T) {
	c := qt.New(t)

	// bit width for 1<<40 voters times 10 digit positions overflows 256 bits.
	_, err := NewBaseSchedule(1<<40, 10)
	c.Assert(err, qt.Equals, ErrArithmeticOverflow)
}

func TestCheckedMulAdd(t *testing.T) {
	c := qt.New(t)

	base := uint256.NewInt(16)
	sum, err := checkedMulAdd(uint256.NewInt(1), 3, base)
	c.Assert(err, qt.IsNil)
	c.Assert(sum.Eq(uint256.NewInt(49)), qt.IsTrue)

	hugeBase := new(uint256.Int).Lsh(uint256.NewInt(1), 127)
	_, err = checkedMulAdd(new(uint256.Int), 4, hugeBase)
	c.Assert(err, qt.Equals, ErrArithmeticOverflow)
}
