package elgamal

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/vocdoni/davinci-tally-tools/crypto/ecc"
	"github.com/vocdoni/davinci-tally-tools/crypto/tally"
)

// RandK generates a random nonce in [1, order) for ballot encoding.
func RandK(curve ecc.Point) (*big.Int, error) {
	order := curve.Order()
	k, err := rand.Int(rand.Reader, order)
	if err != nil {
		return nil, fmt.Errorf("elgamal: generate nonce: %w", err)
	}
	if k.Sign() == 0 {
		k = big.NewInt(1)
	}
	return k, nil
}

// EncodeBallot encodes a single vote for option optionIndex (0-indexed, out
// of schedule.K() options) as an ElGamal ciphertext over publicKey. The
// plaintext point is M = b·G where b = schedule.Base(optionIndex), the
// per-option digit base (spec §4.1); summing many such ciphertexts
// homomorphically accumulates one independent counter per digit position,
// which crypto/tally.Search later recovers.
//
// It returns the ciphertext (c1, c2) and the nonce r used, so callers that
// need to verify a cast (CheckK) can retain it.
func EncodeBallot(publicKey ecc.Point, optionIndex int, schedule *tally.BaseSchedule) (c1, c2 ecc.Point, r *big.Int, err error) {
	if optionIndex < 0 || optionIndex >= schedule.K() {
		return nil, nil, nil, ErrCastOutOfRange
	}
	r, err = RandK(publicKey)
	if err != nil {
		return nil, nil, nil, err
	}
	c1, c2 = EncodeBallotWithK(publicKey, optionIndex, schedule, r)
	return c1, c2, r, nil
}

// EncodeBallotWithK is EncodeBallot with an explicit nonce, for tests and
// for CheckK-style verification of a previously-cast ballot.
func EncodeBallotWithK(publicKey ecc.Point, optionIndex int, schedule *tally.BaseSchedule, r *big.Int) (c1, c2 ecc.Point) {
	msg := schedule.Base(optionIndex).ToBig()

	c1 = publicKey.New()
	c1.ScalarBaseMult(r) // C1 = r·G

	s := publicKey.New()
	s.ScalarMult(publicKey, r) // s = r·pubKey

	m := publicKey.New()
	m.ScalarBaseMult(msg) // M = b_i·G

	c2 = publicKey.New()
	c2.Add(m, s) // C2 = M + s
	return c1, c2
}

// CheckK reports whether r was the nonce used to produce c1 under the
// curve's generator, i.e. c1 == r·G, without decrypting anything.
func CheckK(c1 ecc.Point, r *big.Int) bool {
	check := c1.New()
	check.ScalarBaseMult(r)
	return check.Equal(c1)
}
