package elgamal

import "github.com/vocdoni/davinci-tally-tools/crypto/ecc"

// Aggregate homomorphically sums a batch of ballot ciphertexts,
// componentwise, into a single ciphertext over the whole election (spec
// §4.2). It is associative and commutative: the result does not depend on
// ballot order. It fails with ErrEmptyAggregate if given no ciphertexts.
func Aggregate(c1s, c2s []ecc.Point) (c1, c2 ecc.Point, err error) {
	if len(c1s) == 0 || len(c2s) == 0 {
		return nil, nil, ErrEmptyAggregate
	}

	c1 = c1s[0].New()
	c1.Set(c1s[0])
	for _, p := range c1s[1:] {
		c1.Add(c1, p)
	}

	c2 = c2s[0].New()
	c2.Set(c2s[0])
	for _, p := range c2s[1:] {
		c2.Add(c2, p)
	}
	return c1, c2, nil
}
