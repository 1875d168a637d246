package elgamal

import (
	"math/big"

	"github.com/vocdoni/davinci-tally-tools/crypto/ecc"
)

// PartialDecrypt recovers the plaintext point M = c2 - privateKey·c1 from
// an aggregated ciphertext (spec §4.3). M still needs crypto/tally.Search
// to recover the tally vector it encodes; PartialDecrypt only undoes the
// ElGamal masking, it does not solve any discrete log.
func PartialDecrypt(c1, c2 ecc.Point, privateKey *big.Int) (ecc.Point, error) {
	if privateKey == nil || privateKey.Sign() <= 0 {
		return nil, ErrInvalidPrivateKey
	}

	M := c2.New()
	M.Set(c2)

	mask := c1.New()
	mask.ScalarMult(c1, privateKey) // mask = privateKey·c1
	mask.Neg(mask)                  //       -privateKey·c1
	M.Add(M, mask)                  // M = c2 - privateKey·c1

	return M, nil
}
