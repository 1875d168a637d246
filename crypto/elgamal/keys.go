// Package elgamal implements the additively-homomorphic ElGamal ballot
// encoder, ciphertext aggregator, and partial decryptor (spec §4.1–4.3):
// the producer-facing half of the ballot tally decryptor, whose hard part
// (recovering the tally vector from the decrypted point) lives in
// crypto/tally.
package elgamal

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/vocdoni/davinci-tally-tools/crypto/ecc"
)

// VotingKeyPair is an ElGamal key pair over a Point-implementing curve.
type VotingKeyPair struct {
	PublicKey  ecc.Point
	PrivateKey *big.Int
}

// GenerateKey generates a new ElGamal key pair on curve. The private scalar
// is drawn uniformly from [1, order), never zero.
func GenerateKey(curve ecc.Point) (*VotingKeyPair, error) {
	order := curve.Order()
	d, err := rand.Int(rand.Reader, order)
	if err != nil {
		return nil, fmt.Errorf("elgamal: generate private key scalar: %w", err)
	}
	if d.Sign() == 0 {
		d = big.NewInt(1)
	}
	pub := curve.New()
	pub.SetGenerator()
	pub.ScalarMult(pub, d)
	return &VotingKeyPair{PublicKey: pub, PrivateKey: d}, nil
}
