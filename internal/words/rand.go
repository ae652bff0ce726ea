package words

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// NewRand returns a ChaCha8-backed generator seeded from crypto/rand.
func NewRand() (*rand.Rand, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return rand.New(rand.NewChaCha8(seed)), nil
}
