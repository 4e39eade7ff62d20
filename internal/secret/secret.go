// internal/secret/secret.go
//
// Sources for the number a player has to guess.
//
// The game never calls a random generator directly; it asks a Source for
// "an integer in [lo, hi]". Production code uses Crypto (OS entropy, one draw
// per session). Tests pass Fixed to pin the target.

package secret

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Inclusive bounds for the classic game.
const (
	Min uint32 = 1
	Max uint32 = 100
)

// Source yields an integer uniformly distributed over [lo, hi].
// Implementations must return lo when lo >= hi.
type Source interface {
	InRange(lo, hi uint32) (uint32, error)
}

// Crypto draws from crypto/rand. Rand overrides the entropy source when set.
type Crypto struct {
	Rand io.Reader
}

// InRange returns a uniform value in [lo, hi].
func (c Crypto) InRange(lo, hi uint32) (uint32, error) {
	if lo >= hi {
		return lo, nil
	}
	r := c.Rand
	if r == nil {
		r = rand.Reader
	}
	span := big.NewInt(int64(hi-lo) + 1)
	n, err := rand.Int(r, span)
	if err != nil {
		return 0, fmt.Errorf("draw secret: %w", err)
	}
	return lo + uint32(n.Int64()), nil
}

// Fixed always yields the same value, clamped into [lo, hi].
type Fixed uint32

// InRange returns f clamped to the requested bounds.
func (f Fixed) InRange(lo, hi uint32) (uint32, error) {
	v := uint32(f)
	switch {
	case v < lo:
		return lo, nil
	case v > hi && hi >= lo:
		return hi, nil
	}
	return v, nil
}

// Draw is shorthand for src.InRange(Min, Max).
func Draw(src Source) (uint32, error) {
	return src.InRange(Min, Max)
}
