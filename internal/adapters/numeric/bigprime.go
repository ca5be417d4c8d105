// Package numeric implements ports.Primes on top of math/big.
package numeric

import (
	"fmt"
	"math/big"

	"github.com/bft-labs/primeify/internal/ports"
)

// DefaultRounds is the number of Miller-Rabin rounds used by the primality
// test. A composite passes with probability at most 4^-DefaultRounds.
const DefaultRounds = 15

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// BigPrimes is a ports.Primes backed by (*big.Int).ProbablyPrime.
// The zero value is not usable; use NewBigPrimes.
type BigPrimes struct {
	rounds int
}

// NewBigPrimes returns a BigPrimes running the given number of Miller-Rabin
// rounds per test.
func NewBigPrimes(rounds int) (*BigPrimes, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("rounds must be non-negative, got %d", rounds)
	}
	return &BigPrimes{rounds: rounds}, nil
}

// Rounds returns the configured number of Miller-Rabin rounds.
func (b *BigPrimes) Rounds() int {
	return b.rounds
}

// IsProbablyPrime reports whether n is probably prime. Values below 2 are
// never prime.
func (b *BigPrimes) IsProbablyPrime(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	return n.ProbablyPrime(b.rounds)
}

// NextPrime sets dst to the smallest probable prime strictly greater than n.
func (b *BigPrimes) NextPrime(dst, n *big.Int) *big.Int {
	if n.Cmp(two) < 0 {
		return dst.Set(two)
	}
	dst.Add(n, one)
	if dst.Bit(0) == 0 {
		dst.Add(dst, one)
	}
	for !dst.ProbablyPrime(b.rounds) {
		dst.Add(dst, two)
	}
	return dst
}

var _ ports.Primes = (*BigPrimes)(nil)
