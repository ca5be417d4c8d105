package ports

import "math/big"

// Primes is the numeric service consumed by the primality-action strategies.
// Implementations must be safe for concurrent use by multiple workers.
type Primes interface {
	// IsProbablyPrime reports whether n passes the probabilistic primality test.
	IsProbablyPrime(n *big.Int) bool

	// NextPrime sets dst to the smallest probable prime strictly greater
	// than n and returns dst. dst and n may alias.
	NextPrime(dst, n *big.Int) *big.Int
}
