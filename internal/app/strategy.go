package app

import (
	"fmt"
	"math/big"

	"github.com/bft-labs/primeify/internal/domain"
	"github.com/bft-labs/primeify/internal/ports"
)

// Extraction derives the integer tested for primality from a pixel.
type Extraction int

const (
	// ClearAlpha uses the low 24 color bits and ignores alpha.
	ClearAlpha Extraction = iota
)

// Action decides what happens to a pixel once its value has been tested.
type Action int

const (
	// BlackoutNonPrime replaces non-prime pixels with opaque black.
	BlackoutNonPrime Action = iota

	// AdvanceToNextPrime replaces the color of non-prime pixels with the next
	// prime, clamping to Saturated when it no longer fits in 24 bits.
	AdvanceToNextPrime
)

// Strategy names as used on the command line and in config files.
const (
	ExtractionClearAlpha = "clear-alpha"
	ActionBlackout       = "blackout"
	ActionNextPrime      = "next-prime"
)

// String returns the configuration name of the extraction.
func (e Extraction) String() string {
	switch e {
	case ClearAlpha:
		return ExtractionClearAlpha
	default:
		return fmt.Sprintf("Extraction(%d)", int(e))
	}
}

// String returns the configuration name of the action.
func (a Action) String() string {
	switch a {
	case BlackoutNonPrime:
		return ActionBlackout
	case AdvanceToNextPrime:
		return ActionNextPrime
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseExtraction resolves an extraction name. The empty string selects ClearAlpha.
func ParseExtraction(name string) (Extraction, error) {
	switch name {
	case "", ExtractionClearAlpha:
		return ClearAlpha, nil
	default:
		return 0, fmt.Errorf("%w: extraction %q", domain.ErrUnknownStrategy, name)
	}
}

// ParseAction resolves an action name. The empty string selects BlackoutNonPrime.
func ParseAction(name string) (Action, error) {
	switch name {
	case "", ActionBlackout:
		return BlackoutNonPrime, nil
	case ActionNextPrime:
		return AdvanceToNextPrime, nil
	default:
		return 0, fmt.Errorf("%w: action %q", domain.ErrUnknownStrategy, name)
	}
}

// StrategyPair is the per-run transform configuration. It is fixed before
// any worker starts and copied into each of them.
type StrategyPair struct {
	Extraction Extraction
	Action     Action
}

// DefaultStrategies returns ClearAlpha + BlackoutNonPrime.
func DefaultStrategies() StrategyPair {
	return StrategyPair{Extraction: ClearAlpha, Action: BlackoutNonPrime}
}

// SelectStrategies resolves both strategy names into a StrategyPair.
func SelectStrategies(extraction, action string) (StrategyPair, error) {
	e, err := ParseExtraction(extraction)
	if err != nil {
		return StrategyPair{}, err
	}
	a, err := ParseAction(action)
	if err != nil {
		return StrategyPair{}, err
	}
	return StrategyPair{Extraction: e, Action: a}, nil
}

// String returns "extraction+action".
func (s StrategyPair) String() string {
	return s.Extraction.String() + "+" + s.Action.String()
}

// extract sets v to the value of p under e.
func (e Extraction) extract(p domain.Pixel, v *big.Int) {
	switch e {
	case ClearAlpha:
		v.SetUint64(uint64(p & domain.ColorMask))
	default:
		panic(fmt.Sprintf("unknown extraction %d", int(e)))
	}
}

// apply rewrites *p according to a, given the extracted value v.
// v may be overwritten. It reports whether *p changed.
func (a Action) apply(primes ports.Primes, v *big.Int, p *domain.Pixel) bool {
	if primes.IsProbablyPrime(v) {
		return false
	}

	switch a {
	case BlackoutNonPrime:
		*p = domain.OpaqueBlack
	case AdvanceToNextPrime:
		next := primes.NextPrime(v, v)
		if next.BitLen() > domain.ColorBits {
			*p = domain.Saturated
		} else {
			*p = domain.Pixel(next.Uint64())
		}
		*p |= domain.AlphaMask
	default:
		panic(fmt.Sprintf("unknown action %d", int(a)))
	}
	return true
}
