package primeify

import (
	"github.com/bft-labs/primeify/internal/ports"
	"github.com/bft-labs/primeify/pkg/log"
)

// PixelCodec reads and writes images as flat pixel buffers.
type PixelCodec = ports.PixelCodec

// Primes is the numeric service used to test and advance pixel values.
type Primes = ports.Primes

// Option configures optional behavior of Primeify.
type Option func(*options)

// options holds the optional configuration for a Primeify instance.
type options struct {
	logger log.Logger
	codec  PixelCodec
	primes Primes
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCodec replaces the built-in PNG/RGBZ codec.
func WithCodec(codec PixelCodec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// WithPrimes replaces the math/big numeric service. Config.Rounds is ignored
// when this option is set.
func WithPrimes(primes Primes) Option {
	return func(o *options) {
		o.primes = primes
	}
}
