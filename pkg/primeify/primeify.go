package primeify

import (
	"context"
	"fmt"

	"github.com/bft-labs/primeify/internal/adapters/codec"
	"github.com/bft-labs/primeify/internal/adapters/numeric"
	"github.com/bft-labs/primeify/internal/app"
	"github.com/bft-labs/primeify/internal/domain"
	"github.com/bft-labs/primeify/pkg/log"
)

// Strategy names accepted in Config.
const (
	ActionBlackout       = app.ActionBlackout
	ActionNextPrime      = app.ActionNextPrime
	ExtractionClearAlpha = app.ExtractionClearAlpha
)

// DefaultRounds is the default number of Miller-Rabin rounds.
const DefaultRounds = numeric.DefaultRounds

// Errors returned by the package, re-exported for errors.Is checks.
var (
	ErrInvalidWorkerCount = domain.ErrInvalidWorkerCount
	ErrUnknownStrategy    = domain.ErrUnknownStrategy
)

// CodecError is returned when an image cannot be decoded or encoded.
type CodecError = domain.CodecError

// WorkerError is returned when a worker fails to finish its range.
type WorkerError = domain.WorkerError

// Config selects the transform. The zero value of each field means its default.
type Config struct {
	// Workers is the number of parallel workers. Default: 1.
	Workers int

	// Action is ActionBlackout (default) or ActionNextPrime.
	Action string

	// Extraction is ExtractionClearAlpha (default).
	Extraction string

	// Rounds is the number of Miller-Rabin rounds. Default: DefaultRounds.
	Rounds int
}

// Result reports what a Transform did.
type Result struct {
	Width     int
	Height    int
	Prime     int // pixels left untouched
	Rewritten int // pixels replaced by the action
}

// Primeify runs pixel transforms with a fixed configuration.
// It is safe to call its methods concurrently.
type Primeify struct {
	workers     int
	strategies  app.StrategyPair
	transformer *app.Transformer
}

// New validates cfg and creates a Primeify.
func New(cfg Config, opts ...Option) (*Primeify, error) {
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = DefaultRounds
	}

	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidWorkerCount, cfg.Workers)
	}
	pair, err := app.SelectStrategies(cfg.Extraction, cfg.Action)
	if err != nil {
		return nil, err
	}

	o := options{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.codec == nil {
		o.codec = codec.New()
	}
	if o.primes == nil {
		primes, err := numeric.NewBigPrimes(cfg.Rounds)
		if err != nil {
			return nil, err
		}
		o.primes = primes
	}

	return &Primeify{
		workers:     cfg.Workers,
		strategies:  pair,
		transformer: app.NewTransformer(o.codec, o.primes, o.logger),
	}, nil
}

// Transform decodes src, transforms every pixel and writes the result to out.
// out is only created once the whole image has been encoded.
func (p *Primeify) Transform(ctx context.Context, src, out string) (Result, error) {
	res, err := p.transformer.Run(ctx, app.Job{
		Source:     src,
		Output:     out,
		Workers:    p.workers,
		Strategies: p.strategies,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Width:     res.Width,
		Height:    res.Height,
		Prime:     res.Stats.Prime,
		Rewritten: res.Stats.Rewritten,
	}, nil
}

// TransformPixels transforms pixels in place. The result reports the
// buffer as a single row.
func (p *Primeify) TransformPixels(pixels []uint32) (Result, error) {
	buf := make([]domain.Pixel, len(pixels))
	for i, v := range pixels {
		buf[i] = domain.Pixel(v)
	}

	stats, err := p.transformer.TransformPixels(buf, p.workers, p.strategies)
	if err != nil {
		return Result{}, err
	}

	for i, v := range buf {
		pixels[i] = uint32(v)
	}
	return Result{Width: len(pixels), Height: 1, Prime: stats.Prime, Rewritten: stats.Rewritten}, nil
}
