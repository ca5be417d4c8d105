package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/primeify/internal/domain"
	"github.com/bft-labs/primeify/internal/ports"
	"github.com/bft-labs/primeify/pkg/log"
)

// Job describes a single decode, transform, encode run.
type Job struct {
	Source     string
	Output     string
	Workers    int
	Strategies StrategyPair
}

// Result reports what a run did.
type Result struct {
	Width  int
	Height int
	Stats  Stats
}

// Transformer owns the collaborators of a run: the codec, the numeric
// service and the executor. It holds no per-run state and can be reused.
type Transformer struct {
	codec    ports.PixelCodec
	executor *Executor
	logger   log.Logger
}

// NewTransformer creates a Transformer.
func NewTransformer(codec ports.PixelCodec, primes ports.Primes, logger log.Logger) *Transformer {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Transformer{
		codec:    codec,
		executor: NewExecutor(primes, logger),
		logger:   logger,
	}
}

// Run decodes job.Source, transforms it with job.Workers workers and encodes
// the result to job.Output. An output format the codec cannot write is
// rejected before any worker starts. The context is only consulted before decoding;
// once the workers start the run goes to completion.
func (t *Transformer) Run(ctx context.Context, job Job) (Result, error) {
	if job.Workers <= 0 {
		return Result{}, fmt.Errorf("%w: %d", domain.ErrInvalidWorkerCount, job.Workers)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	img, err := t.codec.Decode(job.Source)
	if err != nil {
		return Result{}, err
	}
	if err := t.codec.CanEncode(job.Output); err != nil {
		return Result{}, err
	}

	t.logger.Info("transforming",
		log.String("source", job.Source),
		log.Int("width", img.Width),
		log.Int("height", img.Height),
		log.Int("workers", job.Workers),
		log.Stringer("strategies", job.Strategies),
	)

	stats, err := t.TransformPixels(img.Pixels, job.Workers, job.Strategies)
	if err != nil {
		return Result{}, err
	}

	if err := t.codec.Encode(job.Output, img); err != nil {
		return Result{}, err
	}

	t.logger.Info("transform complete",
		log.String("output", job.Output),
		log.Int("prime", stats.Prime),
		log.Int("rewritten", stats.Rewritten),
		log.Duration("elapsed", stats.Elapsed),
	)

	return Result{Width: img.Width, Height: img.Height, Stats: stats}, nil
}

// TransformPixels partitions pixels across workers and transforms them in place.
func (t *Transformer) TransformPixels(pixels []domain.Pixel, workers int, pair StrategyPair) (Stats, error) {
	ranges, err := Partition(len(pixels), workers)
	if err != nil {
		return Stats{}, err
	}
	return t.executor.Execute(pixels, ranges, pair)
}
