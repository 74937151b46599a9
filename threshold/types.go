package threshold

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// ErrInvalidArgument indicates a non-positive grid size or trial count, an
// unusable option combination, or a grid the percolation package rejected.
// In the last case the percolation error is wrapped as well, so
// errors.Is(err, percolation.ErrInvalidArgument) also holds.
var ErrInvalidArgument = errors.New("threshold: invalid argument")

// Confidence95 is the two-sided z-score for a 95% normal interval.
const Confidence95 = 1.96

// Source yields uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Option configures an Estimator.
// Option constructors panic on meaningless input; New never panics.
type Option func(*config)

type config struct {
	seed    int64
	source  Source
	workers int
	logger  *slog.Logger
}

func defaultConfig() config {
	return config{
		seed:    time.Now().UnixNano(),
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeed makes the run reproducible: trial i uses
// rand.New(rand.NewSource(seed+i)). Overrides an earlier WithSource.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.source = nil
	}
}

// WithSource draws every row and column from src, in trial order.
// src is not assumed to be safe for concurrent use, so it cannot be
// combined with WithWorkers(k) for k > 1. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("threshold: WithSource(nil)")
	}
	return func(c *config) {
		c.source = src
	}
}

// WithWorkers runs up to k trials concurrently. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("threshold: WithWorkers(%d)", k))
	}
	return func(c *config) {
		c.workers = k
	}
}

// WithLogger sets the logger for per-trial debug records and the final
// summary. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("threshold: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// sourceFor returns the random stream of trial i.
func (c config) sourceFor(i int) Source {
	if c.source != nil {
		return c.source
	}

	return rand.New(rand.NewSource(c.seed + int64(i)))
}

// Summary is the precomputed result of a run.
type Summary struct {
	N            int
	Trials       int
	Mean         float64
	StdDev       float64
	ConfidenceLo float64
	ConfidenceHi float64
}

// Estimator holds the samples and summary statistics of a completed run.
// It is immutable after New returns and safe for concurrent reads.
type Estimator struct {
	samples []float64
	summary Summary
}
