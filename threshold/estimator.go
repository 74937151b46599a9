package threshold

import (
	"context"
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/percolation"
)

// New runs trials independent percolation experiments on n×n grids and
// returns their summary. It is Run with context.Background().
// Returns ErrInvalidArgument if n ≤ 0, trials ≤ 0 or n² does not fit in an
// int.
func New(n, trials int, opts ...Option) (*Estimator, error) {
	return Run(context.Background(), n, trials, opts...)
}

// Run is New with cancellation: ctx is checked before every trial, and the
// first error (including ctx.Err()) aborts the run.
//
// Complexity: O(trials · n² · α(n²)) time; O(n²) memory per worker plus
// O(trials) for the samples.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Estimator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size %d must be positive", ErrInvalidArgument, n)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trial count %d must be positive", ErrInvalidArgument, trials)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source != nil && cfg.workers > 1 {
		return nil, fmt.Errorf("%w: a shared source cannot feed %d workers", ErrInvalidArgument, cfg.workers)
	}

	samples := make([]float64, trials)
	var err error
	if cfg.workers == 1 {
		err = runSequential(ctx, cfg, n, samples)
	} else {
		err = runParallel(ctx, cfg, n, samples)
	}
	if err != nil {
		return nil, err
	}

	e := &Estimator{
		samples: samples,
		summary: summarize(n, samples),
	}
	cfg.logger.Info("percolation threshold estimated",
		"n", n,
		"trials", trials,
		"workers", cfg.workers,
		"mean", e.summary.Mean,
		"stddev", e.summary.StdDev,
	)

	return e, nil
}

// runSequential reuses one grid for all trials.
func runSequential(ctx context.Context, cfg config, n int, samples []float64) error {
	grid, err := percolation.New(n)
	if err != nil {
		return gridError(err)
	}
	for i := range samples {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("threshold: trial %d: %w", i, err)
		}
		if i > 0 {
			grid.Reset()
		}
		if samples[i], err = trial(grid, cfg.sourceFor(i)); err != nil {
			return fmt.Errorf("threshold: trial %d: %w", i, err)
		}
		logTrial(cfg, i, grid)
	}

	return nil
}

// runParallel gives every trial its own grid and sample slot and runs at
// most cfg.workers of them at once.
func runParallel(ctx context.Context, cfg config, n int, samples []float64) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := range samples {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("threshold: trial %d: %w", i, err)
			}
			grid, err := percolation.New(n)
			if err != nil {
				return gridError(err)
			}
			if samples[i], err = trial(grid, cfg.sourceFor(i)); err != nil {
				return fmt.Errorf("threshold: trial %d: %w", i, err)
			}
			logTrial(cfg, i, grid)

			return nil
		})
	}

	return eg.Wait()
}

// trial opens random sites of an all-closed grid until it percolates and
// returns the open fraction at that moment. Repeated draws of an open site
// are allowed. An error means src produced a value outside [0, n).
func trial(g *percolation.Grid, src Source) (float64, error) {
	n := g.N()
	for !g.Percolates() {
		row := src.Intn(n) + 1
		col := src.Intn(n) + 1
		if err := g.Open(row, col); err != nil {
			return 0, gridError(err)
		}
	}

	return g.OpenFraction(), nil
}

// gridError tags an error from the percolation package with this
// package's sentinel, keeping the original in the chain.
func gridError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

func logTrial(cfg config, i int, g *percolation.Grid) {
	cfg.logger.Debug("trial percolated",
		"trial", i,
		"open", g.NumberOfOpenSites(),
		"fraction", g.OpenFraction(),
	)
}

// summarize computes mean, sample standard deviation and the 95% interval.
// A single sample has no sample standard deviation, so StdDev and both
// bounds are NaN.
func summarize(n int, samples []float64) Summary {
	t := len(samples)
	mean := stat.Mean(samples, nil)
	sd := math.NaN()
	if t > 1 {
		sd = stat.StdDev(samples, nil)
	}
	half := Confidence95 * sd / math.Sqrt(float64(t))

	return Summary{
		N:            n,
		Trials:       t,
		Mean:         mean,
		StdDev:       sd,
		ConfidenceLo: mean - half,
		ConfidenceHi: mean + half,
	}
}

// N returns the grid dimension used by every trial.
func (e *Estimator) N() int { return e.summary.N }

// Trials returns the number of completed trials.
func (e *Estimator) Trials() int { return e.summary.Trials }

// Mean returns the mean open fraction at percolation.
func (e *Estimator) Mean() float64 { return e.summary.Mean }

// StdDev returns the sample standard deviation, or NaN for one trial.
func (e *Estimator) StdDev() float64 { return e.summary.StdDev }

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (e *Estimator) ConfidenceLo() float64 { return e.summary.ConfidenceLo }

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (e *Estimator) ConfidenceHi() float64 { return e.summary.ConfidenceHi }

// Summary returns all precomputed statistics.
func (e *Estimator) Summary() Summary { return e.summary }

// Samples returns a copy of the per-trial open fractions, in trial order.
func (e *Estimator) Samples() []float64 { return slices.Clone(e.samples) }
