// Package threshold estimates the site-percolation threshold of an n×n grid
// by Monte Carlo simulation.
//
// Each trial starts from an all-closed percolation.Grid, opens uniformly
// random sites (repeats allowed, Open is idempotent) until the grid
// percolates, and records the open fraction NumberOfOpenSites / n². The
// Estimator then reports:
//
//	mean         = Σxᵢ / T
//	stddev       = √( Σ(xᵢ-mean)² / (T-1) )
//	confidenceLo = mean - 1.96·stddev/√T
//	confidenceHi = mean + 1.96·stddev/√T
//
// For T == 1 the sample standard deviation is undefined; StdDev returns NaN
// and both confidence bounds are NaN as well.
//
// Randomness:
//
//   - WithSeed(s): trial i draws from its own math/rand stream seeded with
//     s+i, so results do not depend on WithWorkers.
//   - WithSource(src): every trial draws from src in order; trials run
//     sequentially.
//   - Neither: WithSeed with a time-based seed.
//
// Trials always terminate: opening all n² sites percolates for every n ≥ 1,
// so there is no cap on the number of draws.
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0, trials ≤ 0, or WithSource combined with
//     more than one worker. Grid errors (n too large, a source drawing out
//     of range) wrap percolation.ErrInvalidArgument too, so both match under
//     errors.Is.
package threshold
