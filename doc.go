// Package percolate estimates the site-percolation threshold of square
// lattices with an incremental union-find connectivity oracle.
//
// What is percolation?
//
//	Each site of an n×n grid is independently open or closed. The system
//	percolates when open sites form an orthogonally connected path from the
//	top row to the bottom row. As the fraction p of open sites grows, the
//	probability of percolation jumps from ≈0 to ≈1 around p* ≈ 0.5927 for
//	large square grids.
//
// Layout:
//
//	unionfind/   — array-backed weighted quick-union with path compression
//	percolation/ — Grid: open sites one at a time, ask IsFull / Percolates
//	threshold/   — Estimator: Monte Carlo trials, mean, stddev, 95% interval
//	cmd/percolation-stats — command-line front end
//
// Quick ASCII example (n=3, X = open):
//
//	X . .
//	X X .
//	. X .
//
// percolates: the path (1,1)→(2,1)→(2,2)→(3,2) links top to bottom.
//
//	go run ./cmd/percolation-stats 200 100
package percolate
