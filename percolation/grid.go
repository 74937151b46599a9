package percolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolate/unionfind"
)

// New returns an n×n Grid with every site closed.
// Returns ErrInvalidArgument if n ≤ 0 or if n²+2 does not fit in an int.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size %d must be positive", ErrInvalidArgument, n)
	}
	if n > (math.MaxInt-2)/n {
		return nil, fmt.Errorf("%w: grid size %d too large", ErrInvalidArgument, n)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sites := n * n
	uf, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: New(%d): %w", n, err)
	}
	g := &Grid{
		n:      n,
		open:   make([]bool, sites),
		uf:     uf,
		top:    sites,
		bottom: sites + 1,
	}
	if cfg.backwashGuard {
		if g.full, err = unionfind.New(sites + 1); err != nil {
			return nil, fmt.Errorf("percolation: New(%d): %w", n, err)
		}
	}

	return g, nil
}

// N returns the grid dimension.
func (g *Grid) N() int {
	return g.n
}

// validate reports ErrInvalidArgument if (row, col) is outside [1, n]².
func (g *Grid) validate(row, col int) error {
	if row < 1 || row > g.n || col < 1 || col > g.n {
		return fmt.Errorf("%w: site (%d,%d) outside [1,%d]", ErrInvalidArgument, row, col, g.n)
	}

	return nil
}

// index maps a validated 1-indexed (row, col) to its row-major element.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

// link joins sites p and q in every union-find the grid keeps.
// Both indices are in range by construction.
func (g *Grid) link(p, q int) {
	_, _ = g.uf.Union(p, q)
	if g.full != nil {
		_, _ = g.full.Union(p, q)
	}
}

// Open opens site (row, col) and connects it to its open neighbours.
// Opening an already open site is a no-op.
// Returns ErrInvalidArgument for coordinates outside [1, n].
// Complexity: O(α(n²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	p := g.index(row, col)
	if g.open[p] {
		return nil
	}
	g.open[p] = true
	g.openCount++

	if row == 1 {
		g.link(p, g.top)
	}
	if row == g.n {
		// Virtual-bottom exists only in uf; full never sees it.
		_, _ = g.uf.Union(p, g.bottom)
	}
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if r < 1 || r > g.n || c < 1 || c > g.n {
			continue
		}
		if q := g.index(r, c); g.open[q] {
			g.link(p, q)
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrInvalidArgument for coordinates outside [1, n].
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and connected to the top
// row through open sites.
// Returns ErrInvalidArgument for coordinates outside [1, n].
// Complexity: O(α(n²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}
	p := g.index(row, col)
	// A closed site is never unioned, so this check only makes the
	// contract explicit.
	if !g.open[p] {
		return false, nil
	}
	uf := g.uf
	if g.full != nil {
		uf = g.full
	}
	ok, _ := uf.Connected(p, g.top)

	return ok, nil
}

// NumberOfOpenSites returns the number of distinct sites opened so far.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// OpenFraction returns NumberOfOpenSites / n².
func (g *Grid) OpenFraction() float64 {
	return float64(g.openCount) / float64(len(g.open))
}

// Percolates reports whether the top row is connected to the bottom row.
// Once true it stays true.
// Complexity: O(α(n²)) amortized.
func (g *Grid) Percolates() bool {
	ok, _ := g.uf.Connected(g.top, g.bottom)

	return ok
}

// Reset closes every site and clears all connections, reusing storage.
// Complexity: O(n²), no allocation.
func (g *Grid) Reset() {
	clear(g.open)
	g.openCount = 0
	g.uf.Reset()
	if g.full != nil {
		g.full.Reset()
	}
}
