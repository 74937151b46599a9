package percolation

import (
	"errors"

	"github.com/katalvlaran/percolate/unionfind"
)

// ErrInvalidArgument indicates a non-positive grid size or a site
// coordinate outside [1, n]. Callers should test with errors.Is.
var ErrInvalidArgument = errors.New("percolation: invalid argument")

// neighborOffsets lists the four orthogonal neighbours as (dRow, dCol).
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Option configures a Grid at construction.
type Option func(*config)

type config struct {
	backwashGuard bool
}

func defaultConfig() config {
	return config{}
}

// WithBackwashGuard makes IsFull ignore connections that only exist through
// the virtual-bottom node. It costs a second union-find of n²+1 elements.
// Percolates and NumberOfOpenSites are unaffected.
func WithBackwashGuard() Option {
	return func(c *config) {
		c.backwashGuard = true
	}
}

// Grid is an n×n site-percolation system.
//
// open is the row-major open mask; open[(row-1)*n+(col-1)] reports site
// (row, col). openCount is the number of distinct open sites.
// uf spans the n² sites plus top (n²) and bottom (n²+1).
// full is nil unless WithBackwashGuard was given; it spans the n² sites
// plus top only.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	n         int
	open      []bool
	openCount int
	uf        *unionfind.UF
	full      *unionfind.UF
	top       int
	bottom    int
}
