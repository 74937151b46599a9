package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for union-find operations.
var (
	// ErrInvalidSize indicates New was asked for fewer than one element.
	ErrInvalidSize = errors.New("unionfind: size must be at least 1")

	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// UF is a weighted quick-union structure with path compression.
//
// parent[i] is the parent of element i; i is a root iff parent[i] == i.
// size[r] is the number of elements in the tree rooted at r and is only
// meaningful for roots.
// count is the current number of disjoint components.
//
// A UF is not safe for concurrent use.
type UF struct {
	parent []int
	size   []int
	count  int
}

// validate reports ErrIndexOutOfRange (with the offending index) when p is
// not an element of uf.
func (uf *UF) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, p, len(uf.parent))
	}

	return nil
}
