package unionfind

import "fmt"

// New returns a UF over n elements, each in its own singleton component.
// Returns ErrInvalidSize if n < 1.
// Complexity: O(n) time and memory.
func New(n int) (*UF, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf := &UF{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	uf.Reset()

	return uf, nil
}

// Reset returns every element to its own singleton component.
// The backing arrays are reused.
// Complexity: O(n), no allocation.
func (uf *UF) Reset() {
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	uf.count = len(uf.parent)
}

// Len returns the number of elements.
func (uf *UF) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint components.
func (uf *UF) Count() int {
	return uf.count
}

// Find returns the root of the component containing p.
// Path halving re-points each visited node to its grandparent.
// Complexity: O(α(n)) amortized.
func (uf *UF) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// root walks to the root of p without bounds checking.
func (uf *UF) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// Union merges the components containing p and q.
// It reports true if a merge happened and false if p and q were already
// connected.
// Complexity: O(α(n)) amortized.
func (uf *UF) Union(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	rp, rq := uf.root(p), uf.root(q)
	if rp == rq {
		return false, nil
	}
	// Attach the smaller tree below the larger one; ties go to rp.
	if uf.size[rp] < uf.size[rq] {
		rp, rq = rq, rp
	}
	uf.parent[rq] = rp
	uf.size[rp] += uf.size[rq]
	uf.count--

	return true, nil
}

// Connected reports whether p and q are in the same component.
// Complexity: O(α(n)) amortized.
func (uf *UF) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// Size returns the number of elements in the component containing p.
func (uf *UF) Size(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.size[uf.root(p)], nil
}
