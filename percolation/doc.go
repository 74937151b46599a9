// Package percolation models site percolation on an n×n grid.
//
// What:
//
//   - Grid holds n×n sites, each closed or open. Sites only ever go from
//     closed to open.
//   - A site is full when it is reachable from the top row through a chain
//     of orthogonally adjacent open sites.
//   - The grid percolates when some full site lies in the bottom row.
//
// How:
//
//   - Connectivity lives in a unionfind.UF over n²+2 elements: the n² sites
//     in row-major order, then a virtual-top node (index n²) and a
//     virtual-bottom node (index n²+1).
//   - Opening a row-1 site joins it to virtual-top; opening a row-n site
//     joins it to virtual-bottom; every open also joins up to four open
//     neighbours.
//   - Percolates is then a single Connected(top, bottom) query instead of
//     an any-top-to-any-bottom search.
//
// Backwash:
//
//	With a single union-find, once the grid percolates a bottom-row site can
//	look full only because it touches virtual-bottom, which touches the top.
//	This is the classic definition and the default. WithBackwashGuard keeps a
//	second union-find without virtual-bottom and answers IsFull from it.
//
// Coordinates are 1-indexed: rows and columns run over [1, n].
//
// Complexity:
//
//   - New:                 O(n²) time and memory.
//   - Open:                O(α(n²)) amortized.
//   - IsOpen:              O(1).
//   - IsFull, Percolates:  O(α(n²)) amortized.
//   - Reset:               O(n²), no allocation.
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0 at construction, or a row/column outside
//     [1, n] passed to Open, IsOpen or IsFull.
package percolation
