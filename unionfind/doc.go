// Package unionfind provides an array-backed disjoint-set (union-find)
// structure over the dense element space [0, n).
//
// What:
//
//   - UF tracks which elements belong to the same component under a
//     sequence of Union operations.
//   - Storage is an arena of two int slices (parent, size); there are no
//     pointer-linked nodes, so a UF is cache-friendly and cheap to Reset.
//
// Why:
//
//   - Incremental connectivity: answer "are p and q connected?" after every
//     merge without re-traversing the graph (percolation, Kruskal, image
//     labelling, network reachability).
//
// Algorithm:
//
//   - Union by size: the root of the smaller tree is attached below the root
//     of the larger one, keeping trees O(log n) deep.
//   - Path halving during Find: every visited node is re-pointed to its
//     grandparent, flattening the tree for later queries.
//   - Together these give O(α(n)) amortized time per operation.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory.
//   - Find:      O(α(n)) amortized.
//   - Union:     O(α(n)) amortized.
//   - Connected: O(α(n)) amortized.
//   - Reset:     O(n), no allocation.
//
// Errors:
//
//   - ErrInvalidSize: New called with n < 1.
//   - ErrIndexOutOfRange: an element index outside [0, n).
package unionfind
