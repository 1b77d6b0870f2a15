// Package dfs implements depth-first topological sorting on a directed
// core.Graph.
//
// What:
//
//   - TopologicalSort: a linear ordering of vertices such that for every
//     edge u→v, u appears before v. Roots are explored in sorted ID order and
//     neighbors in sorted ID order, so the result is deterministic.
//
// Why:
//
//   - Region graphs must be acyclic: an entrance leading back to an earlier
//     region would let a rule depend on itself.
//   - The order lists regions after every region that can lead into them.
//
// Complexity:
//
//   - Time:   O(V log V + E log E) (sorted iteration)
//   - Memory: O(V)
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrUndirected        graph is undirected
//   - ErrCycleDetected     a back edge was found
//   - ErrNeighborFetch     neighbor lookup failed
//   - context.Canceled     cancelled via WithCancelContext
package dfs
