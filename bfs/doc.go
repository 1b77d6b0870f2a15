// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, depth and parent links.
//
// What
//
//   - Explore vertices in non-decreasing distance from a start vertex.
//   - OnVisit hooks may stop the walk early by returning ErrStop, which ends
//     the search without an error; any other hook error aborts it.
//   - WithFilterNeighbor prunes individual edges (curr→neighbor); the region
//     graph uses it to skip connections whose access rule does not hold, and
//     the cluster builder to skip boards already claimed by another cluster.
//   - WithContext makes long walks cancellable between visits.
//
// Determinism
//
//	core.NeighborIDs is sorted, and neighbours are enqueued in that order,
//	so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil: graph pointer is nil.
//   - ErrStartVertexNotFound: start ID absent.
//   - ctx.Err(): the context passed to WithContext was cancelled.
//   - ErrNeighbors: neighbour lookup failed.
package bfs
