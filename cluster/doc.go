// Package cluster partitions board anchors into clusters of overlapping
// boards. A cluster owns its boards and the union of their blocks; a block on
// the seam between two clusters belongs to both.
//
// Grouping:
//
//   - Cluster 1 is the board covering the origin block, alone.
//   - Later sizes ramp 1, 2, 4, ... (each at most one board more than all
//     earlier clusters together) until they reach targetSize; the remaining
//     boards split into balanced clusters of at most targetSize.
//   - Boards are vertices of an undirected overlap graph; an edge joins two
//     boards that share a block.
//   - Each cluster grows breadth-first from the first unclaimed board in scan
//     order, over unclaimed neighbours only, until its quota is met. When a
//     connected patch runs dry, growth resumes at the next unclaimed board.
//
// Guarantees: ids are 1..k in creation order, every anchor is in exactly one
// cluster, no cluster is empty, and Blocks equals the union of BuildBlocks
// over Boards.
//
// Errors:
//
//   - ErrNoAnchors: no board anchors supplied.
//   - ErrBadTargetSize: targetSize < 1.
//   - grid.ErrUnsupportedBlockSize: from block construction.
//   - ctx.Err(): the context was cancelled while clusters were growing.
package cluster
