// Package schedule computes the order in which blocks become available to a
// player, and how far into that order each cluster opens.
//
// What:
//
//   - Build runs a seeded, credit-budgeted weighted selection over clusters.
//     Credits bound how many blocks may be handed out before the player has
//     earned more checks; cashing in a cluster pays its reward back.
//   - Requirement translates the order into the number of unlock items a
//     cluster needs beyond the initial allotment.
//
// Each step of Build:
//
//  1. Weight every active cluster: 0 if its uncommitted blocks exceed the
//     credits, otherwise credits − uncommitted + 1.
//  2. Take the origin cluster if it is affordable, else pick a target by
//     weight.
//  3. Draw extra blocks from the pool outside the target, at most the spare
//     credits and never so many that the remaining clusters could no longer
//     be cashed in one by one in id order.
//  4. Append the target's uncommitted blocks and the extras, shuffled.
//  5. credits = spare − extras + Reward(target).
//  6. After the initial allotment has been emitted, filler sentinels join the
//     pool once and mix into later draws.
//
// Clusters from cluster.Group start with the lone origin board and grow by
// at most one board more than everything before them, so with blockSize
// initial credits the id-order plan always exists and Build cannot stall.
//
// Determinism:
//
//	Clusters are visited by id and pools are sorted before every random draw,
//	so a fixed seed and cluster set always give the same order.
//
// Errors:
//
//   - ErrNoClusters: nothing to schedule.
//   - ErrNeedRandSource: nil *rand.Rand.
//   - ErrInvariantViolation: no cluster is affordable while some remain. This
//     is a defect in credit accounting, never an input problem.
package schedule
