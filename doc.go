// Package archipeladoku lays out overlapping puzzle boards, groups them into
// clusters, schedules the order in which their blocks unlock, and builds the
// access graph a multiworld randomizer evaluates.
//
// Pipeline, one pass per player:
//
//	grid        block geometry, names and ids
//	placement   board anchors on the corner-overlap lattice
//	cluster     ramped groups of overlapping boards, origin board first
//	schedule    seeded, credit-budgeted unlock order and cluster requirements
//	region      regions, locations and access rules
//	items       progression and filler item pool
//	generate    the end-to-end pass, snapshots and parallel players
//
// Supporting packages:
//
//	core       thread-safe graph primitives (vertices, edges, adjacency)
//	bfs        breadth-first traversal with hooks and neighbor filters
//	access     access predicates as data (Always, HasAtLeast, HasAll)
//	options    the option bundle, validation and YAML loading
//
// Quick ASCII example (blockSize 9, five boards):
//
//	┌─────┐     ┌─────┐
//	│ 1,1 │     │1,13 │
//	└──┬──┘     └──┬──┘
//	   └──┌─────┐──┘
//	      │ 7,7 │
//	   ┌──└─────┘──┐
//	┌──┴──┐     ┌──┴──┐
//	│13,1 │     │13,13│
//	└─────┘     └─────┘
//
// The centre board shares one corner block with each of its neighbours.
//
//	go run ./cmd/archipeladoku generate --seed 42
package archipeladoku
