// Package region builds the access graph of one player's world.
//
// What:
//
//   - A root region "Menu" holding the victory location "Solve Everything".
//   - One region "Board <id>" per cluster, entered from Menu under a rule that
//     depends on the progression mode.
//   - Board, row and column locations on each cluster region.
//   - Block locations: on the owning cluster region, or, for a block shared by
//     several clusters, on a sub-region "Block r,c Overlap" entered from every
//     owner.
//
// Regions are vertices of a directed core.Graph; each edge carries an
// access.Rule. Reachable walks the graph with bfs, following only edges whose
// rule holds for the given inventory; Route reports the entrances taken.
//
// Errors:
//
//   - options.ErrUnknownProgression: Input.Progression is neither fixed nor shuffled.
//   - ErrDuplicateLocation: two locations share a name or id.
//   - ErrNoClusters: Input.Clusters is empty.
//   - ErrRegionNotFound, ErrUnreachable: from Region and Route.
//   - dfs.ErrCycleDetected, ctx.Err(): from the acyclicity check in Build.
//
// Complexity: O(B + C·S) to build, where B is the number of blocks, C the
// number of clusters and S the block size.
package region
