// Package hampath implements two Hamiltonian Path engines over the
// undirected graph type:
//
//   - Backtracking — DFS that grows a path vertex by vertex, trying start
//     vertices and neighbors in ascending id order and undoing the last
//     extension when stuck. Worst case O(n!) recursive calls; every call
//     counts one node.
//   - HeldKarp — reachability DP over (visited-set, end-vertex) pairs:
//     dp[mask][j] holds iff some path visits exactly mask and ends at j.
//     O(n²·2^n) time, O(n·2^n) space; every (mask, j) pair examined counts
//     one transition, and a predecessor table reconstructs a concrete path.
//
// Both engines agree on feasibility for every graph and return the path
// itself, never just yes/no. The empty graph trivially has the empty path.
//
// Held–Karp allocates 2^n·n table cells, so it enforces a vertex budget
// (default 20, raisable with WithMaxVertices up to the hard mask-width cap
// of 62) and rejects larger inputs with ErrTooManyVertices before touching
// memory. Backtracking takes the usual WithMaxNodes budget instead.
package hampath
