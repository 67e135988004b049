// Package vertexcover implements the Vertex Cover engines:
//
//   - Exact — bounded branching: pick the smallest uncovered edge
//     (lexicographic on normalized endpoints), try covering it with one
//     endpoint, then the other. Depth ≤ k, branching factor 2, so O(2^k)
//     recursive calls. It decides "cover of size ≤ k", it does NOT
//     minimize; Minimum iterates k upward for that.
//   - Approx2 — the matching-based 2-approximation: repeatedly take both
//     endpoints of an uncovered edge. Every edge is retired exactly once,
//     so O(V+E), and the cover is at most twice any optimal one.
//
// Edges live in an index-addressed arena with an activity flag per edge and
// an explicit undo log: a branch deactivates the edges its chosen vertex
// touches and restores them on backtrack, so no mutable edge state is ever
// shared across branches and the input Graph is never touched.
//
// Tie-breaking is fixed (lowest edge first, U before V), making every
// result deterministic. Covers are returned in ascending vertex order.
package vertexcover
