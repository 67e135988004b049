// SPDX-License-Identifier: MIT
// Package: npcomplete/graph
//
// graph.go — the undirected simple graph type, its sentinels, and accessors.

package graph

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrBadVertex indicates a non-positive vertex id.
	ErrBadVertex = errors.New("graph: vertex id must be positive")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")
)

// Edge is an undirected edge, normalized so that U < V.
type Edge struct {
	U, V int
}

// Graph is an undirected simple graph over positive integer vertices.
// The zero value is not usable; construct with New.
type Graph struct {
	adj map[int]map[int]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}

// AddVertex inserts v as an isolated vertex. Inserting an existing vertex
// is a no-op.
//
// Errors: ErrBadVertex for v ≤ 0.
func (g *Graph) AddVertex(v int) error {
	if v <= 0 {
		return fmt.Errorf("AddVertex(%d): %w", v, ErrBadVertex)
	}
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[int]struct{})
	}

	return nil
}

// AddEdge inserts the undirected edge {u, v}, creating missing endpoints.
// Adjacency is written in both directions, so the symmetry invariant holds
// by construction. Re-adding an existing edge is a no-op.
//
// Errors: ErrBadVertex, ErrSelfLoop.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}

	return nil
}

// HasVertex reports whether v is present.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adj[v]

	return ok
}

// HasEdge reports whether the undirected edge {u, v} is present.
func (g *Graph) HasEdge(u, v int) bool {
	nbrs, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	return total / 2
}

// Vertices returns all vertex ids in ascending order.
func (g *Graph) Vertices() []int {
	out := make([]int, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Neighbors returns the neighbors of v in ascending order.
//
// Errors: ErrVertexNotFound.
func (g *Graph) Neighbors(v int) ([]int, error) {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	sort.Ints(out)

	return out, nil
}

// Edges returns every undirected edge exactly once, normalized to U < V and
// sorted lexicographically. This is the deterministic edge order the
// branching solvers rely on.
//
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// Clone returns an independent deep copy of g.
func (g *Graph) Clone() *Graph {
	out := New()
	for v, nbrs := range g.adj {
		cp := make(map[int]struct{}, len(nbrs))
		for u := range nbrs {
			cp[u] = struct{}{}
		}
		out.adj[v] = cp
	}

	return out
}
