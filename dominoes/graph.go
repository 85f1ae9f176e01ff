// SPDX-License-Identifier: MIT
// Package dominoes: the pip multigraph — construction, connectivity,
// degree parity, and the Eulerian walk.

package dominoes

import "fmt"

// pipGraph is the undirected multigraph induced by a tile multiset:
// pip values are vertices (densely re-numbered), tiles are edges.
// adj holds one entry per edge end, so a double (x|x) appears twice in
// its own list and len(adj[u]) is exactly deg(u).
type pipGraph struct {
	ids  map[int]int // pip value → dense vertex id
	pips []int       // dense vertex id → pip value
	adj  [][]int     // dense vertex id → incident vertex ids
}

// buildPipGraph validates pips and assembles the multigraph.
// Every vertex it creates carries at least one edge end.
func buildPipGraph(tiles []Tile) (*pipGraph, error) {
	g := &pipGraph{ids: make(map[int]int, len(tiles))}
	for i, t := range tiles {
		if t.Left < 0 || t.Right < 0 {
			return nil, fmt.Errorf("%w: tile %d is (%d|%d)", ErrPipValue, i, t.Left, t.Right)
		}
		u, v := g.vertex(t.Left), g.vertex(t.Right)
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}

	return g, nil
}

// vertex returns the dense id for pip, allocating one on first sight.
// First-seen numbering keeps every later traversal deterministic.
func (g *pipGraph) vertex(pip int) int {
	if id, ok := g.ids[pip]; ok {
		return id
	}
	id := len(g.pips)
	g.ids[pip] = id
	g.pips = append(g.pips, pip)
	g.adj = append(g.adj, nil)

	return id
}

// connected reports whether all vertices lie in one component. Since
// every vertex carries an edge end, this is exactly "all edges in one
// component". BFS from vertex 0.
func (g *pipGraph) connected() bool {
	if len(g.adj) == 0 {
		return true
	}

	seen := make([]bool, len(g.adj))
	queue := []int{0}
	seen[0] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	for _, ok := range seen {
		if !ok {
			return false
		}
	}

	return true
}

// oddVertices returns the ids of odd-degree vertices in id order.
// Doubles never appear here: a self-loop adds two to its degree.
func (g *pipGraph) oddVertices() []int {
	var odd []int
	for u := range g.adj {
		if len(g.adj[u])%2 == 1 {
			odd = append(odd, u)
		}
	}

	return odd
}

// eulerianWalk traverses every edge exactly once starting from start,
// via Hierholzer's algorithm over a consumable copy of the adjacency
// lists. Callers must have established feasibility; the returned vertex
// sequence then has exactly one entry per edge plus one.
func (g *pipGraph) eulerianWalk(start int) []int {
	// Local copy: edges are deleted as they are traversed.
	local := make([][]int, len(g.adj))
	for u := range g.adj {
		local[u] = append([]int(nil), g.adj[u]...)
	}

	var walk []int
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(local[u]) == 0 {
			// No edges left here: emit u and backtrack.
			walk = append(walk, u)
			stack = stack[:len(stack)-1]

			continue
		}

		// Consume one edge u—v ...
		v := local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		// ... and its mirror entry v—u.
		for i, x := range local[v] {
			if x == u {
				local[v] = append(local[v][:i], local[v][i+1:]...)

				break
			}
		}
		stack = append(stack, v)
	}

	return walk
}
