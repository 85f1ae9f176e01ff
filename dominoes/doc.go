// Package dominoes decides whether a multiset of domino tiles can be
// laid out as one continuous row, and constructs such a row when it
// exists.
//
// 🚀 What is the row problem?
//
//	A tile (x|y) may be played in either orientation; adjacent tiles
//	must touch with equal pips. Model pips as vertices and tiles as
//	edges of an undirected multigraph (repeats and doubles allowed):
//	the tiles form a single row exactly when that multigraph has an
//	Eulerian path — all edges in one connected component, and the
//	number of odd-degree vertices is 0 or 2. A double (x|x) is a
//	self-loop and adds two to its vertex's degree.
//
// ✨ Key features:
//   - CanChain(tiles) — pure feasibility verdict, O(V+E)
//   - Chain(tiles) — an actual arrangement via Hierholzer's algorithm,
//     each tile oriented so neighbors always share the touching pip
//   - zero or one tile is trivially arrangeable
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rosetta/dominoes"
//
//	tiles := []dominoes.Tile{{1, 3}, {2, 3}, {1, 4}, {2, 4}, {1, 5}, {2, 5}}
//	ok, _ := dominoes.CanChain(tiles) // true
//	row, _ := dominoes.Chain(tiles)   // e.g. 1|3 3|2 2|4 4|1 1|5 5|2
//
// Errors: negative pips fail fast with ErrPipValue; Chain reports
// ErrNoChain when no single row exists. Match with errors.Is.
package dominoes
