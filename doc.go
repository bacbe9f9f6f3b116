// Package gridpath is an embeddable, terrain-aware pathfinding toolkit for
// 2D grids: build a cost grid, search it, and get a deterministic,
// minimum-cost route back.
//
// Under the hood, everything is organized under four subpackages:
//
//	gridgraph/ — immutable CostGrid, Cell, neighbor enumeration, components, path costing
//	astar/     — A* search with 4-directional movement and documented tie-breaks
//	dijkstra/  — single-source cost fields (reachability, distance maps)
//	terrain/   — label → cost tables (YAML), random boards, label-grid conversion
//
// Quick ASCII example:
//
//	S . ~        S = start, G = goal
//	. # ~        # = wall (+Inf), ~ = water (expensive)
//	. . G
//
// An unreachable goal is a normal result (Found == false), never an error;
// malformed input always is.
//
//	go get github.com/terrainnav/gridpath
package gridpath
