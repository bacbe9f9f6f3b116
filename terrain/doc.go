// Package terrain turns labeled terrain maps into cost grids for pathfinding.
//
// A CostTable maps labels (grass, mud, water, sand, rock, or any caller-defined
// name) to the cost of entering a cell of that terrain. Tables are explicit
// values: DefaultCostTable returns a fresh copy each call, and ParseCostTable /
// DecodeCostTable read one from YAML:
//
//	costs:
//	  grass: 0.5425
//	  mud:   0.4804
//	  lava:  .inf     # +Inf cells are walls under default grid options
//
// Pipeline:
//
//	labels, _ := terrain.Generate(10, 10, table, rand.New(rand.NewSource(seed)))
//	grid, _   := terrain.BuildGrid(labels, table, gridgraph.DefaultGridOptions())
//	res, _    := astar.FindPath(grid, start, goal)
//
// Cost range and heuristics: the default table's costs all lie in
// [0.4804, 0.5683], below the unit step assumed by plain Manhattan distance.
// astar's default heuristic scales Manhattan by the grid's cheapest cell, so
// it stays admissible for this and any other table.
package terrain
