package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells,
// according to the grid's connectivity.
// Components are returned in row-major order of their first cell; cells within
// a component are in BFS discovery order.
//
// Time:   O(rows·cols·d), where d = 4 or 8.
// Memory: O(rows·cols) for visited flags and output.
func (g *CostGrid) ConnectedComponents() [][]Cell {
	comps, _ := g.label()

	return comps
}

// SameComponent reports whether b can be reached from a by stepping only
// through passable cells. A wall or out-of-bounds cell is in no component.
func (g *CostGrid) SameComponent(a, b Cell) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	_, id := g.label()

	return id[g.Index(a)] == id[g.Index(b)]
}

// label runs the BFS flood fill and returns components plus a per-cell
// component id (-1 for walls).
func (g *CostGrid) label() ([][]Cell, []int) {
	total := g.rows * g.cols
	id := make([]int, total)
	for i := range id {
		id[i] = -1
	}
	var comps [][]Cell

	for i0 := 0; i0 < total; i0++ {
		if id[i0] >= 0 || !g.Passable(g.CellAt(i0)) {
			continue
		}
		// BFS to collect component
		n := len(comps)
		queue := []int{i0}
		id[i0] = n
		var comp []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := g.CellAt(queue[qi])
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				vi := g.Index(v)
				if id[vi] < 0 {
					id[vi] = n
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, id
}
