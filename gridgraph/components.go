package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells,
// according to gg.Conn connectivity. Each component is a slice of
// row-major cell indices in ascending order; components are ordered by their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels, n := gg.label()
	comps := make([][]int, n)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if c := labels[gg.Index(x, y)]; c >= 0 {
				comps[c] = append(comps[c], gg.Index(x, y))
			}
		}
	}

	return comps
}

// ComponentOf returns the component number of (x,y), or -1 when the cell is
// out of bounds or not walkable. Numbers match ConnectedComponents order.
func (gg *GridGraph) ComponentOf(x, y int) int {
	if !gg.Walkable(x, y) {
		return -1
	}
	labels, _ := gg.label()

	return labels[gg.Index(x, y)]
}

// label assigns a component number to every walkable cell by BFS; other
// cells get -1. It returns the labels and the component count.
func (gg *GridGraph) label() ([]int, int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	offsets := gg.NeighborOffsets()
	n := 0

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.Index(x, y)
			if !gg.Walkable(x, y) || labels[i0] >= 0 {
				continue
			}
			queue := []int{i0}
			labels[i0] = n
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Walkable(vx, vy) {
						continue
					}
					vi := gg.Index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = n
						queue = append(queue, vi)
					}
				}
			}
			n++
		}
	}

	return labels, n
}
