package game

// Unreachable marks a cell with no cost in a CostMap.
const Unreachable = -1

// CostMap holds the movement cost to reach each cell, or Unreachable.
type CostMap [CellCount]int

// Cost returns the cost to reach a cell.
func (m *CostMap) Cost(c CellID) (int, bool) {
	if !c.Valid() || m[c] == Unreachable {
		return 0, false
	}
	return m[c], true
}

// Reachable reports whether the cell has a cost.
func (m *CostMap) Reachable(c CellID) bool {
	_, ok := m.Cost(c)
	return ok
}

// Cells returns every cell with a cost, in index order.
func (m *CostMap) Cells() []CellID {
	cells := make([]CellID, 0)
	for i, cost := range m {
		if cost != Unreachable {
			cells = append(cells, CellID(i))
		}
	}
	return cells
}

// emptyCostMap returns a map with every cell unreachable.
func emptyCostMap() CostMap {
	var m CostMap
	for i := range m {
		m[i] = Unreachable
	}
	return m
}

// ComputeReachable runs a breadth-first expansion from start. Occupied
// cells block passage and are never reachable; a cell reached at exactly
// budget is not expanded further.
func ComputeReachable(b *Board, start CellID, budget int) CostMap {
	costs := emptyCostMap()
	if !start.Valid() {
		return costs
	}
	costs[start] = 0

	queue := []CellID{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		cost := costs[current]
		if cost >= budget {
			continue
		}
		for _, d := range Directions {
			next, ok := current.Neighbor(d)
			if !ok || costs[next] != Unreachable || b.IsOccupied(next) {
				continue
			}
			costs[next] = cost + 1
			queue = append(queue, next)
		}
	}
	return costs
}

// routeOrder is the neighbour enumeration used to break ties when walking
// a route backwards: the first neighbour with the lowest cost wins.
var routeOrder = [6]Direction{Left, Right, TopLeft, TopRight, BottomLeft, BottomRight}

// ReconstructRoute walks backwards from destination to start through
// strictly decreasing costs. The returned route excludes start and ends at
// destination; it is empty when destination equals start. The second
// result is false when destination is unreachable.
func ReconstructRoute(costs CostMap, start, destination CellID) ([]CellID, bool) {
	if !costs.Reachable(destination) || !costs.Reachable(start) {
		return nil, false
	}

	route := make([]CellID, 0, costs[destination])
	current := destination
	for current != start {
		route = append(route, current)

		best, bestCost, found := CellID(0), costs[current], false
		for _, d := range routeOrder {
			n, ok := current.Neighbor(d)
			if !ok || costs[n] == Unreachable {
				continue
			}
			if costs[n] < bestCost {
				best, bestCost, found = n, costs[n], true
			}
		}
		if !found {
			return nil, false
		}
		current = best
	}

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, true
}
