package game

import "testing"

// newTestBoard returns a board of grassy plains with the given units placed.
func newTestBoard(t *testing.T, units map[CellID]UnitType) *Board {
	t.Helper()
	b := NewBoard([CellCount]Tile{})
	for cell, ut := range units {
		if err := b.Place(cell, NewUnit(ut)); err != nil {
			t.Fatalf("Place(%s): %v", cell, err)
		}
	}
	return b
}

func TestComputeReachableBudget(t *testing.T) {
	b := newTestBoard(t, nil)

	zero := ComputeReachable(b, 30, 0)
	if cells := zero.Cells(); len(cells) != 1 || cells[0] != 30 {
		t.Errorf("Expected only the start with budget 0, got %v", cells)
	}

	one := ComputeReachable(b, 30, 1)
	if got := len(one.Cells()); got != 7 {
		t.Errorf("Expected 7 cells with budget 1, got %d", got)
	}
	for _, n := range CellID(30).Neighbors() {
		if cost, ok := one.Cost(n); !ok || cost != 1 {
			t.Errorf("Expected neighbor %s at cost 1, got %d (%t)", n, cost, ok)
		}
	}

	two := ComputeReachable(b, 30, 2)
	if got := len(two.Cells()); got != 19 {
		t.Errorf("Expected 19 cells with budget 2, got %d", got)
	}
	for _, c := range two.Cells() {
		if cost, _ := two.Cost(c); cost > 2 {
			t.Errorf("Cell %s reached at cost %d over budget", c, cost)
		}
	}
}

func TestComputeReachableOccupiedCellsBlock(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{
		26: UnitArcher,
		18: UnitBarbarian,
		27: UnitBarbarian,
		35: UnitBarbarian,
	})
	costs := ComputeReachable(b, 26, 5)
	if cells := costs.Cells(); len(cells) != 1 || cells[0] != 26 {
		t.Errorf("Expected a surrounded unit to reach only its own cell, got %v", cells)
	}
}

func TestComputeReachableRoutesAroundUnits(t *testing.T) {
	// 31 is blocked so 32 costs 3 instead of 2.
	b := newTestBoard(t, map[CellID]UnitType{30: UnitKnight, 31: UnitBarbarian})
	costs := ComputeReachable(b, 30, 3)
	if costs.Reachable(31) {
		t.Error("Expected an occupied cell to be unreachable")
	}
	if cost, ok := costs.Cost(32); !ok || cost != 3 {
		t.Errorf("Expected 32 at cost 3, got %d (%t)", cost, ok)
	}
}

func TestReconstructRoute(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{3: UnitArcher})
	costs := ComputeReachable(b, 3, 4)

	route, ok := ReconstructRoute(costs, 3, 7)
	if !ok {
		t.Fatal("Expected a route to 7")
	}
	// 8 and 2 both cost 1; Right is tried before TopRight.
	if len(route) != 2 || route[0] != 8 || route[1] != 7 {
		t.Errorf("Expected route [8 7], got %v", route)
	}

	empty, ok := ReconstructRoute(costs, 3, 3)
	if !ok || len(empty) != 0 {
		t.Errorf("Expected an empty route to the start, got %v (%t)", empty, ok)
	}

	if _, ok := ReconstructRoute(costs, 3, 60); ok {
		t.Error("Expected no route beyond the budget")
	}
}

func TestReconstructRouteLengthMatchesCost(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{30: UnitScout, 22: UnitBarbarian, 39: UnitBarbarian})
	costs := ComputeReachable(b, 30, 5)
	for _, c := range costs.Cells() {
		route, ok := ReconstructRoute(costs, 30, c)
		if !ok {
			t.Errorf("Expected a route to %s", c)
			continue
		}
		cost, _ := costs.Cost(c)
		if len(route) != cost {
			t.Errorf("Route to %s has %d steps, cost is %d", c, len(route), cost)
		}
		prev := CellID(30)
		for _, step := range route {
			if _, adjacent := prev.DirectionTo(step); !adjacent {
				t.Errorf("Route to %s jumps from %s to %s", c, prev, step)
			}
			if b.IsOccupied(step) {
				t.Errorf("Route to %s passes through occupied %s", c, step)
			}
			prev = step
		}
	}
}
