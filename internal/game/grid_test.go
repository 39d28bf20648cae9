package game

import (
	"errors"
	"testing"
)

func mustCell(t *testing.T, col, row int) CellID {
	t.Helper()
	c, err := CellFromCoords(col, row)
	if err != nil {
		t.Fatalf("CellFromCoords(%d, %d): %v", col, row, err)
	}
	return c
}

func TestRowWidthsSumToCellCount(t *testing.T) {
	total := 0
	for row := 0; row < RowCount; row++ {
		total += RowWidth(row)
	}
	if total != CellCount {
		t.Errorf("Expected %d cells, got %d", CellCount, total)
	}
	if RowWidth(-1) != 0 || RowWidth(RowCount) != 0 {
		t.Error("Expected zero width outside the board")
	}
}

func TestCoordsRoundTrip(t *testing.T) {
	for _, c := range AllCells() {
		col, row := c.Coords()
		back, err := CellFromCoords(col, row)
		if err != nil {
			t.Fatalf("cell %d: %v", c, err)
		}
		if back != c {
			t.Errorf("cell %d round-tripped to %d", c, back)
		}
	}
}

func TestKnownCoords(t *testing.T) {
	tests := []struct {
		index    int
		col, row int
	}{
		{0, 0, 0},
		{4, 4, 0},
		{5, 0, 1},
		{26, 0, 4},
		{30, 4, 4},
		{34, 8, 4},
		{35, 0, 5},
		{60, 4, 8},
	}
	for _, tt := range tests {
		c, err := CellFromIndex(tt.index)
		if err != nil {
			t.Fatalf("CellFromIndex(%d): %v", tt.index, err)
		}
		col, row := c.Coords()
		if col != tt.col || row != tt.row {
			t.Errorf("cell %d: expected (%d,%d), got (%d,%d)", tt.index, tt.col, tt.row, col, row)
		}
	}
}

func TestInvalidCells(t *testing.T) {
	if _, err := CellFromIndex(-1); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Expected ErrInvalidCell for -1, got %v", err)
	}
	if _, err := CellFromIndex(CellCount); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Expected ErrInvalidCell for %d, got %v", CellCount, err)
	}
	if _, err := CellFromCoords(5, 0); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Expected ErrInvalidCell for (5,0), got %v", err)
	}
	if _, err := CellFromCoords(0, RowCount); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Expected ErrInvalidCell for row %d, got %v", RowCount, err)
	}
	if _, ok := CellID(99).Neighbor(Right); ok {
		t.Error("Expected no neighbor for an invalid cell")
	}
}

func TestKnownNeighbors(t *testing.T) {
	tests := []struct {
		name string
		cell CellID
		want []CellID
	}{
		{"top left corner", 0, []CellID{1, 6, 5}},
		{"middle row left edge", 26, []CellID{18, 27, 35}},
		{"centre", 30, []CellID{21, 22, 31, 39, 38, 29}},
		{"bottom right corner", 60, []CellID{54, 55, 59}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cell.Neighbors()
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}

func TestNeighborSymmetry(t *testing.T) {
	for _, c := range AllCells() {
		for _, d := range Directions {
			n, ok := c.Neighbor(d)
			if !ok {
				continue
			}
			back, ok := n.Neighbor(d.Opposite())
			if !ok || back != c {
				t.Errorf("%s %s is %s but %s %s is %s", c, d, n, n, d.Opposite(), back)
			}
		}
	}
}

func TestNeighborCounts(t *testing.T) {
	counts := map[int]int{}
	for _, c := range AllCells() {
		counts[len(c.Neighbors())]++
	}
	// 6 corners, 18 other edge cells, 37 inner cells
	if counts[3] != 6 || counts[4] != 18 || counts[6] != 37 {
		t.Errorf("Unexpected neighbor count distribution: %v", counts)
	}
}

func TestDirectionTo(t *testing.T) {
	d, ok := CellID(30).DirectionTo(38)
	if !ok || d != BottomLeft {
		t.Errorf("Expected BottomLeft, got %s (%t)", d, ok)
	}
	if _, ok := CellID(30).DirectionTo(32); ok {
		t.Error("Expected 32 not to be adjacent to 30")
	}
	if TopLeft.Opposite() != BottomRight || Right.Opposite() != Left {
		t.Error("Unexpected opposite directions")
	}
}
