package game

import "fmt"

// Board geometry: 9 rows whose widths grow to the middle row and shrink
// again, 61 cells in total.
const (
	CellCount = 61
	RowCount  = 9
	MiddleRow = 4
)

var (
	rowWidths = [RowCount]int{5, 6, 7, 8, 9, 8, 7, 6, 5}
	rowStarts = [RowCount]int{0, 5, 11, 18, 26, 35, 43, 50, 56}
)

// RowWidth returns the number of cells on a row, or 0 for a row outside the board.
func RowWidth(row int) int {
	if row < 0 || row >= RowCount {
		return 0
	}
	return rowWidths[row]
}

// CellID is the linear identifier of one of the 61 board cells.
type CellID int

// CellFromIndex validates a linear index.
func CellFromIndex(i int) (CellID, error) {
	if i < 0 || i >= CellCount {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidCell, i)
	}
	return CellID(i), nil
}

// CellFromCoords converts a (column, row) pair into a cell.
func CellFromCoords(col, row int) (CellID, error) {
	if row < 0 || row >= RowCount {
		return 0, fmt.Errorf("%w: row %d", ErrInvalidCell, row)
	}
	if col < 0 || col >= rowWidths[row] {
		return 0, fmt.Errorf("%w: column %d on row %d", ErrInvalidCell, col, row)
	}
	return CellID(rowStarts[row] + col), nil
}

// AllCells returns every cell in index order.
func AllCells() []CellID {
	cells := make([]CellID, CellCount)
	for i := range cells {
		cells[i] = CellID(i)
	}
	return cells
}

// Index returns the linear index of the cell.
func (c CellID) Index() int {
	return int(c)
}

// Valid reports whether the cell lies on the board.
func (c CellID) Valid() bool {
	return c >= 0 && c < CellCount
}

// Row returns the row of the cell.
func (c CellID) Row() int {
	for row := RowCount - 1; row > 0; row-- {
		if int(c) >= rowStarts[row] {
			return row
		}
	}
	return 0
}

// Col returns the column of the cell within its row.
func (c CellID) Col() int {
	return int(c) - rowStarts[c.Row()]
}

// Coords returns (column, row).
func (c CellID) Coords() (int, int) {
	row := c.Row()
	return int(c) - rowStarts[row], row
}

func (c CellID) String() string {
	col, row := c.Coords()
	return fmt.Sprintf("%d(%d,%d)", int(c), col, row)
}

// Neighbor returns the adjacent cell in the given direction. The second
// result is false at a board edge.
//
// Rows above the middle row are narrower than the row below them and rows
// under it are narrower than the row above, so the column shift for
// diagonal moves flips around MiddleRow.
func (c CellID) Neighbor(d Direction) (CellID, bool) {
	if !c.Valid() {
		return 0, false
	}
	col, row := c.Coords()
	switch d {
	case Right:
		col++
	case Left:
		col--
	case TopLeft:
		if row <= MiddleRow {
			col--
		}
		row--
	case TopRight:
		if row > MiddleRow {
			col++
		}
		row--
	case BottomLeft:
		if row >= MiddleRow {
			col--
		}
		row++
	case BottomRight:
		if row < MiddleRow {
			col++
		}
		row++
	default:
		return 0, false
	}
	n, err := CellFromCoords(col, row)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Neighbors returns the existing neighbors in Directions order.
func (c CellID) Neighbors() []CellID {
	result := make([]CellID, 0, len(Directions))
	for _, d := range Directions {
		if n, ok := c.Neighbor(d); ok {
			result = append(result, n)
		}
	}
	return result
}

// DirectionTo returns the direction in which target is adjacent to c.
func (c CellID) DirectionTo(target CellID) (Direction, bool) {
	for _, d := range Directions {
		if n, ok := c.Neighbor(d); ok && n == target {
			return d, true
		}
	}
	return 0, false
}

// Direction is one of the six hex directions.
type Direction int

const (
	TopLeft Direction = iota
	TopRight
	Right
	BottomRight
	BottomLeft
	Left
)

// Directions lists the six directions clockwise from TopLeft.
var Directions = [6]Direction{TopLeft, TopRight, Right, BottomRight, BottomLeft, Left}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case Right:
		return "Right"
	case BottomRight:
		return "BottomRight"
	case BottomLeft:
		return "BottomLeft"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}
