package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// TileKind is the terrain classification of a cell.
type TileKind int

const (
	TileGrassyPlain TileKind = iota
	TileForest
	TilePlain
)

// TileVariants is the number of cosmetic variants per terrain kind.
const TileVariants = 4

// String returns the terrain name.
func (k TileKind) String() string {
	switch k {
	case TileGrassyPlain:
		return "Grassy Plain"
	case TileForest:
		return "Forest"
	case TilePlain:
		return "Plain"
	default:
		return "Unknown"
	}
}

// Tile is the immutable terrain of a cell.
type Tile struct {
	Kind    TileKind `json:"kind"`
	Variant uint8    `json:"variant"`
}

// RandomTile picks a terrain kind and variant.
func RandomTile(rng *rand.Rand) Tile {
	return Tile{
		Kind:    TileKind(rng.Intn(3)),
		Variant: uint8(rng.Intn(TileVariants)),
	}
}

// Board owns the terrain and unit slots of all 61 cells. Units live in
// their slot only; moving a unit takes it out of one slot and places it
// into another.
type Board struct {
	tiles [CellCount]Tile
	units [CellCount]*Unit
}

// NewBoard creates an empty board with the given terrain.
func NewBoard(tiles [CellCount]Tile) *Board {
	return &Board{tiles: tiles}
}

// NewRandomBoard creates an empty board with generated terrain.
func NewRandomBoard(rng *rand.Rand) *Board {
	var tiles [CellCount]Tile
	for i := range tiles {
		tiles[i] = RandomTile(rng)
	}
	return NewBoard(tiles)
}

// TileAt returns the terrain of a cell.
func (b *Board) TileAt(c CellID) Tile {
	if !c.Valid() {
		return Tile{}
	}
	return b.tiles[c]
}

// UnitAt returns a copy of the unit on a cell.
func (b *Board) UnitAt(c CellID) (Unit, bool) {
	if !c.Valid() || b.units[c] == nil {
		return Unit{}, false
	}
	return *b.units[c], true
}

// IsOccupied reports whether a unit stands on the cell.
func (b *Board) IsOccupied(c CellID) bool {
	return c.Valid() && b.units[c] != nil
}

// Place puts a unit on an empty cell.
func (b *Board) Place(c CellID, u Unit) error {
	if !c.Valid() {
		return fmt.Errorf("%w: index %d", ErrInvalidCell, int(c))
	}
	if b.units[c] != nil {
		return fmt.Errorf("%w: %s", ErrCellOccupied, c)
	}
	b.units[c] = &u
	return nil
}

// Remove empties a cell and returns the unit that stood there.
func (b *Board) Remove(c CellID) (Unit, bool) {
	if !b.IsOccupied(c) {
		return Unit{}, false
	}
	u := b.units[c]
	b.units[c] = nil
	return *u, true
}

// Move relocates a unit to an empty cell.
func (b *Board) Move(from, to CellID) error {
	if !b.IsOccupied(from) {
		return ErrNoUnit
	}
	if !to.Valid() {
		return fmt.Errorf("%w: index %d", ErrInvalidCell, int(to))
	}
	if from == to {
		return nil
	}
	if b.units[to] != nil {
		return fmt.Errorf("%w: %s", ErrCellOccupied, to)
	}
	b.units[to], b.units[from] = b.units[from], nil
	return nil
}

// update mutates the unit on a cell in place.
func (b *Board) update(c CellID, fn func(u *Unit)) bool {
	if !b.IsOccupied(c) {
		return false
	}
	fn(b.units[c])
	return true
}

// OccupiedCells returns every cell holding a unit, in index order.
func (b *Board) OccupiedCells() []CellID {
	cells := make([]CellID, 0)
	for i, u := range b.units {
		if u != nil {
			cells = append(cells, CellID(i))
		}
	}
	return cells
}

// FindUnit returns the cell of the unit with the given ID.
func (b *Board) FindUnit(id string) (CellID, bool) {
	for i, u := range b.units {
		if u != nil && u.ID == id {
			return CellID(i), true
		}
	}
	return 0, false
}

// CountUnits returns the number of friendly and hostile units on the board.
func (b *Board) CountUnits() (friendly, hostile int) {
	for _, u := range b.units {
		if u == nil {
			continue
		}
		if u.IsHostile() {
			hostile++
		} else {
			friendly++
		}
	}
	return friendly, hostile
}

// String renders the board as indented rows, one token per cell:
// terrain initial for empty cells, unit initial (lowercase for hostile)
// followed by current life for occupied ones.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < RowCount; row++ {
		sb.WriteString(strings.Repeat("  ", RowCount-rowWidths[row]))
		for col := 0; col < rowWidths[row]; col++ {
			c, _ := CellFromCoords(col, row)
			if col > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(b.cellToken(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) cellToken(c CellID) string {
	u := b.units[c]
	if u == nil {
		switch b.tiles[c].Kind {
		case TileForest:
			return "^^"
		case TilePlain:
			return "__"
		default:
			return ".."
		}
	}
	initial := u.Type.String()[:1]
	if u.IsHostile() {
		initial = strings.ToLower(initial)
	}
	return fmt.Sprintf("%s%d", initial, u.Life.Current)
}
