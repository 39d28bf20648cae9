// Package hexview projects the board onto the screen and formats text
// reports of a session. It does not depend on the rendering backend.
package hexview

import (
	"math"

	"hex-tactics/internal/game"
)

var sqrt3 = math.Sqrt(3)

// Layout places pointy-top hexagons of circumradius Size. Origin is the
// top left corner of the board's bounding box.
type Layout struct {
	OriginX, OriginY float64
	Size             float64
}

// Fit returns the largest layout that centres the board in a w by h area.
func Fit(x, y, w, h float64) Layout {
	// The widest row has 9 hexes of width sqrt3*size; 9 rows stack at
	// 1.5*size plus half a hex of overhang top and bottom.
	size := math.Min(w/(float64(game.RowCount)*sqrt3), h/(1.5*float64(game.RowCount)+0.5))
	boardW := float64(game.RowCount) * sqrt3 * size
	boardH := (1.5*float64(game.RowCount) + 0.5) * size
	return Layout{
		OriginX: x + (w-boardW)/2,
		OriginY: y + (h-boardH)/2,
		Size:    size,
	}
}

// HexWidth is the distance between the flat sides of a hexagon.
func (l Layout) HexWidth() float64 {
	return sqrt3 * l.Size
}

// Center returns the pixel centre of a cell.
func (l Layout) Center(c game.CellID) (float64, float64) {
	col, row := c.Coords()
	indent := float64(game.RowCount-game.RowWidth(row)) / 2
	x := l.OriginX + (indent+float64(col)+0.5)*l.HexWidth()
	y := l.OriginY + l.Size + float64(row)*1.5*l.Size
	return x, y
}

// Corners returns the six vertices of a cell clockwise from the top.
func (l Layout) Corners(c game.CellID) [6][2]float64 {
	cx, cy := l.Center(c)
	var pts [6][2]float64
	for i := range pts {
		angle := math.Pi/180*(60*float64(i)) - math.Pi/2
		pts[i] = [2]float64{cx + l.Size*math.Cos(angle), cy + l.Size*math.Sin(angle)}
	}
	return pts
}

// CellAt returns the cell under a pixel. Hexagons tile the plane as the
// Voronoi cells of their centres, so the nearest centre wins when the
// point lies inside its hexagon.
func (l Layout) CellAt(x, y float64) (game.CellID, bool) {
	best, bestDist := game.CellID(0), math.Inf(1)
	for _, c := range game.AllCells() {
		cx, cy := l.Center(c)
		if d := math.Hypot(x-cx, y-cy); d < bestDist {
			best, bestDist = c, d
		}
	}
	if !l.inside(best, x, y) {
		return 0, false
	}
	return best, true
}

// inside tests a point against the hexagon of c.
func (l Layout) inside(c game.CellID, x, y float64) bool {
	cx, cy := l.Center(c)
	dx, dy := math.Abs(x-cx), math.Abs(y-cy)
	inner := l.HexWidth() / 2
	if dx > inner || dy > l.Size {
		return false
	}
	// Slanted edges: y <= size - dx/sqrt3
	return dy <= l.Size-dx/sqrt3
}

// directionAngles are screen angles in degrees, y pointing down.
var directionAngles = map[game.Direction]float64{
	game.Right:       0,
	game.BottomRight: 60,
	game.BottomLeft:  120,
	game.Left:        180,
	game.TopLeft:     240,
	game.TopRight:    300,
}

// Step returns the centre of the hex one step from c in direction d,
// whether or not that hex is on the board.
func (l Layout) Step(c game.CellID, d game.Direction) (float64, float64) {
	cx, cy := l.Center(c)
	angle := directionAngles[d] * math.Pi / 180
	return cx + l.HexWidth()*math.Cos(angle), cy + l.HexWidth()*math.Sin(angle)
}
