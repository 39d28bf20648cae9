package hexview

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"hex-tactics/internal/game"
)

func TestCellAtCentersRoundTrip(t *testing.T) {
	l := Fit(0, 0, 800, 600)
	for _, c := range game.AllCells() {
		x, y := l.Center(c)
		got, ok := l.CellAt(x, y)
		if !ok || got != c {
			t.Errorf("Center of %s projected back to %s (%t)", c, got, ok)
		}
	}
}

func TestCellAtOutsideBoard(t *testing.T) {
	l := Fit(100, 50, 800, 600)
	if _, ok := l.CellAt(0, 0); ok {
		t.Error("Expected the top left corner of the window to be off the board")
	}
	x, y := l.Center(0)
	if _, ok := l.CellAt(x-l.HexWidth(), y); ok {
		t.Error("Expected the point left of cell 0 to be off the board")
	}
}

func TestNeighborsAreOneHexApart(t *testing.T) {
	l := Layout{Size: 10}
	for _, c := range game.AllCells() {
		cx, cy := l.Center(c)
		for _, n := range c.Neighbors() {
			nx, ny := l.Center(n)
			if d := math.Hypot(nx-cx, ny-cy); math.Abs(d-l.HexWidth()) > 1e-9 {
				t.Errorf("%s and %s are %.3f apart, expected %.3f", c, n, d, l.HexWidth())
			}
		}
	}
}

func TestFitStaysInside(t *testing.T) {
	l := Fit(20, 30, 640, 480)
	for _, c := range game.AllCells() {
		for _, p := range l.Corners(c) {
			if p[0] < 20-1e-9 || p[0] > 660+1e-9 || p[1] < 30-1e-9 || p[1] > 510+1e-9 {
				t.Fatalf("Corner %v of %s lies outside the area", p, c)
			}
		}
	}
}

func TestStatusReport(t *testing.T) {
	c, err := game.NewSession(game.DefaultSetup(), rand.New(rand.NewSource(3)), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Select(3); err != nil {
		t.Fatal(err)
	}
	c.Hover(4)

	report := StatusReport(c)
	for _, want := range []string{"turn 1", "Archer (ally)", "Barbarian (enemy)", "Enemy intents:", "Move: 1 steps"} {
		if !strings.Contains(report, want) {
			t.Errorf("Expected report to contain %q:\n%s", want, report)
		}
	}
}

func TestStepMatchesNeighborCenters(t *testing.T) {
	l := Layout{OriginX: 5, OriginY: 5, Size: 12}
	for _, c := range game.AllCells() {
		for _, d := range game.Directions {
			n, ok := c.Neighbor(d)
			if !ok {
				continue
			}
			sx, sy := l.Step(c, d)
			nx, ny := l.Center(n)
			if math.Abs(sx-nx) > 1e-9 || math.Abs(sy-ny) > 1e-9 {
				t.Errorf("Step %s from %s lands at (%.2f,%.2f), neighbor %s is at (%.2f,%.2f)", d, c, sx, sy, n, nx, ny)
			}
		}
	}
}
