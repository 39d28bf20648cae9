package game

import (
	"fmt"
	"math/rand"
)

// Placement puts a unit type on a cell at session start.
type Placement struct {
	Type UnitType
	Cell CellID
}

// DefaultSetup is the opening position: three friendly units at the top
// of the board and one barbarian in the middle.
func DefaultSetup() []Placement {
	return []Placement{
		{Type: UnitArcher, Cell: 3},
		{Type: UnitScout, Cell: 6},
		{Type: UnitKnight, Cell: 34},
		{Type: UnitBarbarian, Cell: 29},
	}
}

// NewSession generates terrain from rng, places the setup and returns a
// controller at turn 1.
func NewSession(setup []Placement, rng *rand.Rand, recorder Recorder) (*Controller, error) {
	if rng == nil {
		return nil, fmt.Errorf("rng is required")
	}
	board := NewRandomBoard(rng)
	for _, p := range setup {
		if _, ok := unitStats[p.Type]; !ok {
			return nil, fmt.Errorf("unknown unit type %d", int(p.Type))
		}
		if err := board.Place(p.Cell, NewUnit(p.Type)); err != nil {
			return nil, fmt.Errorf("failed to place %s: %w", p.Type, err)
		}
	}

	c := NewController(board, recorder)
	c.record(Event{Kind: EventSessionStart, Message: fmt.Sprintf("session started with %d units", len(setup))})
	return c, nil
}
