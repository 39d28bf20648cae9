// Package game contains the rules engine: board topology, unit placement,
// movement reachability, combat resolution and the turn state machine.
// It has no rendering or I/O of its own.
package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Mode is the state of the selection state machine.
type Mode int

const (
	ModeIdle Mode = iota
	ModeMovement
	ModeAction
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeMovement:
		return "Movement"
	case ModeAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a session so far.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "Ongoing"
	case OutcomeVictory:
		return "Victory"
	case OutcomeDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// HostileIntent is a hostile unit's planned action for the next turn
// together with the consequences staged for preview.
type HostileIntent struct {
	UnitID       string
	Origin       CellID
	Action       ScriptedAction
	Target       CellID
	Consequences []Consequence
}

// Controller is the turn and selection state machine of one session. It is
// the only owner of its Board; every command validates against the
// current board before changing anything and leaves state untouched when
// it returns an error.
type Controller struct {
	ID   string
	Turn int

	board    *Board
	recorder Recorder

	mode      Mode
	selected  CellID
	reachable CostMap
	preview   Previsualisation

	hovered    CellID
	hasHovered bool

	intents []HostileIntent
}

// NewController takes ownership of board, plans the hostile units' first
// actions and returns an idle controller at turn 1. A nil recorder
// discards events.
func NewController(board *Board, recorder Recorder) *Controller {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	c := &Controller{
		ID:        uuid.New().String(),
		Turn:      1,
		board:     board,
		recorder:  recorder,
		reachable: emptyCostMap(),
	}
	c.planHostiles()
	c.stageHostiles()
	return c
}

// Mode returns the current state machine mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Selected returns the selected cell.
func (c *Controller) Selected() (CellID, bool) {
	return c.selected, c.mode != ModeIdle
}

// SelectedUnit returns a copy of the selected unit.
func (c *Controller) SelectedUnit() (Unit, bool) {
	if c.mode == ModeIdle {
		return Unit{}, false
	}
	return c.board.UnitAt(c.selected)
}

// UnitAt returns a copy of the unit on a cell.
func (c *Controller) UnitAt(cell CellID) (Unit, bool) {
	return c.board.UnitAt(cell)
}

// TileAt returns the terrain of a cell.
func (c *Controller) TileAt(cell CellID) Tile {
	return c.board.TileAt(cell)
}

// OccupiedCells returns every cell holding a unit.
func (c *Controller) OccupiedCells() []CellID {
	return c.board.OccupiedCells()
}

// BoardString renders the board as text.
func (c *Controller) BoardString() string {
	return c.board.String()
}

// Reachable returns the cost map of the selected unit.
func (c *Controller) Reachable() CostMap {
	return c.reachable
}

// ReachableSet returns the cells the selected unit can move to, excluding
// the cell it stands on.
func (c *Controller) ReachableSet() []CellID {
	if c.mode == ModeIdle {
		return nil
	}
	cells := make([]CellID, 0)
	for _, cell := range c.reachable.Cells() {
		if cell != c.selected {
			cells = append(cells, cell)
		}
	}
	return cells
}

// CurrentPrevisualisation returns a copy of the active preview.
func (c *Controller) CurrentPrevisualisation() (Previsualisation, bool) {
	if c.mode == ModeIdle {
		return Previsualisation{}, false
	}
	return c.preview.clone(), true
}

// PotentialTargetsPreview returns the legal targets of the armed attack.
func (c *Controller) PotentialTargetsPreview() []CellID {
	if c.mode != ModeAction {
		return nil
	}
	return append([]CellID(nil), c.preview.Targets...)
}

// HostileIntents returns the staged hostile actions for the next turn.
func (c *Controller) HostileIntents() []HostileIntent {
	out := make([]HostileIntent, len(c.intents))
	for i, in := range c.intents {
		out[i] = in
		out[i].Consequences = append([]Consequence(nil), in.Consequences...)
	}
	return out
}

// StagedHostileConsequences returns every consequence that will be applied
// at the start of the next turn, in application order.
func (c *Controller) StagedHostileConsequences() []Consequence {
	var out []Consequence
	for _, in := range c.intents {
		out = append(out, in.Consequences...)
	}
	return out
}

// Outcome reports victory once no hostile unit remains and defeat once no
// friendly unit remains.
func (c *Controller) Outcome() Outcome {
	friendly, hostile := c.board.CountUnits()
	switch {
	case friendly == 0:
		return OutcomeDefeat
	case hostile == 0:
		return OutcomeVictory
	default:
		return OutcomeOngoing
	}
}

// resetSelection returns to Idle.
func (c *Controller) resetSelection() {
	c.mode = ModeIdle
	c.selected = 0
	c.reachable = emptyCostMap()
	c.preview = Previsualisation{}
}

func (c *Controller) record(e Event) {
	e.SessionID = c.ID
	e.Turn = c.Turn
	c.recorder.Record(e)
}

func (c *Controller) recordResolution(res Resolution) {
	for _, mv := range res.Moved {
		u, _ := c.board.UnitAt(mv[1])
		c.record(Event{
			Kind:     EventUnitPushed,
			UnitID:   u.ID,
			UnitType: u.Type.String(),
			From:     mv[0],
			To:       mv[1],
			Message:  fmt.Sprintf("%s pushed from %s to %s", u.Type, mv[0], mv[1]),
		})
	}
	for _, dead := range res.Killed {
		c.record(Event{
			Kind:     EventUnitKilled,
			UnitID:   dead.Unit.ID,
			UnitType: dead.Unit.Type.String(),
			From:     dead.Cell,
			To:       dead.Cell,
			Message:  fmt.Sprintf("%s was killed on %s", dead.Unit.Type, dead.Cell),
		})
	}
}
