package game

import (
	"fmt"

	"github.com/google/uuid"
)

// UnitType represents a kind of unit.
type UnitType int

const (
	UnitArcher UnitType = iota
	UnitKnight
	UnitScout
	UnitBarbarian
	UnitBarbarianVariant
	UnitArmoredBarbarian
	UnitBarbarianLordOfDeath
)

// UnitStats holds the fixed per-type table.
type UnitStats struct {
	Name    string
	MaxLife int
	Moves   int
	Attacks [2]Attack
	Hostile bool
}

var unitStats = map[UnitType]UnitStats{
	UnitArcher:               {Name: "Archer", MaxLife: 2, Moves: 4, Attacks: [2]Attack{AttackStickKnock, AttackVolleyOfArrows}},
	UnitKnight:               {Name: "Knight", MaxLife: 4, Moves: 3, Attacks: [2]Attack{AttackOffensiveSwordFight, AttackDefensiveSwordFight}},
	UnitScout:                {Name: "Scout", MaxLife: 3, Moves: 5, Attacks: [2]Attack{AttackStickKnock, AttackHeal}},
	UnitBarbarian:            {Name: "Barbarian", MaxLife: 3, Moves: 3, Attacks: [2]Attack{AttackStickKnock, AttackDefensiveSwordFight}, Hostile: true},
	UnitBarbarianVariant:     {Name: "Barbarian Variant", MaxLife: 2, Moves: 4, Attacks: [2]Attack{AttackStickKnock, AttackStickKnock}, Hostile: true},
	UnitArmoredBarbarian:     {Name: "Armored Barbarian", MaxLife: 4, Moves: 2, Attacks: [2]Attack{AttackStickKnock, AttackDefensiveSwordFight}, Hostile: true},
	UnitBarbarianLordOfDeath: {Name: "Barbarian Lord of Death", MaxLife: 8, Moves: 2, Attacks: [2]Attack{AttackOffensiveSwordFight, AttackDefensiveSwordFight}, Hostile: true},
}

// AllUnitTypes returns every unit type.
func AllUnitTypes() []UnitType {
	return []UnitType{
		UnitArcher,
		UnitKnight,
		UnitScout,
		UnitBarbarian,
		UnitBarbarianVariant,
		UnitArmoredBarbarian,
		UnitBarbarianLordOfDeath,
	}
}

// Stats returns the fixed table entry for the type.
func (t UnitType) Stats() UnitStats {
	return unitStats[t]
}

// IsHostile reports whether the type is AI controlled.
func (t UnitType) IsHostile() bool {
	return unitStats[t].Hostile
}

// String returns the unit type name.
func (t UnitType) String() string {
	if s, ok := unitStats[t]; ok {
		return s.Name
	}
	return "Unknown"
}

// ScriptedAction is the next action a hostile unit will perform: the
// attack and the direction steps from the unit to its target.
type ScriptedAction struct {
	Attack Attack      `json:"attack"`
	Path   []Direction `json:"path"`
}

// Target walks the path from origin. The second result is false when the
// path leaves the board.
func (a ScriptedAction) Target(origin CellID) (CellID, bool) {
	cell := origin
	for _, d := range a.Path {
		next, ok := cell.Neighbor(d)
		if !ok {
			return 0, false
		}
		cell = next
	}
	return cell, true
}

// Unit is a unit placed on the board.
type Unit struct {
	ID              string          `json:"id"`
	Type            UnitType        `json:"type"`
	RemainingMoves  int             `json:"remainingMoves"`
	Attacks         [2]Attack       `json:"attacks"`
	Life            Life            `json:"life"`
	ActionRemaining bool            `json:"actionRemaining"`
	Script          *ScriptedAction `json:"script,omitempty"`
}

// NewUnit creates a fresh unit of the given type.
func NewUnit(t UnitType) Unit {
	stats := t.Stats()
	return Unit{
		ID:              uuid.New().String(),
		Type:            t,
		RemainingMoves:  stats.Moves,
		Attacks:         stats.Attacks,
		Life:            NewLife(stats.MaxLife),
		ActionRemaining: true,
	}
}

// ResetTurn restores moves and the action for a new turn.
func (u *Unit) ResetTurn() {
	u.RemainingMoves = u.Type.Stats().Moves
	u.ActionRemaining = true
}

// IsHostile reports whether the unit is AI controlled.
func (u Unit) IsHostile() bool {
	return u.Type.IsHostile()
}

func (u Unit) String() string {
	return fmt.Sprintf("%s %s moves=%d action=%t", u.Type, u.Life, u.RemainingMoves, u.ActionRemaining)
}
