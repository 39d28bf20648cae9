package main

import (
	"io"
	"math/rand"
	"testing"

	"hex-tactics/internal/game"
)

func newController(t *testing.T, units map[game.CellID]game.UnitType) *game.Controller {
	t.Helper()
	b := game.NewBoard([game.CellCount]game.Tile{})
	for cell, ut := range units {
		if err := b.Place(cell, game.NewUnit(ut)); err != nil {
			t.Fatal(err)
		}
	}
	return game.NewController(b, nil)
}

func TestAutoplayStrikesAdjacentEnemy(t *testing.T) {
	c := newController(t, map[game.CellID]game.UnitType{30: game.UnitKnight, 31: game.UnitBarbarian})
	autoplay(c)
	if c.Outcome() != game.OutcomeVictory {
		t.Errorf("Expected the knight to kill the barbarian, got %s", c.Outcome())
	}
	if c.Mode() != game.ModeIdle {
		t.Errorf("Expected autoplay to leave the controller idle, got %s", c.Mode())
	}
}

func TestAutoplayApproaches(t *testing.T) {
	c := newController(t, map[game.CellID]game.UnitType{3: game.UnitScout, 20: game.UnitBarbarian})
	autoplay(c)
	scout := game.CellID(-1)
	for _, cell := range c.OccupiedCells() {
		if u, _ := c.UnitAt(cell); !u.IsHostile() {
			scout = cell
		}
	}
	if scout == 3 {
		t.Error("Expected the scout to leave its start cell")
	}
}

func TestRunSimulationStopsAtTurnLimit(t *testing.T) {
	c, err := game.NewSession(game.DefaultSetup(), rand.New(rand.NewSource(5)), nil)
	if err != nil {
		t.Fatal(err)
	}
	outcome := runSimulation(c, 3, io.Discard)
	if outcome == game.OutcomeOngoing && c.Turn != 4 {
		t.Errorf("Expected an ongoing simulation to stop after turn 3, at turn %d", c.Turn)
	}
	if c.Turn > 4 {
		t.Errorf("Simulation ran past the limit: turn %d", c.Turn)
	}
}
