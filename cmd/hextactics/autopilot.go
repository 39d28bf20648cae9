package main

import (
	"hex-tactics/internal/game"
)

// autoplay plays one turn for the friendly side: each unit walks next to
// an enemy when it is not already and then hits an adjacent or visible
// enemy with the first attack that can reach one.
func autoplay(c *game.Controller) {
	for _, cell := range c.OccupiedCells() {
		u, ok := c.UnitAt(cell)
		if !ok || u.IsHostile() {
			continue
		}
		cell = approach(c, cell)
		strike(c, cell)
	}
}

func hostileAt(c *game.Controller, cell game.CellID) bool {
	u, ok := c.UnitAt(cell)
	return ok && u.IsHostile()
}

func nextToHostile(c *game.Controller, cell game.CellID) bool {
	for _, n := range cell.Neighbors() {
		if hostileAt(c, n) {
			return true
		}
	}
	return false
}

// approach moves the unit on cell next to a hostile unit if it can and
// returns where it ends up.
func approach(c *game.Controller, cell game.CellID) game.CellID {
	if nextToHostile(c, cell) {
		return cell
	}
	if err := c.Select(cell); err != nil {
		return cell
	}
	defer c.Cancel()
	for _, dest := range c.ReachableSet() {
		if nextToHostile(c, dest) && c.CommitMove(dest) == nil {
			return dest
		}
	}
	return cell
}

// strike uses the first attack slot with a hostile target.
func strike(c *game.Controller, cell game.CellID) {
	u, ok := c.UnitAt(cell)
	if !ok || !u.ActionRemaining {
		return
	}
	for slot, attack := range u.Attacks {
		if attack == game.AttackHeal {
			continue
		}
		if err := c.Select(cell); err != nil {
			return
		}
		if err := c.ArmAttack(slot); err != nil {
			c.Cancel()
			return
		}
		for _, target := range c.PotentialTargetsPreview() {
			if hostileAt(c, target) && c.CommitAction(target) == nil {
				return
			}
		}
		c.Cancel()
	}
}
