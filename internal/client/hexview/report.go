package hexview

import (
	"fmt"
	"strings"

	"hex-tactics/internal/game"
)

// UnitSummary is a one-line description of a unit for side panels.
func UnitSummary(u game.Unit) string {
	side := "ally"
	if u.IsHostile() {
		side = "enemy"
	}
	return fmt.Sprintf("%s (%s) LP %s  moves %d  action %s",
		u.Type, side, u.Life, u.RemainingMoves, yesNo(u.ActionRemaining))
}

// PreviewLines describes the active preview.
func PreviewLines(c *game.Controller) []string {
	preview, ok := c.CurrentPrevisualisation()
	if !ok {
		return nil
	}
	switch preview.Kind {
	case game.PreviewMovement:
		if !preview.IsMovementSome() {
			return []string{fmt.Sprintf("Move: %d cells reachable", len(c.ReachableSet()))}
		}
		return []string{fmt.Sprintf("Move: %d steps to %s", len(preview.Route), preview.Route[len(preview.Route)-1])}
	default:
		lines := []string{
			fmt.Sprintf("Attack: %s", preview.Attack),
			preview.Attack.Description(),
		}
		for _, cons := range preview.Consequences {
			lines = append(lines, "  "+cons.String())
		}
		return lines
	}
}

// StatusReport renders the whole session state as plain text, suitable
// for the clipboard.
func StatusReport(c *game.Controller) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Session %s  turn %d  %s\n", c.ID, c.Turn, c.Outcome())
	sb.WriteString(c.BoardString())

	sb.WriteString("\nUnits:\n")
	for _, cell := range c.OccupiedCells() {
		u, _ := c.UnitAt(cell)
		fmt.Fprintf(&sb, "  %s %s\n", cell, UnitSummary(u))
	}

	if intents := c.HostileIntents(); len(intents) > 0 {
		sb.WriteString("\nEnemy intents:\n")
		for _, in := range intents {
			fmt.Fprintf(&sb, "  %s %s -> %s\n", in.Origin, in.Action.Attack, in.Target)
		}
	}

	if lines := PreviewLines(c); len(lines) > 0 {
		sb.WriteString("\nPreview:\n")
		for _, line := range lines {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}
	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
