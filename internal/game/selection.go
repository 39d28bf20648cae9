package game

import "fmt"

// Select picks the unit on cell and enters movement preview.
func (c *Controller) Select(cell CellID) error {
	if c.mode != ModeIdle {
		return ErrAlreadySelected
	}
	if !cell.Valid() {
		return fmt.Errorf("%w: index %d", ErrInvalidCell, int(cell))
	}
	unit, ok := c.board.UnitAt(cell)
	if !ok {
		return ErrNoUnit
	}

	c.mode = ModeMovement
	c.selected = cell
	c.reachable = ComputeReachable(c.board, cell, unit.RemainingMoves)
	c.preview = Previsualisation{Kind: PreviewMovement}
	if c.hasHovered {
		c.refreshPreview()
	}
	return nil
}

// Hover updates the hover-dependent part of the preview: the route in
// movement mode, the consequences in action mode. It is a no-op when idle.
func (c *Controller) Hover(cell CellID) {
	if !cell.Valid() {
		c.ClearHover()
		return
	}
	c.hovered, c.hasHovered = cell, true
	c.refreshPreview()
}

// ClearHover forgets the hovered cell.
func (c *Controller) ClearHover() {
	c.hovered, c.hasHovered = 0, false
	c.refreshPreview()
}

func (c *Controller) refreshPreview() {
	switch c.mode {
	case ModeMovement:
		c.preview.Route, c.preview.HasRoute = nil, false
		if c.hasHovered {
			c.preview.Route, c.preview.HasRoute = ReconstructRoute(c.reachable, c.selected, c.hovered)
		}
	case ModeAction:
		c.preview.Consequences = nil
		if c.hasHovered && c.preview.IsTarget(c.hovered) {
			c.preview.Consequences = Consequences(c.preview.Attack, c.board, c.selected, c.hovered)
		}
	}
}

// ArmAttack switches to action preview with the selected unit's attack in
// slot 0 or 1.
func (c *Controller) ArmAttack(slot int) error {
	if c.mode == ModeIdle {
		return ErrNotSelected
	}
	if slot != 0 && slot != 1 {
		return ErrInvalidSlot
	}
	unit, ok := c.board.UnitAt(c.selected)
	if !ok {
		c.resetSelection()
		return ErrNoUnit
	}
	if !unit.ActionRemaining {
		return ErrNoActionRemaining
	}

	attack := unit.Attacks[slot]
	c.mode = ModeAction
	c.preview = Previsualisation{
		Kind:         PreviewAction,
		SecondAttack: slot == 1,
		Attack:       attack,
		Targets:      PotentialTargets(attack, c.board, c.selected),
	}
	c.refreshPreview()
	return nil
}

// DisarmAttack leaves action preview and returns to movement preview.
func (c *Controller) DisarmAttack() error {
	if c.mode != ModeAction {
		return ErrWrongMode
	}
	c.mode = ModeMovement
	c.preview = Previsualisation{Kind: PreviewMovement}
	c.refreshPreview()
	return nil
}

// Cancel drops the selection and any preview.
func (c *Controller) Cancel() {
	c.resetSelection()
}

// CommitMove moves the selected unit along its route to cell. Committing
// to the unit's own cell just deselects it.
func (c *Controller) CommitMove(cell CellID) error {
	switch c.mode {
	case ModeIdle:
		return ErrNotSelected
	case ModeAction:
		return ErrWrongMode
	}
	unit, ok := c.board.UnitAt(c.selected)
	if !ok {
		c.resetSelection()
		return ErrNoUnit
	}
	if unit.IsHostile() {
		return ErrHostileUnit
	}
	if cell == c.selected {
		c.resetSelection()
		return nil
	}

	reachable := ComputeReachable(c.board, c.selected, unit.RemainingMoves)
	route, ok := ReconstructRoute(reachable, c.selected, cell)
	if !ok {
		return ErrNotReachable
	}

	from := c.selected
	c.board.update(from, func(u *Unit) { u.RemainingMoves -= len(route) })
	if err := c.board.Move(from, cell); err != nil {
		c.board.update(from, func(u *Unit) { u.RemainingMoves += len(route) })
		return fmt.Errorf("%w: %v", ErrNotReachable, err)
	}
	c.record(Event{
		Kind:     EventUnitMoved,
		UnitID:   unit.ID,
		UnitType: unit.Type.String(),
		From:     from,
		To:       cell,
		Message:  fmt.Sprintf("%s moved from %s to %s (%d moves left)", unit.Type, from, cell, unit.RemainingMoves-len(route)),
	})
	c.resetSelection()
	return nil
}

// CommitAction resolves the armed attack against cell.
func (c *Controller) CommitAction(cell CellID) error {
	switch c.mode {
	case ModeIdle:
		return ErrNotSelected
	case ModeMovement:
		return ErrWrongMode
	}
	unit, ok := c.board.UnitAt(c.selected)
	if !ok {
		c.resetSelection()
		return ErrNoUnit
	}
	if unit.IsHostile() {
		return ErrHostileUnit
	}
	if !unit.ActionRemaining {
		return ErrNoActionRemaining
	}
	attack := c.preview.Attack
	if !containsCell(PotentialTargets(attack, c.board, c.selected), cell) {
		return ErrInvalidTarget
	}

	consequences := c.preview.Consequences
	if !c.hasHovered || c.hovered != cell {
		consequences = Consequences(attack, c.board, c.selected, cell)
	}
	if len(consequences) == 0 {
		return ErrInvalidTarget
	}

	origin := c.selected
	c.board.update(origin, func(u *Unit) { u.ActionRemaining = false })
	res := Apply(c.board, consequences)
	c.record(Event{
		Kind:     EventAttack,
		UnitID:   unit.ID,
		UnitType: unit.Type.String(),
		From:     origin,
		To:       cell,
		Message:  fmt.Sprintf("%s used %s on %s", unit.Type, attack, cell),
	})
	c.recordResolution(res)
	c.resetSelection()
	return nil
}
