package game

import "fmt"

// hostileScript is the fixed hostile policy: knock whatever stands to the
// top left.
func hostileScript() ScriptedAction {
	return ScriptedAction{Attack: AttackStickKnock, Path: []Direction{TopLeft}}
}

// NextTurn ends the current turn. Every unit gets its moves and action
// back, the staged hostile actions resolve, the turn counter advances and
// the hostile units plan and stage their next actions.
func (c *Controller) NextTurn() {
	c.resetSelection()

	for _, cell := range c.board.OccupiedCells() {
		c.board.update(cell, func(u *Unit) { u.ResetTurn() })
	}

	for _, intent := range c.intents {
		// The actor may have died or been pushed since staging.
		cell, ok := c.board.FindUnit(intent.UnitID)
		if !ok || cell != intent.Origin {
			continue
		}
		actor, _ := c.board.UnitAt(cell)
		res := Apply(c.board, intent.Consequences)
		c.record(Event{
			Kind:     EventHostileAttack,
			UnitID:   actor.ID,
			UnitType: actor.Type.String(),
			From:     intent.Origin,
			To:       intent.Target,
			Message:  fmt.Sprintf("%s used %s on %s", actor.Type, intent.Action.Attack, intent.Target),
		})
		c.recordResolution(res)
	}
	c.intents = nil

	c.Turn++
	c.record(Event{Kind: EventTurnStart, Message: fmt.Sprintf("turn %d", c.Turn)})

	c.planHostiles()
	c.stageHostiles()
}

// planHostiles gives every hostile unit its scripted next action.
func (c *Controller) planHostiles() {
	for _, cell := range c.board.OccupiedCells() {
		c.board.update(cell, func(u *Unit) {
			if !u.IsHostile() {
				return
			}
			script := hostileScript()
			if _, ok := script.Target(cell); !ok {
				u.Script = nil
				return
			}
			u.Script = &script
		})
	}
}

// stageHostiles computes the consequences of every planned hostile action
// against the current board so they can be previewed.
func (c *Controller) stageHostiles() {
	c.intents = c.intents[:0]
	for _, cell := range c.board.OccupiedCells() {
		u, _ := c.board.UnitAt(cell)
		if !u.IsHostile() || u.Script == nil {
			continue
		}
		target, ok := u.Script.Target(cell)
		if !ok {
			continue
		}
		action := ScriptedAction{Attack: u.Script.Attack, Path: append([]Direction(nil), u.Script.Path...)}
		c.intents = append(c.intents, HostileIntent{
			UnitID:       u.ID,
			Origin:       cell,
			Action:       action,
			Target:       target,
			Consequences: Consequences(action.Attack, c.board, cell, target),
		})
	}
}
