package game

import "fmt"

// Attack represents one of the attack kinds a unit can carry.
type Attack int

const (
	AttackStickKnock Attack = iota
	AttackVolleyOfArrows
	AttackOffensiveSwordFight
	AttackDefensiveSwordFight
	AttackHeal
)

// targetShape is the set of cells an attack can be aimed at.
type targetShape int

const (
	shapeAdjacent targetShape = iota
	shapeAdjacentAndSelf
	shapeRay
)

// displacement says which way a struck unit is moved.
type displacement int

const (
	displaceNone displacement = iota
	displaceAway
	displaceToward
)

// attackProfile is the data-driven description of an attack. Damage is
// dealt when the struck unit can be displaced; ObstructedDamage plus
// Collateral on the blocking unit when it cannot.
type attackProfile struct {
	Name             string
	Description      string
	Shape            targetShape
	Damage           int
	ObstructedDamage int
	Collateral       int
	Displacement     displacement
	Heal             int
	Ranged           bool
}

var attackProfiles = map[Attack]attackProfile{
	AttackStickKnock: {
		Name:             "Stick Knock",
		Description:      "Hit an adjacent unit (1 damage) and push it away.",
		Shape:            shapeAdjacent,
		Damage:           1,
		ObstructedDamage: 2,
		Collateral:       1,
		Displacement:     displaceAway,
	},
	AttackVolleyOfArrows: {
		Name:             "Volley of Arrows",
		Description:      "Shoot arrows in one direction. The first unit on that line is hit (2 damage) and pushed away.",
		Shape:            shapeRay,
		Damage:           2,
		ObstructedDamage: 3,
		Collateral:       1,
		Displacement:     displaceAway,
		Ranged:           true,
	},
	AttackOffensiveSwordFight: {
		Name:             "Offensive Sword Fight",
		Description:      "Attack an adjacent unit with a sword (2 damage) and pull it (1 damage for both units).",
		Shape:            shapeAdjacent,
		Damage:           2,
		ObstructedDamage: 3,
		Collateral:       1,
		Displacement:     displaceToward,
	},
	AttackDefensiveSwordFight: {
		Name:             "Defensive Sword Fight",
		Description:      "Attack an adjacent unit with a sword (2 damage) and push it away.",
		Shape:            shapeAdjacent,
		Damage:           2,
		ObstructedDamage: 3,
		Collateral:       1,
		Displacement:     displaceAway,
	},
	AttackHeal: {
		Name:        "Heal",
		Description: "Restore 1 LP. The healed unit is restored to at least a third of its max LP.",
		Shape:       shapeAdjacentAndSelf,
		Heal:        1,
	},
}

// Name returns the display name.
func (a Attack) Name() string {
	if p, ok := attackProfiles[a]; ok {
		return p.Name
	}
	return "Unknown"
}

// String returns the display name.
func (a Attack) String() string {
	return a.Name()
}

// Description returns the help text shown while the attack is armed.
func (a Attack) Description() string {
	return attackProfiles[a].Description
}

// UsableBy reports whether the unit type carries the attack.
func (a Attack) UsableBy(t UnitType) bool {
	attacks := t.Stats().Attacks
	return attacks[0] == a || attacks[1] == a
}

// ConsequenceKind tags the variant held by a Consequence.
type ConsequenceKind int

const (
	ConsequenceLifeChange ConsequenceKind = iota
	ConsequencePushArrow
	ConsequenceLongDistanceShoot
)

// Consequence is one atomic effect of an attack anchored at Cell. Which
// fields are meaningful depends on Kind:
//   - LifeChange: Life, carrying the staged PendingLoss
//   - PushArrow: Direction and Cancelled
//   - LongDistanceShoot: Target, the cell actually hit
type Consequence struct {
	Cell      CellID          `json:"cell"`
	Kind      ConsequenceKind `json:"kind"`
	Life      Life            `json:"life"`
	Direction Direction       `json:"direction,omitempty"`
	Cancelled bool            `json:"cancelled,omitempty"`
	Target    CellID          `json:"target,omitempty"`
}

// LifeChange builds a life change consequence.
func LifeChange(cell CellID, life Life) Consequence {
	return Consequence{Cell: cell, Kind: ConsequenceLifeChange, Life: life}
}

// PushArrow builds a push consequence.
func PushArrow(cell CellID, d Direction, cancelled bool) Consequence {
	return Consequence{Cell: cell, Kind: ConsequencePushArrow, Direction: d, Cancelled: cancelled}
}

// LongDistanceShoot builds a ranged hit marker.
func LongDistanceShoot(origin, target CellID) Consequence {
	return Consequence{Cell: origin, Kind: ConsequenceLongDistanceShoot, Target: target}
}

func (c Consequence) String() string {
	switch c.Kind {
	case ConsequenceLifeChange:
		return fmt.Sprintf("%s life %s", c.Cell, c.Life)
	case ConsequencePushArrow:
		if c.Cancelled {
			return fmt.Sprintf("%s push %s blocked", c.Cell, c.Direction)
		}
		return fmt.Sprintf("%s push %s", c.Cell, c.Direction)
	case ConsequenceLongDistanceShoot:
		return fmt.Sprintf("%s shoots %s", c.Cell, c.Target)
	default:
		return "unknown consequence"
	}
}

// ray returns the cells from origin outward in one direction, stopping
// after the first occupied cell.
func ray(b *Board, origin CellID, d Direction) []CellID {
	cells := make([]CellID, 0, RowCount)
	current := origin
	for {
		next, ok := current.Neighbor(d)
		if !ok {
			return cells
		}
		cells = append(cells, next)
		if b.IsOccupied(next) {
			return cells
		}
		current = next
	}
}

// PotentialTargets returns the cells the attack may be aimed at from origin.
func PotentialTargets(a Attack, b *Board, origin CellID) []CellID {
	if !origin.Valid() {
		return nil
	}
	switch attackProfiles[a].Shape {
	case shapeAdjacentAndSelf:
		return append(origin.Neighbors(), origin)
	case shapeRay:
		targets := make([]CellID, 0)
		for _, d := range Directions {
			targets = append(targets, ray(b, origin, d)...)
		}
		return targets
	default:
		return origin.Neighbors()
	}
}

// strike finds the direction of the attack and the cell actually hit.
// For ranged attacks the struck cell is the end of the ray holding target.
func strike(p attackProfile, b *Board, origin, target CellID) (Direction, CellID, bool) {
	if p.Shape == shapeRay {
		for _, d := range Directions {
			cells := ray(b, origin, d)
			for _, c := range cells {
				if c == target {
					return d, cells[len(cells)-1], true
				}
			}
		}
		return 0, 0, false
	}
	d, ok := origin.DirectionTo(target)
	return d, target, ok
}

// Consequences computes, without touching the board, what the attack from
// origin aimed at target would do. It returns nil when target is not a
// legal target.
func Consequences(a Attack, b *Board, origin, target CellID) []Consequence {
	p, ok := attackProfiles[a]
	if !ok || !origin.Valid() || !target.Valid() {
		return nil
	}

	if p.Heal > 0 {
		if p.Shape != shapeAdjacentAndSelf || (target != origin && !isAdjacent(origin, target)) {
			return nil
		}
		u, ok := b.UnitAt(target)
		if !ok {
			return nil
		}
		return []Consequence{LifeChange(target, u.Life.PrevisualiseLoss(-p.Heal))}
	}

	direction, struck, ok := strike(p, b, origin, target)
	if !ok {
		return nil
	}
	push := direction
	if p.Displacement == displaceToward {
		push = direction.Opposite()
	}

	consequences := make([]Consequence, 0, 4)
	if u, ok := b.UnitAt(struck); ok {
		behind, hasBehind := struck.Neighbor(push)
		if blocker, blocked := b.UnitAt(behind); hasBehind && blocked {
			consequences = append(consequences,
				LifeChange(struck, u.Life.PrevisualiseLoss(p.ObstructedDamage)),
				LifeChange(behind, blocker.Life.PrevisualiseLoss(p.Collateral)),
				PushArrow(struck, push, true),
			)
		} else {
			consequences = append(consequences,
				LifeChange(struck, u.Life.PrevisualiseLoss(p.Damage)),
				PushArrow(struck, push, false),
			)
		}
	} else if p.Displacement != displaceNone && !p.Ranged {
		consequences = append(consequences, PushArrow(struck, push, false))
	}

	if p.Ranged {
		consequences = append(consequences, LongDistanceShoot(origin, struck))
	}
	return consequences
}

func isAdjacent(a, b CellID) bool {
	_, ok := a.DirectionTo(b)
	return ok
}

// Casualty is a unit removed from the board by Apply.
type Casualty struct {
	Cell CellID
	Unit Unit
}

// Resolution summarises what Apply changed on the board.
type Resolution struct {
	Killed []Casualty
	Moved  [][2]CellID
}

// Apply commits a consequence list to the board in order. A life change
// applies its staged loss to whoever occupies the cell now; a lethal one
// empties the cell. A push moves the unit only when it was not cancelled
// and the destination is vacant at this moment. Ranged markers change
// nothing.
func Apply(b *Board, consequences []Consequence) Resolution {
	var res Resolution
	for _, c := range consequences {
		switch c.Kind {
		case ConsequenceLifeChange:
			u, ok := b.UnitAt(c.Cell)
			if !ok {
				continue
			}
			life := u.Life.PrevisualiseLoss(c.Life.PendingLoss).Resolved()
			if life.IsDead() {
				dead, _ := b.Remove(c.Cell)
				dead.Life = life
				res.Killed = append(res.Killed, Casualty{Cell: c.Cell, Unit: dead})
				continue
			}
			b.update(c.Cell, func(u *Unit) { u.Life = life })
		case ConsequencePushArrow:
			if c.Cancelled || !b.IsOccupied(c.Cell) {
				continue
			}
			dest, ok := c.Cell.Neighbor(c.Direction)
			if !ok || b.IsOccupied(dest) {
				continue
			}
			if err := b.Move(c.Cell, dest); err == nil {
				res.Moved = append(res.Moved, [2]CellID{c.Cell, dest})
			}
		case ConsequenceLongDistanceShoot:
			// display only
		}
	}
	return res
}
