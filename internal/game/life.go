package game

import "fmt"

// Life tracks a unit's life points. PendingLoss is a staged delta used to
// preview an action; it only takes effect through Resolved.
type Life struct {
	Max         int `json:"max"`
	Current     int `json:"current"`
	PendingLoss int `json:"pendingLoss"`
}

// NewLife returns a full life bar.
func NewLife(max int) Life {
	return Life{Max: max, Current: max}
}

// PrevisualiseLoss returns a copy of the life with a staged loss.
// A negative loss is a heal.
func (l Life) PrevisualiseLoss(loss int) Life {
	return Life{Max: l.Max, Current: l.Current, PendingLoss: loss}
}

// HealFloor is the minimum life a heal restores a unit to.
func (l Life) HealFloor() int {
	return l.Max / 3
}

// Resolved commits the staged loss and returns the resulting life.
// A heal never lowers current life, raises it to at least HealFloor and
// never above Max.
func (l Life) Resolved() Life {
	if l.PendingLoss >= l.Current {
		return Life{Max: l.Max}
	}
	current := l.Current - l.PendingLoss
	if l.PendingLoss < 0 {
		if floor := l.HealFloor(); current < floor {
			current = floor
		}
		if current < l.Current {
			current = l.Current
		}
	}
	if current > l.Max {
		current = l.Max
	}
	return Life{Max: l.Max, Current: current}
}

// IsDead reports whether no life points remain.
func (l Life) IsDead() bool {
	return l.Current <= 0
}

// WouldDie reports whether committing the staged loss kills the unit.
func (l Life) WouldDie() bool {
	return l.Resolved().IsDead()
}

func (l Life) String() string {
	if l.PendingLoss != 0 {
		return fmt.Sprintf("%d/%d (%+d)", l.Current, l.Max, -l.PendingLoss)
	}
	return fmt.Sprintf("%d/%d", l.Current, l.Max)
}
