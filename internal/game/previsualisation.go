package game

// PreviewKind says which sub-mode a Previsualisation belongs to.
type PreviewKind int

const (
	PreviewMovement PreviewKind = iota
	PreviewAction
)

// Previsualisation is the staged, uncommitted preview of what the
// selected unit is about to do. It is data for the presentation layer.
type Previsualisation struct {
	Kind PreviewKind

	// Movement: the route to the hovered cell, when one exists.
	Route    []CellID
	HasRoute bool

	// Action: the armed slot, its legal targets and the consequences of
	// hitting the hovered target.
	SecondAttack bool
	Attack       Attack
	Targets      []CellID
	Consequences []Consequence
}

// IsMovementSome reports whether a movement route is being previewed.
func (p Previsualisation) IsMovementSome() bool {
	return p.Kind == PreviewMovement && p.HasRoute
}

// IsTarget reports whether cell is a legal target of the armed attack.
func (p Previsualisation) IsTarget(cell CellID) bool {
	if p.Kind != PreviewAction {
		return false
	}
	return containsCell(p.Targets, cell)
}

func (p Previsualisation) clone() Previsualisation {
	out := p
	out.Route = append([]CellID(nil), p.Route...)
	out.Targets = append([]CellID(nil), p.Targets...)
	out.Consequences = append([]Consequence(nil), p.Consequences...)
	return out
}

func containsCell(cells []CellID, cell CellID) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}
