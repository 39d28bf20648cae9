package game

import (
	"errors"
	"fmt"
)

// Game errors
var (
	ErrInvalidCell       = errors.New("invalid cell")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrCellOccupied      = errors.New("cell already occupied")
)

// Rejected commands. Each one wraps ErrIllegalTransition so callers can
// test for the whole category with errors.Is.
var (
	ErrNoUnit            = fmt.Errorf("%w: no unit on cell", ErrIllegalTransition)
	ErrAlreadySelected   = fmt.Errorf("%w: a unit is already selected", ErrIllegalTransition)
	ErrNotSelected       = fmt.Errorf("%w: no unit selected", ErrIllegalTransition)
	ErrWrongMode         = fmt.Errorf("%w: command not valid in current mode", ErrIllegalTransition)
	ErrNoActionRemaining = fmt.Errorf("%w: no action remaining this turn", ErrIllegalTransition)
	ErrInvalidSlot       = fmt.Errorf("%w: attack slot must be 0 or 1", ErrIllegalTransition)
	ErrNotReachable      = fmt.Errorf("%w: unit cannot reach destination", ErrIllegalTransition)
	ErrInvalidTarget     = fmt.Errorf("%w: invalid target", ErrIllegalTransition)
	ErrHostileUnit       = fmt.Errorf("%w: hostile units are not player controlled", ErrIllegalTransition)
)
