package game

// EventKind identifies a history event.
type EventKind string

// Event kinds emitted by the controller.
const (
	EventSessionStart  EventKind = "session_start"
	EventTurnStart     EventKind = "turn_start"
	EventUnitMoved     EventKind = "unit_moved"
	EventAttack        EventKind = "attack"
	EventHostileAttack EventKind = "hostile_attack"
	EventUnitPushed    EventKind = "unit_pushed"
	EventUnitKilled    EventKind = "unit_killed"
)

// Event is one committed change to a session, emitted to a Recorder.
type Event struct {
	SessionID string
	Turn      int
	Kind      EventKind
	UnitID    string
	UnitType  string
	From      CellID
	To        CellID
	Message   string
}

// Recorder receives every committed event. Implementations must not call
// back into the controller.
type Recorder interface {
	Record(e Event)
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(e Event)

// Record calls f(e).
func (f RecorderFunc) Record(e Event) {
	f(e)
}

type nopRecorder struct{}

func (nopRecorder) Record(Event) {}
