package database

import (
	"log"

	"hex-tactics/internal/game"
)

// Journal records controller events into the database. Write failures are
// logged and dropped so a broken journal never blocks play.
type Journal struct {
	db   *DB
	seed int64
}

// NewJournal returns a recorder writing to db. The seed is stored on the
// session row when the session start event arrives.
func NewJournal(db *DB, seed int64) *Journal {
	return &Journal{db: db, seed: seed}
}

// Record implements game.Recorder.
func (j *Journal) Record(e game.Event) {
	switch e.Kind {
	case game.EventSessionStart:
		if _, err := j.db.CreateSession(e.SessionID, j.seed); err != nil {
			log.Printf("Journal: failed to create session %s: %v", e.SessionID, err)
			return
		}
	case game.EventTurnStart:
		if err := j.db.UpdateSessionTurn(e.SessionID, e.Turn); err != nil {
			log.Printf("Journal: failed to update turn of %s: %v", e.SessionID, err)
		}
	}

	err := j.db.AddHistoryEvent(HistoryEvent{
		SessionID: e.SessionID,
		Turn:      e.Turn,
		EventType: string(e.Kind),
		UnitID:    e.UnitID,
		UnitType:  e.UnitType,
		FromCell:  e.From.Index(),
		ToCell:    e.To.Index(),
		Message:   e.Message,
	})
	if err != nil {
		log.Printf("Journal: failed to record %s for %s: %v", e.Kind, e.SessionID, err)
	}
}

// Finish marks the session ended with the controller's outcome.
func (j *Journal) Finish(c *game.Controller) {
	if err := j.db.EndSession(c.ID, c.Outcome().String()); err != nil {
		log.Printf("Journal: failed to end session %s: %v", c.ID, err)
	}
}
