package database

import (
	"database/sql"
	"time"
)

// HistoryEvent represents a single event in the session history log.
type HistoryEvent struct {
	ID        int64
	SessionID string
	Turn      int
	EventType string
	UnitID    string
	UnitType  string
	FromCell  int
	ToCell    int
	Message   string
	CreatedAt time.Time
}

// AddHistoryEvent appends an event to the session history.
func (db *DB) AddHistoryEvent(e HistoryEvent) error {
	_, err := db.conn.Exec(`
		INSERT INTO game_history (session_id, turn, event_type, unit_id, unit_type, from_cell, to_cell, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.SessionID, e.Turn, e.EventType, e.UnitID, e.UnitType, e.FromCell, e.ToCell, e.Message, time.Now())
	return err
}

// GetSessionHistory retrieves all history events for a session, ordered chronologically.
func (db *DB) GetSessionHistory(sessionID string) ([]*HistoryEvent, error) {
	return db.queryHistory(`
		SELECT id, session_id, turn, event_type, unit_id, unit_type, from_cell, to_cell, message, created_at
		FROM game_history
		WHERE session_id = ?
		ORDER BY id ASC
	`, sessionID)
}

// GetSessionHistorySince retrieves history events after a given ID.
func (db *DB) GetSessionHistorySince(sessionID string, afterID int64) ([]*HistoryEvent, error) {
	return db.queryHistory(`
		SELECT id, session_id, turn, event_type, unit_id, unit_type, from_cell, to_cell, message, created_at
		FROM game_history
		WHERE session_id = ? AND id > ?
		ORDER BY id ASC
	`, sessionID, afterID)
}

// GetUnitHistory follows one unit across a session.
func (db *DB) GetUnitHistory(sessionID, unitID string) ([]*HistoryEvent, error) {
	return db.queryHistory(`
		SELECT id, session_id, turn, event_type, unit_id, unit_type, from_cell, to_cell, message, created_at
		FROM game_history
		WHERE session_id = ? AND unit_id = ?
		ORDER BY id ASC
	`, sessionID, unitID)
}

// ClearSessionHistory deletes all history for a session.
func (db *DB) ClearSessionHistory(sessionID string) error {
	_, err := db.conn.Exec(`DELETE FROM game_history WHERE session_id = ?`, sessionID)
	return err
}

func (db *DB) queryHistory(query string, args ...any) ([]*HistoryEvent, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*HistoryEvent
	for rows.Next() {
		e := &HistoryEvent{}
		var unitID, unitType sql.NullString
		var from, to sql.NullInt64
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Turn, &e.EventType, &unitID, &unitType, &from, &to, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.UnitID, e.UnitType = unitID.String, unitType.String
		e.FromCell, e.ToCell = int(from.Int64), int(to.Int64)
		events = append(events, e)
	}
	return events, rows.Err()
}
