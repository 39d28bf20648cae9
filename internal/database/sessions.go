package database

import (
	"database/sql"
	"errors"
	"time"
)

// SessionStatus represents the current status of a session.
type SessionStatus string

const (
	SessionStatusPlaying  SessionStatus = "playing"
	SessionStatusFinished SessionStatus = "finished"
)

// Session is one journaled play session.
type Session struct {
	ID        string
	Seed      int64
	Status    SessionStatus
	Turn      int
	Outcome   string
	CreatedAt time.Time
	EndedAt   *time.Time
}

// ErrSessionNotFound is returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

// CreateSession inserts a session row for a freshly started controller.
func (db *DB) CreateSession(id string, seed int64) (*Session, error) {
	now := time.Now()
	_, err := db.conn.Exec(`
		INSERT INTO sessions (id, seed, status, turn, created_at)
		VALUES (?, ?, ?, 1, ?)
	`, id, seed, SessionStatusPlaying, now)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        id,
		Seed:      seed,
		Status:    SessionStatusPlaying,
		Turn:      1,
		Outcome:   "Ongoing",
		CreatedAt: now,
	}, nil
}

// GetSession retrieves a session by ID.
func (db *DB) GetSession(id string) (*Session, error) {
	s := &Session{}
	var endedAt sql.NullTime
	err := db.conn.QueryRow(`
		SELECT id, seed, status, turn, outcome, created_at, ended_at
		FROM sessions WHERE id = ?
	`, id).Scan(&s.ID, &s.Seed, &s.Status, &s.Turn, &s.Outcome, &s.CreatedAt, &endedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if endedAt.Valid {
		s.EndedAt = &endedAt.Time
	}
	return s, nil
}

// ListSessions returns the most recent sessions first.
func (db *DB) ListSessions(limit int) ([]*Session, error) {
	rows, err := db.conn.Query(`
		SELECT id, seed, status, turn, outcome, created_at, ended_at
		FROM sessions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s := &Session{}
		var endedAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.Seed, &s.Status, &s.Turn, &s.Outcome, &s.CreatedAt, &endedAt); err != nil {
			return nil, err
		}
		if endedAt.Valid {
			s.EndedAt = &endedAt.Time
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// UpdateSessionTurn records the turn a session has reached.
func (db *DB) UpdateSessionTurn(id string, turn int) error {
	return db.execOne(`UPDATE sessions SET turn = ? WHERE id = ?`, turn, id)
}

// EndSession marks a session finished with its outcome.
func (db *DB) EndSession(id string, outcome string) error {
	return db.execOne(`
		UPDATE sessions SET status = ?, outcome = ?, ended_at = ? WHERE id = ?
	`, SessionStatusFinished, outcome, time.Now(), id)
}

// DeleteSession removes a session and its history.
func (db *DB) DeleteSession(id string) error {
	return db.execOne(`DELETE FROM sessions WHERE id = ?`, id)
}

// execOne runs a statement that must touch exactly one session row.
func (db *DB) execOne(query string, args ...any) error {
	result, err := db.conn.Exec(query, args...)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
