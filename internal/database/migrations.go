package database

type migration struct {
	id   int
	name string
	sql  string
}

var migrations = []migration{
	{
		id:   1,
		name: "initial_schema",
		sql: `
			-- Sessions: one row per played session
			CREATE TABLE sessions (
				id TEXT PRIMARY KEY,
				seed INTEGER NOT NULL,
				status TEXT NOT NULL DEFAULT 'playing',
				turn INTEGER NOT NULL DEFAULT 1,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				ended_at DATETIME
			);
			CREATE INDEX idx_sessions_status ON sessions(status);

			-- Game history: append-only log of committed events
			CREATE TABLE game_history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				session_id TEXT NOT NULL,
				turn INTEGER NOT NULL,
				event_type TEXT NOT NULL,
				unit_id TEXT,
				unit_type TEXT,
				from_cell INTEGER,
				to_cell INTEGER,
				message TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_game_history_session ON game_history(session_id);
		`,
	},
	{
		id:   2,
		name: "add_outcome_column",
		sql: `
			ALTER TABLE sessions ADD COLUMN outcome TEXT NOT NULL DEFAULT 'Ongoing';
		`,
	},
}
