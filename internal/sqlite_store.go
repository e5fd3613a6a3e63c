package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	position      INTEGER NOT NULL,
	id            TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	last_modified TEXT NOT NULL,
	is_active     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS messages (
	session_id TEXT NOT NULL,
	position   INTEGER NOT NULL,
	id         TEXT NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	timestamp  TEXT NOT NULL,
	PRIMARY KEY (session_id, position)
);`

// SQLiteSnapshotStore keeps the session collection in a SQLite database.
// It has the same full-snapshot semantics as the JSON store: every save
// replaces the entire stored collection inside one transaction.
type SQLiteSnapshotStore struct {
	path string
}

// NewSQLiteSnapshotStore creates a SQLite snapshot store backed by the
// database file at path.
func NewSQLiteSnapshotStore(path string) *SQLiteSnapshotStore {
	return &SQLiteSnapshotStore{path: path}
}

// Path returns the database file path.
func (s *SQLiteSnapshotStore) Path() string {
	return s.path
}

func (s *SQLiteSnapshotStore) open() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, &SnapshotError{Backend: "sqlite", Op: "open", Err: err}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, &SnapshotError{Backend: "sqlite", Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &SnapshotError{Backend: "sqlite", Op: "open", Err: err}
	}

	if _, err := db.Exec(snapshotSchema); err != nil {
		db.Close()
		return nil, &SnapshotError{Backend: "sqlite", Op: "open", Err: err}
	}

	return db, nil
}

// Load reads the full session collection ordered by stored position.
func (s *SQLiteSnapshotStore) Load() ([]*ChatSession, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		"SELECT id, title, last_modified, is_active FROM sessions ORDER BY position")
	if err != nil {
		return nil, &SnapshotError{Backend: "sqlite", Op: "load", Err: err}
	}
	defer rows.Close()

	var sessions []*ChatSession
	for rows.Next() {
		var sess ChatSession
		var modified string
		var active int
		if err := rows.Scan(&sess.ID, &sess.Title, &modified, &active); err != nil {
			return nil, &SnapshotError{Backend: "sqlite", Op: "load", Err: err}
		}
		ts, err := time.Parse(time.RFC3339Nano, modified)
		if err != nil {
			return nil, &SnapshotError{Backend: "sqlite", Op: "load",
				Err: fmt.Errorf("bad last_modified for session %s: %w", sess.ID, err)}
		}
		sess.LastModified = ts
		sess.IsActive = active != 0
		sess.Messages = []Message{}
		sessions = append(sessions, &sess)
	}
	if err := rows.Err(); err != nil {
		return nil, &SnapshotError{Backend: "sqlite", Op: "load", Err: err}
	}

	for _, sess := range sessions {
		if err := s.loadMessages(db, sess); err != nil {
			return nil, err
		}
	}

	return sessions, nil
}

func (s *SQLiteSnapshotStore) loadMessages(db *sql.DB, sess *ChatSession) error {
	rows, err := db.Query(
		"SELECT id, role, content, timestamp FROM messages WHERE session_id = ? ORDER BY position",
		sess.ID)
	if err != nil {
		return &SnapshotError{Backend: "sqlite", Op: "load", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var msg Message
		var role, stamp string
		if err := rows.Scan(&msg.ID, &role, &msg.Content, &stamp); err != nil {
			return &SnapshotError{Backend: "sqlite", Op: "load", Err: err}
		}
		ts, err := time.Parse(time.RFC3339Nano, stamp)
		if err != nil {
			return &SnapshotError{Backend: "sqlite", Op: "load",
				Err: fmt.Errorf("bad timestamp for message %s: %w", msg.ID, err)}
		}
		msg.Role = Role(role)
		msg.Timestamp = ts
		sess.Messages = append(sess.Messages, msg)
	}

	return rows.Err()
}

// Save replaces the stored collection with sessions in one transaction.
func (s *SQLiteSnapshotStore) Save(sessions []*ChatSession) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return &SnapshotError{Backend: "sqlite", Op: "save", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages"); err != nil {
		return &SnapshotError{Backend: "sqlite", Op: "save", Err: err}
	}
	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return &SnapshotError{Backend: "sqlite", Op: "save", Err: err}
	}

	sessStmt, err := tx.Prepare(
		"INSERT INTO sessions (position, id, title, last_modified, is_active) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return &SnapshotError{Backend: "sqlite", Op: "save", Err: err}
	}
	defer sessStmt.Close()

	msgStmt, err := tx.Prepare(
		"INSERT INTO messages (session_id, position, id, role, content, timestamp) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return &SnapshotError{Backend: "sqlite", Op: "save", Err: err}
	}
	defer msgStmt.Close()

	for pos, sess := range sessions {
		active := 0
		if sess.IsActive {
			active = 1
		}
		if _, err := sessStmt.Exec(pos, sess.ID, sess.Title,
			sess.LastModified.Format(time.RFC3339Nano), active); err != nil {
			return &SnapshotError{Backend: "sqlite", Op: "save", Err: err}
		}
		for i, msg := range sess.Messages {
			if _, err := msgStmt.Exec(sess.ID, i, msg.ID, string(msg.Role),
				msg.Content, msg.Timestamp.Format(time.RFC3339Nano)); err != nil {
				return &SnapshotError{Backend: "sqlite", Op: "save", Err: err}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return &SnapshotError{Backend: "sqlite", Op: "save", Err: err}
	}

	return nil
}
