// Package sqlstore provides the SQLite-backed implementation of the
// task, study-session, and mock-score repositories.
package sqlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hmendes/prepdesk/internal/domain"
)

// dueDateLayout is how calendar dates are stored; lexical order equals
// chronological order, which the BETWEEN query relies on.
const dueDateLayout = "2006-01-02"

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL,
	task_type    TEXT NOT NULL,
	due_date     TEXT NOT NULL,
	priority     TEXT NOT NULL,
	status       TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL,
	completed_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_tasks_status_due ON tasks(status, due_date);

CREATE TABLE IF NOT EXISTS study_sessions (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	subject   TEXT NOT NULL,
	logged_at TIMESTAMP NOT NULL,
	hours     REAL NOT NULL,
	clarity   INTEGER NOT NULL,
	notes     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_study_sessions_logged ON study_sessions(logged_at);

CREATE TABLE IF NOT EXISTS mock_scores (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	exam_type    TEXT NOT NULL,
	score        INTEGER NOT NULL,
	total_points INTEGER NOT NULL,
	logged_at    TIMESTAMP NOT NULL,
	notes        TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_mock_scores_logged ON mock_scores(logged_at);
`

// Store owns the single shared SQLite handle for the process and hands
// out the typed repositories. Every write commits before the call
// returns; there is no cross-call buffering.
type Store struct {
	db *sqlx.DB
}

// Ensure Store implements StoreInitializer.
var _ domain.StoreInitializer = (*Store)(nil)

// Open creates or opens the database file at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single local user; one connection keeps SQLite happy under WAL.
	db.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Initialize creates the tables. Runs once at process start, never per
// operation.
func (s *Store) Initialize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// Tasks returns the task repository backed by this store.
func (s *Store) Tasks() *TaskStore {
	return &TaskStore{db: s.db}
}

// Sessions returns the study session repository backed by this store.
func (s *Store) Sessions() *StudyStore {
	return &StudyStore{db: s.db}
}

// Scores returns the mock score repository backed by this store.
func (s *Store) Scores() *ScoreStore {
	return &ScoreStore{db: s.db}
}
