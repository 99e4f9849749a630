package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hmendes/prepdesk/internal/domain"
)

// StudyStore implements domain.StudyRepository on SQLite.
type StudyStore struct {
	db *sqlx.DB
}

var _ domain.StudyRepository = (*StudyStore)(nil)

// studySessionRow mirrors the study_sessions table.
type studySessionRow struct {
	ID       int64     `db:"id"`
	Subject  string    `db:"subject"`
	LoggedAt time.Time `db:"logged_at"`
	Hours    float64   `db:"hours"`
	Clarity  int       `db:"clarity"`
	Notes    string    `db:"notes"`
}

func (r *studySessionRow) toDomain() *domain.StudySession {
	return &domain.StudySession{
		ID:       r.ID,
		Subject:  domain.Subject(r.Subject),
		LoggedAt: r.LoggedAt,
		Hours:    r.Hours,
		Clarity:  r.Clarity,
		Notes:    r.Notes,
	}
}

// Insert appends a session and assigns its ID.
func (s *StudyStore) Insert(ctx context.Context, session *domain.StudySession) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO study_sessions (subject, logged_at, hours, clarity, notes)
		VALUES (?, ?, ?, ?, ?)`,
		string(session.Subject),
		session.LoggedAt,
		session.Hours,
		session.Clarity,
		session.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert study session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read study session id: %w", err)
	}
	session.ID = id
	return nil
}

// List retrieves sessions descending by logged time. A non-positive
// limit returns all sessions.
func (s *StudyStore) List(ctx context.Context, limit int) ([]*domain.StudySession, error) {
	query := `SELECT * FROM study_sessions ORDER BY logged_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []studySessionRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select study sessions: %w", err)
	}
	sessions := make([]*domain.StudySession, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, rows[i].toDomain())
	}
	return sessions, nil
}
