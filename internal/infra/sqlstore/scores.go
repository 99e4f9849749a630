package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hmendes/prepdesk/internal/domain"
)

// ScoreStore implements domain.ScoreRepository on SQLite.
type ScoreStore struct {
	db *sqlx.DB
}

var _ domain.ScoreRepository = (*ScoreStore)(nil)

// mockScoreRow mirrors the mock_scores table.
type mockScoreRow struct {
	ID          int64     `db:"id"`
	ExamType    string    `db:"exam_type"`
	Score       int       `db:"score"`
	TotalPoints int       `db:"total_points"`
	LoggedAt    time.Time `db:"logged_at"`
	Notes       string    `db:"notes"`
}

func (r *mockScoreRow) toDomain() *domain.MockScore {
	return &domain.MockScore{
		ID:          r.ID,
		ExamType:    r.ExamType,
		Score:       r.Score,
		TotalPoints: r.TotalPoints,
		LoggedAt:    r.LoggedAt,
		Notes:       r.Notes,
	}
}

// Insert appends a score and assigns its ID.
func (s *ScoreStore) Insert(ctx context.Context, score *domain.MockScore) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO mock_scores (exam_type, score, total_points, logged_at, notes)
		VALUES (?, ?, ?, ?, ?)`,
		score.ExamType,
		score.Score,
		score.TotalPoints,
		score.LoggedAt,
		score.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert mock score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read mock score id: %w", err)
	}
	score.ID = id
	return nil
}

// List retrieves scores descending by logged time. A non-positive limit
// returns all scores.
func (s *ScoreStore) List(ctx context.Context, limit int) ([]*domain.MockScore, error) {
	query := `SELECT * FROM mock_scores ORDER BY logged_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []mockScoreRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select mock scores: %w", err)
	}
	scores := make([]*domain.MockScore, 0, len(rows))
	for i := range rows {
		scores = append(scores, rows[i].toDomain())
	}
	return scores, nil
}
