package usecase

import (
	"context"
	"fmt"

	"github.com/hmendes/prepdesk/internal/domain"
)

// LogMockScoreInput contains the parameters for logging a mock score.
// Fields are ordered to minimize memory padding.
type LogMockScoreInput struct {
	ExamType    string // e.g. "Full MBE (200q)"
	Notes       string // Free-form notes (optional)
	Score       int    // Points earned, non-negative
	TotalPoints int    // Points possible, positive
}

// LogMockScoreOutput contains the result of logging a mock score.
type LogMockScoreOutput struct {
	Score      *domain.MockScore // The logged score
	Percentage float64           // Score as a percentage of total points
}

// LogMockScore is the use case for recording one practice-exam result.
// Scores are append-only; once logged they never change. The system
// does not reject scores above the total.
type LogMockScore struct {
	scores domain.ScoreRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewLogMockScore creates a new LogMockScore use case.
func NewLogMockScore(scores domain.ScoreRepository, clock domain.Clock, logger domain.Logger) *LogMockScore {
	return &LogMockScore{
		scores: scores,
		clock:  clock,
		logger: logger,
	}
}

// Execute validates the input and appends a new score record.
func (uc *LogMockScore) Execute(ctx context.Context, in LogMockScoreInput) (*LogMockScoreOutput, error) {
	if in.TotalPoints <= 0 {
		return nil, fmt.Errorf("%d: %w", in.TotalPoints, domain.ErrInvalidTotalPoints)
	}
	if in.Score < 0 {
		return nil, fmt.Errorf("%d: %w", in.Score, domain.ErrNegativeScore)
	}

	score := &domain.MockScore{
		ExamType:    in.ExamType,
		Score:       in.Score,
		TotalPoints: in.TotalPoints,
		LoggedAt:    uc.clock.Now(),
		Notes:       in.Notes,
	}

	if err := uc.scores.Insert(ctx, score); err != nil {
		return nil, fmt.Errorf("log mock score: %w", err)
	}

	pct := score.Percentage()
	if uc.logger != nil {
		uc.logger.Info("mock", fmt.Sprintf("logged %s: %d/%d (%.1f%%)", score.ExamType, score.Score, score.TotalPoints, pct))
	}

	return &LogMockScoreOutput{Score: score, Percentage: pct}, nil
}
