package usecase

import (
	"context"
	"fmt"

	"github.com/hmendes/prepdesk/internal/domain"
)

// ListMockScoresInput contains the parameters for listing mock scores.
type ListMockScoresInput struct {
	Limit int // Maximum number of scores (<= 0 = all)
}

// ListMockScoresOutput contains the result of listing mock scores.
type ListMockScoresOutput struct {
	Scores []*domain.MockScore // Most recent first
}

// ListMockScores is the use case for listing logged mock scores.
type ListMockScores struct {
	scores domain.ScoreRepository
}

// NewListMockScores creates a new ListMockScores use case.
func NewListMockScores(scores domain.ScoreRepository) *ListMockScores {
	return &ListMockScores{scores: scores}
}

// Execute lists scores descending by logged time.
func (uc *ListMockScores) Execute(ctx context.Context, in ListMockScoresInput) (*ListMockScoresOutput, error) {
	scores, err := uc.scores.List(ctx, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("list mock scores: %w", err)
	}

	return &ListMockScoresOutput{Scores: scores}, nil
}
