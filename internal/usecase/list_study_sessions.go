package usecase

import (
	"context"
	"fmt"

	"github.com/hmendes/prepdesk/internal/domain"
)

// ListStudySessionsInput contains the parameters for listing sessions.
type ListStudySessionsInput struct {
	Limit int // Maximum number of sessions (<= 0 = all)
}

// ListStudySessionsOutput contains the result of listing sessions.
type ListStudySessionsOutput struct {
	Sessions []*domain.StudySession // Most recent first
}

// ListStudySessions is the use case for listing logged study sessions.
type ListStudySessions struct {
	sessions domain.StudyRepository
}

// NewListStudySessions creates a new ListStudySessions use case.
func NewListStudySessions(sessions domain.StudyRepository) *ListStudySessions {
	return &ListStudySessions{sessions: sessions}
}

// Execute lists sessions descending by logged time.
func (uc *ListStudySessions) Execute(ctx context.Context, in ListStudySessionsInput) (*ListStudySessionsOutput, error) {
	sessions, err := uc.sessions.List(ctx, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}

	return &ListStudySessionsOutput{Sessions: sessions}, nil
}
