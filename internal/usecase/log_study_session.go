package usecase

import (
	"context"
	"fmt"

	"github.com/hmendes/prepdesk/internal/domain"
)

// LogStudySessionInput contains the parameters for logging a session.
// Fields are ordered to minimize memory padding.
type LogStudySessionInput struct {
	Subject domain.Subject // One of the fixed subject list
	Notes   string         // Free-form notes (optional)
	Hours   float64        // Positive, at most 24
	Clarity int            // 1..5
}

// LogStudySessionOutput contains the result of logging a session.
type LogStudySessionOutput struct {
	Session *domain.StudySession // The logged session
}

// LogStudySession is the use case for recording one study session.
// Sessions are append-only; once logged they never change.
type LogStudySession struct {
	sessions domain.StudyRepository
	clock    domain.Clock
	logger   domain.Logger
}

// NewLogStudySession creates a new LogStudySession use case.
func NewLogStudySession(sessions domain.StudyRepository, clock domain.Clock, logger domain.Logger) *LogStudySession {
	return &LogStudySession{
		sessions: sessions,
		clock:    clock,
		logger:   logger,
	}
}

// Execute validates the input and appends a new session.
func (uc *LogStudySession) Execute(ctx context.Context, in LogStudySessionInput) (*LogStudySessionOutput, error) {
	if !in.Subject.IsValid() {
		return nil, fmt.Errorf("%q: %w", in.Subject, domain.ErrUnknownSubject)
	}
	if in.Hours <= 0 || in.Hours > domain.MaxSessionHours {
		return nil, fmt.Errorf("%v: %w", in.Hours, domain.ErrInvalidHours)
	}
	if in.Clarity < domain.MinClarity || in.Clarity > domain.MaxClarity {
		return nil, fmt.Errorf("%d: %w", in.Clarity, domain.ErrInvalidClarity)
	}

	session := &domain.StudySession{
		Subject:  in.Subject,
		LoggedAt: uc.clock.Now(),
		Hours:    in.Hours,
		Clarity:  in.Clarity,
		Notes:    in.Notes,
	}

	if err := uc.sessions.Insert(ctx, session); err != nil {
		return nil, fmt.Errorf("log study session: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("study", fmt.Sprintf("logged %s: %.1fh, clarity %d/5", session.Subject, session.Hours, session.Clarity))
	}

	return &LogStudySessionOutput{Session: session}, nil
}
