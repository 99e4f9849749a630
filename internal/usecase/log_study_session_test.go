package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/hmendes/prepdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogStudySession_Execute_Success(t *testing.T) {
	repo := newMockStudyRepository()
	clock := &mockClock{now: time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC)}
	uc := NewLogStudySession(repo, clock, nil)

	out, err := uc.Execute(context.Background(), LogStudySessionInput{
		Subject: domain.SubjectTorts,
		Hours:   2.0,
		Clarity: 4,
		Notes:   "Negligence per se finally clicked",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Session.ID)
	assert.Equal(t, clock.now, out.Session.LoggedAt)
	require.Len(t, repo.sessions, 1)
	assert.Equal(t, domain.SubjectTorts, repo.sessions[0].Subject)
}

func TestLogStudySession_Execute_UnknownSubject(t *testing.T) {
	repo := newMockStudyRepository()
	clock := &mockClock{now: time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC)}
	uc := NewLogStudySession(repo, clock, nil)

	_, err := uc.Execute(context.Background(), LogStudySessionInput{
		Subject: "Maritime Law",
		Hours:   1.0,
		Clarity: 3,
	})

	assert.ErrorIs(t, err, domain.ErrUnknownSubject)
	assert.Empty(t, repo.sessions)
}

func TestLogStudySession_Execute_ClarityBounds(t *testing.T) {
	tests := []struct {
		name    string
		clarity int
		wantErr bool
	}{
		{"below range", 0, true},
		{"negative", -1, true},
		{"lowest valid", 1, false},
		{"highest valid", 5, false},
		{"above range", 6, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockStudyRepository()
			clock := &mockClock{now: time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC)}
			uc := NewLogStudySession(repo, clock, nil)

			_, err := uc.Execute(context.Background(), LogStudySessionInput{
				Subject: domain.SubjectEvidence,
				Hours:   1.0,
				Clarity: tc.clarity,
			})

			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidClarity)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogStudySession_Execute_HoursBounds(t *testing.T) {
	tests := []struct {
		name    string
		hours   float64
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -1.5, true},
		{"half hour", 0.5, false},
		{"full day", 24, false},
		{"more than a day", 24.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockStudyRepository()
			clock := &mockClock{now: time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC)}
			uc := NewLogStudySession(repo, clock, nil)

			_, err := uc.Execute(context.Background(), LogStudySessionInput{
				Subject: domain.SubjectEvidence,
				Hours:   tc.hours,
				Clarity: 3,
			})

			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidHours)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogStudySession_Execute_RepositoryError(t *testing.T) {
	repo := newMockStudyRepository()
	repo.insertErr = assert.AnError
	clock := &mockClock{now: time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC)}
	uc := NewLogStudySession(repo, clock, nil)

	_, err := uc.Execute(context.Background(), LogStudySessionInput{
		Subject: domain.SubjectEvidence,
		Hours:   1.0,
		Clarity: 3,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "log study session")
}

func TestLogStudySession_ThenAggregates(t *testing.T) {
	// The §8 scenario: two Torts sessions feed the aggregates.
	repo := newMockStudyRepository()
	clock := &mockClock{now: time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC)}
	uc := NewLogStudySession(repo, clock, nil)

	_, err := uc.Execute(context.Background(), LogStudySessionInput{Subject: domain.SubjectTorts, Hours: 2.0, Clarity: 2})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), LogStudySessionInput{Subject: domain.SubjectTorts, Hours: 1.0, Clarity: 4})
	require.NoError(t, err)

	sessions, err := repo.List(context.Background(), 0)
	require.NoError(t, err)

	weak := domain.WeakSubjects(sessions)
	require.Len(t, weak, 1)
	assert.Equal(t, domain.SubjectTorts, weak[0].Subject)
	assert.Equal(t, 3.0, weak[0].AvgClarity)
	assert.Equal(t, 2, weak[0].SessionCount)
	assert.InDelta(t, 3.0, domain.TotalStudyHours(sessions), 1e-9)
	assert.InDelta(t, 3.0, domain.HoursBySubject(sessions)[domain.SubjectTorts], 1e-9)
}
