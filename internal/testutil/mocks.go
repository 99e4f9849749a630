// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/hmendes/prepdesk/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks     map[int64]*domain.Task
	CreateErr error
	GetErr    error
	ListErr   error
	MarkErr   error
	NextID    int64
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:  make(map[int64]*domain.Task),
		NextID: 1,
	}
}

// Create inserts a task and assigns its ID.
func (m *MockTaskRepository) Create(_ context.Context, task *domain.Task) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	task.ID = m.NextID
	m.NextID++
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(_ context.Context, id int64) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

// List retrieves tasks matching the filter, ascending by due date.
func (m *MockTaskRepository) List(_ context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Category != nil && t.Category != *filter.Category {
			continue
		}
		copied := *t
		tasks = append(tasks, &copied)
	}
	sortTasks(tasks)
	return tasks, nil
}

// ListUrgent retrieves pending tasks due in [ref, ref+horizonDays].
func (m *MockTaskRepository) ListUrgent(_ context.Context, ref time.Time, horizonDays int) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if t.Status != domain.StatusPending || !t.DueWithin(ref, horizonDays) {
			continue
		}
		copied := *t
		tasks = append(tasks, &copied)
	}
	sortTasks(tasks)
	return tasks, nil
}

// MarkCompleted sets a task to completed with the given completion time.
func (m *MockTaskRepository) MarkCompleted(_ context.Context, id int64, at time.Time) error {
	if m.MarkErr != nil {
		return m.MarkErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.Status = domain.StatusCompleted
	task.CompletedAt = &at
	return nil
}

func sortTasks(tasks []*domain.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}
		return tasks[i].ID < tasks[j].ID
	})
}

// MockStudyRepository is a test double for domain.StudyRepository.
type MockStudyRepository struct {
	Sessions  []*domain.StudySession
	InsertErr error
	ListErr   error
	NextID    int64
}

// Insert appends a session and assigns its ID.
func (m *MockStudyRepository) Insert(_ context.Context, session *domain.StudySession) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.NextID++
	session.ID = m.NextID
	copied := *session
	m.Sessions = append(m.Sessions, &copied)
	return nil
}

// List retrieves sessions descending by logged time.
func (m *MockStudyRepository) List(_ context.Context, limit int) ([]*domain.StudySession, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	sessions := make([]*domain.StudySession, len(m.Sessions))
	for i, s := range m.Sessions {
		copied := *s
		sessions[i] = &copied
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LoggedAt.After(sessions[j].LoggedAt)
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// MockScoreRepository is a test double for domain.ScoreRepository.
type MockScoreRepository struct {
	Scores    []*domain.MockScore
	InsertErr error
	ListErr   error
	NextID    int64
}

// Insert appends a score and assigns its ID.
func (m *MockScoreRepository) Insert(_ context.Context, score *domain.MockScore) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.NextID++
	score.ID = m.NextID
	copied := *score
	m.Scores = append(m.Scores, &copied)
	return nil
}

// List retrieves scores descending by logged time.
func (m *MockScoreRepository) List(_ context.Context, limit int) ([]*domain.MockScore, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	scores := make([]*domain.MockScore, len(m.Scores))
	for i, s := range m.Scores {
		copied := *s
		scores[i] = &copied
	}
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].LoggedAt.After(scores[j].LoggedAt)
	})
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// MockBriefer is a test double for domain.Briefer.
type MockBriefer struct {
	Response   string
	Err        error
	LastPrompt string
}

// Generate returns the configured response or error.
func (m *MockBriefer) Generate(_ context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Cfg *domain.Config
	Err error
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Cfg == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Cfg, nil
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string, string) {}

// Info discards the message.
func (NopLogger) Info(string, string) {}

// Warn discards the message.
func (NopLogger) Warn(string, string) {}

// Error discards the message.
func (NopLogger) Error(string, string) {}
