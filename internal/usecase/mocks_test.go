package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/hmendes/prepdesk/internal/domain"
)

// mockClock is a test double for domain.Clock.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

// mockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type mockTaskRepository struct {
	tasks     map[int64]*domain.Task
	createErr error
	getErr    error
	listErr   error
	markErr   error
	nextID    int64
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

func (m *mockTaskRepository) Create(_ context.Context, task *domain.Task) error {
	if m.createErr != nil {
		return m.createErr
	}
	task.ID = m.nextID
	m.nextID++
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepository) Get(_ context.Context, id int64) (*domain.Task, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	task, ok := m.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (m *mockTaskRepository) List(_ context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var tasks []*domain.Task
	for _, t := range m.tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Category != nil && t.Category != *filter.Category {
			continue
		}
		tasks = append(tasks, t)
	}
	sortTasksByDueDate(tasks)
	return tasks, nil
}

func (m *mockTaskRepository) ListUrgent(_ context.Context, ref time.Time, horizonDays int) ([]*domain.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var tasks []*domain.Task
	for _, t := range m.tasks {
		if t.Status != domain.StatusPending {
			continue
		}
		if !t.DueWithin(ref, horizonDays) {
			continue
		}
		tasks = append(tasks, t)
	}
	sortTasksByDueDate(tasks)
	return tasks, nil
}

func (m *mockTaskRepository) MarkCompleted(_ context.Context, id int64, at time.Time) error {
	if m.markErr != nil {
		return m.markErr
	}
	task, ok := m.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.Status = domain.StatusCompleted
	task.CompletedAt = &at
	return nil
}

func sortTasksByDueDate(tasks []*domain.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}
		return tasks[i].ID < tasks[j].ID
	})
}

// mockStudyRepository is a test double for domain.StudyRepository.
type mockStudyRepository struct {
	sessions  []*domain.StudySession
	insertErr error
	listErr   error
	nextID    int64
}

func newMockStudyRepository() *mockStudyRepository {
	return &mockStudyRepository{nextID: 1}
}

func (m *mockStudyRepository) Insert(_ context.Context, session *domain.StudySession) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	session.ID = m.nextID
	m.nextID++
	m.sessions = append(m.sessions, session)
	return nil
}

func (m *mockStudyRepository) List(_ context.Context, limit int) ([]*domain.StudySession, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	sessions := make([]*domain.StudySession, len(m.sessions))
	copy(sessions, m.sessions)
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].LoggedAt.Equal(sessions[j].LoggedAt) {
			return sessions[i].LoggedAt.After(sessions[j].LoggedAt)
		}
		return sessions[i].ID > sessions[j].ID
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// mockScoreRepository is a test double for domain.ScoreRepository.
type mockScoreRepository struct {
	scores    []*domain.MockScore
	insertErr error
	listErr   error
	nextID    int64
}

func newMockScoreRepository() *mockScoreRepository {
	return &mockScoreRepository{nextID: 1}
}

func (m *mockScoreRepository) Insert(_ context.Context, score *domain.MockScore) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	score.ID = m.nextID
	m.nextID++
	m.scores = append(m.scores, score)
	return nil
}

func (m *mockScoreRepository) List(_ context.Context, limit int) ([]*domain.MockScore, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	scores := make([]*domain.MockScore, len(m.scores))
	copy(scores, m.scores)
	sort.Slice(scores, func(i, j int) bool {
		if !scores[i].LoggedAt.Equal(scores[j].LoggedAt) {
			return scores[i].LoggedAt.After(scores[j].LoggedAt)
		}
		return scores[i].ID > scores[j].ID
	})
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// mockBriefer is a test double for domain.Briefer.
type mockBriefer struct {
	response   string
	err        error
	lastPrompt string
}

func (m *mockBriefer) Generate(_ context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// mockConfigLoader is a test double for domain.ConfigLoader.
type mockConfigLoader struct {
	cfg *domain.Config
	err error
}

func (m *mockConfigLoader) Load() (*domain.Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.cfg != nil {
		return m.cfg, nil
	}
	return domain.NewDefaultConfig(), nil
}
