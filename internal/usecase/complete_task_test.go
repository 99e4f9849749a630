package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/hmendes/prepdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteTask_Execute_Success(t *testing.T) {
	// Setup
	repo := newMockTaskRepository()
	repo.tasks[1] = &domain.Task{
		ID:     1,
		Title:  "File weekly report",
		Status: domain.StatusPending,
	}
	repo.nextID = 2
	clock := &mockClock{now: time.Date(2026, 2, 10, 17, 0, 0, 0, time.UTC)}
	uc := NewCompleteTask(repo, clock, nil)

	// Execute
	out, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: 1})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.AlreadyCompleted)
	assert.Equal(t, domain.StatusCompleted, out.Task.Status)
	require.NotNil(t, out.Task.CompletedAt)
	assert.Equal(t, clock.now, *out.Task.CompletedAt)

	// Verify persisted state
	assert.Equal(t, domain.StatusCompleted, repo.tasks[1].Status)
}

func TestCompleteTask_Execute_Idempotent(t *testing.T) {
	// Completing twice must not raise and must not move completed_at.
	repo := newMockTaskRepository()
	repo.tasks[1] = &domain.Task{
		ID:     1,
		Title:  "File weekly report",
		Status: domain.StatusPending,
	}
	repo.nextID = 2

	first := &mockClock{now: time.Date(2026, 2, 10, 17, 0, 0, 0, time.UTC)}
	out1, err := NewCompleteTask(repo, first, nil).Execute(context.Background(), CompleteTaskInput{TaskID: 1})
	require.NoError(t, err)
	require.NotNil(t, out1.Task.CompletedAt)

	second := &mockClock{now: time.Date(2026, 2, 11, 8, 0, 0, 0, time.UTC)}
	out2, err := NewCompleteTask(repo, second, nil).Execute(context.Background(), CompleteTaskInput{TaskID: 1})
	require.NoError(t, err)
	assert.True(t, out2.AlreadyCompleted)
	require.NotNil(t, out2.Task.CompletedAt)
	assert.Equal(t, first.now, *out2.Task.CompletedAt)
}

func TestCompleteTask_Execute_NotFound(t *testing.T) {
	repo := newMockTaskRepository()
	clock := &mockClock{now: time.Date(2026, 2, 10, 17, 0, 0, 0, time.UTC)}
	uc := NewCompleteTask(repo, clock, nil)

	_, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: 404})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestCompleteTask_Execute_MarkError(t *testing.T) {
	repo := newMockTaskRepository()
	repo.tasks[1] = &domain.Task{ID: 1, Title: "Task", Status: domain.StatusPending}
	repo.markErr = assert.AnError
	clock := &mockClock{now: time.Date(2026, 2, 10, 17, 0, 0, 0, time.UTC)}
	uc := NewCompleteTask(repo, clock, nil)

	_, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: 1})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mark completed")
}

func TestCompleteTask_RemovesFromPendingList(t *testing.T) {
	repo := newMockTaskRepository()
	clock := &mockClock{now: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)}
	create := NewCreateTask(repo, clock, nil)
	complete := NewCompleteTask(repo, clock, nil)
	list := NewListTasks(repo)

	created, err := create.Execute(context.Background(), CreateTaskInput{
		Title:    "Record lecture",
		TaskType: domain.TypeWorkContentCreation,
		DueDate:  time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = complete.Execute(context.Background(), CompleteTaskInput{TaskID: created.Task.ID})
	require.NoError(t, err)

	pending := domain.StatusPending
	out, err := list.Execute(context.Background(), ListTasksInput{Status: &pending})
	require.NoError(t, err)
	assert.Empty(t, out.Tasks)

	all, err := list.Execute(context.Background(), ListTasksInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, domain.CompletedTaskCount(all.Tasks))
}
