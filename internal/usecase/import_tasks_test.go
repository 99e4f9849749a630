package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/hmendes/prepdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportTasks(repo *mockTaskRepository) *ImportTasks {
	clock := &mockClock{now: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)}
	return NewImportTasks(NewCreateTask(repo, clock, nil))
}

func TestImportTasks_Execute_Success(t *testing.T) {
	repo := newMockTaskRepository()
	uc := newImportTasks(repo)

	content := []byte(`
- title: Draft property outline
  description: Future interests section
  type: Bar Prep - Essay
  due: "2026-02-14"
  priority: High
- title: Grade midterms
  type: Work - Class Management
  due: "2026-02-12"
`)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: content})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, domain.CategoryBarPrep, out.Tasks[0].Category)
	assert.Equal(t, domain.CategoryWork, out.Tasks[1].Category)
	assert.Equal(t, domain.PriorityMedium, out.Tasks[1].Priority)
	assert.Len(t, repo.tasks, 2)
}

func TestImportTasks_Execute_BadEntryWritesNothing(t *testing.T) {
	repo := newMockTaskRepository()
	uc := newImportTasks(repo)

	// Second entry has an unknown type; the first must not be created.
	content := []byte(`
- title: Fine task
  type: Bar Prep - MBE
  due: "2026-02-14"
- title: Broken task
  type: Yard Work
  due: "2026-02-15"
`)

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: content})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTaskType)
	assert.Contains(t, err.Error(), "entry 2")
	assert.Empty(t, repo.tasks)
}

func TestImportTasks_Execute_BadDueDate(t *testing.T) {
	repo := newMockTaskRepository()
	uc := newImportTasks(repo)

	content := []byte(`
- title: Task
  type: Bar Prep - MBE
  due: "next tuesday"
`)

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: content})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse due date")
	assert.Empty(t, repo.tasks)
}

func TestImportTasks_Execute_DryRun(t *testing.T) {
	repo := newMockTaskRepository()
	uc := newImportTasks(repo)

	content := []byte(`
- title: Preview only
  type: Bar Prep - Performance Test
  due: "2026-02-14"
`)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: content, DryRun: true})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, domain.CategoryBarPrep, out.Tasks[0].Category)
	assert.Zero(t, out.Tasks[0].ID)
	assert.Empty(t, repo.tasks)
}

func TestImportTasks_Execute_EmptyFile(t *testing.T) {
	repo := newMockTaskRepository()
	uc := newImportTasks(repo)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: []byte("")})

	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
}

func TestImportTasks_Execute_MalformedYAML(t *testing.T) {
	repo := newMockTaskRepository()
	uc := newImportTasks(repo)

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: []byte("{not yaml")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse import file")
}
