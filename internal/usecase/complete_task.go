package usecase

import (
	"context"
	"fmt"

	"github.com/hmendes/prepdesk/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID int64 // Task ID to complete
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task             *domain.Task // The task after completion
	AlreadyCompleted bool         // True if the task was completed before this call
}

// CompleteTask is the use case for marking a task as completed.
// Completing an already-completed task is a no-op that preserves the
// original completion time; it never raises.
type CompleteTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute marks the task as completed and stamps its completion time.
func (uc *CompleteTask) Execute(ctx context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := uc.tasks.Get(ctx, in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	if task.IsCompleted() {
		return &CompleteTaskOutput{Task: task, AlreadyCompleted: true}, nil
	}

	now := uc.clock.Now()
	if err := uc.tasks.MarkCompleted(ctx, task.ID, now); err != nil {
		return nil, fmt.Errorf("mark completed: %w", err)
	}

	task.Status = domain.StatusCompleted
	task.CompletedAt = &now

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("completed #%d: %q", task.ID, task.Title))
	}

	return &CompleteTaskOutput{Task: task}, nil
}
