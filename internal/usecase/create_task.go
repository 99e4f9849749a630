// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hmendes/prepdesk/internal/domain"
)

// CreateTaskInput contains the parameters for creating a task.
// Fields are ordered to minimize memory padding.
type CreateTaskInput struct {
	DueDate     time.Time       // Due date (calendar date; time-of-day is ignored)
	Title       string          // Task title (required)
	Description string          // Task description (optional)
	TaskType    domain.TaskType // One of the fixed task type enumeration
	Priority    domain.Priority // Defaults to Medium when empty
}

// CreateTaskOutput contains the result of creating a task.
type CreateTaskOutput struct {
	Task *domain.Task // The created task, with store-assigned ID
}

// CreateTask is the use case for adding a task to either track. The
// category is derived from the task type at creation time and never
// changes afterwards.
type CreateTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *CreateTask {
	return &CreateTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute validates the input and persists a new pending task.
func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	category, ok := domain.CategoryOf(in.TaskType)
	if !ok {
		return nil, fmt.Errorf("%q: %w", in.TaskType, domain.ErrUnknownTaskType)
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%q: %w", in.Priority, domain.ErrInvalidPriority)
	}

	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Category:    category,
		TaskType:    in.TaskType,
		DueDate:     domain.DateOnly(in.DueDate),
		Priority:    priority,
		Status:      domain.StatusPending,
		CreatedAt:   uc.clock.Now(),
	}

	if err := uc.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created #%d: %q (%s)", task.ID, task.Title, task.Category))
	}

	return &CreateTaskOutput{Task: task}, nil
}
