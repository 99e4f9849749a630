package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hmendes/prepdesk/internal/domain"
)

// ListUrgentTasksInput contains the parameters for the urgent window.
type ListUrgentTasksInput struct {
	Reference   time.Time // Reference date (zero = today)
	HorizonDays int       // Window size in days (0 = configured default)
}

// ListUrgentTasksOutput contains the result of the urgent query.
type ListUrgentTasksOutput struct {
	Tasks       []*domain.Task // Pending tasks due inside the window
	HorizonDays int            // The horizon actually applied
}

// ListUrgentTasks is the use case for the forward-looking urgent
// window: pending tasks due between the reference date and the horizon,
// both inclusive. Completed tasks never appear even when due in range.
type ListUrgentTasks struct {
	tasks  domain.TaskRepository
	config domain.ConfigLoader
	clock  domain.Clock
}

// NewListUrgentTasks creates a new ListUrgentTasks use case.
func NewListUrgentTasks(tasks domain.TaskRepository, config domain.ConfigLoader, clock domain.Clock) *ListUrgentTasks {
	return &ListUrgentTasks{
		tasks:  tasks,
		config: config,
		clock:  clock,
	}
}

// Execute lists pending tasks due inside the urgent window.
func (uc *ListUrgentTasks) Execute(ctx context.Context, in ListUrgentTasksInput) (*ListUrgentTasksOutput, error) {
	horizon := in.HorizonDays
	if horizon <= 0 {
		horizon = domain.DefaultUrgentHorizonDays
		if uc.config != nil {
			if cfg, err := uc.config.Load(); err == nil && cfg.Tasks.UrgentHorizonDays > 0 {
				horizon = cfg.Tasks.UrgentHorizonDays
			}
		}
	}

	ref := in.Reference
	if ref.IsZero() {
		ref = uc.clock.Now()
	}

	tasks, err := uc.tasks.ListUrgent(ctx, ref, horizon)
	if err != nil {
		return nil, fmt.Errorf("list urgent tasks: %w", err)
	}

	return &ListUrgentTasksOutput{Tasks: tasks, HorizonDays: horizon}, nil
}
