package usecase

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hmendes/prepdesk/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Content []byte // YAML document listing tasks
	DryRun  bool   // Validate and report without creating
}

// ImportTasksOutput contains the result of an import.
type ImportTasksOutput struct {
	Tasks []*domain.Task // Created (or validated, when dry-run) tasks
}

// importedTask is the YAML shape of one task entry.
type importedTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Due         string `yaml:"due"`
	Priority    string `yaml:"priority"`
}

// ImportTasks is the use case for creating several tasks from a YAML
// file. The whole file is validated before anything is written, so a
// bad entry never leaves a partial import behind.
type ImportTasks struct {
	create *CreateTask
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(create *CreateTask) *ImportTasks {
	return &ImportTasks{create: create}
}

// Execute parses, validates, and creates the listed tasks in order.
func (uc *ImportTasks) Execute(ctx context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	var entries []importedTask
	if err := yaml.Unmarshal(in.Content, &entries); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(entries) == 0 {
		return &ImportTasksOutput{}, nil
	}

	inputs := make([]CreateTaskInput, 0, len(entries))
	for i, e := range entries {
		ci, err := uc.validateEntry(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		inputs = append(inputs, ci)
	}

	out := &ImportTasksOutput{Tasks: make([]*domain.Task, 0, len(inputs))}
	if in.DryRun {
		for i := range inputs {
			out.Tasks = append(out.Tasks, previewTask(inputs[i]))
		}
		return out, nil
	}

	for i := range inputs {
		created, err := uc.create.Execute(ctx, inputs[i])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		out.Tasks = append(out.Tasks, created.Task)
	}

	return out, nil
}

func (uc *ImportTasks) validateEntry(e importedTask) (CreateTaskInput, error) {
	if e.Title == "" {
		return CreateTaskInput{}, domain.ErrEmptyTitle
	}

	taskType := domain.TaskType(e.Type)
	if !taskType.IsValid() {
		return CreateTaskInput{}, fmt.Errorf("%q: %w", e.Type, domain.ErrUnknownTaskType)
	}

	due, err := time.Parse("2006-01-02", e.Due)
	if err != nil {
		return CreateTaskInput{}, fmt.Errorf("parse due date %q: %w", e.Due, err)
	}

	priority := domain.Priority(e.Priority)
	if e.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return CreateTaskInput{}, fmt.Errorf("%q: %w", e.Priority, domain.ErrInvalidPriority)
	}

	return CreateTaskInput{
		Title:       e.Title,
		Description: e.Description,
		TaskType:    taskType,
		DueDate:     due,
		Priority:    priority,
	}, nil
}

// previewTask builds the task an entry would create, without an ID.
func previewTask(in CreateTaskInput) *domain.Task {
	category, _ := domain.CategoryOf(in.TaskType)
	return &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Category:    category,
		TaskType:    in.TaskType,
		DueDate:     domain.DateOnly(in.DueDate),
		Priority:    in.Priority,
		Status:      domain.StatusPending,
	}
}
