// Package domain contains core business entities and interfaces.
package domain

import "time"

// Category groups tasks into the two tracks the dashboard manages.
type Category string

const (
	CategoryWork    Category = "Work"
	CategoryBarPrep Category = "Bar Prep"
)

// Priority indicates how pressing a task is.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// AllPriorities returns all valid priority values.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// TaskType is the concrete kind of work a task represents. Each type
// belongs to exactly one category.
type TaskType string

const (
	TypeWorkContentCreation TaskType = "Work - Content Creation"
	TypeWorkClassManagement TaskType = "Work - Class Management"
	TypeWorkTeamReporting   TaskType = "Work - Team Reporting"
	TypeBarEssay            TaskType = "Bar Prep - Essay"
	TypeBarMBE              TaskType = "Bar Prep - MBE"
	TypeBarPerformanceTest  TaskType = "Bar Prep - Performance Test"
)

// taskTypeCategories is the explicit, total mapping from task type to
// category. Category derivation must never fall back to string matching.
var taskTypeCategories = map[TaskType]Category{
	TypeWorkContentCreation: CategoryWork,
	TypeWorkClassManagement: CategoryWork,
	TypeWorkTeamReporting:   CategoryWork,
	TypeBarEssay:            CategoryBarPrep,
	TypeBarMBE:              CategoryBarPrep,
	TypeBarPerformanceTest:  CategoryBarPrep,
}

// AllTaskTypes returns all valid task types, work types first.
func AllTaskTypes() []TaskType {
	return []TaskType{
		TypeWorkContentCreation,
		TypeWorkClassManagement,
		TypeWorkTeamReporting,
		TypeBarEssay,
		TypeBarMBE,
		TypeBarPerformanceTest,
	}
}

// CategoryOf returns the category a task type belongs to.
// The second return value is false for unknown task types.
func CategoryOf(t TaskType) (Category, bool) {
	c, ok := taskTypeCategories[t]
	return c, ok
}

// IsValid returns true if the task type is part of the enumeration.
func (t TaskType) IsValid() bool {
	_, ok := taskTypeCategories[t]
	return ok
}

// Task represents a to-do item on either the work or bar-prep track.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time  // Creation time, set when the task is created
	CompletedAt *time.Time // Set exactly once on completion, nil while pending
	DueDate     time.Time  // Calendar date only; time-of-day is always midnight UTC
	Title       string     // Title (required)
	Description string     // Description (optional)
	Category    Category   // Derived from TaskType at creation, immutable
	TaskType    TaskType   // One of the fixed task type enumeration
	Priority    Priority   // Low / Medium / High / Urgent
	Status      Status     // pending or completed
	ID          int64      // Assigned by the store
}

// IsCompleted returns true if the task has reached its terminal state.
func (t *Task) IsCompleted() bool {
	return t.Status.IsTerminal()
}

// DueWithin reports whether the task's due date falls inside the closed
// interval [ref, ref+horizonDays], comparing calendar dates only.
func (t *Task) DueWithin(ref time.Time, horizonDays int) bool {
	due := DateOnly(t.DueDate)
	lo := DateOnly(ref)
	hi := lo.AddDate(0, 0, horizonDays)
	return !due.Before(lo) && !due.After(hi)
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TaskFilter specifies criteria for listing tasks.
type TaskFilter struct {
	Status   *Status   // nil = any status
	Category *Category // nil = any category
}
