package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store. Schema creation runs
// once at process start, not per operation.
type StoreInitializer interface {
	// Initialize creates the backing tables if they don't exist.
	Initialize(ctx context.Context) error
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// Create inserts a task and assigns its ID.
	Create(ctx context.Context, task *Task) error

	// Get retrieves a task by ID. Returns ErrTaskNotFound if absent.
	Get(ctx context.Context, id int64) (*Task, error)

	// List retrieves tasks matching the filter, ascending by due date.
	// Due-date ties keep insertion order.
	List(ctx context.Context, filter TaskFilter) ([]*Task, error)

	// ListUrgent retrieves pending tasks due in the closed interval
	// [ref, ref+horizonDays], ascending by due date.
	ListUrgent(ctx context.Context, ref time.Time, horizonDays int) ([]*Task, error)

	// MarkCompleted sets a pending task to completed with the given
	// completion time. Returns ErrTaskNotFound if the ID is unknown.
	MarkCompleted(ctx context.Context, id int64, at time.Time) error
}

// StudyRepository manages study session persistence. Sessions are
// append-only; there is no update or delete.
type StudyRepository interface {
	// Insert appends a session and assigns its ID.
	Insert(ctx context.Context, session *StudySession) error

	// List retrieves sessions descending by logged time.
	// A non-positive limit returns all sessions.
	List(ctx context.Context, limit int) ([]*StudySession, error)
}

// ScoreRepository manages mock score persistence. Scores are
// append-only; there is no update or delete.
type ScoreRepository interface {
	// Insert appends a score and assigns its ID.
	Insert(ctx context.Context, score *MockScore) error

	// List retrieves scores descending by logged time.
	// A non-positive limit returns all scores.
	List(ctx context.Context, limit int) ([]*MockScore, error)
}

// Briefer generates prose from a prepared prompt. Implementations call
// an external text-generation service; callers must treat any failure
// as a degraded mode, never as a reason to block reads.
type Briefer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Logger writes leveled, categorized log entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	DB       DBConfig       // [db] settings
	Tasks    TasksConfig    // [tasks] settings
	Briefing BriefingConfig // [briefing] settings
	Log      LogConfig      // [log] settings
	Warnings []string       // Unknown keys and sections found while loading
}

// DBConfig holds database settings from the [db] section.
type DBConfig struct {
	Path string // Path to the SQLite database file
}

// TasksConfig holds task settings from the [tasks] section.
type TasksConfig struct {
	UrgentHorizonDays int // Forward-looking urgent window in days
}

// BriefingConfig holds briefing settings from the [briefing] section.
type BriefingConfig struct {
	Model  string // Text-generation model name
	APIKey string // API key, usually from the GEMINI_API_KEY env var
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// DefaultUrgentHorizonDays is the urgent window used when the config
// does not override it.
const DefaultUrgentHorizonDays = 3

// NewDefaultConfig returns the configuration used when no config file
// exists.
func NewDefaultConfig() *Config {
	return &Config{
		Tasks: TasksConfig{UrgentHorizonDays: DefaultUrgentHorizonDays},
		Log:   LogConfig{Level: "info"},
	}
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
