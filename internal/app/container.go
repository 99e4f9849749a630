// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"path/filepath"

	"github.com/hmendes/prepdesk/internal/domain"
	"github.com/hmendes/prepdesk/internal/infra/briefing"
	"github.com/hmendes/prepdesk/internal/infra/config"
	"github.com/hmendes/prepdesk/internal/infra/logging"
	"github.com/hmendes/prepdesk/internal/infra/sqlstore"
	"github.com/hmendes/prepdesk/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	Sessions         domain.StudyRepository
	Scores           domain.ScoreRepository
	StoreInitializer domain.StoreInitializer
	Briefer          domain.Briefer
	ConfigLoader     domain.ConfigLoader
	Clock            domain.Clock
	Logger           domain.Logger

	store  *sqlstore.Store
	logger *logging.Logger
}

// New creates a new Container reading configuration relative to dir.
// The briefer stays nil when no API key is configured; the briefing use
// case degrades gracefully in that case.
func New(ctx context.Context, dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	store, err := sqlstore.Open(cfg.DB.Path)
	if err != nil {
		return nil, err
	}
	if err := store.Initialize(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	logger := logging.New(filepath.Dir(cfg.DB.Path), logging.ParseLevel(cfg.Log.Level))

	var briefer domain.Briefer
	if cfg.Briefing.APIKey != "" {
		b, err := briefing.NewGeminiBriefer(ctx, cfg.Briefing.APIKey, cfg.Briefing.Model)
		if err != nil {
			logger.Warn("briefing", "client setup failed: "+err.Error())
		} else {
			briefer = b
		}
	}

	return &Container{
		Tasks:            store.Tasks(),
		Sessions:         store.Sessions(),
		Scores:           store.Scores(),
		StoreInitializer: store,
		Briefer:          briefer,
		ConfigLoader:     configLoader,
		Clock:            domain.RealClock{},
		Logger:           logger,
		store:            store,
		logger:           logger,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	tasks domain.TaskRepository,
	sessions domain.StudyRepository,
	scores domain.ScoreRepository,
	briefer domain.Briefer,
	configLoader domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *Container {
	return &Container{
		Tasks:        tasks,
		Sessions:     sessions,
		Scores:       scores,
		Briefer:      briefer,
		ConfigLoader: configLoader,
		Clock:        clock,
		Logger:       logger,
	}
}

// Close releases the store and log file handles.
func (c *Container) Close() error {
	var lastErr error
	if c.logger != nil {
		if err := c.logger.Close(); err != nil {
			lastErr = err
		}
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// UseCase factory methods

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.Clock, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ListUrgentTasksUseCase returns a new ListUrgentTasks use case.
func (c *Container) ListUrgentTasksUseCase() *usecase.ListUrgentTasks {
	return usecase.NewListUrgentTasks(c.Tasks, c.ConfigLoader, c.Clock)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.CreateTaskUseCase())
}

// LogStudySessionUseCase returns a new LogStudySession use case.
func (c *Container) LogStudySessionUseCase() *usecase.LogStudySession {
	return usecase.NewLogStudySession(c.Sessions, c.Clock, c.Logger)
}

// ListStudySessionsUseCase returns a new ListStudySessions use case.
func (c *Container) ListStudySessionsUseCase() *usecase.ListStudySessions {
	return usecase.NewListStudySessions(c.Sessions)
}

// LogMockScoreUseCase returns a new LogMockScore use case.
func (c *Container) LogMockScoreUseCase() *usecase.LogMockScore {
	return usecase.NewLogMockScore(c.Scores, c.Clock, c.Logger)
}

// ListMockScoresUseCase returns a new ListMockScores use case.
func (c *Container) ListMockScoresUseCase() *usecase.ListMockScores {
	return usecase.NewListMockScores(c.Scores)
}

// StudyReportUseCase returns a new StudyReport use case.
func (c *Container) StudyReportUseCase() *usecase.StudyReport {
	return usecase.NewStudyReport(c.Tasks, c.Sessions)
}

// DailyBriefingUseCase returns a new DailyBriefing use case.
func (c *Container) DailyBriefingUseCase() *usecase.DailyBriefing {
	return usecase.NewDailyBriefing(c.Tasks, c.Sessions, c.Briefer, c.ConfigLoader, c.Clock, c.Logger)
}
