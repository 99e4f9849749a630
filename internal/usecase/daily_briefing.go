package usecase

import (
	"context"
	"fmt"

	"github.com/hmendes/prepdesk/internal/domain"
)

// How much context feeds the briefing prompt.
const (
	briefingRecentSessions = 10
	briefingWeakSubjects   = 5
)

// DailyBriefingInput contains the caller-supplied context fields.
type DailyBriefingInput struct {
	EnergyLevel string // Free text, e.g. "High morning, low afternoon"
	Schedule    string // Free text, optional
}

// DailyBriefingOutput contains the generated briefing.
// Fields are ordered to minimize memory padding.
type DailyBriefingOutput struct {
	Briefing string // Generated prose, or a degraded-mode message
	Context  string // The rendered context block the prompt was built from
	Degraded bool   // True when the text-generation service was unavailable
}

// DailyBriefing is the use case for the optional AI daily briefing.
// The text-generation service is an enrichment, not a dependency: any
// failure from it degrades to a plain message and the rendered context
// stays available.
type DailyBriefing struct {
	tasks    domain.TaskRepository
	sessions domain.StudyRepository
	briefer  domain.Briefer
	config   domain.ConfigLoader
	clock    domain.Clock
	logger   domain.Logger
}

// NewDailyBriefing creates a new DailyBriefing use case. briefer may be
// nil when no text-generation service is configured.
func NewDailyBriefing(
	tasks domain.TaskRepository,
	sessions domain.StudyRepository,
	briefer domain.Briefer,
	config domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *DailyBriefing {
	return &DailyBriefing{
		tasks:    tasks,
		sessions: sessions,
		briefer:  briefer,
		config:   config,
		clock:    clock,
		logger:   logger,
	}
}

// Execute gathers aggregates, renders the context block, and asks the
// text-generation collaborator for prose.
func (uc *DailyBriefing) Execute(ctx context.Context, in DailyBriefingInput) (*DailyBriefingOutput, error) {
	horizon := domain.DefaultUrgentHorizonDays
	if uc.config != nil {
		if cfg, err := uc.config.Load(); err == nil && cfg.Tasks.UrgentHorizonDays > 0 {
			horizon = cfg.Tasks.UrgentHorizonDays
		}
	}

	urgent, err := uc.tasks.ListUrgent(ctx, uc.clock.Now(), horizon)
	if err != nil {
		return nil, fmt.Errorf("list urgent tasks: %w", err)
	}

	sessions, err := uc.sessions.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}

	weak := domain.WeakSubjects(sessions)
	if len(weak) > briefingWeakSubjects {
		weak = weak[:briefingWeakSubjects]
	}
	recent := sessions
	if len(recent) > briefingRecentSessions {
		recent = recent[:briefingRecentSessions]
	}

	bctx := &domain.BriefingContext{
		UrgentTasks:    urgent,
		WeakSubjects:   weak,
		RecentSessions: recent,
		EnergyLevel:    in.EnergyLevel,
		Schedule:       in.Schedule,
	}
	rendered := bctx.Render()

	out := &DailyBriefingOutput{Context: rendered}

	if uc.briefer == nil {
		out.Briefing = degradedBriefing(rendered, domain.ErrBrieferUnavailable)
		out.Degraded = true
		return out, nil
	}

	prose, err := uc.briefer.Generate(ctx, bctx.BriefingPrompt())
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("briefing", fmt.Sprintf("generation failed: %v", err))
		}
		out.Briefing = degradedBriefing(rendered, err)
		out.Degraded = true
		return out, nil
	}

	out.Briefing = prose
	return out, nil
}

// degradedBriefing is shown when the collaborator is unreachable. The
// stored aggregates remain fully visible.
func degradedBriefing(rendered string, cause error) string {
	return fmt.Sprintf("Could not generate briefing (%v). Here is today's summary instead:\n\n%s", cause, rendered)
}
