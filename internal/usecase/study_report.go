package usecase

import (
	"context"
	"fmt"

	"github.com/hmendes/prepdesk/internal/domain"
)

// StudyReportInput contains the parameters for building a report.
type StudyReportInput struct {
	WeakLimit int // Maximum weak subjects to include (<= 0 = all)
}

// StudyReportOutput contains the derived analytics for the dashboard.
// Fields are ordered to minimize memory padding.
type StudyReportOutput struct {
	HoursBySubject map[domain.Subject]float64 // Total hours per subject
	WeakSubjects   []domain.SubjectClarity    // Weakest first
	TotalHours     float64                    // Sum across all sessions
	AvgClarity     float64                    // Mean of per-subject averages (0 when no sessions)
	SessionCount   int                        // Number of logged sessions
	CompletedTasks int                        // Tasks in the completed status
	PendingTasks   int                        // Tasks still pending
}

// StudyReport is the use case for the analytics view: it reads record
// snapshots and computes the derived values. Nothing here is persisted;
// every value is recomputed from the stored rows.
type StudyReport struct {
	tasks    domain.TaskRepository
	sessions domain.StudyRepository
}

// NewStudyReport creates a new StudyReport use case.
func NewStudyReport(tasks domain.TaskRepository, sessions domain.StudyRepository) *StudyReport {
	return &StudyReport{
		tasks:    tasks,
		sessions: sessions,
	}
}

// Execute computes the report from current store snapshots.
func (uc *StudyReport) Execute(ctx context.Context, in StudyReportInput) (*StudyReportOutput, error) {
	sessions, err := uc.sessions.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}

	tasks, err := uc.tasks.List(ctx, domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	weak := domain.WeakSubjects(sessions)

	var avgClarity float64
	if len(weak) > 0 {
		var sum float64
		for _, w := range weak {
			sum += w.AvgClarity
		}
		avgClarity = sum / float64(len(weak))
	}

	completed := domain.CompletedTaskCount(tasks)
	out := &StudyReportOutput{
		HoursBySubject: domain.HoursBySubject(sessions),
		WeakSubjects:   weak,
		TotalHours:     domain.TotalStudyHours(sessions),
		AvgClarity:     avgClarity,
		SessionCount:   len(sessions),
		CompletedTasks: completed,
		PendingTasks:   len(tasks) - completed,
	}
	if in.WeakLimit > 0 && len(out.WeakSubjects) > in.WeakLimit {
		out.WeakSubjects = out.WeakSubjects[:in.WeakLimit]
	}

	return out, nil
}
