package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hmendes/prepdesk/internal/app"
	"github.com/hmendes/prepdesk/internal/domain"
	"github.com/hmendes/prepdesk/internal/testutil"
)

func TestReportCommand_ShowsAggregates(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	completedAt := time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC)
	tasks.Tasks[1] = &domain.Task{
		ID: 1, Title: "Done", Category: domain.CategoryWork,
		TaskType: domain.TypeWorkTeamReporting,
		DueDate:  time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Priority: domain.PriorityMedium, Status: domain.StatusCompleted,
		CompletedAt: &completedAt,
	}
	sessions := &testutil.MockStudyRepository{
		Sessions: []*domain.StudySession{
			{ID: 1, Subject: domain.SubjectTorts, LoggedAt: time.Date(2025, 6, 29, 9, 0, 0, 0, time.UTC), Hours: 2, Clarity: 2},
			{ID: 2, Subject: domain.SubjectTorts, LoggedAt: time.Date(2025, 6, 30, 9, 0, 0, 0, time.UTC), Hours: 1, Clarity: 4},
		},
	}
	container := app.NewWithDeps(
		tasks,
		sessions,
		&testutil.MockScoreRepository{},
		nil,
		&testutil.MockConfigLoader{},
		&testutil.MockClock{NowTime: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)},
		testutil.NopLogger{},
	)

	cmd := newReportCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Sessions:        2")
	assert.Contains(t, out, "Total hours:     3.0")
	assert.Contains(t, out, "Avg clarity:     3.00")
	assert.Contains(t, out, "Tasks completed: 1")
	assert.Contains(t, out, "Torts")
	assert.Contains(t, out, "avg clarity 3.0 over 2 sessions")
}
