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

func newBriefingTestContainer(briefer domain.Briefer) *app.Container {
	return app.NewWithDeps(
		testutil.NewMockTaskRepository(),
		&testutil.MockStudyRepository{},
		&testutil.MockScoreRepository{},
		briefer,
		&testutil.MockConfigLoader{},
		&testutil.MockClock{NowTime: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)},
		testutil.NopLogger{},
	)
}

func TestBriefingCommand_PrintsGeneratedProse(t *testing.T) {
	briefer := &testutil.MockBriefer{Response: "Focus on Torts this morning."}
	container := newBriefingTestContainer(briefer)

	cmd := newBriefingCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--energy", "High morning"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Focus on Torts this morning.")
	assert.Contains(t, briefer.LastPrompt, "High morning")
}

func TestBriefingCommand_DegradesWithoutBriefer(t *testing.T) {
	container := newBriefingTestContainer(nil)

	cmd := newBriefingCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Could not generate briefing")
	assert.Contains(t, buf.String(), "URGENT TASKS:")
}

func TestBriefingCommand_DegradesOnGenerationError(t *testing.T) {
	briefer := &testutil.MockBriefer{Err: assert.AnError}
	container := newBriefingTestContainer(briefer)

	cmd := newBriefingCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Could not generate briefing")
}
