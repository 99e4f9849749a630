package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBriefingContext_Render_EmptySectionsGetPlaceholders(t *testing.T) {
	ctx := &BriefingContext{}
	out := ctx.Render()

	assert.Contains(t, out, "URGENT TASKS:\nNone")
	assert.Contains(t, out, "WEAK SUBJECTS:\nNone")
	assert.Contains(t, out, "RECENT PROGRESS:\nNone")
}

func TestBriefingContext_Render_PopulatedSections(t *testing.T) {
	ctx := &BriefingContext{
		UrgentTasks: []*Task{{
			Title:    "Constitutional Law essay practice",
			DueDate:  time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
			Priority: PriorityHigh,
		}},
		WeakSubjects: []SubjectClarity{
			{Subject: SubjectTorts, AvgClarity: 2.5, SessionCount: 4},
		},
		RecentSessions: []*StudySession{
			{Subject: SubjectTorts, Hours: 2.0, Clarity: 3},
		},
	}
	out := ctx.Render()

	assert.Contains(t, out, "- Constitutional Law essay practice (Due: 2026-02-11, Priority: High)")
	assert.Contains(t, out, "- Torts (2.5/5 over 4 sessions)")
	assert.Contains(t, out, "- Torts: 2.0h (clarity 3/5)")
	assert.NotContains(t, out, "None")
}

func TestBriefingContext_BriefingPrompt(t *testing.T) {
	ctx := &BriefingContext{
		EnergyLevel: "High morning, low afternoon",
	}
	prompt := ctx.BriefingPrompt()

	assert.Contains(t, prompt, "Today's energy level: High morning, low afternoon")
	assert.Contains(t, prompt, "Schedule notes: None")
	assert.Contains(t, prompt, "URGENT TASKS:")
	assert.Contains(t, prompt, "Top 3 priorities for today")
}
