package domain

import (
	"fmt"
	"strings"
)

// emptySection is emitted in place of an empty list so the downstream
// text-generation service never sees an ambiguous blank section.
const emptySection = "None"

// BriefingContext collects the aggregates that feed a daily briefing.
// Rendering is pure string templating; it performs no I/O.
type BriefingContext struct {
	UrgentTasks    []*Task          // Pending tasks inside the urgent window
	WeakSubjects   []SubjectClarity // Weakest subjects first
	RecentSessions []*StudySession  // Most recent sessions first
	EnergyLevel    string           // Caller-supplied free text
	Schedule       string           // Caller-supplied free text (optional)
}

// Render produces the flat context block passed to the briefing prompt.
// Section labels are fixed; empty sections render as "None".
func (c *BriefingContext) Render() string {
	var b strings.Builder

	b.WriteString("URGENT TASKS:\n")
	if len(c.UrgentTasks) == 0 {
		b.WriteString(emptySection + "\n")
	}
	for _, t := range c.UrgentTasks {
		fmt.Fprintf(&b, "- %s (Due: %s, Priority: %s)\n",
			t.Title, t.DueDate.Format("2006-01-02"), t.Priority)
	}

	b.WriteString("\nWEAK SUBJECTS:\n")
	if len(c.WeakSubjects) == 0 {
		b.WriteString(emptySection + "\n")
	}
	for _, w := range c.WeakSubjects {
		fmt.Fprintf(&b, "- %s (%.1f/5 over %d sessions)\n",
			w.Subject, w.AvgClarity, w.SessionCount)
	}

	b.WriteString("\nRECENT PROGRESS:\n")
	if len(c.RecentSessions) == 0 {
		b.WriteString(emptySection + "\n")
	}
	for _, s := range c.RecentSessions {
		fmt.Fprintf(&b, "- %s: %.1fh (clarity %d/5)\n",
			s.Subject, s.Hours, s.Clarity)
	}

	return strings.TrimRight(b.String(), "\n")
}

// BriefingPrompt wraps the rendered context into the full prompt sent
// to the text-generation collaborator.
func (c *BriefingContext) BriefingPrompt() string {
	var b strings.Builder

	b.WriteString("You are a personal assistant for a legal professional ")
	b.WriteString("who works full days and is preparing for the bar exam.\n\n")

	fmt.Fprintf(&b, "Today's energy level: %s\n", orPlaceholder(c.EnergyLevel))
	fmt.Fprintf(&b, "Schedule notes: %s\n\n", orPlaceholder(c.Schedule))

	b.WriteString(c.Render())

	b.WriteString("\n\nWrite a SHORT, actionable daily briefing with:\n")
	b.WriteString("1. Top 3 priorities for today\n")
	b.WriteString("2. Urgent alerts\n")
	b.WriteString("3. One weak subject to focus on\n")
	b.WriteString("4. A quick motivational note\n")
	b.WriteString("Keep it concise and practical.")

	return b.String()
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptySection
	}
	return s
}
