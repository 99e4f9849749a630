// Package cli provides the command-line interface for prepdesk.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hmendes/prepdesk/internal/app"
)

// Command group IDs.
const (
	groupTask    = "task"
	groupStudy   = "study"
	groupInsight = "insight"
)

// NewRootCommand creates the root command for prepdesk.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "prepdesk",
		Short: "Personal work and bar prep dashboard",
		Long: `prepdesk is a CLI dashboard for balancing a day job with bar exam prep.
It tracks tasks on both tracks, logs study sessions and mock exam
scores, and turns them into reports and an optional AI daily briefing.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupStudy, Title: "Study Tracking:"},
		&cobra.Group{ID: groupInsight, Title: "Insights:"},
	)

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupTask

	studyCmd := newStudyCommand(c)
	studyCmd.GroupID = groupStudy

	mockCmd := newMockCommand(c)
	mockCmd.GroupID = groupStudy

	reportCmd := newReportCommand(c)
	reportCmd.GroupID = groupInsight

	briefingCmd := newBriefingCommand(c)
	briefingCmd.GroupID = groupInsight

	root.AddCommand(
		taskCmd,
		studyCmd,
		mockCmd,
		reportCmd,
		briefingCmd,
	)

	return root
}
