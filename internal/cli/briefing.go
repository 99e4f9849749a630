package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hmendes/prepdesk/internal/app"
	"github.com/hmendes/prepdesk/internal/usecase"
)

// newBriefingCommand creates the briefing command.
func newBriefingCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Energy      string
		Schedule    string
		ShowContext bool
	}

	cmd := &cobra.Command{
		Use:   "briefing",
		Short: "Generate the AI daily briefing",
		Long: `Generate a daily briefing from urgent tasks, weak subjects, and
recent study sessions. Requires the GEMINI_API_KEY environment variable;
without it (or when the service is unreachable) the raw summary is
printed instead.

Example:
  prepdesk briefing --energy "High morning, low afternoon" \
    --schedule "Meetings 10-12, free after 3pm"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.DailyBriefingUseCase().Execute(cmd.Context(), usecase.DailyBriefingInput{
				EnergyLevel: opts.Energy,
				Schedule:    opts.Schedule,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, out.Briefing)
			if opts.ShowContext && !out.Degraded {
				_, _ = fmt.Fprintf(w, "\n---\n%s\n", out.Context)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Energy, "energy", "", "Today's energy level, free text")
	cmd.Flags().StringVar(&opts.Schedule, "schedule", "", "Today's schedule, free text")
	cmd.Flags().BoolVar(&opts.ShowContext, "show-context", false, "Also print the raw summary the briefing was built from")

	return cmd
}
