package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hmendes/prepdesk/internal/app"
	"github.com/hmendes/prepdesk/internal/domain"
	"github.com/hmendes/prepdesk/internal/usecase"
)

// newReportCommand creates the report command.
func newReportCommand(c *app.Container) *cobra.Command {
	var weakLimit int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the study progress report",
		Long: `Show derived analytics: total hours, hours per subject, average
clarity, weakest subjects, and task completion counts. All values are
computed from the stored records on every run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.StudyReportUseCase().Execute(cmd.Context(), usecase.StudyReportInput{
				WeakLimit: weakLimit,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Sessions:        %d\n", out.SessionCount)
			_, _ = fmt.Fprintf(w, "Total hours:     %.1f\n", out.TotalHours)
			_, _ = fmt.Fprintf(w, "Avg clarity:     %.2f\n", out.AvgClarity)
			_, _ = fmt.Fprintf(w, "Tasks completed: %d\n", out.CompletedTasks)
			_, _ = fmt.Fprintf(w, "Tasks pending:   %d\n", out.PendingTasks)

			if len(out.HoursBySubject) > 0 {
				_, _ = fmt.Fprintln(w, "\nHours by subject:")
				subjects := make([]string, 0, len(out.HoursBySubject))
				for s := range out.HoursBySubject {
					subjects = append(subjects, string(s))
				}
				sort.Strings(subjects)
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, s := range subjects {
					_, _ = fmt.Fprintf(tw, "  %s\t%.1f\n", s, out.HoursBySubject[domain.Subject(s)])
				}
				_ = tw.Flush()
			}

			if len(out.WeakSubjects) > 0 {
				_, _ = fmt.Fprintln(w, "\nWeakest subjects:")
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, ws := range out.WeakSubjects {
					_, _ = fmt.Fprintf(tw, "  %s\tavg clarity %.1f over %d sessions\n",
						ws.Subject, ws.AvgClarity, ws.SessionCount)
				}
				_ = tw.Flush()
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&weakLimit, "weak", 0, "Maximum weak subjects to show (0 = all)")

	return cmd
}
