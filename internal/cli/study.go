package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hmendes/prepdesk/internal/app"
	"github.com/hmendes/prepdesk/internal/domain"
	"github.com/hmendes/prepdesk/internal/usecase"
)

// newStudyCommand creates the study command group.
func newStudyCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Log and review study sessions",
	}

	cmd.AddCommand(
		newStudyLogCommand(c),
		newStudySessionsCommand(c),
	)

	return cmd
}

// newStudyLogCommand creates the study log command.
func newStudyLogCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Subject string
		Notes   string
		Hours   float64
		Clarity int
	}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a study session",
		Long: `Log one study session. Sessions are append-only; once logged they
never change.

Valid subjects:
  ` + strings.Join(subjectNames(), "\n  ") + `

Example:
  prepdesk study log --subject Torts --hours 2 --clarity 3 --notes "Negligence per se"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.LogStudySessionUseCase().Execute(cmd.Context(), usecase.LogStudySessionInput{
				Subject: domain.Subject(opts.Subject),
				Hours:   opts.Hours,
				Clarity: opts.Clarity,
				Notes:   opts.Notes,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1fh of %s (clarity %d/5)\n",
				out.Session.Hours, out.Session.Subject, out.Session.Clarity)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Subject, "subject", "", "Bar exam subject (required)")
	cmd.Flags().Float64Var(&opts.Hours, "hours", 0, "Hours studied (required)")
	cmd.Flags().IntVar(&opts.Clarity, "clarity", 0, "Concept clarity from 1 to 5 (required)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("hours")
	_ = cmd.MarkFlagRequired("clarity")

	return cmd
}

// newStudySessionsCommand creates the study sessions command.
func newStudySessionsCommand(c *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List logged study sessions, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListStudySessionsUseCase().Execute(cmd.Context(), usecase.ListStudySessionsInput{
				Limit: limit,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Sessions) == 0 {
				_, _ = fmt.Fprintln(w, "No study sessions logged yet.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "DATE\tSUBJECT\tHOURS\tCLARITY\tNOTES")
			for _, s := range out.Sessions {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%.1f\t%d/5\t%s\n",
					s.LoggedAt.Format("2006-01-02"),
					s.Subject,
					s.Hours,
					s.Clarity,
					s.Notes,
				)
			}
			_ = tw.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum sessions to show (0 = all)")

	return cmd
}

// subjectNames returns the subject enumeration as strings for help text.
func subjectNames() []string {
	subjects := domain.AllSubjects()
	names := make([]string, len(subjects))
	for i, s := range subjects {
		names[i] = string(s)
	}
	return names
}
