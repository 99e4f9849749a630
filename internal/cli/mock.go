package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hmendes/prepdesk/internal/app"
	"github.com/hmendes/prepdesk/internal/usecase"
)

// newMockCommand creates the mock command group.
func newMockCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Log and review mock exam scores",
	}

	cmd.AddCommand(
		newMockLogCommand(c),
		newMockListCommand(c),
	)

	return cmd
}

// newMockLogCommand creates the mock log command.
func newMockLogCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ExamType string
		Notes    string
		Score    int
		Total    int
	}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a mock exam score",
		Long: `Log one practice exam result. Scores are append-only.

Example:
  prepdesk mock log --exam "Full MBE (200q)" --score 121 --total 200`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.LogMockScoreUseCase().Execute(cmd.Context(), usecase.LogMockScoreInput{
				ExamType:    opts.ExamType,
				Score:       opts.Score,
				TotalPoints: opts.Total,
				Notes:       opts.Notes,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %d/%d (%.1f%%)\n",
				out.Score.ExamType, out.Score.Score, out.Score.TotalPoints, out.Percentage)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.ExamType, "exam", "", "Exam type, e.g. \"Full MBE (200q)\" (required)")
	cmd.Flags().IntVar(&opts.Score, "score", 0, "Points earned (required)")
	cmd.Flags().IntVar(&opts.Total, "total", 0, "Points possible (required)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("exam")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

// newMockListCommand creates the mock list command.
func newMockListCommand(c *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged mock scores, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListMockScoresUseCase().Execute(cmd.Context(), usecase.ListMockScoresInput{
				Limit: limit,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Scores) == 0 {
				_, _ = fmt.Fprintln(w, "No mock scores logged yet.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "DATE\tEXAM\tSCORE\tPCT\tNOTES")
			for _, s := range out.Scores {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%.1f%%\t%s\n",
					s.LoggedAt.Format("2006-01-02"),
					s.ExamType,
					s.Score,
					s.TotalPoints,
					s.Percentage(),
					s.Notes,
				)
			}
			_ = tw.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum scores to show (0 = all)")

	return cmd
}
