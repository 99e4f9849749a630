package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/hmendes/prepdesk/internal/app"
	"github.com/hmendes/prepdesk/internal/domain"
	"github.com/hmendes/prepdesk/internal/usecase"
)

const dueDateLayout = "2006-01-02"

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage work and bar prep tasks",
	}

	cmd.AddCommand(
		newTaskAddCommand(c),
		newTaskListCommand(c),
		newTaskUrgentCommand(c),
		newTaskDoneCommand(c),
		newTaskImportCommand(c),
	)

	return cmd
}

// newTaskAddCommand creates the task add command.
func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Type        string
		Due         string
		Priority    string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new pending task on either the work or bar prep track.

The category is derived from the task type and never changes.

Valid task types:
  ` + strings.Join(taskTypeNames(), "\n  ") + `

Examples:
  # A work task due tomorrow
  prepdesk task add --title "Record lecture 12" --type "Work - Content Creation" --due 2025-07-02

  # An urgent bar prep task
  prepdesk task add --title "Torts essay under timed conditions" \
    --type "Bar Prep - Essay" --due 2025-07-01 --priority Urgent`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			due, err := parseDueDate(opts.Due)
			if err != nil {
				return err
			}

			uc := c.CreateTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				TaskType:    domain.TaskType(opts.Type),
				DueDate:     due,
				Priority:    domain.Priority(opts.Priority),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d (%s, due %s)\n",
				out.Task.ID, out.Task.Category, out.Task.DueDate.Format(dueDateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Task type (required)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date as YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: Low, Medium, High, Urgent (default Medium)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

// newTaskListCommand creates the task list command.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status   string
		Category string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks ordered by due date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListTasksInput{}
			if opts.Status != "" {
				status := domain.Status(opts.Status)
				if !status.IsValid() {
					return fmt.Errorf("unknown status %q (pending or completed)", opts.Status)
				}
				input.Status = &status
			}
			switch opts.Category {
			case "":
			case "work":
				category := domain.CategoryWork
				input.Category = &category
			case "bar":
				category := domain.CategoryBarPrep
				input.Category = &category
			default:
				return fmt.Errorf("unknown category %q (work or bar)", opts.Category)
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printTaskTable(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status: pending or completed")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category: work or bar")

	return cmd
}

// newTaskUrgentCommand creates the task urgent command.
func newTaskUrgentCommand(c *app.Container) *cobra.Command {
	var horizonDays int

	cmd := &cobra.Command{
		Use:   "urgent",
		Short: "List pending tasks due soon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListUrgentTasksUseCase().Execute(cmd.Context(), usecase.ListUrgentTasksInput{
				HorizonDays: horizonDays,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintf(w, "Nothing due in the next %d days.\n", out.HorizonDays)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Due within %d days:\n", out.HorizonDays)
			printTaskTable(w, out.Tasks)
			return nil
		},
	}

	cmd.Flags().IntVar(&horizonDays, "days", 0, "Override the urgent window in days")

	return cmd
}

// newTaskDoneCommand creates the task done command.
func newTaskDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			out, err := c.CompleteTaskUseCase().Execute(cmd.Context(), usecase.CompleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			if out.AlreadyCompleted {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d was already completed\n", out.Task.ID)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}
}

// newTaskImportCommand creates the task import command.
func newTaskImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create tasks from a YAML file",
		Long: `Create several tasks from a YAML file. The whole file is validated
before anything is written; a bad entry fails the entire import.

File format:
  - title: Record lecture 12
    type: Work - Content Creation
    due: 2025-07-02
  - title: Torts essay
    type: Bar Prep - Essay
    due: 2025-07-01
    priority: Urgent
    description: Timed conditions`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: content,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dryRun {
				_, _ = fmt.Fprintf(w, "Dry run - %d tasks would be created:\n", len(out.Tasks))
			} else {
				_, _ = fmt.Fprintf(w, "Imported %d tasks:\n", len(out.Tasks))
			}
			printTaskTable(w, out.Tasks)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without creating")

	return cmd
}

// parseDueDate parses a YYYY-MM-DD due date.
func parseDueDate(s string) (time.Time, error) {
	due, err := time.ParseInLocation(dueDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", s)
	}
	return due, nil
}

// taskTypeNames returns the task type enumeration as strings for help text.
func taskTypeNames() []string {
	types := domain.AllTaskTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// printTaskTable prints tasks in a tab-aligned table.
func printTaskTable(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tDUE\tPRI\tSTATUS\tTYPE\tTITLE")
	for _, task := range tasks {
		id := "-"
		if task.ID > 0 {
			id = strconv.FormatInt(task.ID, 10)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			id,
			task.DueDate.Format(dueDateLayout),
			task.Priority,
			task.Status.Display(),
			task.TaskType,
			task.Title,
		)
	}
	_ = tw.Flush()
}
