package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hmendes/prepdesk/internal/domain"
)

// TaskStore implements domain.TaskRepository on SQLite.
type TaskStore struct {
	db *sqlx.DB
}

var _ domain.TaskRepository = (*TaskStore)(nil)

// taskRow mirrors the tasks table.
type taskRow struct {
	ID          int64        `db:"id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Category    string       `db:"category"`
	TaskType    string       `db:"task_type"`
	DueDate     string       `db:"due_date"`
	Priority    string       `db:"priority"`
	Status      string       `db:"status"`
	CreatedAt   time.Time    `db:"created_at"`
	CompletedAt sql.NullTime `db:"completed_at"`
}

func (r *taskRow) toDomain() (*domain.Task, error) {
	due, err := time.ParseInLocation(dueDateLayout, r.DueDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse due date %q: %w", r.DueDate, err)
	}
	task := &domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    domain.Category(r.Category),
		TaskType:    domain.TaskType(r.TaskType),
		DueDate:     due,
		Priority:    domain.Priority(r.Priority),
		Status:      domain.Status(r.Status),
		CreatedAt:   r.CreatedAt,
	}
	if r.CompletedAt.Valid {
		at := r.CompletedAt.Time
		task.CompletedAt = &at
	}
	return task, nil
}

// Create inserts a task and assigns its ID.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, category, task_type, due_date, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.Title,
		task.Description,
		string(task.Category),
		string(task.TaskType),
		task.DueDate.UTC().Format(dueDateLayout),
		string(task.Priority),
		string(task.Status),
		task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read task id: %w", err)
	}
	task.ID = id
	return nil
}

// Get retrieves a task by ID.
func (s *TaskStore) Get(ctx context.Context, id int64) (*domain.Task, error) {
	var row taskRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select task: %w", err)
	}
	return row.toDomain()
}

// List retrieves tasks matching the filter, ascending by due date.
// Ties keep insertion order via the rowid tiebreak.
func (s *TaskStore) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	query := `SELECT * FROM tasks WHERE 1=1`
	args := []any{}
	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, string(*filter.Status))
	}
	if filter.Category != nil {
		query += ` AND category = ?`
		args = append(args, string(*filter.Category))
	}
	query += ` ORDER BY due_date ASC, id ASC`

	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	return tasksFromRows(rows)
}

// ListUrgent retrieves pending tasks due in [ref, ref+horizonDays].
func (s *TaskStore) ListUrgent(ctx context.Context, ref time.Time, horizonDays int) ([]*domain.Task, error) {
	lo := domain.DateOnly(ref)
	hi := lo.AddDate(0, 0, horizonDays)

	var rows []taskRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT * FROM tasks
		WHERE status = ? AND due_date BETWEEN ? AND ?
		ORDER BY due_date ASC, id ASC`,
		string(domain.StatusPending),
		lo.Format(dueDateLayout),
		hi.Format(dueDateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("select urgent tasks: %w", err)
	}
	return tasksFromRows(rows)
}

// MarkCompleted sets a task to completed with the given completion time.
func (s *TaskStore) MarkCompleted(ctx context.Context, id int64, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?`,
		string(domain.StatusCompleted), at, id,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func tasksFromRows(rows []taskRow) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(rows))
	for i := range rows {
		task, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
