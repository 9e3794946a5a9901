package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avelinos/tasktrack-api/internal"
)

// taskColumns lists every task column selected on read paths, enriched with
// the referenced category's name and color.
const taskColumns = `t.id, t.title, t.description, t.is_completed, t.priority, t.category_id,
t.due_date, t.estimated_hours, t.notifications_enabled, t.created_at, t.updated_at,
t.is_deleted, t.deleted_at, COALESCE(c.name, ''), COALESCE(c.color, '')`

const taskFrom = `FROM tasks t LEFT JOIN categories c ON c.id = t.category_id`

// Task represents the repository used for persisting and retrieving Task
// records.
type Task struct {
	pool *pgxpool.Pool
}

// NewTask instantiates the Task repository.
func NewTask(pool *pgxpool.Pool) *Task {
	return &Task{
		pool: pool,
	}
}

// Create inserts a new task record and returns it enriched.
func (t *Task) Create(ctx context.Context, params internal.TaskParams, now time.Time) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	var id int64

	if err := t.pool.QueryRow(ctx,
		`INSERT INTO tasks (title, description, is_completed, priority, category_id, due_date,
			estimated_hours, notifications_enabled, created_at, updated_at, is_deleted)
		VALUES ($1, $2, FALSE, $3, $4, $5, $6, $7, $8, $8, FALSE)
		RETURNING id`,
		params.Title,
		params.Description,
		params.Priority,
		params.CategoryID,
		params.DueDate,
		params.EstimatedHours,
		params.NotificationsEnabled,
		now,
	).Scan(&id); err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "insert task")
	}

	return t.Find(ctx, id)
}

// Find returns a single non-deleted task.
func (t *Task) Find(ctx context.Context, id int64) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	row := t.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s %s WHERE t.id = $1 AND NOT t.is_deleted`, taskColumns, taskFrom),
		id)

	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "task %d not found", id)
	}

	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select task")
	}

	return task, nil
}

// FindDeleted returns a single soft-deleted task, used by Restore.
func (t *Task) FindDeleted(ctx context.Context, id int64) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindDeleted").End()

	row := t.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s %s WHERE t.id = $1 AND t.is_deleted`, taskColumns, taskFrom),
		id)

	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "deleted task %d not found", id)
	}

	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select deleted task")
	}

	return task, nil
}

// List returns every non-deleted task, optionally excluding completed ones,
// most urgent and most recent first.
func (t *Task) List(ctx context.Context, includeCompleted bool) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.List").End()

	query := fmt.Sprintf(`SELECT %s %s WHERE NOT t.is_deleted`, taskColumns, taskFrom)
	if !includeCompleted {
		query += ` AND NOT t.is_completed`
	}

	query += ` ORDER BY t.priority DESC, t.created_at DESC`

	rows, err := t.pool.Query(ctx, query)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks")
	}
	defer rows.Close()

	return collectTasks(rows)
}

// Update overwrites the mutable fields of a non-deleted task. Completion
// state, creation time and deletion bookkeeping are never touched here.
func (t *Task) Update(ctx context.Context, id int64, params internal.TaskParams, now time.Time) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Update").End()

	tag, err := t.pool.Exec(ctx,
		`UPDATE tasks
		SET title = $2, description = $3, priority = $4, category_id = $5, due_date = $6,
			estimated_hours = $7, notifications_enabled = $8, updated_at = $9
		WHERE id = $1 AND NOT is_deleted`,
		id,
		params.Title,
		params.Description,
		params.Priority,
		params.CategoryID,
		params.DueDate,
		params.EstimatedHours,
		params.NotificationsEnabled,
		now,
	)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "update task")
	}

	if tag.RowsAffected() == 0 {
		return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "task %d not found", id)
	}

	return t.Find(ctx, id)
}

// ToggleCompletion flips the completion flag of a non-deleted task.
func (t *Task) ToggleCompletion(ctx context.Context, id int64, now time.Time) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.ToggleCompletion").End()

	tag, err := t.pool.Exec(ctx,
		`UPDATE tasks SET is_completed = NOT is_completed, updated_at = $2
		WHERE id = $1 AND NOT is_deleted`,
		id, now)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "toggle task")
	}

	if tag.RowsAffected() == 0 {
		return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "task %d not found", id)
	}

	return t.Find(ctx, id)
}

// SoftDelete marks a non-deleted task as deleted.
func (t *Task) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	defer newOTELSpan(ctx, "Task.SoftDelete").End()

	tag, err := t.pool.Exec(ctx,
		`UPDATE tasks SET is_deleted = TRUE, deleted_at = $2, updated_at = $2
		WHERE id = $1 AND NOT is_deleted`,
		id, now)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "soft delete task")
	}

	if tag.RowsAffected() == 0 {
		return internal.NewErrorf(internal.ErrorCodeNotFound, "task %d not found", id)
	}

	return nil
}

// Restore brings a soft-deleted task back.
func (t *Task) Restore(ctx context.Context, id int64, now time.Time) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Restore").End()

	tag, err := t.pool.Exec(ctx,
		`UPDATE tasks SET is_deleted = FALSE, deleted_at = NULL, updated_at = $2
		WHERE id = $1 AND is_deleted`,
		id, now)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "restore task")
	}

	if tag.RowsAffected() == 0 {
		return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "deleted task %d not found", id)
	}

	return t.Find(ctx, id)
}

// DeleteOlderThan permanently removes tasks soft-deleted before the cutoff.
// Destructive and irreversible.
func (t *Task) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	defer newOTELSpan(ctx, "Task.DeleteOlderThan").End()

	tag, err := t.pool.Exec(ctx,
		`DELETE FROM tasks WHERE is_deleted AND deleted_at < $1`,
		cutoff)
	if err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "delete tasks")
	}

	return tag.RowsAffected(), nil
}

// Search returns one page of tasks matching the criteria together with the
// total match count, ordered like List.
func (t *Task) Search(ctx context.Context, criteria internal.SearchCriteria, now time.Time) ([]internal.Task, int64, error) {
	defer newOTELSpan(ctx, "Task.Search").End()

	where, args := buildSearchWhere(criteria, now)

	var total int64
	if err := t.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM tasks t %s`, where),
		args...,
	).Scan(&total); err != nil {
		return nil, 0, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "count tasks")
	}

	pageArgs := append(args, criteria.PageSize, criteria.Offset())

	rows, err := t.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s %s %s ORDER BY t.priority DESC, t.created_at DESC LIMIT $%d OFFSET $%d`,
			taskColumns, taskFrom, where, len(args)+1, len(args)+2),
		pageArgs...)
	if err != nil {
		return nil, 0, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks")
	}
	defer rows.Close()

	tasks, err := collectTasks(rows)
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// BulkUpdate applies the set patch fields to every non-deleted task in ids
// within one atomic statement. Unknown ids are skipped. Returns the number
// of rows updated.
func (t *Task) BulkUpdate(ctx context.Context, ids []int64, patch internal.TaskPatch, now time.Time) (int64, error) {
	defer newOTELSpan(ctx, "Task.BulkUpdate").End()

	set := []string{"updated_at = $2"}
	args := []interface{}{ids, now}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}

	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}

	if patch.IsCompleted != nil {
		appendSet("is_completed", *patch.IsCompleted)
	}

	if patch.Priority != nil {
		appendSet("priority", *patch.Priority)
	}

	if patch.CategoryID != nil {
		appendSet("category_id", *patch.CategoryID)
	}

	if patch.DueDate != nil {
		appendSet("due_date", *patch.DueDate)
	}

	if patch.EstimatedHours != nil {
		appendSet("estimated_hours", *patch.EstimatedHours)
	}

	tag, err := t.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE tasks SET %s WHERE id = ANY($1) AND NOT is_deleted`, strings.Join(set, ", ")),
		args...)
	if err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "bulk update tasks")
	}

	return tag.RowsAffected(), nil
}

// BulkSoftDelete soft-deletes every non-deleted task in ids within one
// atomic statement, skipping unknown ids. Returns the number of rows
// deleted.
func (t *Task) BulkSoftDelete(ctx context.Context, ids []int64, now time.Time) (int64, error) {
	defer newOTELSpan(ctx, "Task.BulkSoftDelete").End()

	tag, err := t.pool.Exec(ctx,
		`UPDATE tasks SET is_deleted = TRUE, deleted_at = $2, updated_at = $2
		WHERE id = ANY($1) AND NOT is_deleted`,
		ids, now)
	if err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "bulk delete tasks")
	}

	return tag.RowsAffected(), nil
}

// taskStatisticsQuery groups by the category id, not by the coalesced label:
// a category literally named like the uncategorized label keeps its own row.
const taskStatisticsQuery = `SELECT COALESCE(c.name, $1),
	COUNT(*),
	COUNT(*) FILTER (WHERE t.is_completed),
	COUNT(*) FILTER (WHERE NOT t.is_completed),
	COUNT(*) FILTER (WHERE NOT t.is_completed AND t.priority = $2)
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
WHERE NOT t.is_deleted
GROUP BY c.id, c.name
ORDER BY 1`

// Statistics aggregates the non-deleted tasks per category, labeling tasks
// without one "Uncategorized". Categories without tasks yield no row.
func (t *Task) Statistics(ctx context.Context) ([]internal.StatisticsRow, error) {
	defer newOTELSpan(ctx, "Task.Statistics").End()

	rows, err := t.pool.Query(ctx, taskStatisticsQuery,
		internal.UncategorizedName, internal.PriorityHigh)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select statistics")
	}
	defer rows.Close()

	var res []internal.StatisticsRow

	for rows.Next() {
		var row internal.StatisticsRow
		if err := rows.Scan(&row.Label, &row.TotalTasks, &row.CompletedTasks,
			&row.PendingTasks, &row.HighPriorityPending); err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "scan statistics row")
		}

		res = append(res, row)
	}

	if err := rows.Err(); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "statistics rows")
	}

	return res, nil
}

// Exists reports whether a non-deleted task with the id is present.
func (t *Task) Exists(ctx context.Context, id int64) (bool, error) {
	defer newOTELSpan(ctx, "Task.Exists").End()

	var exists bool
	if err := t.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1 AND NOT is_deleted)`,
		id).Scan(&exists); err != nil {
		return false, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select exists")
	}

	return exists, nil
}

// buildSearchWhere translates the criteria into a WHERE clause. Provided
// filters combine with AND on top of the soft-delete predicate.
func buildSearchWhere(criteria internal.SearchCriteria, now time.Time) (string, []interface{}) {
	conds := []string{"NOT t.is_deleted"}
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if criteria.SearchTerm != nil {
		p := arg("%" + escapeLike(*criteria.SearchTerm) + "%")
		conds = append(conds, fmt.Sprintf(`(t.title ILIKE %s ESCAPE '\' OR t.description ILIKE %s ESCAPE '\')`, p, p))
	}

	if criteria.IsCompleted != nil {
		conds = append(conds, fmt.Sprintf("t.is_completed = %s", arg(*criteria.IsCompleted)))
	}

	if criteria.Priority != nil {
		conds = append(conds, fmt.Sprintf("t.priority = %s", arg(*criteria.Priority)))
	}

	if criteria.CategoryID != nil {
		conds = append(conds, fmt.Sprintf("t.category_id = %s", arg(*criteria.CategoryID)))
	}

	if criteria.CreatedAfter != nil {
		conds = append(conds, fmt.Sprintf("t.created_at >= %s", arg(*criteria.CreatedAfter)))
	}

	if criteria.CreatedBefore != nil {
		conds = append(conds, fmt.Sprintf("t.created_at <= %s", arg(*criteria.CreatedBefore)))
	}

	if criteria.DueAfter != nil {
		conds = append(conds, fmt.Sprintf("t.due_date >= %s", arg(*criteria.DueAfter)))
	}

	if criteria.DueBefore != nil {
		conds = append(conds, fmt.Sprintf("t.due_date <= %s", arg(*criteria.DueBefore)))
	}

	if criteria.IsOverdue != nil {
		overdue := fmt.Sprintf("(t.due_date IS NOT NULL AND t.due_date < %s AND NOT t.is_completed)", arg(now))
		if !*criteria.IsOverdue {
			overdue = "NOT " + overdue
		}

		conds = append(conds, overdue)
	}

	if criteria.HasEstimate != nil {
		if *criteria.HasEstimate {
			conds = append(conds, "t.estimated_hours IS NOT NULL")
		} else {
			conds = append(conds, "t.estimated_hours IS NULL")
		}
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike escapes the pattern metacharacters so the term matches as a
// literal substring.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (internal.Task, error) {
	var task internal.Task

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.IsCompleted,
		&task.Priority,
		&task.CategoryID,
		&task.DueDate,
		&task.EstimatedHours,
		&task.NotificationsEnabled,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.IsDeleted,
		&task.DeletedAt,
		&task.CategoryName,
		&task.CategoryColor,
	)

	return task, err
}

func collectTasks(rows pgx.Rows) ([]internal.Task, error) {
	var tasks []internal.Task

	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "scan task")
		}

		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "task rows")
	}

	return tasks, nil
}
