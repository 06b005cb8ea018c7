package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"taskhub/internal/adapter/database/sqlite"
	"taskhub/internal/core/apperr"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/port"
)

type TaskRepository struct {
	db *sqlite.DB
}

func NewTaskRepository(db *sqlite.DB) port.TaskRepository {
	return &TaskRepository{db: db}
}

// taskColumns always pulls the assignee projection along via the LEFT JOIN
// in taskQuery.
const taskColumns = "t.id, t.uuid, t.title, t.description, t.status, t.due_date, t.assigned_to, t.completed_at, t.created_at, t.updated_at, a.uuid, a.username, a.email"

func (tr *TaskRepository) taskQuery() sq.SelectBuilder {
	return tr.db.QueryBuilder.Select(taskColumns).
		From("tasks t").
		LeftJoin("users a ON a.id = t.assigned_to")
}

func scanTask(row sq.RowScanner) (domain.Task, error) {
	var (
		task      domain.Task
		uid       string
		dueDate   sql.NullTime
		assigned  sql.NullInt64
		completed sql.NullTime
		aUUID     sql.NullString
		aUsername sql.NullString
		aEmail    sql.NullString
	)

	err := row.Scan(
		&task.ID, &uid, &task.Title, &task.Description, &task.Status,
		&dueDate, &assigned, &completed, &task.CreatedAt, &task.UpdatedAt,
		&aUUID, &aUsername, &aEmail,
	)

	if err != nil {
		return domain.Task{}, err
	}

	task.UUID, err = parseUUID(uid)

	if err != nil {
		return domain.Task{}, err
	}

	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}

	if completed.Valid {
		done := completed.Time
		task.CompletedAt = &done
	}

	if assigned.Valid {
		id := int(assigned.Int64)
		task.AssignedTo = &id
	}

	if aUUID.Valid {
		assigneeUUID, err := parseUUID(aUUID.String)

		if err != nil {
			return domain.Task{}, err
		}

		task.Assignee = &domain.UserRef{
			UUID:     assigneeUUID,
			Username: aUsername.String,
			Email:    aEmail.String,
		}
	}

	return task, nil
}

func (tr *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	var assigned any

	if task.AssignedTo != nil {
		assigned = *task.AssignedTo
	}

	query := tr.db.QueryBuilder.Insert("tasks").
		Columns("uuid", "title", "description", "status", "due_date", "assigned_to", "completed_at", "created_at", "updated_at").
		Values(task.UUID.String(), task.Title, task.Description, string(task.Status), task.DueDate, assigned, task.CompletedAt, task.CreatedAt, task.UpdatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	if _, err := tr.db.ExecContext(ctx, stmt, args...); err != nil {
		slog.Error("Error creating task", "error", err)
		return domain.Task{}, err
	}

	return tr.GetByUUID(ctx, task.UUID.String())
}

func (tr *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := tr.taskQuery().OrderBy("t.created_at DESC, t.id DESC")

	if filter.Status != "" {
		query = query.Where(sq.Eq{"t.status": string(filter.Status)})
	}

	if filter.AssigneeUUID != "" {
		query = query.Where(sq.Eq{"a.uuid": filter.AssigneeUUID})
	}

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing tasks", "error", err)
		return nil, err
	}

	defer rows.Close()

	tasks := []domain.Task{}

	for rows.Next() {
		task, err := scanTask(rows)

		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (tr *TaskRepository) GetByUUID(ctx context.Context, uid string) (domain.Task, error) {
	if _, err := parseUUID(uid); err != nil {
		return domain.Task{}, apperr.NotFound("task not found")
	}

	query := tr.taskQuery().
		Where(sq.Eq{"t.uuid": uid}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	task, err := scanTask(tr.db.QueryRowContext(ctx, stmt, args...))

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, apperr.NotFound("task not found")
	}

	return task, err
}

func (tr *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	var assigned any

	if task.AssignedTo != nil {
		assigned = *task.AssignedTo
	}

	query := tr.db.QueryBuilder.Update("tasks").
		SetMap(map[string]any{
			"title":        task.Title,
			"description":  task.Description,
			"status":       string(task.Status),
			"due_date":     task.DueDate,
			"assigned_to":  assigned,
			"completed_at": task.CompletedAt,
			"updated_at":   task.UpdatedAt,
		}).
		Where(sq.Eq{"uuid": task.UUID.String()})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating task", "error", err)
		return domain.Task{}, err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.Task{}, apperr.NotFound("task not found")
	}

	return tr.GetByUUID(ctx, task.UUID.String())
}

func (tr *TaskRepository) DeleteByUUID(ctx context.Context, uid string) error {
	if _, err := parseUUID(uid); err != nil {
		return apperr.NotFound("task not found")
	}

	query := tr.db.QueryBuilder.Delete("tasks").
		Where(sq.Eq{"uuid": uid})

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperr.NotFound("task not found")
	}

	return nil
}
