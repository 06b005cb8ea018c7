package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/core/apperr"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/model/request"
	"taskhub/internal/core/port"
)

type TaskService struct {
	repo  port.TaskRepository
	users port.UserRepository
}

func NewTaskService(repo port.TaskRepository, users port.UserRepository) *TaskService {
	return &TaskService{repo: repo, users: users}
}

// resolveAssignee maps an assignee identifier from a request to the internal
// user id. The existence check is best effort, a referenced user may be
// removed between this lookup and the write.
func (ts *TaskService) resolveAssignee(ctx context.Context, uid string) (*int, error) {
	user, err := ts.users.GetByUUID(ctx, uid)

	if err != nil {
		return nil, apperr.InvalidReference("assigned user does not exist")
	}

	return &user.ID, nil
}

// blankTitle is returned when a title collapses to nothing after trimming,
// which the length validation alone cannot catch.
func blankTitle(value string) error {
	return apperr.Validation("validation failed", []apperr.FieldError{
		{Field: "title", Message: "title is required", Value: value},
	})
}

func (ts *TaskService) Create(ctx context.Context, req *request.CreateTaskRequest) (domain.Task, error) {
	title := strings.TrimSpace(req.Title)

	if title == "" {
		return domain.Task{}, blankTitle(req.Title)
	}

	now := time.Now()

	task := domain.Task{
		UUID:        uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Status:      domain.TaskStatusTodo,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.AssignedTo != "" {
		assignee, err := ts.resolveAssignee(ctx, req.AssignedTo)

		if err != nil {
			return domain.Task{}, err
		}

		task.AssignedTo = assignee
	}

	saved, err := ts.repo.Create(ctx, task)

	if err != nil {
		slog.Error("Task#Create", "error", err, "title", task.Title)
		return domain.Task{}, err
	}

	return saved, nil
}

func (ts *TaskService) List(ctx context.Context, query *request.ListTasksQuery) ([]domain.Task, error) {
	filter := domain.TaskFilter{
		Status:       domain.TaskStatus(query.Status),
		AssigneeUUID: query.AssignedTo,
	}

	return ts.repo.List(ctx, filter)
}

func (ts *TaskService) GetByUUID(ctx context.Context, uid string) (domain.Task, error) {
	return ts.repo.GetByUUID(ctx, uid)
}

// Update applies a partial patch. Only fields present in the request are
// touched; the completion timestamp follows the status transition rule and
// is left alone when the incoming status equals the stored one.
func (ts *TaskService) Update(ctx context.Context, uid string, req *request.UpdateTaskRequest) (domain.Task, error) {
	task, err := ts.repo.GetByUUID(ctx, uid)

	if err != nil {
		return domain.Task{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)

		if title == "" {
			return domain.Task{}, blankTitle(*req.Title)
		}

		task.Title = title
	}

	if req.Description != nil {
		task.Description = strings.TrimSpace(*req.Description)
	}

	if req.DueDate.Set {
		task.DueDate = req.DueDate.Value
	}

	if req.AssignedTo != nil {
		if *req.AssignedTo == "" {
			task.AssignedTo = nil
			task.Assignee = nil
		} else {
			assignee, err := ts.resolveAssignee(ctx, *req.AssignedTo)

			if err != nil {
				return domain.Task{}, err
			}

			task.AssignedTo = assignee
		}
	}

	if req.Status != nil {
		task.TransitionStatus(domain.TaskStatus(*req.Status), time.Now())
	}

	task.UpdatedAt = time.Now()

	return ts.repo.Update(ctx, task)
}

func (ts *TaskService) Complete(ctx context.Context, uid string) (domain.Task, error) {
	task, err := ts.repo.GetByUUID(ctx, uid)

	if err != nil {
		return domain.Task{}, err
	}

	now := time.Now()
	task.Complete(now)
	task.UpdatedAt = now

	return ts.repo.Update(ctx, task)
}

func (ts *TaskService) DeleteByUUID(ctx context.Context, uid string) error {
	return ts.repo.DeleteByUUID(ctx, uid)
}
