package port

import (
	"context"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/model/request"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	GetByUUID(ctx context.Context, uid string) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	DeleteByUUID(ctx context.Context, uid string) error
}

type TaskService interface {
	Create(ctx context.Context, req *request.CreateTaskRequest) (domain.Task, error)
	List(ctx context.Context, query *request.ListTasksQuery) ([]domain.Task, error)
	GetByUUID(ctx context.Context, uid string) (domain.Task, error)
	Update(ctx context.Context, uid string, req *request.UpdateTaskRequest) (domain.Task, error)
	Complete(ctx context.Context, uid string) (domain.Task, error)
	DeleteByUUID(ctx context.Context, uid string) error
}
