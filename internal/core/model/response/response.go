package response

import (
	"time"

	"taskhub/internal/core/domain"
)

type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type AssigneeResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status"`
	DueDate     *time.Time        `json:"dueDate,omitempty"`
	AssignedTo  *AssigneeResponse `json:"assignedTo,omitempty"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:       user.UUID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
}

func NewTaskResponse(task domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.UUID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.Assignee != nil {
		resp.AssignedTo = &AssigneeResponse{
			ID:       task.Assignee.UUID.String(),
			Username: task.Assignee.Username,
			Email:    task.Assignee.Email,
		}
	}

	return resp
}

type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

type ProfileResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type UserListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Users   []UserResponse `json:"users"`
}

type TaskEnvelope struct {
	Success bool         `json:"success"`
	Task    TaskResponse `json:"task"`
}

type TaskListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Tasks   []TaskResponse `json:"tasks"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ErrorResponse is the single wire format every failure is normalized into.
type ErrorResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Status    int               `json:"status"`
	Timestamp string            `json:"timestamp"`
	Path      string            `json:"path"`
	Errors    []ValidationError `json:"errors,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
	Detail    string            `json:"detail,omitempty"`
}
