package request

import (
	"bytes"
	"encoding/json"
	"time"
)

// NullableTime records whether the field appeared in the payload at all, so
// an explicit null can clear a stored value while an absent field leaves it
// untouched.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true

	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}

	return json.Unmarshal(data, &n.Value)
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=500"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  string     `json:"assignedTo"`
}

// UpdateTaskRequest is a partial patch. An absent field leaves the stored
// value untouched; a present field always applies, including an explicitly
// empty description or assignee and an explicit null due date.
type UpdateTaskRequest struct {
	Title       *string      `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string      `json:"description" validate:"omitempty,max=500"`
	Status      *string      `json:"status" validate:"omitempty,oneof=to-do in-progress done"`
	DueDate     NullableTime `json:"dueDate"`
	AssignedTo  *string      `json:"assignedTo"`
}

type ListTasksQuery struct {
	Status     string `form:"status" validate:"omitempty,oneof=to-do in-progress done"`
	AssignedTo string `form:"assignedTo"`
}
