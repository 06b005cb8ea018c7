package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "to-do"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}

	return false
}

// UserRef is the lightweight projection attached to a task when its
// assignee is resolved.
type UserRef struct {
	UUID     uuid.UUID
	Username string
	Email    string
}

type Task struct {
	ID          int
	UUID        uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
	AssignedTo  *int
	Assignee    *UserRef
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Task) IsDone() bool {
	return t.Status == TaskStatusDone
}

// TransitionStatus applies a status change and maintains the completion
// timestamp: moving into "done" stamps it, moving out clears it, and a
// no-op transition leaves it untouched.
func (t *Task) TransitionStatus(next TaskStatus, now time.Time) {
	if next == t.Status {
		return
	}

	t.Status = next

	if next == TaskStatusDone {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

// Complete forces the task into "done" with a fresh completion timestamp,
// regardless of its current status.
func (t *Task) Complete(now time.Time) {
	t.Status = TaskStatusDone
	t.CompletedAt = &now
}

// TaskFilter narrows a task listing. Zero values mean "no filter".
type TaskFilter struct {
	Status       TaskStatus
	AssigneeUUID string
}
