package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskhub/internal/core/domain"
)

func TestTransitionStatusToDoneStampsCompletedAt(t *testing.T) {
	task := domain.Task{Status: domain.TaskStatusTodo}
	now := time.Now()

	task.TransitionStatus(domain.TaskStatusDone, now)

	assert.Equal(t, domain.TaskStatusDone, task.Status)
	assert.NotNil(t, task.CompletedAt)
	assert.Equal(t, now, *task.CompletedAt)
}

func TestTransitionStatusAwayFromDoneClearsCompletedAt(t *testing.T) {
	done := time.Now().Add(-time.Hour)
	task := domain.Task{Status: domain.TaskStatusDone, CompletedAt: &done}

	task.TransitionStatus(domain.TaskStatusInProgress, time.Now())

	assert.Equal(t, domain.TaskStatusInProgress, task.Status)
	assert.Nil(t, task.CompletedAt)
}

func TestTransitionStatusSameStatusLeavesCompletedAtUntouched(t *testing.T) {
	done := time.Now().Add(-time.Hour)
	task := domain.Task{Status: domain.TaskStatusDone, CompletedAt: &done}

	task.TransitionStatus(domain.TaskStatusDone, time.Now())

	assert.Equal(t, done, *task.CompletedAt)

	task = domain.Task{Status: domain.TaskStatusTodo}
	task.TransitionStatus(domain.TaskStatusTodo, time.Now())

	assert.Nil(t, task.CompletedAt)
}

func TestCompleteAdvancesTimestampOnRepeatedCalls(t *testing.T) {
	task := domain.Task{Status: domain.TaskStatusInProgress}

	first := time.Now().Add(-time.Minute)
	task.Complete(first)
	assert.Equal(t, first, *task.CompletedAt)

	second := time.Now()
	task.Complete(second)

	assert.Equal(t, domain.TaskStatusDone, task.Status)
	assert.Equal(t, second, *task.CompletedAt)
}

func TestTaskStatusValid(t *testing.T) {
	assert.True(t, domain.TaskStatusTodo.Valid())
	assert.True(t, domain.TaskStatusInProgress.Valid())
	assert.True(t, domain.TaskStatusDone.Valid())
	assert.False(t, domain.TaskStatus("archived").Valid())
	assert.False(t, domain.TaskStatus("").Valid())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", domain.NormalizeEmail("  User@Example.COM "))
}

func TestSanitizedStripsPassword(t *testing.T) {
	user := domain.User{Username: "alice", EncryptedPassword: "$2a$10$hash"}

	clean := user.Sanitized()

	assert.Empty(t, clean.EncryptedPassword)
	assert.Equal(t, "alice", clean.Username)
	assert.NotEmpty(t, user.EncryptedPassword)
}
