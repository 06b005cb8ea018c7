package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                int
	UUID              uuid.UUID
	Username          string
	Email             string
	EncryptedPassword string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Sanitized returns a copy safe to hand to any read path, the password
// hash never leaves the credential checks.
func (u User) Sanitized() User {
	u.EncryptedPassword = ""
	return u
}

// NormalizeEmail trims and lowercases an email the way it is persisted.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUsername trims surrounding whitespace.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
