package port

import (
	"context"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/model/request"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (domain.User, string, error)
	Login(ctx context.Context, req *request.LoginRequest) (domain.User, string, error)
}

// TokenManager mints and verifies the bearer credentials the auth gate
// consumes. Verify returns the user identifier embedded in the token.
type TokenManager interface {
	Create(userUUID string) (string, error)
	Verify(token string) (string, error)
}
