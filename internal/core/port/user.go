package port

import (
	"context"

	"taskhub/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByUUID(ctx context.Context, uid string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type UserService interface {
	GetByUUID(ctx context.Context, uid string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
