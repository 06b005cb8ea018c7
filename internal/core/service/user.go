package service

import (
	"context"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo}
}

func (us *UserService) GetByUUID(ctx context.Context, uid string) (domain.User, error) {
	user, err := us.repo.GetByUUID(ctx, uid)

	if err != nil {
		return domain.User{}, err
	}

	return user.Sanitized(), nil
}

func (us *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := us.repo.List(ctx)

	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i] = users[i].Sanitized()
	}

	return users, nil
}
