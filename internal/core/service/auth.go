package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/core/apperr"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/model/request"
	"taskhub/internal/core/port"
	"taskhub/internal/core/util"
)

type AuthService struct {
	repo   port.UserRepository
	tokens port.TokenManager
}

func NewAuthService(repo port.UserRepository, tokens port.TokenManager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

func (as *AuthService) Register(ctx context.Context, req *request.RegisterRequest) (domain.User, string, error) {
	email := domain.NormalizeEmail(req.Email)

	if _, err := as.repo.GetByEmail(ctx, email); err == nil {
		return domain.User{}, "", apperr.Duplicate("a user with this email already exists")
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return domain.User{}, "", err
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return domain.User{}, "", fmt.Errorf("encrypting password: %w", err)
	}

	now := time.Now()

	user := domain.User{
		UUID:              uuid.New(),
		Username:          domain.NormalizeUsername(req.Username),
		Email:             email,
		EncryptedPassword: encrypted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	saved, err := as.repo.Create(ctx, user)

	if err != nil {
		return domain.User{}, "", err
	}

	token, err := as.tokens.Create(saved.UUID.String())

	if err != nil {
		return domain.User{}, "", fmt.Errorf("minting token: %w", err)
	}

	return saved.Sanitized(), token, nil
}

// Login collapses unknown email and wrong password into the same failure so
// the response never reveals which one occurred.
func (as *AuthService) Login(ctx context.Context, req *request.LoginRequest) (domain.User, string, error) {
	user, err := as.repo.GetByEmail(ctx, domain.NormalizeEmail(req.Email))

	if err != nil {
		slog.Error("Auth#Login", "get_by_email", err)
		return domain.User{}, "", apperr.InvalidCredentials()
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		slog.Error("Auth#Login", "compare_password", err)
		return domain.User{}, "", apperr.InvalidCredentials()
	}

	token, err := as.tokens.Create(user.UUID.String())

	if err != nil {
		return domain.User{}, "", fmt.Errorf("minting token: %w", err)
	}

	return user.Sanitized(), token, nil
}
