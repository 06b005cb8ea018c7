package repository

import (
	"context"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"taskhub/internal/adapter/database/postgres"
	"taskhub/internal/core/apperr"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/port"
)

type UserRepository struct {
	db *postgres.DB
}

func NewUserRepository(db *postgres.DB) port.UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, uuid, username, email, encrypted_password, created_at, updated_at"

// uniqueViolation is the postgres error code for a violated unique
// constraint.
const uniqueViolation = "23505"

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.Insert("users").
		Columns("uuid", "username", "email", "encrypted_password", "created_at", "updated_at").
		Values(user.UUID, user.Username, user.Email, user.EncryptedPassword, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING " + userColumns)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var saved domain.User

	err = ur.db.QueryRow(ctx, stmt, args...).Scan(
		&saved.ID, &saved.UUID, &saved.Username, &saved.Email,
		&saved.EncryptedPassword, &saved.CreatedAt, &saved.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.User{}, apperr.Duplicate("username or email already in use")
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	return saved, nil
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns).
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	return ur.getOne(ctx, query)
}

func (ur *UserRepository) GetByUUID(ctx context.Context, uid string) (domain.User, error) {
	if _, err := uuid.Parse(uid); err != nil {
		return domain.User{}, apperr.NotFound("user not found")
	}

	query := ur.db.QueryBuilder.Select(userColumns).
		From("users").
		Where(sq.Eq{"uuid": uid}).
		Limit(1)

	return ur.getOne(ctx, query)
}

func (ur *UserRepository) getOne(ctx context.Context, query sq.SelectBuilder) (domain.User, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var user domain.User

	err = ur.db.QueryRow(ctx, stmt, args...).Scan(
		&user.ID, &user.UUID, &user.Username, &user.Email,
		&user.EncryptedPassword, &user.CreatedAt, &user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, apperr.NotFound("user not found")
	}

	return user, err
}

func (ur *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns).
		From("users").
		OrderBy("id ASC")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := ur.db.Query(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	users := []domain.User{}

	for rows.Next() {
		var user domain.User

		err := rows.Scan(
			&user.ID, &user.UUID, &user.Username, &user.Email,
			&user.EncryptedPassword, &user.CreatedAt, &user.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	return users, rows.Err()
}
