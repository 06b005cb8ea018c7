package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	sqlite3 "github.com/mattn/go-sqlite3"

	"taskhub/internal/adapter/database/sqlite"
	"taskhub/internal/core/apperr"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/port"
)

type UserRepository struct {
	db *sqlite.DB
}

func NewUserRepository(db *sqlite.DB) port.UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, uuid, username, email, encrypted_password, created_at, updated_at"

func scanUser(row sq.RowScanner) (domain.User, error) {
	var (
		user domain.User
		uid  string
	)

	err := row.Scan(&user.ID, &uid, &user.Username, &user.Email, &user.EncryptedPassword, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return domain.User{}, err
	}

	user.UUID, err = parseUUID(uid)

	return user, err
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.Insert("users").
		Columns("uuid", "username", "email", "encrypted_password", "created_at", "updated_at").
		Values(user.UUID.String(), user.Username, user.Email, user.EncryptedPassword, user.CreatedAt, user.UpdatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	if _, err := ur.db.ExecContext(ctx, stmt, args...); err != nil {
		var sqliteErr sqlite3.Error

		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.User{}, apperr.Duplicate("username or email already in use")
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	return ur.GetByUUID(ctx, user.UUID.String())
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns).
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	user, err := scanUser(ur.db.QueryRowContext(ctx, stmt, args...))

	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, apperr.NotFound("user not found")
	}

	return user, err
}

func (ur *UserRepository) GetByUUID(ctx context.Context, uid string) (domain.User, error) {
	if _, err := parseUUID(uid); err != nil {
		// Malformed identifiers behave like missing records.
		return domain.User{}, apperr.NotFound("user not found")
	}

	query := ur.db.QueryBuilder.Select(userColumns).
		From("users").
		Where(sq.Eq{"uuid": uid}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	user, err := scanUser(ur.db.QueryRowContext(ctx, stmt, args...))

	if errors.Is(err, sql.ErrNoRows) {
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

	rows, err := ur.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	users := []domain.User{}

	for rows.Next() {
		user, err := scanUser(rows)

		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	return users, rows.Err()
}
