package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/schemas"
)

// UserRepository provides user persistence. Passwords reaching this layer are
// already hashed by the auth service.
type UserRepository struct {
	repository
}

// NewUserRepository initializes a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{repository{db: db}}
}

// Create inserts a batch of users in one transaction. A username collision
// with an existing user, or between two elements of the batch, aborts the
// whole insert.
func (r *UserRepository) Create(ctx context.Context, data []schemas.UserCreate) ([]models.UserRead, error) {
	var created []models.UserRead
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		created = make([]models.UserRead, 0, len(data))
		for _, user := range data {
			var u models.UserRead
			err := tx.QueryRowContext(ctx, `
				INSERT INTO users (username, hashed_password, email, disabled)
				VALUES ($1, $2, $3, FALSE)
				RETURNING id, username, email, disabled`,
				user.Username, user.Password, user.Email).
				Scan(&u.ID, &u.Username, &u.Email, &u.Disabled)
			if err != nil {
				return translateUnique(err, apperrors.UserAlreadyExists)
			}
			created = append(created, u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByUsername returns the user with the given username, or nil when no such
// user exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, hashed_password, email, disabled
		FROM users
		WHERE username = $1`, username).
		Scan(&user.ID, &user.Username, &user.HashedPassword, &user.Email, &user.Disabled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
