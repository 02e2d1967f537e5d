package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/schemas"
)

func TestUserCreateBatch(t *testing.T) {
	mock, db := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed-secret", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "disabled"}).
			AddRow(uuid.NewString(), "alice", nil, false))
	mock.ExpectCommit()

	users, err := repo.Create(context.Background(), []schemas.UserCreate{
		{Username: "alice", Password: "hashed-secret"},
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
	assert.False(t, users[0].Disabled)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	mock, db := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "disabled"}).
			AddRow(uuid.NewString(), "alice", nil, false))
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(uniqueErr)
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), []schemas.UserCreate{
		{Username: "alice", Password: "hash-one"},
		{Username: "alice", Password: "hash-two"},
	})
	assert.EqualError(t, err, apperrors.UserAlreadyExists)
}

func TestUserGetByUsernameMissing(t *testing.T) {
	mock, db := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT id, username, hashed_password, email, disabled").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hashed_password", "email", "disabled"}))

	user, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}
