package service

import (
	"context"
	"database/sql/driver"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/swoleapp/swole-api/internal/config"
	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/repository"
	"github.com/swoleapp/swole-api/internal/schemas"
)

func newAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "test-secret", TokenExpireMinutes: 60}
	return NewAuthService(repository.NewUserRepository(db), cfg, logger, nil), mock
}

func expectUserLookup(mock sqlmock.Sqlmock, username, password string, disabled bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	mock.ExpectQuery("SELECT id, username, hashed_password, email, disabled").
		WithArgs(username).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hashed_password", "email", "disabled"}).
			AddRow(uuid.NewString(), username, string(hash), nil, disabled))
}

func TestLoginAndCurrentUserRoundTrip(t *testing.T) {
	auth, mock := newAuthService(t)
	expectUserLookup(mock, "alice", "password", false)
	expectUserLookup(mock, "alice", "password", false)

	token, err := auth.Login(context.Background(), "alice", "password")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	user, err := auth.CurrentUser(context.Background(), token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, mock := newAuthService(t)
	expectUserLookup(mock, "alice", "password", false)

	_, err := auth.Login(context.Background(), "alice", "not-the-password")
	assert.EqualError(t, err, apperrors.IncorrectUsernameOrPassword)
}

func TestLoginUnknownUser(t *testing.T) {
	auth, mock := newAuthService(t)
	mock.ExpectQuery("SELECT id, username, hashed_password, email, disabled").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hashed_password", "email", "disabled"}))

	_, err := auth.Login(context.Background(), "nobody", "password")
	assert.EqualError(t, err, apperrors.IncorrectUsernameOrPassword)
}

func TestCurrentUserExpiredToken(t *testing.T) {
	auth, _ := newAuthService(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = auth.CurrentUser(context.Background(), signed)
	assert.EqualError(t, err, apperrors.CouldNotValidateCredentials)
}

func TestCurrentUserWrongSignature(t *testing.T) {
	auth, _ := newAuthService(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = auth.CurrentUser(context.Background(), signed)
	assert.EqualError(t, err, apperrors.CouldNotValidateCredentials)
}

func TestCurrentUserGarbageToken(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.CurrentUser(context.Background(), "not.a.token")
	assert.EqualError(t, err, apperrors.CouldNotValidateCredentials)
}

func TestRequireActive(t *testing.T) {
	auth, mock := newAuthService(t)
	expectUserLookup(mock, "alice", "password", true)

	user, err := auth.Authenticate(context.Background(), "alice", "password")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.EqualError(t, auth.RequireActive(user), apperrors.InactiveUser)

	user.Disabled = false
	assert.NoError(t, auth.RequireActive(user))
}

func TestRegisterHashesPasswords(t *testing.T) {
	auth, mock := newAuthService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", passwordHashMatcher{plaintext: "password"}, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "disabled"}).
			AddRow(uuid.NewString(), "alice", nil, false))
	mock.ExpectCommit()

	users, err := auth.Register(context.Background(), []schemas.UserCreate{
		{Username: "alice", Password: "password"},
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

// passwordHashMatcher accepts any bcrypt hash of the expected plaintext,
// which also proves the plaintext never reaches the repository.
type passwordHashMatcher struct {
	plaintext string
}

func (m passwordHashMatcher) Match(value driver.Value) bool {
	hash, ok := value.(string)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(m.plaintext)) == nil
}
