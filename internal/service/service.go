// Package service holds the auth logic: signup with password hashing, token
// issuance and request-scoped identity resolution.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/swoleapp/swole-api/internal/config"
	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/repository"
	"github.com/swoleapp/swole-api/internal/schemas"
	"github.com/swoleapp/swole-api/internal/utils/email"
)

// claims is the JWT payload: the username plus standard expiry handling.
type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService handles authentication and signup
type AuthService struct {
	users  *repository.UserRepository
	cfg    *config.Config
	log    *logrus.Logger
	mailer *email.Sender
}

// NewAuthService initializes a new auth service. mailer may be nil when SMTP
// is not configured.
func NewAuthService(users *repository.UserRepository, cfg *config.Config, log *logrus.Logger, mailer *email.Sender) *AuthService {
	return &AuthService{users: users, cfg: cfg, log: log, mailer: mailer}
}

// Register creates a batch of users with hashed passwords. When a mailer is
// configured, each new user with an email address gets a welcome mail;
// failures there are logged, never surfaced.
func (s *AuthService) Register(ctx context.Context, data []schemas.UserCreate) ([]models.UserRead, error) {
	hashed := make([]schemas.UserCreate, 0, len(data))
	for _, user := range data {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
		hashed = append(hashed, user)
	}

	users, err := s.users.Create(ctx, hashed)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		s.log.Infof("User registered: %s", user.Username)
		if s.mailer != nil && user.Email != nil {
			_ = s.mailer.SendWelcome(*user.Email, user.Username)
		}
	}
	return users, nil
}

// Authenticate looks up a user by username and verifies the password. Any
// mismatch returns nil without an error; callers decide how to report it.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, nil
	}
	return user, nil
}

// Login authenticates and issues a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.Token, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return models.Token{}, err
	}
	if user == nil {
		return models.Token{}, apperrors.NewBusinessError(apperrors.IncorrectUsernameOrPassword)
	}

	expiry := time.Now().Add(time.Duration(s.cfg.TokenExpireMinutes) * time.Minute)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return models.Token{}, fmt.Errorf("failed to sign token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Username)
	return models.NewToken(signed), nil
}

// CurrentUser verifies a bearer token and resolves the user it names. Every
// verification or lookup failure collapses into CouldNotValidateCredentials.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	credentialsError := apperrors.NewBusinessError(apperrors.CouldNotValidateCredentials)

	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, credentialsError
	}

	tokenClaims, ok := token.Claims.(*claims)
	if !ok || tokenClaims.Username == "" {
		return nil, credentialsError
	}

	user, err := s.users.GetByUsername(ctx, tokenClaims.Username)
	if err != nil || user == nil {
		return nil, credentialsError
	}
	return user, nil
}

// RequireActive rejects disabled users.
func (s *AuthService) RequireActive(user *models.User) error {
	if user.Disabled {
		return apperrors.NewBusinessError(apperrors.InactiveUser)
	}
	return nil
}
