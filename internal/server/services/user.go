// Package services contains the application services sitting between the
// HTTP transport and the repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/weatherhub/internal/common"
	"github.com/dmitrijs2005/weatherhub/internal/server/auth"
	"github.com/dmitrijs2005/weatherhub/internal/server/config"
	"github.com/dmitrijs2005/weatherhub/internal/server/models"
	"github.com/dmitrijs2005/weatherhub/internal/server/repositories/users"
)

// UserService implements registration and login on top of the users
// repository.
type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates an account with a bcrypt-hashed password. The plaintext
// never reaches the repository or the logs. An empty username or password is
// common.ErrorValidation, a taken username is common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username string, password string) (*models.User, error) {

	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the password for an existing account and issues a signed
// session token. An unknown username surfaces as common.ErrorNotFound,
// distinct from common.ErrorInvalidCredentials for a wrong password — the
// API has always leaked that distinction and keeps doing so.
func (s *UserService) Login(ctx context.Context, username string, password string) (string, error) {

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
