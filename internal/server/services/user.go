// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and issuing auth tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yourorg/todokeeper/internal/common"
	"github.com/yourorg/todokeeper/internal/dbx"
	"github.com/yourorg/todokeeper/internal/server/auth"
	"github.com/yourorg/todokeeper/internal/server/config"
	"github.com/yourorg/todokeeper/internal/server/models"
	"github.com/yourorg/todokeeper/internal/server/repositories/repomanager"
	"github.com/yourorg/todokeeper/internal/server/validation"
)

const bcryptCost = bcrypt.DefaultCost

// UserService provides authentication-related operations:
// - Register: create users with a hashed credential
// - Login: verify credentials and mint a signed token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a user after a single combined username-or-email existence
// check. The check and the insert run in one transaction so two concurrent
// registrations cannot both pass the check. Collisions surface as
// common.ErrorAlreadyExists without revealing which field collided. The
// password is stored only as a bcrypt hash.
//
// Inputs are trimmed before the check, hashing and storage, so the persisted
// values are exactly the ones the validation rules saw.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	email = validation.NormalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.ExistsByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return fmt.Errorf("error checking existing user: %w", err)
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		user, err = repo.Create(ctx, &models.User{
			Username: username,
			Email:    email,
			Password: string(hash),
		})
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login looks the user up by email only (username is not a login key),
// verifies the password against the stored hash and mints a signed token with
// {userId, email} claims. The two failure modes stay distinguishable:
// common.ErrorUnknownEmail vs common.ErrorWrongPassword.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	password = strings.TrimSpace(password)

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnknownEmail
		}
		return "", nil, fmt.Errorf("error looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, common.ErrorWrongPassword
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, fmt.Errorf("error signing token: %w", err)
	}

	return token, user, nil
}
