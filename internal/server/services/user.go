// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues the signed
// bearer tokens used by every protected operation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/permalist/internal/common"
	"github.com/dmitrijs2005/permalist/internal/server/auth"
	"github.com/dmitrijs2005/permalist/internal/server/config"
	"github.com/dmitrijs2005/permalist/internal/server/models"
	"github.com/dmitrijs2005/permalist/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create an identity and mint its first token
// - Login: verify credentials and mint a token
// - GetByID: fresh credential-store lookups for downstream scoping
type UserService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	jwtSecret    []byte
	tokenTTL     time.Duration
	queryTimeout time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:           db,
		repomanager:  m,
		jwtSecret:    []byte(cfg.SecretKey),
		tokenTTL:     cfg.TokenTTL,
		queryTimeout: cfg.DBQueryTimeout,
	}
}

// Register creates a new identity and returns a signed token for it. Only the
// bcrypt digest is stored, never the raw password. A duplicate user id yields
// common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, userID, password string, familyCode *string) (string, error) {
	if userID == "" || password == "" {
		return "", common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &models.User{UserID: userID, PasswordHash: hash}
	if familyCode != nil && *familyCode != "" {
		user.FamilyCode = sql.NullString{String: *familyCode, Valid: true}
	}

	repo := s.repomanager.Users(s.db)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if _, err := repo.GetByID(ctx, userID); err == nil {
		return "", common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return "", fmt.Errorf("error checking user: %w", err)
	}

	if _, err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return auth.GenerateToken(userID, s.jwtSecret, s.tokenTTL)
}

// Login verifies the provided password against the stored digest and, on
// success, returns a new token. Unknown user and wrong password are
// deliberately indistinguishable: both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, userID, password string) (string, error) {
	if userID == "" || password == "" {
		return "", common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if err := auth.ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	return auth.GenerateToken(user.UserID, s.jwtSecret, s.tokenTTL)
}

// GetByID returns the identity row or common.ErrorNotFound. Group-scoped
// operations use it to read the caller's current family code fresh on every
// request instead of trusting anything carried in the token.
func (s *UserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return repo.GetByID(ctx, userID)
}
