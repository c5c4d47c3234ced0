package users

import (
	"context"

	"github.com/dmitrijs2005/permalist/internal/server/models"
)

// Repository is the credential store: it persists one row per identity and
// never sees a raw password.
type Repository interface {
	// Create inserts a new identity. A duplicate user_id yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByID returns the identity or common.ErrorNotFound.
	GetByID(ctx context.Context, userID string) (*models.User, error)
}
