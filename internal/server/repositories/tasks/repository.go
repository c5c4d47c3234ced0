package tasks

import (
	"context"

	"github.com/dmitrijs2005/permalist/internal/server/models"
)

// Repository persists private to-do rows. Every method that touches an
// existing row requires the owner's user id; the scoping predicate is part of
// the statement itself, so an unowned row behaves exactly like a missing one.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	// List returns all of the owner's tasks ordered by id.
	List(ctx context.Context, userID string) ([]models.Task, error)
	// ListByTime returns the owner's tasks with an exact time match, ordered by id.
	ListByTime(ctx context.Context, userID, taskTime string) ([]models.Task, error)
	// Update rewrites title and time of an owned row, or common.ErrorNotFound.
	Update(ctx context.Context, id int64, userID, title, taskTime string) (*models.Task, error)
	// Delete removes an owned row and returns it, or common.ErrorNotFound.
	Delete(ctx context.Context, id int64, userID string) (*models.Task, error)
}
