package grocery

import (
	"context"

	"github.com/dmitrijs2005/permalist/internal/server/models"
)

// Repository persists shared grocery rows. Reads and deletes are scoped by
// family code, never by the individual caller; the predicate is part of the
// statement, so a row outside the caller's family behaves like a missing one.
//
// Callers with a NULL family code must not reach these methods: NULL matches
// the empty group, and the service layer short-circuits before storage.
type Repository interface {
	Create(ctx context.Context, item *models.GroceryItem) (*models.GroceryItem, error)
	// ListByFamily returns every item of one family ordered by id.
	ListByFamily(ctx context.Context, familyCode string) ([]models.GroceryItem, error)
	// Delete removes an item of the given family and returns it, or
	// common.ErrorNotFound.
	Delete(ctx context.Context, id int64, familyCode string) (*models.GroceryItem, error)
}
