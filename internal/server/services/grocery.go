package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/permalist/internal/common"
	"github.com/dmitrijs2005/permalist/internal/server/config"
	"github.com/dmitrijs2005/permalist/internal/server/models"
	"github.com/dmitrijs2005/permalist/internal/server/repositories/repomanager"
)

// GroceryService owns the shared grocery list. The caller's family code is
// read fresh from the credential store on every operation, never from the
// token. A caller with no family code matches the empty group: they see
// nothing and can delete nothing, and two solo users are never conflated.
type GroceryService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	queryTimeout time.Duration
}

// NewGroceryService constructs a GroceryService using repositories and server config.
func NewGroceryService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *GroceryService {
	return &GroceryService{
		db:           db,
		repomanager:  m,
		queryTimeout: cfg.DBQueryTimeout,
	}
}

// lookupUser reads the caller's row to resolve the current family scope.
// A deleted account with a still-valid token surfaces as ErrorNotFound here.
func (s *GroceryService) lookupUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// List returns every item of the caller's family, ordered by id. A caller
// without a family gets an empty list without touching item storage.
func (s *GroceryService) List(ctx context.Context, userID string) ([]models.GroceryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.FamilyCode.Valid {
		return []models.GroceryItem{}, nil
	}

	return s.repomanager.Grocery(s.db).ListByFamily(ctx, user.FamilyCode.String)
}

// Add inserts an item scoped to the caller's family code as it is right now;
// a later change to the caller's group does not rescope the item.
func (s *GroceryService) Add(ctx context.Context, userID, title string) (*models.GroceryItem, error) {
	if title == "" {
		return nil, common.ErrorValidation
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := &models.GroceryItem{
		Title:      title,
		FamilyCode: user.FamilyCode,
		UserID:     userID,
	}

	return s.repomanager.Grocery(s.db).Create(ctx, item)
}

// Delete removes an item belonging to the caller's family and returns it.
// Missing rows and rows of other families are indistinguishable
// (common.ErrorNotFound), and a caller with no family can delete nothing.
func (s *GroceryService) Delete(ctx context.Context, userID string, id int64) (*models.GroceryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.FamilyCode.Valid {
		return nil, common.ErrorNotFound
	}

	return s.repomanager.Grocery(s.db).Delete(ctx, id, user.FamilyCode.String)
}
