package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/permalist/internal/common"
	"github.com/dmitrijs2005/permalist/internal/server/config"
	"github.com/dmitrijs2005/permalist/internal/server/models"
	"github.com/dmitrijs2005/permalist/internal/server/repositories/repomanager"
)

// TaskService owns the private to-do list. Every operation takes the caller's
// verified user id and hands it to the repository as the row-scoping
// predicate; there is no code path that reads or mutates a task without it.
type TaskService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	queryTimeout time.Duration
}

// NewTaskService constructs a TaskService using repositories and server config.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TaskService {
	return &TaskService{
		db:           db,
		repomanager:  m,
		queryTimeout: cfg.DBQueryTimeout,
	}
}

// List returns the caller's tasks. A non-empty timeFilter narrows the result
// to rows with an exact time match.
func (s *TaskService) List(ctx context.Context, userID, timeFilter string) ([]models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if timeFilter != "" {
		return repo.ListByTime(ctx, userID, timeFilter)
	}
	return repo.List(ctx, userID)
}

// Create inserts a task auto-scoped to the caller. Title and time are both
// required.
func (s *TaskService) Create(ctx context.Context, userID, title, taskTime string) (*models.Task, error) {
	if title == "" || taskTime == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Tasks(s.db)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return repo.Create(ctx, &models.Task{Title: title, Time: taskTime, UserID: userID})
}

// Update rewrites an owned task. A row that is missing or owned by somebody
// else yields common.ErrorNotFound either way.
func (s *TaskService) Update(ctx context.Context, userID string, id int64, title, taskTime string) (*models.Task, error) {
	if title == "" || taskTime == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Tasks(s.db)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return repo.Update(ctx, id, userID, title, taskTime)
}

// Delete removes an owned task and returns it. Deleting a row that is already
// gone (or was never the caller's) yields common.ErrorNotFound; the two cases
// are indistinguishable by design.
func (s *TaskService) Delete(ctx context.Context, userID string, id int64) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return repo.Delete(ctx, id, userID)
}
