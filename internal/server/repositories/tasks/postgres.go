package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/permalist/internal/common"
	"github.com/dmitrijs2005/permalist/internal/dbx"
	"github.com/dmitrijs2005/permalist/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (title, time, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.Title, task.Time, task.UserID).Scan(&task.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Task, error) {
	query :=
		`SELECT id, title, time, user_id FROM tasks
		 WHERE user_id = $1
		 ORDER BY id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return scanTasks(rows)
}

func (r *PostgresRepository) ListByTime(ctx context.Context, userID, taskTime string) ([]models.Task, error) {
	query :=
		`SELECT id, title, time, user_id FROM tasks
		 WHERE user_id = $1 AND time = $2
		 ORDER BY id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, taskTime)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return scanTasks(rows)
}

// Update is a single scoped statement: the owner predicate and the mutation
// cannot race against each other.
func (r *PostgresRepository) Update(ctx context.Context, id int64, userID, title, taskTime string) (*models.Task, error) {
	query :=
		`UPDATE tasks SET title = $1, time = $2
		 WHERE id = $3 AND user_id = $4
		 RETURNING id, title, time, user_id
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, title, taskTime, id, userID).
		Scan(&task.ID, &task.Title, &task.Time, &task.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64, userID string) (*models.Task, error) {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, title, time, user_id
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&task.ID, &task.Title, &task.Time, &task.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func scanTasks(rows *sql.Rows) ([]models.Task, error) {
	defer rows.Close()

	list := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Time, &t.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}
