package grocery

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

func (r *PostgresRepository) Create(ctx context.Context, item *models.GroceryItem) (*models.GroceryItem, error) {

	query :=
		`INSERT INTO grocery_items (title, family_code, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.Title, item.FamilyCode, item.UserID).Scan(&item.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) ListByFamily(ctx context.Context, familyCode string) ([]models.GroceryItem, error) {
	query :=
		`SELECT id, title, family_code, user_id FROM grocery_items
		 WHERE family_code = $1
		 ORDER BY id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, familyCode)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := make([]models.GroceryItem, 0)
	for rows.Next() {
		var item models.GroceryItem
		if err := rows.Scan(&item.ID, &item.Title, &item.FamilyCode, &item.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64, familyCode string) (*models.GroceryItem, error) {
	query :=
		`DELETE FROM grocery_items
		 WHERE id = $1 AND family_code = $2
		 RETURNING id, title, family_code, user_id
		 `

	item := &models.GroceryItem{}
	err := r.db.QueryRowContext(ctx, query, id, familyCode).
		Scan(&item.ID, &item.Title, &item.FamilyCode, &item.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}
