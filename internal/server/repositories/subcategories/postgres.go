// Package subcategories stores sub-categories in PostgreSQL.
package subcategories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/dbx"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectSubCategory = `SELECT s.id, s.owner_id, s.name, s.image, s.category_id, s.description,
	s.created_at, s.last_update, COALESCE(c.name, '')
	FROM sub_categories s
	LEFT JOIN categories c ON c.id = s.category_id`

func scanSubCategory(row interface{ Scan(...any) error }) (*models.SubCategory, error) {
	s := &models.SubCategory{}
	var categoryID sql.NullInt64
	err := row.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Image, &categoryID, &s.Description,
		&s.CreatedAt, &s.LastUpdate, &s.CategoryName)
	if categoryID.Valid {
		s.CategoryID = &categoryID.Int64
	}
	return s, err
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.SubCategory, error) {
	rows, err := r.db.QueryContext(ctx, selectSubCategory+` WHERE s.owner_id = $1 ORDER BY s.name, s.id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.SubCategory
	for rows.Next() {
		s, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetForOwner(ctx context.Context, id, ownerID int64) (*models.SubCategory, error) {
	s, err := scanSubCategory(r.db.QueryRowContext(ctx, selectSubCategory+` WHERE s.id = $1 AND s.owner_id = $2`, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.SubCategory) (*models.SubCategory, error) {
	query :=
		`INSERT INTO sub_categories (owner_id, name, image, category_id, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, last_update`

	err := r.db.QueryRowContext(ctx, query, s.OwnerID, s.Name, s.Image, s.CategoryID, s.Description).
		Scan(&s.ID, &s.CreatedAt, &s.LastUpdate)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Update(ctx context.Context, s *models.SubCategory) (*models.SubCategory, error) {
	query :=
		`UPDATE sub_categories
		 SET name = $1, image = $2, category_id = $3, description = $4, last_update = now()
		 WHERE id = $5 AND owner_id = $6
		 RETURNING last_update`

	err := r.db.QueryRowContext(ctx, query, s.Name, s.Image, s.CategoryID, s.Description, s.ID, s.OwnerID).
		Scan(&s.LastUpdate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sub_categories WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
