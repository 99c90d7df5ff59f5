// Package categories stores categories in PostgreSQL.
package categories

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

const selectCategory = `SELECT id, owner_id, name, image, description, created_at, last_update FROM categories`

func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	c := &models.Category{}
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Image, &c.Description, &c.CreatedAt, &c.LastUpdate)
	return c, err
}

// ListByOwner returns the owner's categories ordered by name.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategory+` WHERE owner_id = $1 ORDER BY name, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetForOwner returns category id only if it belongs to ownerID;
// otherwise common.ErrorNotFound.
func (r *PostgresRepository) GetForOwner(ctx context.Context, id, ownerID int64) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx, selectCategory+` WHERE id = $1 AND owner_id = $2`, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	query :=
		`INSERT INTO categories (owner_id, name, image, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, last_update`

	err := r.db.QueryRowContext(ctx, query, c.OwnerID, c.Name, c.Image, c.Description).
		Scan(&c.ID, &c.CreatedAt, &c.LastUpdate)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

// Update saves c; the row must belong to c.OwnerID.
func (r *PostgresRepository) Update(ctx context.Context, c *models.Category) (*models.Category, error) {
	query :=
		`UPDATE categories SET name = $1, image = $2, description = $3, last_update = now()
		 WHERE id = $4 AND owner_id = $5
		 RETURNING last_update`

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Image, c.Description, c.ID, c.OwnerID).Scan(&c.LastUpdate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

// Delete removes the category. Dependent sub-categories and products keep
// existing with their category reference cleared by the schema.
func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND owner_id = $2`, id, ownerID)
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
