// Package products stores products in PostgreSQL.
package products

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

const selectProduct = `SELECT p.id, p.owner_id, p.name, p.image, p.category_id, p.sub_category_id,
	p.description, p.created_at, p.last_update, COALESCE(c.name, ''), COALESCE(s.name, '')
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN sub_categories s ON s.id = p.sub_category_id`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	p := &models.Product{}
	var categoryID, subCategoryID sql.NullInt64
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Image, &categoryID, &subCategoryID,
		&p.Description, &p.CreatedAt, &p.LastUpdate, &p.CategoryName, &p.SubCategoryName)
	if categoryID.Valid {
		p.CategoryID = &categoryID.Int64
	}
	if subCategoryID.Valid {
		p.SubCategoryID = &subCategoryID.Int64
	}
	return p, err
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectProduct+` WHERE p.owner_id = $1 ORDER BY p.name, p.id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetForOwner(ctx context.Context, id, ownerID int64) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, selectProduct+` WHERE p.id = $1 AND p.owner_id = $2`, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	query :=
		`INSERT INTO products (owner_id, name, image, category_id, sub_category_id, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, last_update`

	err := r.db.QueryRowContext(ctx, query, p.OwnerID, p.Name, p.Image, p.CategoryID, p.SubCategoryID, p.Description).
		Scan(&p.ID, &p.CreatedAt, &p.LastUpdate)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Product) (*models.Product, error) {
	query :=
		`UPDATE products
		 SET name = $1, image = $2, category_id = $3, sub_category_id = $4, description = $5, last_update = now()
		 WHERE id = $6 AND owner_id = $7
		 RETURNING last_update`

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Image, p.CategoryID, p.SubCategoryID, p.Description, p.ID, p.OwnerID).
		Scan(&p.LastUpdate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1 AND owner_id = $2`, id, ownerID)
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
