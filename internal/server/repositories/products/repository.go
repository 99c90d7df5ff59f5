package products

import (
	"context"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Product, error)
	GetForOwner(ctx context.Context, id, ownerID int64) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	Update(ctx context.Context, p *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
