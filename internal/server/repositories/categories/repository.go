package categories

import (
	"context"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
)

// Repository reads and writes categories. Every method is scoped to an owner.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Category, error)
	GetForOwner(ctx context.Context, id, ownerID int64) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	Update(ctx context.Context, c *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
