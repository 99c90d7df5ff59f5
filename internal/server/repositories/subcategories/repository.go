package subcategories

import (
	"context"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.SubCategory, error)
	GetForOwner(ctx context.Context, id, ownerID int64) (*models.SubCategory, error)
	Create(ctx context.Context, s *models.SubCategory) (*models.SubCategory, error)
	Update(ctx context.Context, s *models.SubCategory) (*models.SubCategory, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
