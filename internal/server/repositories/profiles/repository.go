package profiles

import (
	"context"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID int64) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
}
