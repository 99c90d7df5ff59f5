package team

import (
	"context"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
)

type Repository interface {
	// ListActive returns members whose profile still exists, by position.
	ListActive(ctx context.Context) ([]*models.TeamMember, error)
	Create(ctx context.Context, profileID int64, position int) (*models.TeamMember, error)
}
