package services

import (
	"context"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/forms"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
)

// OwnerChoices lists the categories and sub-categories ownerID may attach
// records to.
func OwnerChoices(ctx context.Context, cats *CatalogService[*models.Category], subs *CatalogService[*models.SubCategory], ownerID int64) (forms.Choices, error) {
	var ch forms.Choices

	categories, err := cats.List(ctx, ownerID, "")
	if err != nil {
		return ch, err
	}
	for _, c := range categories {
		ch.Categories = append(ch.Categories, forms.Choice{ID: c.ID, Label: c.Name})
	}

	if subs == nil {
		return ch, nil
	}
	subCategories, err := subs.List(ctx, ownerID, "")
	if err != nil {
		return ch, err
	}
	for _, s := range subCategories {
		ch.SubCategories = append(ch.SubCategories, forms.Choice{ID: s.ID, Label: s.Name})
	}
	return ch, nil
}
