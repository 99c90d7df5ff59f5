package web

import (
	"context"
	"strconv"
	"time"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/forms"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/nav"
)

type choicesFunc func(ctx context.Context, ownerID int64) (forms.Choices, error)

const lastUpdateLayout = "Jan. 2, 2006, 15:04"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(lastUpdateLayout)
}

func categoryDescriptor() Descriptor[*models.Category] {
	return Descriptor[*models.Category]{
		ListRoute:   "categories",
		CreateRoute: "category_create",
		UpdateRoute: "category_update",
		DeleteRoute: "category_delete",
		SubSection:  nav.SubCategories,

		ListTitle:   "Categories",
		CreateTitle: "Create Category",
		UpdateTitle: "Category Update",
		DeleteTitle: "Category Delete",

		Created: "Category created successfully!",
		Updated: "Category Updated successfully!",
		Deleted: "Category Deleted successfully!",

		Columns: []Column[*models.Category]{
			{Name: "id", Label: "ID", Value: func(c *models.Category) string { return strconv.FormatInt(c.ID, 10) }},
			{Name: "image", Label: "Image", Image: true, Value: func(c *models.Category) string { return c.Image }},
			{Name: "name", Label: "Name", Value: func(c *models.Category) string { return c.Name }},
			{Name: "description", Label: "Description", Value: func(c *models.Category) string { return c.Description }},
			{Name: "last_update", Label: "Last Update", Value: func(c *models.Category) string { return formatTime(c.LastUpdate) }},
		},

		New:     func() *models.Category { return &models.Category{} },
		NewForm: func() forms.Form[*models.Category] { return &forms.CategoryForm{} },
	}
}

func subCategoryDescriptor(choices choicesFunc) Descriptor[*models.SubCategory] {
	return Descriptor[*models.SubCategory]{
		ListRoute:   "sub_categories",
		CreateRoute: "sub_category_create",
		UpdateRoute: "sub_category_update",
		DeleteRoute: "sub_category_delete",
		SubSection:  nav.SubSubCategories,

		ListTitle:   "Sub-Categories",
		CreateTitle: "Sub-Category Create",
		UpdateTitle: "Sub-Category Update",
		DeleteTitle: "Sub-Category Delete",

		Created: "Subcategory created successfully!",
		Updated: "Subcategory updated successfully!",
		Deleted: "Sub-Category Deleted successfully!",

		Columns: []Column[*models.SubCategory]{
			{Name: "id", Label: "ID", Value: func(s *models.SubCategory) string { return strconv.FormatInt(s.ID, 10) }},
			{Name: "image", Label: "Image", Image: true, Value: func(s *models.SubCategory) string { return s.Image }},
			{Name: "name", Label: "Name", Value: func(s *models.SubCategory) string { return s.Name }},
			{Name: "category", Label: "Category", Value: func(s *models.SubCategory) string { return s.CategoryName }},
			{Name: "description", Label: "Description", Value: func(s *models.SubCategory) string { return s.Description }},
			{Name: "last_update", Label: "Last Update", Value: func(s *models.SubCategory) string { return formatTime(s.LastUpdate) }},
		},

		New:     func() *models.SubCategory { return &models.SubCategory{} },
		NewForm: func() forms.Form[*models.SubCategory] { return &forms.SubCategoryForm{} },
		Choices: choices,
	}
}

func productDescriptor(choices choicesFunc) Descriptor[*models.Product] {
	return Descriptor[*models.Product]{
		ListRoute:   "products",
		CreateRoute: "product_create",
		UpdateRoute: "product_update",
		DeleteRoute: "product_delete",
		ExportRoute: "product_export",
		SubSection:  nav.SubProducts,

		ListTitle:   "Products",
		CreateTitle: "Product Create",
		UpdateTitle: "Product Update",
		DeleteTitle: "Product Delete",

		Created: "Product created successfully!",
		Updated: "Product updated successfully!",
		Deleted: "Product Deleted successfully!",

		Columns: []Column[*models.Product]{
			{Name: "id", Label: "ID", Value: func(p *models.Product) string { return strconv.FormatInt(p.ID, 10) }},
			{Name: "image", Label: "Image", Image: true, Value: func(p *models.Product) string { return p.Image }},
			{Name: "name", Label: "Name", Value: func(p *models.Product) string { return p.Name }},
			{Name: "category", Label: "Category", Value: func(p *models.Product) string { return p.CategoryName }},
			{Name: "sub_category", Label: "Sub Category", Value: func(p *models.Product) string { return p.SubCategoryName }},
			{Name: "description", Label: "Description", Value: func(p *models.Product) string { return p.Description }},
			{Name: "last_update", Label: "Last Update", Value: func(p *models.Product) string { return formatTime(p.LastUpdate) }},
		},
		HasSearchBar: true,

		New:     func() *models.Product { return &models.Product{} },
		NewForm: func() forms.Form[*models.Product] { return &forms.ProductForm{} },
		Choices: choices,
	}
}
