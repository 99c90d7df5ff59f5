package forms

import "github.com/dmitrijs2005/catalogkeeper/internal/server/models"

const (
	MsgRequired     = "This field is required."
	MsgInvalidImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
)

// ImageField is the key of the file input shared by the catalog forms.
const ImageField = "image"

// Form is a create/update form for a catalog entity E. The image upload is
// handled by the caller.
type Form[E any] interface {
	Described
	// Fill loads the current state of e for the update page.
	Fill(e E)
	// Clean runs the checks gin binding cannot express.
	Clean(ch Choices) Errors
	// Apply copies the cleaned values onto e.
	Apply(e E)
}

type CategoryForm struct {
	Name        string `form:"name" binding:"required,max=150"`
	Description string `form:"description" binding:"required,max=250"`
}

func (f *CategoryForm) Fields() []Field {
	return []Field{{ImageField, "Image"}, {"name", "Name"}, {"description", "Description"}}
}

func (f *CategoryForm) Fill(c *models.Category) {
	f.Name, f.Description = c.Name, c.Description
}

func (f *CategoryForm) Clean(Choices) Errors { return nil }

func (f *CategoryForm) Apply(c *models.Category) {
	c.Name, c.Description = f.Name, f.Description
}

type SubCategoryForm struct {
	Name        string `form:"name" binding:"required,max=150"`
	Category    string `form:"category"`
	Description string `form:"description" binding:"required,max=250"`

	categoryID *int64
}

func (f *SubCategoryForm) Fields() []Field {
	return []Field{{ImageField, "Image"}, {"name", "Name"}, {"category", "Category"}, {"description", "Description"}}
}

func (f *SubCategoryForm) Fill(s *models.SubCategory) {
	f.Name, f.Description = s.Name, s.Description
	f.Category = choiceValue(s.CategoryID)
}

func (f *SubCategoryForm) Clean(ch Choices) Errors {
	var errs Errors
	id, ok := ParseChoice(f.Category, ch.Categories)
	if !ok {
		errs.Add("category", "Category", msgInvalidChoice)
	}
	f.categoryID = id
	return errs
}

func (f *SubCategoryForm) Apply(s *models.SubCategory) {
	s.Name, s.Description = f.Name, f.Description
	s.CategoryID = f.categoryID
}

type ProductForm struct {
	Name        string `form:"name" binding:"required,max=150"`
	Category    string `form:"category"`
	SubCategory string `form:"sub_category"`
	Description string `form:"description" binding:"required,max=250"`

	categoryID    *int64
	subCategoryID *int64
}

func (f *ProductForm) Fields() []Field {
	return []Field{{ImageField, "Image"}, {"name", "Name"}, {"category", "Category"},
		{"sub_category", "Sub category"}, {"description", "Description"}}
}

func (f *ProductForm) Fill(p *models.Product) {
	f.Name, f.Description = p.Name, p.Description
	f.Category = choiceValue(p.CategoryID)
	f.SubCategory = choiceValue(p.SubCategoryID)
}

func (f *ProductForm) Clean(ch Choices) Errors {
	var errs Errors
	var ok bool
	if f.categoryID, ok = ParseChoice(f.Category, ch.Categories); !ok {
		errs.Add("category", "Category", msgInvalidChoice)
	}
	if f.subCategoryID, ok = ParseChoice(f.SubCategory, ch.SubCategories); !ok {
		errs.Add("sub_category", "Sub category", msgInvalidChoice)
	}
	return errs
}

func (f *ProductForm) Apply(p *models.Product) {
	p.Name, p.Description = f.Name, f.Description
	p.CategoryID = f.categoryID
	p.SubCategoryID = f.subCategoryID
}
