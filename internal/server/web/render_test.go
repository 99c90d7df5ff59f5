package web

import (
	"net/http"
	"testing"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_RenderEveryPage(t *testing.T) {
	e := newTestEnv(t, false)
	alice := e.accounts.add("alice", "secret123")
	cat := e.categories.seed(&models.Category{OwnerID: alice.ID, Name: "Shoes", Image: "categories/a.jpg", Description: "All shoes"})
	sub := e.subCategories.seed(&models.SubCategory{OwnerID: alice.ID, Name: "Sneakers", CategoryID: &cat.ID, CategoryName: "Shoes"})
	prod := e.products.seed(&models.Product{OwnerID: alice.ID, Name: "Runner", CategoryID: &cat.ID, SubCategoryID: &sub.ID})
	e.welcome.team = []*models.TeamMember{{ID: 1, Name: "Ann Lee", JobTitle: "CEO", Twitter: "https://twitter.com/ann"}}

	pages := []struct {
		path   string
		auth   bool
		code   int
		expect string
	}{
		{"/", false, http.StatusOK, "Ann Lee"},
		{"/terms-of-serviec/", false, http.StatusOK, "Terms of Service"},
		{"/login/?next=/products/", false, http.StatusOK, `value="/products/"`},
		{"/signup/", false, http.StatusOK, "Create an Account"},
		{"/logout/", true, http.StatusOK, "Sign Out"},
		{"/password/change/", true, http.StatusOK, `name="oldpassword"`},
		{"/dashboard/", true, http.StatusOK, "Welcome back"},
		{"/profile/alice/", true, http.StatusOK, `value="alice"`},
		{"/categories/", true, http.StatusOK, "All shoes"},
		{"/category/create/", true, http.StatusOK, `type="file"`},
		{URLFor("category_update", cat.ID), true, http.StatusOK, "Category Update: Shoes"},
		{URLFor("category_delete", cat.ID), true, http.StatusOK, "Shoes"},
		{"/sub-categories/", true, http.StatusOK, "Sneakers"},
		{URLFor("sub_category_update", sub.ID), true, http.StatusOK, "selected"},
		{"/products/", true, http.StatusOK, `name="q"`},
		{"/product/create/", true, http.StatusOK, `name="sub_category"`},
		{URLFor("product_update", prod.ID), true, http.StatusOK, "Runner"},
		{"/missing/", true, http.StatusNotFound, "404"},
		{"/missing/", false, http.StatusNotFound, "404"},
	}

	for _, p := range pages {
		t.Run(p.path, func(t *testing.T) {
			req := get(p.path)
			if p.auth {
				req.AddCookie(sessionFor(alice))
			}
			rec := e.do(req)
			require.Equal(t, p.code, rec.Code)
			assert.Contains(t, rec.Body.String(), p.expect)
		})
	}
}
