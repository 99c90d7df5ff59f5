package web

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestCatalog_AnonymousRedirectsToLogin(t *testing.T) {
	e := newTestEnv(t, true)

	rec := e.do(get("/products/?q=lamp"))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login/?next="+url.QueryEscape("/products/?q=lamp"), rec.Header().Get("Location"))
}

func TestCategoryCreate_FlashShownOnce(t *testing.T) {
	e := newTestEnv(t, true)
	alice := e.accounts.add("alice", "secret123")

	rec := e.do(postMultipart(t, "/category/create/", map[string]string{
		"name":        "Shoes",
		"description": "All shoes",
	}, "image", pngBytes(t)), sessionFor(alice))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/categories/", rec.Header().Get("Location"))

	rows, _ := e.categories.ListByOwner(context.Background(), alice.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, "Shoes", rows[0].Name)
	assert.True(t, strings.HasPrefix(rows[0].Image, "categories/"))
	assert.Contains(t, e.images.objects, rows[0].Image)

	flash := cookieNamed(rec, common.FlashCookieName)
	require.NotNil(t, flash)

	rec = e.do(get("/categories/"), sessionFor(alice), flash)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "list.tmpl", e.html.name)
	assert.Equal(t, []Message{{Level: levelSuccess, Text: "Category created successfully!"}}, e.html.page.Messages)
	assert.Equal(t, "Categories", e.html.page.Title)

	listed := e.html.page.Data["Rows"].([]Row)
	require.Len(t, listed, 1)
	assert.Equal(t, "https://images.test/"+rows[0].Image, listed[0].Cells[1].ImageURL)

	rec = e.do(get("/categories/"), sessionFor(alice))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, e.html.page.Messages)
}

func TestCategoryCreate_InvalidForm(t *testing.T) {
	e := newTestEnv(t, true)
	alice := e.accounts.add("alice", "secret123")

	rec := e.do(postForm("/category/create/", url.Values{
		"name":        {""},
		"description": {strings.Repeat("d", 251)},
	}), sessionFor(alice))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "create.tmpl", e.html.name)
	assert.Equal(t, "Create Category", e.html.page.Title)
	assert.Equal(t, []string{
		"Error in Image: This field is required.",
		"Error in Name: This field is required.",
		"Error in Description: Ensure this value has at most 250 characters (it has 251).",
	}, texts(e.html.page.Messages))
	assert.Zero(t, e.categories.len())
}

func TestCategoryCreate_CorruptImage(t *testing.T) {
	e := newTestEnv(t, true)
	alice := e.accounts.add("alice", "secret123")

	rec := e.do(postMultipart(t, "/category/create/", map[string]string{
		"name":        "Shoes",
		"description": "All shoes",
	}, "image", []byte("not an image")), sessionFor(alice))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{
		"Error in Image: Upload a valid image. The file you uploaded was either not an image or a corrupted image.",
	}, texts(e.html.page.Messages))
	assert.Zero(t, e.categories.len())
}

func TestCategory_ForeignRecordsForbidden(t *testing.T) {
	e := newTestEnv(t, true)
	alice := e.accounts.add("alice", "secret123")
	bob := e.accounts.add("bob", "secret123")
	bobs := e.categories.seed(&models.Category{OwnerID: bob.ID, Name: "Bob's", Description: "x"})
	path := URLFor("category_update", bobs.ID)

	rec := e.do(get(path), sessionFor(alice))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "403.tmpl", e.html.name)

	rec = e.do(postForm(path, url.Values{"name": {"Mine"}, "description": {"y"}}), sessionFor(alice))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = e.do(postForm(URLFor("category_delete", bobs.ID), nil), sessionFor(alice))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	got, err := e.categories.GetForOwner(context.Background(), bobs.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob's", got.Name)

	rec = e.do(get(URLFor("category_update", 999)), sessionFor(alice))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = e.do(get("/category/abc/update/"), sessionFor(alice))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategory_UpdateKeepsImageAndDelete(t *testing.T) {
	e := newTestEnv(t, true)
	alice := e.accounts.add("alice", "secret123")
	c := e.categories.seed(&models.Category{OwnerID: alice.ID, Name: "Shoes", Image: "categories/old.jpg", Description: "x"})

	rec := e.do(get(URLFor("category_update", c.ID)), sessionFor(alice))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "update.tmpl", e.html.name)
	assert.Equal(t, "Category Update", e.html.page.Title)
	assert.Equal(t, "Shoes", e.html.page.Data["Values"].(map[string]string)["name"])

	rec = e.do(postForm(URLFor("category_update", c.ID), url.Values{"name": {"Boots"}, "description": {"y"}}), sessionFor(alice))
	require.Equal(t, http.StatusFound, rec.Code)

	got, err := e.categories.GetForOwner(context.Background(), c.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Boots", got.Name)
	assert.Equal(t, "categories/old.jpg", got.Image)

	rec = e.do(get(URLFor("category_delete", c.ID)), sessionFor(alice))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "delete.tmpl", e.html.name)
	assert.Equal(t, "Category Delete", e.html.page.Title)

	rec = e.do(postForm(URLFor("category_delete", c.ID), nil), sessionFor(alice))
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Zero(t, e.categories.len())

	rec = e.do(get("/categories/"), sessionFor(alice), cookieNamed(rec, common.FlashCookieName))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Category Deleted successfully!"}, texts(e.html.page.Messages))
}

func TestSubCategoryCreate_ForeignCategoryRejected(t *testing.T) {
	e := newTestEnv(t, true)
	alice := e.accounts.add("alice", "secret123")
	bob := e.accounts.add("bob", "secret123")
	bobs := e.categories.seed(&models.Category{OwnerID: bob.ID, Name: "Bob's"})
	mine := e.categories.seed(&models.Category{OwnerID: alice.ID, Name: "Mine"})

	rec := e.do(get("/sub-category/create/"), sessionFor(alice))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sub-Category Create", e.html.page.Title)
	ch := e.html.page.Data["Choices"]
	require.NotNil(t, ch)

	rec = e.do(postMultipart(t, "/sub-category/create/", map[string]string{
		"name":        "Sneakers",
		"category":    "1",
		"description": "x",
	}, "image", pngBytes(t)), sessionFor(alice))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{
		"Error in Category: Select a valid choice. That choice is not one of the available choices.",
	}, texts(e.html.page.Messages))
	assert.Equal(t, int64(1), bobs.ID)
	assert.Zero(t, e.subCategories.len())

	rec = e.do(postMultipart(t, "/sub-category/create/", map[string]string{
		"name":        "Sneakers",
		"category":    "2",
		"description": "x",
	}, "image", pngBytes(t)), sessionFor(alice))
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/sub-categories/", rec.Header().Get("Location"))

	subs, _ := e.subCategories.ListByOwner(context.Background(), alice.ID)
	require.Len(t, subs, 1)
	require.NotNil(t, subs[0].CategoryID)
	assert.Equal(t, mine.ID, *subs[0].CategoryID)
}

func TestProductList_SearchAndSidebar(t *testing.T) {
	e := newTestEnv(t, true)
	alice := e.accounts.add("alice", "secret123")
	bob := e.accounts.add("bob", "secret123")
	lamp := e.products.seed(&models.Product{OwnerID: alice.ID, Name: "Desk Lamp"})
	e.products.seed(&models.Product{OwnerID: alice.ID, Name: "Chair"})
	e.products.seed(&models.Product{OwnerID: bob.ID, Name: "Lamp"})

	rec := e.do(get("/products/?q=LAMP"), sessionFor(alice))
	require.Equal(t, http.StatusOK, rec.Code)

	p := e.html.page
	assert.Equal(t, "Products", p.Title)
	assert.Equal(t, nav.CatalogTitle("Products"), p.PageTitle)
	assert.Equal(t, true, p.Data["HasSearchBar"])
	assert.Equal(t, "LAMP", p.Data["Query"])
	assert.Equal(t, "/products/export/?q=LAMP", p.Data["ExportURL"])

	rows := p.Data["Rows"].([]Row)
	require.Len(t, rows, 1)
	assert.Equal(t, lamp.ID, rows[0].ID)
	assert.Equal(t, "Desk Lamp", rows[0].Cells[2].Value)

	var products *nav.MenuItem
	for i := range p.Sidebar.General {
		if p.Sidebar.General[i].ID == nav.SectionProducts {
			products = &p.Sidebar.General[i]
		}
	}
	require.NotNil(t, products)
	assert.False(t, products.Collapsed)
	for _, s := range products.Sections {
		assert.Equal(t, s.ID == nav.SubProducts, s.Active, s.Name)
	}
}

func TestCategoryList_IgnoresQuery(t *testing.T) {
	e := newTestEnv(t, true)
	alice := e.accounts.add("alice", "secret123")
	e.categories.seed(&models.Category{OwnerID: alice.ID, Name: "Shoes"})
	e.categories.seed(&models.Category{OwnerID: alice.ID, Name: "Hats"})

	rec := e.do(get("/categories/?q=shoe"), sessionFor(alice))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, e.html.page.Data["Rows"].([]Row), 2)
	assert.Equal(t, false, e.html.page.Data["HasSearchBar"])
}

func TestProductExport(t *testing.T) {
	e := newTestEnv(t, true)
	alice := e.accounts.add("alice", "secret123")
	e.products.seed(&models.Product{OwnerID: alice.ID, Name: "Desk Lamp"})
	e.products.seed(&models.Product{OwnerID: alice.ID, Name: "Chair"})

	rec := e.do(get("/products/export/?q=lamp"), sessionFor(alice))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "products.xlsx")

	f, err := xlsx.OpenBinary(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)
	rows := f.Sheets[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "Desk Lamp", rows[1].Cells[1].Value)
}
