package web

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/forms"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/images"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/nav"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Column is one displayed field of a list page.
type Column[E any] struct {
	Name  string
	Label string
	// Image columns hold a storage key resolved to a URL for display.
	Image bool
	Value func(E) string
}

// Descriptor tells the generic catalog controller everything that differs
// between entity types.
type Descriptor[E services.Entity] struct {
	ListRoute, CreateRoute, UpdateRoute, DeleteRoute string
	// ExportRoute, when set, adds a spreadsheet download to the list page.
	ExportRoute string
	SubSection  int

	ListTitle, CreateTitle, UpdateTitle, DeleteTitle string
	Created, Updated, Deleted                        string

	Columns      []Column[E]
	HasSearchBar bool

	New     func() E
	NewForm func() forms.Form[E]
	// Choices lists the parents the user may pick; nil when the form has none.
	Choices func(ctx context.Context, ownerID int64) (forms.Choices, error)
}

// Cell is a rendered value of a list row.
type Cell struct {
	Value    string
	ImageURL string
}

type Row struct {
	ID    int64
	Cells []Cell
}

type catalogController[E services.Entity] struct {
	*base
	service Catalog[E]
	desc    Descriptor[E]
}

func newCatalogController[E services.Entity](b *base, service Catalog[E], desc Descriptor[E]) *catalogController[E] {
	return &catalogController[E]{base: b, service: service, desc: desc}
}

func (h *catalogController[E]) register(g *gin.RouterGroup) {
	g.GET(routePath(h.desc.ListRoute), h.list)
	g.GET(routePath(h.desc.CreateRoute), h.createForm)
	g.POST(routePath(h.desc.CreateRoute), h.create)
	g.GET(routePath(h.desc.UpdateRoute), h.updateForm)
	g.POST(routePath(h.desc.UpdateRoute), h.update)
	g.GET(routePath(h.desc.DeleteRoute), h.deleteForm)
	g.POST(routePath(h.desc.DeleteRoute), h.delete)
}

func (h *catalogController[E]) catalogPage(c *gin.Context, title string) *Page {
	return h.page(c, title, nav.SectionProducts, h.desc.SubSection, nav.CatalogTitle(title))
}

func (h *catalogController[E]) list(c *gin.Context) {
	user := currentUser(c)

	query := ""
	if h.desc.HasSearchBar {
		query = c.Query("q")
	}

	items, err := h.service.List(c.Request.Context(), user.ID, query)
	if err != nil {
		h.fail(c, err)
		return
	}

	rows := make([]Row, 0, len(items))
	for _, e := range items {
		row := Row{ID: e.GetID()}
		for _, col := range h.desc.Columns {
			cell := Cell{Value: col.Value(e)}
			if col.Image {
				cell.ImageURL = h.imageURL(c, cell.Value)
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	p := h.catalogPage(c, h.desc.ListTitle)
	p.Data["Columns"] = h.desc.Columns
	p.Data["Rows"] = rows
	p.Data["CreateRoute"] = h.desc.CreateRoute
	p.Data["UpdateRoute"] = h.desc.UpdateRoute
	p.Data["DeleteRoute"] = h.desc.DeleteRoute
	p.Data["HasSearchBar"] = h.desc.HasSearchBar
	p.Data["Query"] = query
	if h.desc.ExportRoute != "" {
		export := URLFor(h.desc.ExportRoute)
		if query != "" {
			export += "?q=" + url.QueryEscape(query)
		}
		p.Data["ExportURL"] = export
	}
	h.render(c, http.StatusOK, "list.tmpl", p)
}

func (h *catalogController[E]) choices(c *gin.Context) (forms.Choices, error) {
	if h.desc.Choices == nil {
		return forms.Choices{}, nil
	}
	return h.desc.Choices(c.Request.Context(), currentUser(c).ID)
}

func (h *catalogController[E]) renderForm(c *gin.Context, status int, tmpl, title string, form forms.Form[E], ch forms.Choices, errs forms.Errors, obj E, action string) {
	p := h.catalogPage(c, title)
	p.Data["Fields"] = form.Fields()
	p.Data["Values"] = forms.Values(form)
	p.Data["Choices"] = ch
	p.Data["Errors"] = errs
	p.Data["Action"] = action
	p.Data["ListRoute"] = h.desc.ListRoute
	if tmpl == "update.tmpl" {
		p.Data["Object"] = obj
		p.Data["ImageURL"] = h.imageURL(c, obj.GetImage())
	}
	h.render(c, status, tmpl, p)
}

func (h *catalogController[E]) createForm(c *gin.Context) {
	ch, err := h.choices(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var zero E
	h.renderForm(c, http.StatusOK, "create.tmpl", h.desc.CreateTitle, h.desc.NewForm(), ch, nil, zero, URLFor(h.desc.CreateRoute))
}

func (h *catalogController[E]) create(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)
	var zero E

	ch, err := h.choices(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	form := h.desc.NewForm()
	bindErr := c.ShouldBind(form)
	extra := form.Clean(ch)

	upload, closeUpload, err := openUpload(c, forms.ImageField)
	if err != nil {
		extra.Add(forms.ImageField, "Image", forms.MsgInvalidImage)
	} else if upload == nil {
		extra.Add(forms.ImageField, "Image", forms.MsgRequired)
	}
	defer closeUpload()

	errs := forms.Collect(form, bindErr, extra)
	if errs.Any() {
		addErrors(c, errs.Messages())
		h.renderForm(c, http.StatusOK, "create.tmpl", h.desc.CreateTitle, form, ch, errs, zero, URLFor(h.desc.CreateRoute))
		return
	}

	e := h.desc.New()
	form.Apply(e)
	if _, err := h.service.Create(ctx, user.ID, e, upload); err != nil {
		if errors.Is(err, images.ErrInvalidImage) {
			errs.Add(forms.ImageField, "Image", forms.MsgInvalidImage)
			addErrors(c, errs.Messages())
			h.renderForm(c, http.StatusOK, "create.tmpl", h.desc.CreateTitle, form, ch, errs, zero, URLFor(h.desc.CreateRoute))
			return
		}
		h.fail(c, err)
		return
	}

	addMessage(c, levelSuccess, h.desc.Created)
	redirect(c, URLFor(h.desc.ListRoute))
}

// load fetches the record named by the :id parameter for the current user.
func (h *catalogController[E]) load(c *gin.Context) (E, bool) {
	var zero E

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return zero, false
	}

	e, err := h.service.Get(c.Request.Context(), id, currentUser(c).ID)
	if err != nil {
		h.fail(c, err)
		return zero, false
	}
	return e, true
}

func (h *catalogController[E]) updateForm(c *gin.Context) {
	e, ok := h.load(c)
	if !ok {
		return
	}
	ch, err := h.choices(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	form := h.desc.NewForm()
	form.Fill(e)
	h.renderForm(c, http.StatusOK, "update.tmpl", h.desc.UpdateTitle, form, ch, nil, e, URLFor(h.desc.UpdateRoute, e.GetID()))
}

func (h *catalogController[E]) update(c *gin.Context) {
	e, ok := h.load(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	user := currentUser(c)
	action := URLFor(h.desc.UpdateRoute, e.GetID())

	ch, err := h.choices(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	form := h.desc.NewForm()
	bindErr := c.ShouldBind(form)
	extra := form.Clean(ch)

	upload, closeUpload, err := openUpload(c, forms.ImageField)
	if err != nil {
		extra.Add(forms.ImageField, "Image", forms.MsgInvalidImage)
	}
	defer closeUpload()

	errs := forms.Collect(form, bindErr, extra)
	if errs.Any() {
		addErrors(c, errs.Messages())
		h.renderForm(c, http.StatusOK, "update.tmpl", h.desc.UpdateTitle, form, ch, errs, e, action)
		return
	}

	form.Apply(e)
	if _, err := h.service.Update(ctx, user.ID, e, upload); err != nil {
		if errors.Is(err, images.ErrInvalidImage) {
			errs.Add(forms.ImageField, "Image", forms.MsgInvalidImage)
			addErrors(c, errs.Messages())
			h.renderForm(c, http.StatusOK, "update.tmpl", h.desc.UpdateTitle, form, ch, errs, e, action)
			return
		}
		h.fail(c, err)
		return
	}

	addMessage(c, levelSuccess, h.desc.Updated)
	redirect(c, URLFor(h.desc.ListRoute))
}

func (h *catalogController[E]) deleteForm(c *gin.Context) {
	e, ok := h.load(c)
	if !ok {
		return
	}

	p := h.catalogPage(c, h.desc.DeleteTitle)
	p.Data["Object"] = e
	p.Data["Name"] = e.GetName()
	p.Data["Action"] = URLFor(h.desc.DeleteRoute, e.GetID())
	p.Data["ListRoute"] = h.desc.ListRoute
	h.render(c, http.StatusOK, "delete.tmpl", p)
}

func (h *catalogController[E]) delete(c *gin.Context) {
	e, ok := h.load(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), e.GetID(), currentUser(c).ID); err != nil {
		h.fail(c, err)
		return
	}

	addMessage(c, levelSuccess, h.desc.Deleted)
	redirect(c, URLFor(h.desc.ListRoute))
}

// openUpload opens the file submitted under key. A missing file yields a nil
// reader and no error.
func openUpload(c *gin.Context, key string) (io.Reader, func(), error) {
	noop := func() {}

	fh, err := c.FormFile(key)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, err
	}
	return openHeader(fh)
}

func openHeader(fh *multipart.FileHeader) (io.Reader, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { _ = f.Close() }, nil
}
