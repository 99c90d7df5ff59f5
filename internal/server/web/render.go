package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/config"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/images"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/nav"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func parseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"url":       URLFor,
		"menu":      menu,
		"field":     field,
		"inputType": inputType,
	}).ParseFS(templateFS, "templates/*.tmpl"))
}

// Page is the data every template receives.
type Page struct {
	Title     string
	AppName   string
	User      *models.User
	Sidebar   nav.Sidebar
	PageTitle nav.PageTitle
	Messages  []Message
	Data      gin.H
}

// base holds what every handler needs to build and render pages.
type base struct {
	config *config.Config
	logger logging.Logger
	images images.Store
}

// page starts the context of a dashboard page whose sidebar highlights
// section/sub.
func (b *base) page(c *gin.Context, title string, section, sub int, pt nav.PageTitle) *Page {
	return &Page{
		Title:     title,
		AppName:   b.config.AppName,
		User:      currentUser(c),
		Sidebar:   nav.SidebarData(section, sub),
		PageTitle: pt,
		Data:      gin.H{},
	}
}

// publicPage starts the context of a page outside the dashboard.
func (b *base) publicPage(c *gin.Context, title string) *Page {
	return &Page{Title: title, AppName: b.config.AppName, User: currentUser(c), Data: gin.H{}}
}

func (b *base) render(c *gin.Context, status int, name string, p *Page) {
	p.Messages = append(p.Messages, takeMessages(c)...)
	c.HTML(status, name, p)
}

// fail renders the error page matching err.
func (b *base) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorForbidden):
		b.render(c, http.StatusForbidden, "403.tmpl", b.page(c, "Forbidden", 0, 0, nav.PageTitleData("Forbidden", "Home", "Forbidden")))
	case errors.Is(err, common.ErrorNotFound):
		b.notFound(c)
	default:
		_ = c.Error(err)
		b.logger.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err.Error())
		b.render(c, http.StatusInternalServerError, "500.tmpl", b.page(c, "Server Error", 0, 0, nav.PageTitleData("Server Error", "Home", "Server Error")))
	}
}

func (b *base) notFound(c *gin.Context) {
	b.render(c, http.StatusNotFound, "404.tmpl", b.page(c, "Dashboard", 0, 0, nav.PageTitleData("Dashboard", "Home", "Dashboard")))
}

// imageURL resolves a stored image key for display. Failures are logged and
// yield an empty URL.
func (b *base) imageURL(c *gin.Context, key string) string {
	if key == "" {
		return ""
	}
	u, err := b.images.URL(c.Request.Context(), key)
	if err != nil {
		b.logger.Warn(c.Request.Context(), "image url", "key", key, "error", err.Error())
		return ""
	}
	return u
}
