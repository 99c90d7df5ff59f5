package web

import (
	"net/http"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/nav"
	"github.com/gin-gonic/gin"
)

func (b *base) dashboard(c *gin.Context) {
	p := b.page(c, "Dashboard", nav.SectionDashboard, 0, nav.PageTitleData("Dashboard", "Home", "Dashboard"))
	b.render(c, http.StatusOK, "dashboard.tmpl", p)
}
