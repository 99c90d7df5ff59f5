package web

import (
	"bytes"
	"net/http"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type exportHandler struct {
	*base
	products Catalog[*models.Product]
}

// download sends the current user's products, filtered like the list
// page, as a spreadsheet.
func (h *exportHandler) download(c *gin.Context) {
	user := currentUser(c)

	items, err := h.products.List(c.Request.Context(), user.ID, c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteProductsXLSX(&buf, items); err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
