package web

import (
	"strings"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/forms"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/nav"
	"github.com/gin-gonic/gin"
)

// menuView feeds the "menu" template.
type menuView struct {
	Items    []nav.MenuItem
	Username string
}

func menu(items []nav.MenuItem, user *models.User) menuView {
	v := menuView{Items: items}
	if user != nil {
		v.Username = user.Username
	}
	return v
}

// fieldView feeds the "input" template.
type fieldView struct {
	Field   forms.Field
	Value   string
	Invalid bool
	Choices forms.Choices
}

func field(f forms.Field, values any, data gin.H) fieldView {
	v := fieldView{Field: f}
	if m, ok := values.(map[string]string); ok {
		v.Value = m[f.Key]
	}
	if errs, ok := data["Errors"].(forms.Errors); ok {
		v.Invalid = errs.Has(f.Key)
	}
	if ch, ok := data["Choices"].(forms.Choices); ok {
		v.Choices = ch
	}
	return v
}

func inputType(key string) string {
	switch {
	case strings.Contains(key, "password"):
		return "password"
	case key == "email":
		return "email"
	case key == "facebook" || key == "instagram" || key == "twitter" || key == "linkedin":
		return "url"
	default:
		return "text"
	}
}
