package web

import (
	"net/http"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/forms"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

type welcomeHandler struct {
	*base
	welcome Welcome
}

// TeamCard is a team member prepared for display.
type TeamCard struct {
	*models.TeamMember
	PictureURL string
}

func (h *welcomeHandler) renderWelcome(c *gin.Context, form *forms.ContactForm, errs forms.Errors) {
	members, err := h.welcome.TeamMembers(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	cards := make([]TeamCard, 0, len(members))
	for _, m := range members {
		cards = append(cards, TeamCard{TeamMember: m, PictureURL: h.imageURL(c, m.Picture)})
	}

	p := h.publicPage(c, "Welcome!")
	p.Data["Team"] = cards
	p.Data["Fields"] = form.Fields()
	p.Data["Values"] = forms.Values(form)
	p.Data["Errors"] = errs
	h.render(c, http.StatusOK, "welcome.tmpl", p)
}

func (h *welcomeHandler) index(c *gin.Context) {
	h.renderWelcome(c, &forms.ContactForm{}, nil)
}

// contact stores a message from the contact form and sends the visitor on
// to sign up.
func (h *welcomeHandler) contact(c *gin.Context) {
	form := &forms.ContactForm{}
	errs := forms.Collect(form, c.ShouldBind(form), nil)
	if errs.Any() {
		h.renderWelcome(c, form, errs)
		return
	}

	if err := h.welcome.SubmitContact(c.Request.Context(), form.ContactMessage()); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, URLFor("account_signup"))
}

func (h *welcomeHandler) terms(c *gin.Context) {
	h.render(c, http.StatusOK, "terms.tmpl", h.publicPage(c, "Terms of Service!"))
}
