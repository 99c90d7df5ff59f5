package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/forms"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/images"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/nav"
	"github.com/gin-gonic/gin"
)

// profileHandler serves the profile page of the logged in user. The
// username in the path is only cosmetic.
type profileHandler struct {
	*base
	accounts Accounts
}

func (h *profileHandler) renderProfile(c *gin.Context, profile *models.Profile, pf *forms.ProfileForm, uf *forms.UserUpdateForm, errs forms.Errors) {
	user := currentUser(c)

	p := h.page(c, "Profile", nav.SectionProfile, 0, nav.PageTitleData("Profile", "Home", "User", "Profile"))
	p.Data["Profile"] = profile
	p.Data["PictureURL"] = h.imageURL(c, profile.Picture)
	p.Data["ProfileFields"] = pf.Fields()
	p.Data["ProfileValues"] = forms.Values(pf)
	p.Data["UserFields"] = uf.Fields()
	p.Data["UserValues"] = forms.Values(uf)
	p.Data["Errors"] = errs
	p.Data["Action"] = URLFor("profile", user.Username)
	h.render(c, http.StatusOK, "profile.tmpl", p)
}

func (h *profileHandler) show(c *gin.Context) {
	user := currentUser(c)

	profile, err := h.accounts.Profile(c.Request.Context(), user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	pf := &forms.ProfileForm{}
	pf.Fill(profile)
	uf := &forms.UserUpdateForm{}
	uf.Fill(user)
	h.renderProfile(c, profile, pf, uf, nil)
}

// update saves the profile form and, only when it is also valid, the
// account form submitted with it.
func (h *profileHandler) update(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	profile, err := h.accounts.Profile(ctx, user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	pf := &forms.ProfileForm{}
	var extra forms.Errors
	picture, closePicture, err := openUpload(c, forms.ProfilePictureField)
	if err != nil {
		extra.Add(forms.ProfilePictureField, "Profile pic", forms.MsgInvalidImage)
	}
	defer closePicture()

	errs := forms.Collect(pf, c.ShouldBind(pf), extra)

	uf := &forms.UserUpdateForm{}
	userErrs := forms.Collect(uf, c.ShouldBind(uf), nil)

	if errs.Any() {
		addErrors(c, errs.Messages())
		h.renderProfile(c, profile, pf, uf, errs)
		return
	}

	pf.Apply(profile)

	var account *models.User
	if !userErrs.Any() {
		a := *user
		uf.Apply(&a)
		account = &a
	}

	saved, err := h.accounts.UpdateProfile(ctx, profile, picture, account)
	if err != nil {
		if errors.Is(err, images.ErrInvalidImage) {
			errs.Add(forms.ProfilePictureField, "Profile pic", forms.MsgInvalidImage)
			addErrors(c, errs.Messages())
			h.renderProfile(c, profile, pf, uf, errs)
			return
		}
		h.fail(c, err)
		return
	}

	username := user.Username
	if saved {
		username = account.Username
	}
	addMessage(c, levelSuccess, "Profile Updated successfully!")
	redirect(c, URLFor("profile", username))
}
