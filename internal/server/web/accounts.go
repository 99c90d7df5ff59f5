package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/forms"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/nav"
	"github.com/gin-gonic/gin"
)

type accountHandler struct {
	*base
	accounts Accounts
}

func (h *accountHandler) authPage(c *gin.Context, tmpl, title string, form forms.Described, errs forms.Errors, status int) {
	if errs.Any() {
		addErrors(c, errs.AuthMessages())
	}
	p := h.publicPage(c, title)
	p.Data["Fields"] = form.Fields()
	p.Data["Values"] = forms.Values(form)
	p.Data["Errors"] = errs
	h.render(c, status, tmpl, p)
}

func (h *accountHandler) loginForm(c *gin.Context) {
	if currentUser(c) != nil {
		redirect(c, URLFor("dashboard"))
		return
	}
	h.authPage(c, "login.tmpl", "Signin!", &forms.LoginForm{Next: c.Query("next")}, nil, http.StatusOK)
}

func (h *accountHandler) login(c *gin.Context) {
	if currentUser(c) != nil {
		redirect(c, URLFor("dashboard"))
		return
	}

	form := &forms.LoginForm{}
	errs := forms.Collect(form, c.ShouldBind(form), nil)
	if errs.Any() {
		h.authPage(c, "login.tmpl", "Signin!", form, errs, http.StatusOK)
		return
	}

	user, token, err := h.accounts.Login(c.Request.Context(), form.Login, form.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			errs.AddGeneral(forms.MsgBadCredentials)
			form.Password = ""
			h.authPage(c, "login.tmpl", "Signin!", form, errs, http.StatusOK)
			return
		}
		h.fail(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "user logged in", "user_id", user.ID)
	setSession(c, token, h.config.SessionValidityDuration)
	addMessage(c, levelSuccess, "You have successfully logged in!")

	target := safeNext(form.Next)
	if target == "" {
		target = URLFor("dashboard")
	}
	redirect(c, target)
}

func (h *accountHandler) signupForm(c *gin.Context) {
	if currentUser(c) != nil {
		redirect(c, URLFor("dashboard"))
		return
	}
	h.authPage(c, "signup.tmpl", "Signup!", &forms.SignupForm{}, nil, http.StatusOK)
}

func (h *accountHandler) signup(c *gin.Context) {
	if currentUser(c) != nil {
		redirect(c, URLFor("dashboard"))
		return
	}

	form := &forms.SignupForm{}
	errs := forms.Collect(form, c.ShouldBind(form), nil)
	if errs.Any() {
		form.Password1, form.Password2 = "", ""
		h.authPage(c, "signup.tmpl", "Signup!", form, errs, http.StatusOK)
		return
	}

	user, token, err := h.accounts.Signup(c.Request.Context(), form.Username, form.Email, form.Password1)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			errs.Add("username", "Username", forms.MsgUsernameTaken)
			form.Password1, form.Password2 = "", ""
			h.authPage(c, "signup.tmpl", "Signup!", form, errs, http.StatusOK)
			return
		}
		h.fail(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "user signed up", "user_id", user.ID)
	setSession(c, token, h.config.SessionValidityDuration)
	addMessage(c, levelSuccess, "You have successfully signed up!")
	redirect(c, URLFor("dashboard"))
}

func (h *accountHandler) logoutForm(c *gin.Context) {
	if currentUser(c) == nil {
		redirect(c, URLFor("welcome"))
		return
	}
	h.render(c, http.StatusOK, "logout.tmpl", h.publicPage(c, "Logout!"))
}

func (h *accountHandler) logout(c *gin.Context) {
	if u := currentUser(c); u != nil {
		h.logger.Info(c.Request.Context(), "user logged out", "user_id", u.ID)
		addMessage(c, levelSuccess, "You have signed out.")
	}
	clearSession(c)
	redirect(c, URLFor("welcome"))
}

func (h *accountHandler) passwordPage(c *gin.Context, form *forms.PasswordChangeForm, errs forms.Errors) {
	if errs.Any() {
		addErrors(c, errs.AuthMessages())
	}
	form.OldPassword, form.Password1, form.Password2 = "", "", ""

	p := h.page(c, "Change Password", nav.SectionSettings, 1, nav.PageTitleData("Change Password", "Home", "Settings", "Change Password"))
	p.Data["Fields"] = form.Fields()
	p.Data["Values"] = forms.Values(form)
	p.Data["Errors"] = errs
	h.render(c, http.StatusOK, "change-password.tmpl", p)
}

func (h *accountHandler) passwordForm(c *gin.Context) {
	h.passwordPage(c, &forms.PasswordChangeForm{}, nil)
}

func (h *accountHandler) changePassword(c *gin.Context) {
	user := currentUser(c)

	form := &forms.PasswordChangeForm{}
	errs := forms.Collect(form, c.ShouldBind(form), nil)
	if errs.Any() {
		h.passwordPage(c, form, errs)
		return
	}

	err := h.accounts.ChangePassword(c.Request.Context(), user.ID, form.OldPassword, form.Password1)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidPassword) {
			errs.Add("oldpassword", "Current Password", forms.MsgCurrentPassword)
			h.passwordPage(c, form, errs)
			return
		}
		h.fail(c, err)
		return
	}

	addMessage(c, levelSuccess, "You have successfully changed the password!")
	redirect(c, URLFor("profile", user.Username))
}
