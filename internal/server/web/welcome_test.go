package web

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/forms"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcome_Index(t *testing.T) {
	e := newTestEnv(t, true)
	e.welcome.team = []*models.TeamMember{{ID: 1, Name: "Ann Lee", Picture: "avatar/ann.jpg"}}

	rec := e.do(get("/"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome!", e.html.page.Title)
	cards := e.html.page.Data["Team"].([]TeamCard)
	require.Len(t, cards, 1)
	assert.Equal(t, "Ann Lee", cards[0].Name)
	assert.Equal(t, "https://images.test/avatar/ann.jpg", cards[0].PictureURL)
}

func TestWelcome_Contact(t *testing.T) {
	e := newTestEnv(t, true)

	rec := e.do(postForm("/", url.Values{"name": {"Ann"}, "email": {"bad"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "welcome.tmpl", e.html.name)
	errs := e.html.page.Data["Errors"].(forms.Errors)
	assert.True(t, errs.Has("email"))
	assert.True(t, errs.Has("subject"))
	assert.Empty(t, e.welcome.messages)

	rec = e.do(postForm("/", url.Values{
		"name": {"Ann"}, "email": {"ann@example.com"}, "subject": {"Hi"}, "message": {"Hello there"},
	}))
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/signup/", rec.Header().Get("Location"))
	require.Len(t, e.welcome.messages, 1)
	assert.Equal(t, "Hello there", e.welcome.messages[0].Message)
}

func TestTermsAndNotFound(t *testing.T) {
	e := newTestEnv(t, true)

	rec := e.do(get("/terms-of-serviec/"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Terms of Service!", e.html.page.Title)

	rec = e.do(get("/no/such/page/"))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "404.tmpl", e.html.name)
	assert.Equal(t, "Dashboard", e.html.page.Title)
}
