package web

import (
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

const userKey = "user"

// requestLogger logs every request once it has been handled.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		}
		if u := currentUser(c); u != nil {
			args = append(args, "user_id", u.ID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}
		logger.Info(c.Request.Context(), "request", args...)
	}
}

// limitBody caps request bodies at n bytes.
func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if n > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

// session resolves the session cookie to the current user. Invalid sessions
// are dropped.
func session(accounts Accounts, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(common.SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := accounts.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug(c.Request.Context(), "session rejected", "error", err.Error())
			clearSession(c)
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// requireLogin sends anonymous visitors to the login page and back.
func requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			target := URLFor("account_login") + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

func setSession(c *gin.Context, token string, validity time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.SessionCookieName, token, int(validity.Seconds()), "/", "", false, true)
}

func clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.SessionCookieName, "", -1, "/", "", false, true)
}
