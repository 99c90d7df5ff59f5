package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	levelSuccess = "success"
	levelError   = "error"
	levelInfo    = "info"
)

// Message is a one-shot notification shown on the next rendered page.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

const (
	messagesKey   = "messages"
	flashKeyKey   = "flash_key"
	flashLifetime = 5 * time.Minute
)

type flashClaims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// flashes loads the notifications left by the previous response and
// expires their cookie. The cookie is signed with secret; one that does not
// verify is dropped.
func flashes(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(flashKeyKey, secret)
		if raw, err := c.Cookie(common.FlashCookieName); err == nil && raw != "" {
			c.Set(messagesKey, decodeFlash(raw, secret))
			c.SetCookie(common.FlashCookieName, "", -1, "/", "", false, true)
		}
		c.Next()
	}
}

func addMessage(c *gin.Context, level, text string) {
	c.Set(messagesKey, append(messages(c), Message{Level: level, Text: text}))
}

func addErrors(c *gin.Context, texts []string) {
	for _, t := range texts {
		addMessage(c, levelError, t)
	}
}

func messages(c *gin.Context) []Message {
	if v, ok := c.Get(messagesKey); ok {
		if m, ok := v.([]Message); ok {
			return m
		}
	}
	return nil
}

// takeMessages returns the pending notifications and forgets them.
func takeMessages(c *gin.Context) []Message {
	m := messages(c)
	c.Set(messagesKey, []Message(nil))
	return m
}

// redirect carries the pending notifications over to the next request.
func redirect(c *gin.Context, location string) {
	if m := takeMessages(c); len(m) > 0 {
		if raw := encodeFlash(m, flashSecret(c)); raw != "" {
			c.SetCookie(common.FlashCookieName, raw, 0, "/", "", false, true)
		}
	}
	c.Redirect(http.StatusFound, location)
}

func flashSecret(c *gin.Context) []byte {
	if v, ok := c.Get(flashKeyKey); ok {
		if b, ok := v.([]byte); ok {
			return b
		}
	}
	return nil
}

func encodeFlash(m []Message, secret []byte) string {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, flashClaims{
		Messages: m,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(flashLifetime)),
		},
	})
	raw, err := token.SignedString(secret)
	if err != nil {
		return ""
	}
	return raw
}

func decodeFlash(raw string, secret []byte) []Message {
	claims := &flashClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return claims.Messages
}
