package middleware

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

const (
	// CSRFField is the form field and cookie carrying the token.
	CSRFField = "_csrf_token"
	// CSRFHeader is set by htmx through hx-headers on the page body.
	CSRFHeader = "X-CSRF-Token"
	csrfKey    = "csrf_token"
)

// csrfGuard issues and verifies double-submit tokens of the form
// hex(nonce) "." base64url(HMAC-SHA256(secret, nonce)).
type csrfGuard struct {
	secret []byte
	secure bool
}

// CSRF protects the page routes. Safe methods get a token (reusing a valid
// cookie); state-changing methods must echo the cookie's token in the form
// field or the X-CSRF-Token header.
func CSRF(secret string) gin.HandlerFunc {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, pkg.Response{
				Code:    http.StatusInternalServerError,
				Message: "csrf secret is required",
			})
		}
	}
	g := &csrfGuard{secret: []byte(secret), secure: gin.Mode() == gin.ReleaseMode}
	return g.handle
}

func (g *csrfGuard) handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		token, err := c.Cookie(CSRFField)
		if err != nil || !g.valid(token) {
			if token, err = g.issue(); err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     CSRFField,
				Value:    token,
				Path:     "/",
				Secure:   g.secure,
				SameSite: http.SameSiteStrictMode,
			})
		}
		c.Set(csrfKey, token)
		c.Next()
	default:
		cookie, _ := c.Cookie(CSRFField)
		sent := c.GetHeader(CSRFHeader)
		if sent == "" {
			sent = c.PostForm(CSRFField)
		}
		if cookie == "" || sent == "" {
			g.reject(c, "CSRF token missing")
			return
		}
		if !g.valid(cookie) || subtle.ConstantTimeCompare([]byte(cookie), []byte(sent)) != 1 {
			g.reject(c, "CSRF token invalid")
			return
		}
		c.Set(csrfKey, cookie)
		c.Next()
	}
}

func (g *csrfGuard) reject(c *gin.Context, msg string) {
	if pkg.IsHTMX(c) {
		c.Abort()
		pkg.HXFail(c, "La sesión del formulario expiró, recarga la página")
		return
	}
	c.AbortWithStatusJSON(http.StatusForbidden, pkg.Response{Code: http.StatusForbidden, Message: msg})
}

func (g *csrfGuard) issue() (string, error) {
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	n := hex.EncodeToString(nonce)
	return n + "." + g.sign(n), nil
}

func (g *csrfGuard) sign(nonce string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(nonce))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (g *csrfGuard) valid(token string) bool {
	nonce, sig, ok := strings.Cut(token, ".")
	if !ok || nonce == "" || sig == "" {
		return false
	}
	return hmac.Equal([]byte(sig), []byte(g.sign(nonce)))
}

// CSRFToken returns the token set by CSRF for templates, or "".
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfKey)
}
