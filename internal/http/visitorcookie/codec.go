package visitorcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrInvalid = errors.New("invalid visitor cookie")

// MaxAge keeps a visitor's cart and profile reachable across browser restarts.
const MaxAge = 365 * 24 * time.Hour

// Codec issues the durable visitor id; the id scopes every storage key.
type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: visitorID.base64(hmac(visitorID))
func (c *Codec) Encode(visitorID string) string {
	return visitorID + "." + sign(c.Secret, visitorID)
}

func (c *Codec) Decode(v string) (string, error) {
	id, sig, ok := strings.Cut(v, ".")
	if !ok || id == "" || strings.Contains(sig, ".") {
		return "", ErrInvalid
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalid
	}
	if !verify(c.Secret, id, sig) {
		return "", ErrInvalid
	}
	return id, nil
}

func (c *Codec) GetVisitorID(ctx *gin.Context) (string, bool) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return "", false
	}
	id, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return "", false
	}
	return id, true
}

// Ensure returns the request's visitor id, issuing a new one when the cookie
// is missing or tampered with. created reports whether a cookie was set.
func (c *Codec) Ensure(ctx *gin.Context) (id string, created bool) {
	if id, ok := c.GetVisitorID(ctx); ok {
		return id, false
	}
	id = uuid.NewString()
	c.Set(ctx, id)
	return id, true
}

func (c *Codec) Set(ctx *gin.Context, visitorID string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, c.Encode(visitorID), int(MaxAge.Seconds()), "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
