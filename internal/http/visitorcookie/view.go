package visitorcookie

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/modules/storefront"
)

// ViewCodec carries the transient view flags. The cookie has no Max-Age so
// it dies with the browser session, like in-page state.
type ViewCodec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func NewView(secret []byte, name string, secure bool) *ViewCodec {
	return &ViewCodec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(json).base64(hmac)
func (c *ViewCodec) Encode(t storefront.Transient) (string, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *ViewCodec) Decode(v string) (storefront.Transient, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || !verify(c.Secret, payload, sig) {
		return storefront.Transient{}, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return storefront.Transient{}, ErrInvalid
	}
	var t storefront.Transient
	if err := json.Unmarshal(raw, &t); err != nil {
		return storefront.Transient{}, ErrInvalid
	}
	return t, nil
}

// Get falls back to the zero value (fresh page load) on a missing or bad cookie.
func (c *ViewCodec) Get(ctx *gin.Context) storefront.Transient {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return storefront.Transient{}
	}
	t, err := c.Decode(v)
	if err != nil {
		return storefront.Transient{}
	}
	return t
}

func (c *ViewCodec) Set(ctx *gin.Context, t storefront.Transient) error {
	val, err := c.Encode(t)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, val, 0, "/", "", c.Secure, true)
	return nil
}
