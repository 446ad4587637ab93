package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/http/flash"
	"cameronstore.com/app/internal/modules/storefront"
	"cameronstore.com/app/pkg/view"
)

const CtxKeyFlash = "flash"

// FlashMiddleware reads the flash cookie into the context and clears it, so
// every notice is shown once.
func FlashMiddleware(codec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, err := c.Cookie(codec.CookieName); err == nil && v != "" {
			if f, err := codec.Decode(v); err == nil {
				c.Set(CtxKeyFlash, f)
			}
			// Clear even when invalid so a bad cookie is not retried.
			clearCookie(c, codec.CookieName, codec.Secure)
		}
		c.Next()
	}
}

func GetFlash(c *gin.Context) *view.Flash {
	if v, ok := c.Get(CtxKeyFlash); ok {
		if f, ok := v.(*view.Flash); ok {
			return f
		}
	}
	return nil
}

func SetFlashCookie(c *gin.Context, codec *flash.Codec, f view.Flash) {
	val, err := codec.Encode(f)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(codec.CookieName, val, codec.CookieMaxAge(), "/", "", codec.Secure, true)
}

// FlashNotifier delivers storefront notices as the flash shown after the
// redirect.
func FlashNotifier(c *gin.Context, codec *flash.Codec) storefront.Notifier {
	return storefront.NotifierFunc(func(_ context.Context, n storefront.Notice) {
		SetFlashCookie(c, codec, flash.FromNotice(n))
	})
}

func clearCookie(c *gin.Context, name string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", secure, true)
}
