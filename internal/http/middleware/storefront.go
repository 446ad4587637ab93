package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/http/flash"
	"cameronstore.com/app/internal/http/visitorcookie"
	"cameronstore.com/app/internal/modules/products"
	"cameronstore.com/app/internal/modules/storefront"
	"cameronstore.com/app/internal/shared/apperr"
	"cameronstore.com/app/internal/storage"
)

const (
	CtxKeySession   = "storefront_session"
	CtxKeyVisitorID = "visitor_id"
	CtxKeyView      = "view"
)

// StorefrontCfg holds what is needed to open a visitor's session.
type StorefrontCfg struct {
	Store    storage.Store
	Catalog  products.Repository
	Visitors *visitorcookie.Codec
	Views    *visitorcookie.ViewCodec
	Flash    *flash.Codec
	Logger   *slog.Logger
}

// Storefront identifies the visitor, opens their session from durable
// storage plus the view cookie, and stores it in the gin context.
func Storefront(cfg StorefrontCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		vid, created := cfg.Visitors.Ensure(c)
		c.Set(CtxKeyVisitorID, vid)
		if created {
			cfg.Logger.DebugContext(ctx, "visitor_issued", slog.String("visitor_id", vid))
		}

		sess, err := storefront.Open(ctx, storefront.Deps{
			Store:    storage.Prefixed(cfg.Store, storage.VisitorPrefix(vid)),
			Catalog:  cfg.Catalog,
			Notifier: FlashNotifier(c, cfg.Flash),
			Logger:   cfg.Logger.With(slog.String("visitor_id", vid)),
		}, cfg.Views.Get(c))
		if err != nil {
			Fail(c, apperr.Wrap(err))
			return
		}
		c.Set(CtxKeySession, sess)

		c.Next()

		c.Set(CtxKeyView, sess.View().String())
	}
}

// CurrentSession returns the session opened by Storefront.
func CurrentSession(c *gin.Context) (*storefront.Session, bool) {
	v, ok := c.Get(CtxKeySession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*storefront.Session)
	return s, ok && s != nil
}

func GetVisitorID(c *gin.Context) string {
	return c.GetString(CtxKeyVisitorID)
}
