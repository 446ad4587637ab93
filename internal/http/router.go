package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/config"
	"cameronstore.com/app/internal/http/flash"
	"cameronstore.com/app/internal/http/handlers"
	"cameronstore.com/app/internal/http/middleware"
	"cameronstore.com/app/internal/http/render"
	"cameronstore.com/app/internal/http/visitorcookie"
	"cameronstore.com/app/internal/modules/products"
	"cameronstore.com/app/internal/storage"
)

const (
	flashCookie   = "cs_flash"
	visitorCookie = "cs_visitor"
	viewCookie    = "cs_view"
)

type Deps struct {
	Logger  *slog.Logger
	Config  *config.Config
	Store   storage.Store
	Driver  string
	Catalog products.Repository
}

func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config
	secret := []byte(cfg.CookieSecret)

	flashCodec := flash.NewCodec(secret, flashCookie, cfg.CookieSecure)
	visitors := visitorcookie.New(secret, visitorCookie, cfg.CookieSecure)
	views := visitorcookie.NewView(secret, viewCookie, cfg.CookieSecure)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.ErrorHandler(d.Logger),
		middleware.Recovery(d.Logger),
	)

	health := handlers.NewHealthHandler(d.Store, d.Driver, d.Logger)
	sf := handlers.NewStorefrontHandler(d.Catalog, views, cfg.StoreName, cfg.Currency)

	r.GET("/healthz", health.Get)
	r.GET("/api/products", sf.Products)

	shop := r.Group("/")
	shop.Use(
		middleware.FlashMiddleware(flashCodec),
		middleware.Storefront(middleware.StorefrontCfg{
			Store:    d.Store,
			Catalog:  d.Catalog,
			Visitors: visitors,
			Views:    views,
			Flash:    flashCodec,
			Logger:   d.Logger,
		}),
	)
	{
		shop.GET("/", sf.Show)
		shop.GET("/api/session", sf.Session)

		shop.POST("/nav/home", sf.NavStore)
		shop.POST("/nav/store", sf.NavStore)
		shop.POST("/nav/cart", sf.NavCart)

		shop.POST("/products/select", sf.SelectProduct)
		shop.POST("/products/back", sf.BackToStore)
		shop.POST("/cart/add", sf.AddToCart)

		shop.POST("/signup", sf.Signup)
		shop.POST("/signup/skip", sf.SkipSignup)
		shop.POST("/contact", sf.Contact)
	}

	r.NoRoute(func(c *gin.Context) {
		render.ErrorPage(c, nethttp.StatusNotFound, "Page not found.")
	})

	return r
}
