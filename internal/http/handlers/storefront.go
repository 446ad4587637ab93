package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/http/middleware"
	"cameronstore.com/app/internal/http/render"
	"cameronstore.com/app/internal/http/visitorcookie"
	"cameronstore.com/app/internal/modules/products"
	"cameronstore.com/app/internal/modules/storefront"
	"cameronstore.com/app/internal/modules/users"
	"cameronstore.com/app/internal/shared/apperr"
	"cameronstore.com/app/pkg/view"
	"cameronstore.com/app/templates/pages"
)

// StorefrontHandler serves the single storefront page and every action on it.
// Actions mutate the session, save the view cookie and redirect back to "/".
type StorefrontHandler struct {
	Catalog   products.Repository
	Views     *visitorcookie.ViewCodec
	StoreName string
	Currency  string

	now func() time.Time
}

func NewStorefrontHandler(catalog products.Repository, views *visitorcookie.ViewCodec, storeName, currency string) *StorefrontHandler {
	return &StorefrontHandler{
		Catalog:   catalog,
		Views:     views,
		StoreName: storeName,
		Currency:  currency,
		now:       time.Now,
	}
}

// Show handles GET / - renders whichever view the session dispatches to.
func (h *StorefrontHandler) Show(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	h.renderPage(c, sess, http.StatusOK, func(*view.StorefrontPage) {})
}

func (h *StorefrontHandler) renderPage(c *gin.Context, sess *storefront.Session, status int, patch func(*view.StorefrontPage)) {
	p, err := h.buildPage(c.Request.Context(), sess)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	p.Flash = middleware.GetFlash(c)
	patch(&p)
	render.Component(c, status, pages.Storefront(p))
}

func (h *StorefrontHandler) buildPage(ctx context.Context, sess *storefront.Session) (view.StorefrontPage, error) {
	st := sess.State()

	items, err := h.Catalog.List(ctx)
	if err != nil {
		return view.StorefrontPage{}, err
	}

	p := view.StorefrontPage{
		StoreName: h.StoreName,
		Greeting:  users.DisplayName(st.CurrentUser),
		View:      storefront.Dispatch(st).String(),
		Year:      h.now().Year(),
		CartCount: st.Cart.Count(),
		CartLines: make([]view.CartLine, 0, len(st.Cart)),
		CartTotal: view.MoneyFromCents(st.Cart.TotalCents(), h.Currency),
		Products:  make([]view.ProductCard, 0, len(items)),
	}
	for _, it := range items {
		p.Products = append(p.Products, h.card(it))
	}
	for _, it := range st.Cart {
		p.CartLines = append(p.CartLines, view.CartLine{
			Name:  it.Name,
			Price: view.MoneyFromCents(it.PriceCents, h.Currency),
		})
	}
	if st.SelectedProduct != nil {
		card := h.card(*st.SelectedProduct)
		p.Selected = &card
	}
	return p, nil
}

func (h *StorefrontHandler) card(p products.Product) view.ProductCard {
	return view.ProductCard{
		ID:       p.ID,
		Name:     p.Name,
		Price:    view.MoneyFromCents(p.PriceCents, h.Currency),
		ImageURL: p.ImageURL,
	}
}

// finish saves the transient view flags and sends the visitor back home.
func (h *StorefrontHandler) finish(c *gin.Context, sess *storefront.Session) {
	if err := h.Views.Set(c, sess.Transient()); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.Redirect(c, "/")
}

func sessionFrom(c *gin.Context) (*storefront.Session, bool) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errors.New("storefront session missing from context")))
		return nil, false
	}
	return sess, true
}
