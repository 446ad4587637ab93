package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/http/middleware"
	"cameronstore.com/app/internal/modules/cart"
	"cameronstore.com/app/internal/modules/products"
	"cameronstore.com/app/internal/modules/storefront"
	"cameronstore.com/app/internal/modules/users"
	"cameronstore.com/app/internal/shared/apperr"
	"cameronstore.com/app/pkg/view"
)

type sessionJSON struct {
	View            string            `json:"view"`
	ShowSignupGate  bool              `json:"show_signup_gate"`
	ShowCartPage    bool              `json:"show_cart_page"`
	SelectedProduct *products.Product `json:"selected_product"`
	User            *users.User       `json:"user"`
	Cart            cart.Cart         `json:"cart"`
	CartCount       int               `json:"cart_count"`
	CartTotalCents  int64             `json:"cart_total_cents"`
	CartTotal       string            `json:"cart_total"`
}

// Session handles GET /api/session - a read-only snapshot of the state.
func (h *StorefrontHandler) Session(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	st := sess.State()
	c.JSON(http.StatusOK, sessionJSON{
		View:            storefront.Dispatch(st).String(),
		ShowSignupGate:  st.ShowSignupGate,
		ShowCartPage:    st.ShowCartPage,
		SelectedProduct: st.SelectedProduct,
		User:            st.CurrentUser,
		Cart:            st.Cart,
		CartCount:       st.Cart.Count(),
		CartTotalCents:  st.Cart.TotalCents(),
		CartTotal:       view.MoneyFromCents(st.Cart.TotalCents(), h.Currency),
	})
}

// Products handles GET /api/products.
func (h *StorefrontHandler) Products(c *gin.Context) {
	items, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}
