package storefront

import (
	"cameronstore.com/app/internal/modules/cart"
	"cameronstore.com/app/internal/modules/products"
	"cameronstore.com/app/internal/modules/users"
)

// State is the whole of what the storefront renders from.
type State struct {
	SelectedProduct *products.Product
	Cart            cart.Cart
	ShowSignupGate  bool
	CurrentUser     *users.User
	ShowCartPage    bool
}

// Transient is the part of State that lives for one browser session only.
// Cart and user are durable and never travel here.
type Transient struct {
	SelectedProductID int  `json:"sel,omitempty"`
	ShowCartPage      bool `json:"cart,omitempty"`
	GateDismissed     bool `json:"gate,omitempty"`
}

type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// complete mirrors a browser's required check: any non-empty value counts,
// whitespace included.
func (f ContactForm) complete() bool {
	return notEmpty(f.Name) && notEmpty(f.Email) && notEmpty(f.Message)
}

type View int

const (
	ViewGrid View = iota
	ViewProductDetail
	ViewCart
	ViewSignupGate
)

func (v View) String() string {
	switch v {
	case ViewSignupGate:
		return "signup"
	case ViewCart:
		return "cart"
	case ViewProductDetail:
		return "product"
	default:
		return "grid"
	}
}

// Dispatch picks the screen for s. The gate wins, then the cart page, then
// the product detail; otherwise the grid.
func Dispatch(s State) View {
	switch {
	case s.ShowSignupGate:
		return ViewSignupGate
	case s.ShowCartPage:
		return ViewCart
	case s.SelectedProduct != nil:
		return ViewProductDetail
	default:
		return ViewGrid
	}
}
