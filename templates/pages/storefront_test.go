package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cameronstore.com/app/pkg/view"
)

func render(t *testing.T, p view.StorefrontPage) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Storefront(p).Render(context.Background(), &buf))
	return buf.String()
}

func basePage() view.StorefrontPage {
	return view.StorefrontPage{
		StoreName: "Cameron's Store",
		Greeting:  "Guest",
		Year:      2025,
		Products: []view.ProductCard{
			{ID: 1, Name: "Black Puffer Jacket", Price: "$120.00", ImageURL: "https://img/1"},
		},
	}
}

func TestStorefront_SignupGateOnly(t *testing.T) {
	p := basePage()
	p.View = "signup"
	p.SignupErrors = map[string]string{"email": "Enter a valid email address."}

	html := render(t, p)
	assert.Contains(t, html, "Sign Up (Optional)")
	assert.Contains(t, html, `formaction="/signup/skip"`)
	assert.Contains(t, html, "Enter a valid email address.")
	assert.NotContains(t, html, "Contact Us")
	assert.NotContains(t, html, "<nav")
}

func TestStorefront_GridWithContactAndEscaping(t *testing.T) {
	p := basePage()
	p.View = "grid"
	p.Greeting = "<b>Sam</b>"
	p.CartCount = 2

	html := render(t, p)
	assert.Contains(t, html, "Cart (2)")
	assert.Contains(t, html, "Black Puffer Jacket")
	assert.Contains(t, html, `name="product_id" value="1"`)
	assert.Contains(t, html, "Welcome, &lt;b&gt;Sam&lt;/b&gt;")
	assert.Contains(t, html, "Contact Us")
	assert.Contains(t, html, "2025 Cameron&#39;s Store. All rights reserved.")
}

func TestStorefront_ProductDetail(t *testing.T) {
	p := basePage()
	p.View = "product"
	p.Selected = &p.Products[0]

	html := render(t, p)
	assert.Contains(t, html, "Back to Store")
	assert.Contains(t, html, `action="/cart/add"`)
	assert.Contains(t, html, "$120.00")
}

func TestStorefront_Cart(t *testing.T) {
	p := basePage()
	p.View = "cart"

	html := render(t, p)
	assert.Contains(t, html, "Your cart is empty.")
	assert.NotContains(t, html, "Checkout")

	p.CartLines = []view.CartLine{{Name: "Black Puffer Jacket", Price: "$120.00"}, {Name: "Navy Puffer Jacket", Price: "$110.00"}}
	p.CartTotal = "$230.00"
	html = render(t, p)
	assert.Contains(t, html, "Total: $230.00")
	assert.Contains(t, html, `<button type="button" class="w-full bg-white text-black py-2 rounded">Checkout</button>`)
}

func TestStorefront_Flash(t *testing.T) {
	p := basePage()
	p.View = "grid"
	p.Flash = &view.Flash{Kind: view.FlashSuccess, Message: "Black Puffer Jacket added to cart!"}

	html := render(t, p)
	assert.Contains(t, html, `class="flash flash-success"`)
	assert.Contains(t, html, "Black Puffer Jacket added to cart!")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Error(404, "Product not found.", "rid-1").Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "404 Not Found")
	assert.Contains(t, buf.String(), "rid-1")
}
