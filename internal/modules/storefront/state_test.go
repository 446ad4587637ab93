package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cameronstore.com/app/internal/modules/products"
)

func TestDispatch(t *testing.T) {
	p := products.Catalog()[0]

	tests := []struct {
		name  string
		state State
		want  View
	}{
		{"empty state is grid", State{}, ViewGrid},
		{"selected product", State{SelectedProduct: &p}, ViewProductDetail},
		{"cart page", State{ShowCartPage: true}, ViewCart},
		{"cart wins over selection", State{ShowCartPage: true, SelectedProduct: &p}, ViewCart},
		{"gate wins over everything", State{ShowSignupGate: true, ShowCartPage: true, SelectedProduct: &p}, ViewSignupGate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dispatch(tt.state))
		})
	}
}

func TestView_String(t *testing.T) {
	assert.Equal(t, "grid", ViewGrid.String())
	assert.Equal(t, "product", ViewProductDetail.String())
	assert.Equal(t, "cart", ViewCart.String())
	assert.Equal(t, "signup", ViewSignupGate.String())
}
