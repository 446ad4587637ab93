package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"cameronstore.com/app/internal/modules/products"
)

// StorageKey is the durable key holding the serialized cart.
const StorageKey = "cart"

var ErrMalformed = errors.New("malformed stored cart")

// Item has exactly the shape of a catalog product.
type Item products.Product

// Cart is an ordered list of items. Adding the same product twice yields
// two entries.
type Cart []Item

func ItemFrom(p products.Product) Item { return Item(p) }

// Add returns a new cart with p appended; the receiver is left untouched.
func (c Cart) Add(p products.Product) Cart {
	out := make(Cart, len(c), len(c)+1)
	copy(out, c)
	return append(out, ItemFrom(p))
}

func (c Cart) Count() int { return len(c) }

// TotalCents sums unit prices over the current items.
func (c Cart) TotalCents() int64 {
	var sum int64
	for _, it := range c {
		sum += it.PriceCents
	}
	return sum
}

// Encode serializes the cart; an empty cart encodes as "[]".
func Encode(c Cart) ([]byte, error) {
	if c == nil {
		c = Cart{}
	}
	return json.Marshal(c)
}

func Decode(b []byte) (Cart, error) {
	var c Cart
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if c == nil {
		c = Cart{}
	}
	return c, nil
}
