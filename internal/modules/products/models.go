package products

type Product struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	ImageURL   string `json:"image"`
}

// Catalog returns a fresh copy of the three jackets on sale.
func Catalog() []Product {
	return []Product{
		{
			ID:         1,
			Name:       "Black Puffer Jacket",
			PriceCents: 12000,
			ImageURL:   "https://via.placeholder.com/300x400?text=Black+Puffer+Jacket",
		},
		{
			ID:         2,
			Name:       "Navy Puffer Jacket",
			PriceCents: 11000,
			ImageURL:   "https://via.placeholder.com/300x400?text=Navy+Puffer+Jacket",
		},
		{
			ID:         3,
			Name:       "Red Puffer Jacket",
			PriceCents: 13000,
			ImageURL:   "https://via.placeholder.com/300x400?text=Red+Puffer+Jacket",
		},
	}
}
