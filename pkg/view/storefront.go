package view

type ProductCard struct {
	ID       int
	Name     string
	Price    string
	ImageURL string
}

type CartLine struct {
	Name  string
	Price string
}

type SignupForm struct {
	Name  string
	Email string
}

type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// StorefrontPage is everything the single storefront page renders.
// View is one of "signup", "cart", "product", "grid".
type StorefrontPage struct {
	StoreName string
	Greeting  string
	Flash     *Flash
	View      string
	Year      int

	CartCount int
	CartLines []CartLine
	CartTotal string

	Products []ProductCard
	Selected *ProductCard

	Signup       SignupForm
	SignupErrors map[string]string

	Contact       ContactForm
	ContactErrors map[string]string
}
