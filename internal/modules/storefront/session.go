package storefront

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cameronstore.com/app/internal/modules/cart"
	"cameronstore.com/app/internal/modules/products"
	"cameronstore.com/app/internal/modules/users"
	"cameronstore.com/app/internal/storage"
)

const contactAck = "Message sent! We will get back to you soon."

type Deps struct {
	// Store is already scoped to one visitor.
	Store    storage.Store
	Catalog  products.Repository
	Notifier Notifier
	Logger   *slog.Logger
}

// Session owns the storefront state for one page load. It is not safe for
// concurrent use; every request opens its own.
type Session struct {
	store   storage.Store
	catalog products.Repository
	notify  Notifier
	log     *slog.Logger

	state         State
	gateDismissed bool
}

// Open reads the durable cart and user once and restores the transient view
// flags. Missing or malformed stored values are treated as absent.
func Open(ctx context.Context, deps Deps, t Transient) (*Session, error) {
	if deps.Store == nil {
		return nil, errors.New("storefront: nil store")
	}
	if deps.Catalog == nil {
		return nil, errors.New("storefront: nil catalog")
	}
	s := &Session{
		store:   deps.Store,
		catalog: deps.Catalog,
		notify:  deps.Notifier,
		log:     deps.Logger,
	}
	if s.notify == nil {
		s.notify = discard{}
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c, err := s.loadCart(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}

	s.state.Cart = c
	s.state.CurrentUser = u
	s.gateDismissed = t.GateDismissed
	s.state.ShowSignupGate = u == nil && !t.GateDismissed
	s.state.ShowCartPage = t.ShowCartPage

	if t.SelectedProductID != 0 && !t.ShowCartPage {
		p, err := s.catalog.GetByID(ctx, t.SelectedProductID)
		switch {
		case errors.Is(err, products.ErrNotFound):
			s.log.DebugContext(ctx, "dropping unknown selected product", slog.Int("product_id", t.SelectedProductID))
		case err != nil:
			return nil, fmt.Errorf("resolve selected product: %w", err)
		default:
			s.state.SelectedProduct = &p
		}
	}

	return s, nil
}

func (s *Session) loadCart(ctx context.Context) (cart.Cart, error) {
	raw, err := s.store.Get(ctx, cart.StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return cart.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	c, err := cart.Decode(raw)
	if err != nil {
		s.log.WarnContext(ctx, "ignoring stored cart", slog.Any("err", err))
		return cart.Cart{}, nil
	}
	return c, nil
}

func (s *Session) loadUser(ctx context.Context) (*users.User, error) {
	raw, err := s.store.Get(ctx, users.StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	u, err := users.Decode(raw)
	if err != nil {
		s.log.WarnContext(ctx, "ignoring stored user", slog.Any("err", err))
		return nil, nil
	}
	return &u, nil
}

// AddToCart appends p without any stock or duplicate check and acknowledges
// the visitor. The append happens inside Store.Update against the stored
// cart, so concurrent requests from one visitor each keep their item.
func (s *Session) AddToCart(ctx context.Context, p products.Product) error {
	var next cart.Cart
	err := s.store.Update(ctx, cart.StorageKey, func(raw []byte) ([]byte, error) {
		cur := cart.Cart{}
		if raw != nil {
			c, err := cart.Decode(raw)
			if err != nil {
				s.log.WarnContext(ctx, "replacing malformed stored cart", slog.Any("err", err))
			} else {
				cur = c
			}
		}
		next = cur.Add(p)
		return cart.Encode(next)
	})
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	s.state.Cart = next

	s.log.InfoContext(ctx, "cart_add",
		slog.Int("product_id", p.ID),
		slog.Int("cart_count", next.Count()),
		slog.Int64("cart_total_cents", next.TotalCents()),
	)
	s.notify.Notify(ctx, Notice{Kind: NoticeSuccess, Message: p.Name + " added to cart!"})
	return nil
}

// SubmitSignup stores the visitor, closes the gate and welcomes them. Empty
// fields make it a no-op that reports false.
func (s *Session) SubmitSignup(ctx context.Context, name, email string) (bool, error) {
	u, ok := users.New(name, email)
	if !ok {
		return false, nil
	}
	raw, err := users.Encode(u)
	if err != nil {
		return false, fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.Set(ctx, users.StorageKey, raw); err != nil {
		return false, fmt.Errorf("save user: %w", err)
	}

	s.state.CurrentUser = &u
	s.closeGate()
	s.log.InfoContext(ctx, "signup")
	s.notify.Notify(ctx, Notice{Kind: NoticeInfo, Message: "Welcome, " + u.Name + "! You are signed up."})
	return true, nil
}

func (s *Session) SkipSignup() {
	s.closeGate()
}

func (s *Session) closeGate() {
	s.state.ShowSignupGate = false
	s.gateDismissed = true
}

// SubmitContact acknowledges a complete form and clears it. The message is
// not sent or stored anywhere.
func (s *Session) SubmitContact(ctx context.Context, f *ContactForm) bool {
	if f == nil || !f.complete() {
		return false
	}
	s.notify.Notify(ctx, Notice{Kind: NoticeSuccess, Message: contactAck})
	*f = ContactForm{}
	return true
}

// SelectProduct shows p in the detail view; nil goes back to the grid.
func (s *Session) SelectProduct(p *products.Product) {
	s.state.ShowCartPage = false
	if p == nil {
		s.state.SelectedProduct = nil
		return
	}
	cp := *p
	s.state.SelectedProduct = &cp
}

func (s *Session) ViewCart() {
	s.state.SelectedProduct = nil
	s.state.ShowCartPage = true
}

func (s *Session) ViewStore() {
	s.state.SelectedProduct = nil
	s.state.ShowCartPage = false
}

// State returns a copy; mutating it does not affect the session.
func (s *Session) State() State {
	out := s.state
	out.Cart = append(cart.Cart{}, s.state.Cart...)
	if s.state.SelectedProduct != nil {
		p := *s.state.SelectedProduct
		out.SelectedProduct = &p
	}
	if s.state.CurrentUser != nil {
		u := *s.state.CurrentUser
		out.CurrentUser = &u
	}
	return out
}

// Transient is what must survive until the next request of this browser
// session.
func (s *Session) Transient() Transient {
	t := Transient{
		ShowCartPage:  s.state.ShowCartPage,
		GateDismissed: s.gateDismissed,
	}
	if s.state.SelectedProduct != nil {
		t.SelectedProductID = s.state.SelectedProduct.ID
	}
	return t
}

func (s *Session) View() View { return Dispatch(s.state) }

func (s *Session) CartCount() int { return s.state.Cart.Count() }

func (s *Session) CartTotalCents() int64 { return s.state.Cart.TotalCents() }

func (s *Session) User() *users.User {
	if s.state.CurrentUser == nil {
		return nil
	}
	u := *s.state.CurrentUser
	return &u
}

func notEmpty(v string) bool {
	return v != ""
}
