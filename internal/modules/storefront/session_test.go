package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cameronstore.com/app/internal/modules/cart"
	"cameronstore.com/app/internal/modules/products"
	"cameronstore.com/app/internal/modules/users"
	"cameronstore.com/app/internal/storage"
)

type failingStore struct {
	getErr error
	setErr error
}

func (f failingStore) Get(context.Context, string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return nil, storage.ErrNotFound
}

func (f failingStore) Set(context.Context, string, []byte) error { return f.setErr }

func (f failingStore) Update(context.Context, string, storage.UpdateFunc) error { return f.setErr }

func open(t *testing.T, store storage.Store, tr Transient) (*Session, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	s, err := Open(context.Background(), Deps{
		Store:    store,
		Catalog:  products.NewStaticRepo(),
		Notifier: rec,
	}, tr)
	require.NoError(t, err)
	return s, rec
}

func product(t *testing.T, id int) products.Product {
	t.Helper()
	p, err := products.NewStaticRepo().GetByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

func TestOpen_RequiresDeps(t *testing.T) {
	_, err := Open(context.Background(), Deps{Catalog: products.NewStaticRepo()}, Transient{})
	assert.Error(t, err)

	_, err = Open(context.Background(), Deps{Store: storage.NewMemory()}, Transient{})
	assert.Error(t, err)
}

func TestOpen_FreshVisitorSeesSignupGate(t *testing.T) {
	s, _ := open(t, storage.NewMemory(), Transient{})

	st := s.State()
	assert.True(t, st.ShowSignupGate)
	assert.Nil(t, st.CurrentUser)
	assert.Empty(t, st.Cart)
	assert.Equal(t, ViewSignupGate, s.View())
}

func TestSkipSignup_ShowsGridWithoutUser(t *testing.T) {
	store := storage.NewMemory()
	s, _ := open(t, store, Transient{})

	s.SkipSignup()

	assert.Equal(t, ViewGrid, s.View())
	assert.Nil(t, s.User())
	_, err := store.Get(context.Background(), users.StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.True(t, s.Transient().GateDismissed)
}

func TestSkipSignup_StaysDismissedForSession(t *testing.T) {
	store := storage.NewMemory()
	s, _ := open(t, store, Transient{})
	s.SkipSignup()

	again, _ := open(t, store, s.Transient())
	assert.False(t, again.State().ShowSignupGate)
	assert.Equal(t, ViewGrid, again.View())
}

func TestSubmitSignup_PersistsUserAndClosesGate(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	s, rec := open(t, store, Transient{})

	ok, err := s.SubmitSignup(ctx, "Cameron", "c@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, Notice{Kind: NoticeInfo, Message: "Welcome, Cameron! You are signed up."}, last)
	assert.False(t, s.State().ShowSignupGate)
	assert.Equal(t, &users.User{Name: "Cameron", Email: "c@x.com"}, s.User())

	raw, err := store.Get(ctx, users.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Cameron","email":"c@x.com"}`, string(raw))

	// A fresh browser session with the stored user skips the gate.
	reloaded, _ := open(t, store, Transient{})
	assert.False(t, reloaded.State().ShowSignupGate)
	assert.Equal(t, "Cameron", reloaded.User().Name)
}

func TestSubmitSignup_EmptyFieldIsNoop(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	s, _ := open(t, store, Transient{})

	for _, tc := range [][2]string{{"", "c@x.com"}, {"Cameron", ""}, {"", ""}} {
		ok, err := s.SubmitSignup(ctx, tc[0], tc[1])
		require.NoError(t, err)
		assert.False(t, ok)
	}

	assert.True(t, s.State().ShowSignupGate)
	assert.Nil(t, s.User())
	assert.Empty(t, store.Keys())
}

func TestSubmitSignup_WhitespaceIsAValue(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	s, _ := open(t, store, Transient{})

	ok, err := s.SubmitSignup(ctx, " ", " ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, &users.User{Name: " ", Email: " "}, s.User())
	assert.Equal(t, ViewGrid, s.View())
}

func TestSubmitSignup_StoreFailure(t *testing.T) {
	boom := errors.New("boom")
	s, _ := open(t, failingStore{setErr: boom}, Transient{})

	ok, err := s.SubmitSignup(context.Background(), "Cameron", "c@x.com")
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
	assert.True(t, s.State().ShowSignupGate)
}

func TestAddToCart_CountAndTotalWithDuplicates(t *testing.T) {
	ctx := context.Background()
	s, rec := open(t, storage.NewMemory(), Transient{GateDismissed: true})

	ids := []int{1, 1, 3, 2, 1}
	var want int64
	for _, id := range ids {
		p := product(t, id)
		want += p.PriceCents
		require.NoError(t, s.AddToCart(ctx, p))
	}

	assert.Equal(t, len(ids), s.CartCount())
	assert.Equal(t, want, s.CartTotalCents())
	assert.Len(t, rec.Notices, len(ids))
}

func TestAddToCart_TwoJacketsTotal(t *testing.T) {
	ctx := context.Background()
	s, rec := open(t, storage.NewMemory(), Transient{GateDismissed: true})

	require.NoError(t, s.AddToCart(ctx, product(t, 1)))
	require.NoError(t, s.AddToCart(ctx, product(t, 2)))

	assert.Equal(t, int64(23000), s.CartTotalCents())
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, Notice{Kind: NoticeSuccess, Message: "Navy Puffer Jacket added to cart!"}, last)
}

func TestAddToCart_PersistsAndReloadsInOrder(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	s, _ := open(t, store, Transient{GateDismissed: true})

	a, b := product(t, 3), product(t, 1)
	require.NoError(t, s.AddToCart(ctx, a))
	require.NoError(t, s.AddToCart(ctx, b))

	reloaded, _ := open(t, store, Transient{})
	got := reloaded.State().Cart
	require.Len(t, got, 2)
	assert.Equal(t, cart.Item(a), got[0])
	assert.Equal(t, cart.Item(b), got[1])
}

func TestAddToCart_ConcurrentSessionsKeepEveryItem(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	// Every session reads the empty cart before any of them writes.
	const n = 8
	sessions := make([]*Session, n)
	for i := range sessions {
		sessions[i], _ = open(t, store, Transient{GateDismissed: true})
	}

	p := product(t, 2)
	var wg sync.WaitGroup
	for _, s := range sessions {
		wg.Add(1)
		go func(s *Session) {
			defer wg.Done()
			assert.NoError(t, s.AddToCart(ctx, p))
		}(s)
	}
	wg.Wait()

	reloaded, _ := open(t, store, Transient{})
	assert.Equal(t, n, reloaded.CartCount())
	assert.Equal(t, int64(n*11000), reloaded.CartTotalCents())
}

func TestAddToCart_ReplacesMalformedStoredCart(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, cart.StorageKey, []byte("{oops")))

	s, _ := open(t, store, Transient{GateDismissed: true})
	require.NoError(t, s.AddToCart(ctx, product(t, 1)))

	reloaded, _ := open(t, store, Transient{})
	assert.Equal(t, 1, reloaded.CartCount())
}

func TestAddToCart_StoreFailureLeavesCartUntouched(t *testing.T) {
	boom := errors.New("boom")
	s, rec := open(t, failingStore{setErr: boom}, Transient{GateDismissed: true})

	err := s.AddToCart(context.Background(), product(t, 1))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.CartCount())
	assert.Empty(t, rec.Notices)
}

func TestOpen_StoreReadFailure(t *testing.T) {
	boom := errors.New("down")
	_, err := Open(context.Background(), Deps{
		Store:   failingStore{getErr: boom},
		Catalog: products.NewStaticRepo(),
	}, Transient{})
	assert.ErrorIs(t, err, boom)
}

func TestOpen_MalformedStoredValuesAreIgnored(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, cart.StorageKey, []byte("{oops")))
	require.NoError(t, store.Set(ctx, users.StorageKey, []byte("null")))

	s, _ := open(t, store, Transient{})
	assert.Empty(t, s.State().Cart)
	assert.True(t, s.State().ShowSignupGate)
}

func TestSelectProductThenViewCart(t *testing.T) {
	s, _ := open(t, storage.NewMemory(), Transient{GateDismissed: true})

	p := product(t, 2)
	s.SelectProduct(&p)
	assert.Equal(t, ViewProductDetail, s.View())

	s.ViewCart()
	st := s.State()
	assert.Nil(t, st.SelectedProduct)
	assert.True(t, st.ShowCartPage)
	assert.Equal(t, ViewCart, s.View())
}

func TestSelectProduct_NilReturnsToGrid(t *testing.T) {
	s, _ := open(t, storage.NewMemory(), Transient{GateDismissed: true})

	p := product(t, 1)
	s.SelectProduct(&p)
	s.SelectProduct(nil)
	assert.Equal(t, ViewGrid, s.View())
}

func TestSelectProduct_CopiesProduct(t *testing.T) {
	s, _ := open(t, storage.NewMemory(), Transient{GateDismissed: true})

	p := product(t, 1)
	s.SelectProduct(&p)
	p.Name = "mutated"
	assert.Equal(t, "Black Puffer Jacket", s.State().SelectedProduct.Name)
}

func TestViewStore_ClearsSelectionAndCart(t *testing.T) {
	s, _ := open(t, storage.NewMemory(), Transient{GateDismissed: true, ShowCartPage: true})
	assert.Equal(t, ViewCart, s.View())

	s.ViewStore()
	assert.Equal(t, ViewGrid, s.View())
	assert.Equal(t, Transient{GateDismissed: true}, s.Transient())
}

func TestTransient_RoundTripsSelection(t *testing.T) {
	store := storage.NewMemory()
	s, _ := open(t, store, Transient{GateDismissed: true})
	p := product(t, 3)
	s.SelectProduct(&p)

	tr := s.Transient()
	assert.Equal(t, 3, tr.SelectedProductID)

	again, _ := open(t, store, tr)
	require.NotNil(t, again.State().SelectedProduct)
	assert.Equal(t, "Red Puffer Jacket", again.State().SelectedProduct.Name)
}

func TestOpen_UnknownSelectedProductIsDropped(t *testing.T) {
	s, _ := open(t, storage.NewMemory(), Transient{GateDismissed: true, SelectedProductID: 99})
	assert.Nil(t, s.State().SelectedProduct)
	assert.Equal(t, ViewGrid, s.View())
}

func TestSubmitContact(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	s, rec := open(t, store, Transient{GateDismissed: true})

	partial := &ContactForm{Name: "Cameron", Email: "c@x.com"}
	assert.False(t, s.SubmitContact(ctx, partial))
	assert.Equal(t, "Cameron", partial.Name)
	assert.Empty(t, rec.Notices)
	assert.False(t, s.SubmitContact(ctx, nil))

	spaces := &ContactForm{Name: " ", Email: " ", Message: " "}
	assert.True(t, s.SubmitContact(ctx, spaces))
	assert.Equal(t, ContactForm{}, *spaces)

	form := &ContactForm{Name: "Cameron", Email: "c@x.com", Message: "Do you ship to Canada?"}
	assert.True(t, s.SubmitContact(ctx, form))
	assert.Equal(t, ContactForm{}, *form)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "Message sent! We will get back to you soon.", last.Message)
	assert.Empty(t, store.Keys())
}

func TestState_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := open(t, storage.NewMemory(), Transient{GateDismissed: true})
	require.NoError(t, s.AddToCart(ctx, product(t, 1)))

	st := s.State()
	st.Cart[0].PriceCents = 1
	st.Cart = append(st.Cart, st.Cart[0])

	assert.Equal(t, 1, s.CartCount())
	assert.Equal(t, int64(12000), s.CartTotalCents())
}
