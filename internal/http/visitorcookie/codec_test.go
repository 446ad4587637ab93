package visitorcookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cameronstore.com/app/internal/modules/storefront"
)

func init() { gin.SetMode(gin.TestMode) }

func TestCodec_EncodeDecode(t *testing.T) {
	c := New([]byte("secret"), "vid", false)
	id := uuid.NewString()

	got, err := c.Decode(c.Encode(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestCodec_DecodeRejectsTampering(t *testing.T) {
	c := New([]byte("secret"), "vid", false)
	other := New([]byte("other"), "vid", false)
	id := uuid.NewString()

	bad := []string{
		"",
		id,
		id + ".",
		"not-a-uuid." + "x",
		other.Encode(id),
		c.Encode(id) + ".extra",
		uuid.NewString() + "." + c.Encode(id)[len(id)+1:],
	}
	for _, v := range bad {
		_, err := c.Decode(v)
		assert.ErrorIs(t, err, ErrInvalid, v)
	}
}

func TestCodec_EnsureIssuesOnce(t *testing.T) {
	c := New([]byte("secret"), "vid", false)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	id, created := c.Ensure(ctx)
	require.True(t, created)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "vid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	w2 := httptest.NewRecorder()
	ctx2, _ := gin.CreateTestContext(w2)
	ctx2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx2.Request.AddCookie(cookies[0])

	again, created := c.Ensure(ctx2)
	assert.False(t, created)
	assert.Equal(t, id, again)
	assert.Empty(t, w2.Result().Cookies())
}

func TestViewCodec_RoundTrip(t *testing.T) {
	c := NewView([]byte("secret"), "view", false)
	in := storefront.Transient{SelectedProductID: 2, GateDismissed: true}

	v, err := c.Encode(in)
	require.NoError(t, err)
	out, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = NewView([]byte("other"), "view", false).Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestViewCodec_SessionCookie(t *testing.T) {
	c := NewView([]byte("secret"), "view", false)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, c.Set(ctx, storefront.Transient{ShowCartPage: true}))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 0, cookies[0].MaxAge)
	assert.True(t, cookies[0].Expires.IsZero())

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])
	ctx2, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx2.Request = r
	assert.Equal(t, storefront.Transient{ShowCartPage: true}, c.Get(ctx2))
}
