package flash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cameronstore.com/app/internal/modules/storefront"
	"cameronstore.com/app/pkg/view"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec([]byte("secret"), "flash", false)
	in := view.Flash{Kind: view.FlashSuccess, Message: "Red Puffer Jacket added to cart!"}

	v, err := c.Encode(in)
	require.NoError(t, err)

	out, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestCodec_Rejects(t *testing.T) {
	c := NewCodec([]byte("secret"), "flash", false)

	empty, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "  "})
	require.NoError(t, err)
	forged, err := NewCodec([]byte("other"), "flash", false).Encode(view.Flash{Message: "hi"})
	require.NoError(t, err)

	for _, v := range []string{"", "abc", "abc.def", empty, forged} {
		_, err := c.Decode(v)
		assert.ErrorIs(t, err, ErrInvalid, v)
	}
}

func TestFromNotice(t *testing.T) {
	got := FromNotice(storefront.Notice{Kind: storefront.NoticeSuccess, Message: "ok"})
	assert.Equal(t, view.Flash{Kind: view.FlashSuccess, Message: "ok"}, got)

	got = FromNotice(storefront.Notice{Kind: storefront.NoticeInfo, Message: "fyi"})
	assert.Equal(t, view.FlashInfo, got.Kind)
}
