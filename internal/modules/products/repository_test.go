package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRepo_List(t *testing.T) {
	repo := NewStaticRepo()

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Black Puffer Jacket", items[0].Name)
	assert.Equal(t, int64(11000), items[1].PriceCents)
	assert.Equal(t, 3, items[2].ID)
}

func TestStaticRepo_ListReturnsCopy(t *testing.T) {
	repo := NewStaticRepo()

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	items[0].Name = "changed"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Black Puffer Jacket", again[0].Name)
}

func TestStaticRepo_GetByID(t *testing.T) {
	repo := NewStaticRepo()

	p, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Red Puffer Jacket", p.Name)
	assert.Equal(t, int64(13000), p.PriceCents)

	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
