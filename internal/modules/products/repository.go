package products

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (Product, error)
}

// StaticRepo serves the fixed catalog. It never mutates after construction.
type StaticRepo struct {
	items []Product
}

func NewStaticRepo() *StaticRepo {
	return &StaticRepo{items: Catalog()}
}

func (r *StaticRepo) List(ctx context.Context) ([]Product, error) {
	_ = ctx
	out := make([]Product, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *StaticRepo) GetByID(ctx context.Context, id int) (Product, error) {
	_ = ctx
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}
