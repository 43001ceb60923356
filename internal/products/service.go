package products

import (
	"context"

	pkgerrors "github.com/microshop/services/pkg/errors"
	"github.com/microshop/services/pkg/memstore"
)

// Product is a catalog record. The id is generated at creation and never
// changes; every other field is fully replaced on update.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Inventory   int     `json:"inventory"`
}

// CreateProductInput carries the caller-supplied fields of a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Inventory   int
}

type Service interface {
	Create(ctx context.Context, input CreateProductInput) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, id string, input CreateProductInput) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store *memstore.Store[Product]
}

func NewService() Service {
	return &service{store: memstore.New[Product]()}
}

func errNotFound() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
}

func (s *service) Create(_ context.Context, input CreateProductInput) (*Product, error) {
	product := Product{
		ID:          memstore.NewID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Inventory:   input.Inventory,
	}
	s.store.Put(product.ID, product)
	return &product, nil
}

func (s *service) List(_ context.Context) ([]Product, error) {
	return s.store.List(), nil
}

func (s *service) Get(_ context.Context, id string) (*Product, error) {
	product, ok := s.store.Get(id)
	if !ok {
		return nil, errNotFound()
	}
	return &product, nil
}

func (s *service) Update(_ context.Context, id string, input CreateProductInput) (*Product, error) {
	product := Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Inventory:   input.Inventory,
	}
	if !s.store.Replace(id, product) {
		return nil, errNotFound()
	}
	return &product, nil
}

func (s *service) Delete(_ context.Context, id string) error {
	if !s.store.Delete(id) {
		return errNotFound()
	}
	return nil
}
