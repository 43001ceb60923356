package carts

import (
	"context"

	pkgerrors "github.com/microshop/services/pkg/errors"
	"github.com/microshop/services/pkg/memstore"
)

// CartItem is a (product_id, quantity) pair. Within one cart there is at most
// one item per product id; AddItem merges quantities on a match.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart groups a user's line items. A user may own any number of carts.
type Cart struct {
	ID     string     `json:"id"`
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// AddOutcome distinguishes the two observable results of AddItem.
type AddOutcome int

const (
	OutcomeAdded AddOutcome = iota
	OutcomeMerged
)

type Service interface {
	Create(ctx context.Context, userID string) (*Cart, error)
	Get(ctx context.Context, id string) (*Cart, error)
	AddItem(ctx context.Context, cartID string, item CartItem) (AddOutcome, error)
	RemoveItem(ctx context.Context, cartID, productID string) error
	Clear(ctx context.Context, cartID string) error
}

type service struct {
	store   *memstore.Store[Cart]
	checker ProductChecker
}

// NewService builds the cart service. checker may be nil, which leaves the
// product-existence lookup disabled.
func NewService(checker ProductChecker) Service {
	return &service{
		store:   memstore.New[Cart](),
		checker: checker,
	}
}

func errNotFound() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "Cart not found")
}

func (s *service) Create(_ context.Context, userID string) (*Cart, error) {
	cart := Cart{
		ID:     memstore.NewID(),
		UserID: userID,
		Items:  []CartItem{},
	}
	s.store.Put(cart.ID, cart)
	return &cart, nil
}

func (s *service) Get(_ context.Context, id string) (*Cart, error) {
	cart, ok := s.store.Get(id)
	if !ok {
		return nil, errNotFound()
	}
	return &cart, nil
}

func (s *service) AddItem(ctx context.Context, cartID string, item CartItem) (AddOutcome, error) {
	if _, ok := s.store.Get(cartID); !ok {
		return OutcomeAdded, errNotFound()
	}

	if s.checker != nil {
		exists, err := s.checker.Exists(ctx, item.ProductID)
		if err != nil {
			return OutcomeAdded, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Product service unavailable")
		}
		if !exists {
			return OutcomeAdded, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
	}

	outcome := OutcomeAdded
	// The merge-or-append runs under the store lock so concurrent adds for
	// the same cart cannot lose quantity updates.
	_, ok := s.store.Mutate(cartID, func(cart Cart) Cart {
		items := make([]CartItem, len(cart.Items))
		copy(items, cart.Items)
		for i := range items {
			if items[i].ProductID == item.ProductID {
				items[i].Quantity += item.Quantity
				outcome = OutcomeMerged
				cart.Items = items
				return cart
			}
		}
		cart.Items = append(items, item)
		return cart
	})
	if !ok {
		return OutcomeAdded, errNotFound()
	}
	return outcome, nil
}

func (s *service) RemoveItem(_ context.Context, cartID, productID string) error {
	// Removing an id that is not in the cart is a no-op, not an error.
	_, ok := s.store.Mutate(cartID, func(cart Cart) Cart {
		items := make([]CartItem, 0, len(cart.Items))
		for _, existing := range cart.Items {
			if existing.ProductID != productID {
				items = append(items, existing)
			}
		}
		cart.Items = items
		return cart
	})
	if !ok {
		return errNotFound()
	}
	return nil
}

func (s *service) Clear(_ context.Context, cartID string) error {
	_, ok := s.store.Mutate(cartID, func(cart Cart) Cart {
		cart.Items = []CartItem{}
		return cart
	})
	if !ok {
		return errNotFound()
	}
	return nil
}
