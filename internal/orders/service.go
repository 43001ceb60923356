package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/microshop/services/pkg/enums"
	pkgerrors "github.com/microshop/services/pkg/errors"
	"github.com/microshop/services/pkg/memstore"
)

// OrderItem captures product, quantity and price at order time. The price is
// a copy, not a reference back into the catalog.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Items       []OrderItem       `json:"items"`
	TotalAmount float64           `json:"total_amount"`
	Status      enums.OrderStatus `json:"status"`
	CreatedAt   string            `json:"created_at"`
}

type Service interface {
	Create(ctx context.Context, userID, cartID string) (*Order, error)
	List(ctx context.Context, userID string) ([]Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) error
}

// Checkout still runs on simulated data: the cart id is accepted but never
// dereferenced, and prices come from a fixed table instead of the catalog.
// Wiring the real cart and product services would change order contents and
// totals, so it stays an explicit TODO for the integration milestone.
var (
	sampleCartItems = []OrderItem{
		{ProductID: "sample-product-1", Quantity: 2},
		{ProductID: "sample-product-2", Quantity: 1},
	}
	samplePrices = map[string]float64{
		"sample-product-1": 29.99,
		"sample-product-2": 49.99,
	}
)

type service struct {
	store *memstore.Store[Order]
	now   func() time.Time
}

func NewService() Service {
	return &service{
		store: memstore.New[Order](),
		now:   time.Now,
	}
}

func errNotFound() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
}

func (s *service) Create(_ context.Context, userID, _ string) (*Order, error) {
	items := make([]OrderItem, 0, len(sampleCartItems))
	total := decimal.Zero
	for _, sample := range sampleCartItems {
		price := samplePrices[sample.ProductID]
		items = append(items, OrderItem{
			ProductID: sample.ProductID,
			Quantity:  sample.Quantity,
			Price:     price,
		})
		total = total.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(sample.Quantity))))
	}

	order := Order{
		ID:          memstore.NewID(),
		UserID:      userID,
		Items:       items,
		TotalAmount: total.InexactFloat64(),
		Status:      enums.OrderStatusPending,
		CreatedAt:   s.now().Format(time.RFC3339Nano),
	}
	s.store.Put(order.ID, order)
	return &order, nil
}

func (s *service) List(_ context.Context, userID string) ([]Order, error) {
	all := s.store.List()
	if userID == "" {
		return all, nil
	}
	filtered := make([]Order, 0, len(all))
	for _, order := range all {
		if order.UserID == userID {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

func (s *service) Get(_ context.Context, id string) (*Order, error) {
	order, ok := s.store.Get(id)
	if !ok {
		return nil, errNotFound()
	}
	return &order, nil
}

// UpdateStatus sets the status unconditionally. Any of the five values may
// follow any other; there is no transition graph.
func (s *service) UpdateStatus(_ context.Context, id string, status enums.OrderStatus) error {
	_, ok := s.store.Mutate(id, func(order Order) Order {
		order.Status = status
		return order
	})
	if !ok {
		return errNotFound()
	}
	return nil
}
