package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lumiere-essence/maison-backend/internal/kv"
)

// ErrNotFound is returned when no order matches an id.
var ErrNotFound = errors.New("order not found")

// Repository defines order persistence. Orders are append-only: Save
// prepends, UpdateStatus overwrites a single field, nothing deletes.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	Save(ctx context.Context, o Order) error
	// UpdateStatus overwrites the status of the order with the given id.
	// It is deliberately unguarded: any status is accepted for any order,
	// including backwards moves such as Delivered -> Pending. Forward-only
	// discipline is a caller concern, not a store invariant.
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type kvRepo struct{ store kv.Store }

func NewKVRepository(store kv.Store) Repository {
	return &kvRepo{store: store}
}

func (r *kvRepo) List(ctx context.Context) ([]Order, error) {
	data, err := r.store.Get(ctx, kv.KeyOrders)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, nil
	}
	return orders, nil
}

func (r *kvRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

// Save prepends so the newest order lists first.
func (r *kvRepo) Save(ctx context.Context, o Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.replace(ctx, append([]Order{o}, orders...))
}

func (r *kvRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	return r.replace(ctx, orders)
}

func (r *kvRepo) replace(ctx context.Context, orders []Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kv.KeyOrders, data)
}
