package inquiry

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lumiere-essence/maison-backend/internal/kv"
)

var ErrNotFound = errors.New("inquiry not found")

// Repository defines inquiry persistence. Save prepends so the newest
// submission lists first in the console.
type Repository interface {
	List(ctx context.Context) ([]Inquiry, error)
	Save(ctx context.Context, in Inquiry) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type kvRepo struct{ store kv.Store }

func NewKVRepository(store kv.Store) Repository {
	return &kvRepo{store: store}
}

func (r *kvRepo) List(ctx context.Context) ([]Inquiry, error) {
	data, err := r.store.Get(ctx, kv.KeyInquiries)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var inquiries []Inquiry
	if err := json.Unmarshal(data, &inquiries); err != nil {
		return nil, nil
	}
	return inquiries, nil
}

func (r *kvRepo) Save(ctx context.Context, in Inquiry) error {
	inquiries, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.replace(ctx, append([]Inquiry{in}, inquiries...))
}

func (r *kvRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	inquiries, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range inquiries {
		if inquiries[i].ID == id {
			inquiries[i].Status = status
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	return r.replace(ctx, inquiries)
}

func (r *kvRepo) Delete(ctx context.Context, id string) error {
	inquiries, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := inquiries[:0]
	for _, in := range inquiries {
		if in.ID != id {
			kept = append(kept, in)
		}
	}
	return r.replace(ctx, kept)
}

func (r *kvRepo) replace(ctx context.Context, inquiries []Inquiry) error {
	data, err := json.Marshal(inquiries)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kv.KeyInquiries, data)
}
