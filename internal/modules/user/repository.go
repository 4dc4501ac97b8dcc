package user

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/lumiere-essence/maison-backend/internal/kv"
)

// ErrNotFound is returned when no account exists for an email.
var ErrNotFound = errors.New("user not found")

// Repository defines stored-user persistence.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Save replaces any record with the same email (case-insensitive) and
	// appends the new one.
	Save(ctx context.Context, u User) error
}

type kvRepo struct{ store kv.Store }

func NewKVRepository(store kv.Store) Repository {
	return &kvRepo{store: store}
}

func (r *kvRepo) List(ctx context.Context) ([]User, error) {
	data, err := r.store.Get(ctx, kv.KeyUsers)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, nil
	}
	return users, nil
}

func (r *kvRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(email)
	for i := range users {
		if strings.ToLower(users[i].Email) == needle {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *kvRepo) Save(ctx context.Context, u User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	needle := strings.ToLower(u.Email)
	kept := users[:0]
	for _, existing := range users {
		if strings.ToLower(existing.Email) != needle {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, u)

	data, err := json.Marshal(kept)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kv.KeyUsers, data)
}
