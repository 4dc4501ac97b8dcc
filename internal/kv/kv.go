package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Store is the persistence boundary for the whole application: a small set
// of well-known string keys, each holding a JSON-serialized record or array.
// Callers read the whole value, transform in memory, and write it back.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// The fixed key layout. Every persisted entity lives under one of these.
const (
	KeyProducts      = "lumiere_essence_products"
	KeyCategories    = "lumiere_essence_categories"
	KeyInquiries     = "lumiere_essence_inquiries"
	KeyUsers         = "lumiere_essence_users"
	KeyOrders        = "lumiere_essence_orders"
	KeyAdminProfile  = "lumiere_essence_admin_profile"
	KeyBrandMedia    = "lumiere_essence_ritual_video"
	KeyBrandSettings = "lumiere_essence_brand_settings"
)
