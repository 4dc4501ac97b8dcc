package order

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumiere-essence/maison-backend/internal/kv"
	"github.com/lumiere-essence/maison-backend/internal/modules/cart"
	"github.com/lumiere-essence/maison-backend/internal/modules/catalog"
)

func newTestService(t *testing.T) (Service, Repository) {
	t.Helper()
	repo := NewKVRepository(kv.NewMemoryStore())
	return NewService(repo, zap.NewNop()), repo
}

func sampleOrder(id, email string) Order {
	return Order{
		ID:            id,
		CustomerName:  "Elena Vane",
		CustomerEmail: email,
		Items: []cart.Item{
			{Product: catalog.Product{ID: "1", Name: "Glow Essence Serum", Price: 64}, Quantity: 2},
		},
		Total:         138.24,
		Status:        StatusPending,
		PaymentMethod: "CARD",
		Date:          "1/2/2026, 10:00:00 AM",
		Address:       Address{Street: "1 Sanctuary Road", City: "Paris", Country: "France"},
	}
}

func TestGenerateID(t *testing.T) {
	re := regexp.MustCompile(`^LUM-\d{5}$`)
	for i := 0; i < 50; i++ {
		require.Regexp(t, re, GenerateID())
	}
}

func TestSavePrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	_, repo := newTestService(t)

	require.NoError(t, repo.Save(ctx, sampleOrder("LUM-11111", "a@example.com")))
	require.NoError(t, repo.Save(ctx, sampleOrder("LUM-22222", "a@example.com")))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, "LUM-22222", orders[0].ID)
}

func TestTrackAndListByCustomer(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	require.NoError(t, repo.Save(ctx, sampleOrder("LUM-11111", "Elena@Example.com")))
	require.NoError(t, repo.Save(ctx, sampleOrder("LUM-22222", "other@example.com")))

	o, err := svc.Track(ctx, " LUM-11111")
	require.NoError(t, err)
	require.Equal(t, StatusPending, o.Status)

	_, err = svc.Track(ctx, "LUM-00000")
	require.ErrorIs(t, err, ErrNotFound)

	mine, err := svc.ListByCustomer(ctx, "elena@EXAMPLE.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "LUM-11111", mine[0].ID)
}

func TestStatusOverwriteIsUnguarded(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	require.NoError(t, repo.Save(ctx, sampleOrder("LUM-11111", "a@example.com")))

	o, err := svc.UpdateStatus(ctx, "LUM-11111", "Delivered")
	require.NoError(t, err)
	require.Equal(t, StatusDelivered, o.Status)

	// backwards move is accepted: the store enforces no ordering
	o, err = svc.UpdateStatus(ctx, "LUM-11111", "Pending")
	require.NoError(t, err)
	require.Equal(t, StatusPending, o.Status)

	_, err = svc.UpdateStatus(ctx, "LUM-11111", "Teleported")
	require.Error(t, err)

	_, err = svc.UpdateStatus(ctx, "LUM-00000", "Shipped")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRevenueExcludesCancelled(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	a := sampleOrder("LUM-11111", "a@example.com")
	a.Total = 100
	b := sampleOrder("LUM-22222", "b@example.com")
	b.Total = 50
	b.Status = StatusCancelled
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	revenue, err := svc.Revenue(ctx)
	require.NoError(t, err)
	require.Equal(t, 100.0, revenue)
}

func TestOrderSnapshotSurvivesCatalogDelete(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	orderRepo := NewKVRepository(store)
	catalogSvc := catalog.NewService(catalog.NewKVRepository(store))

	products, err := catalogSvc.ListProducts(ctx)
	require.NoError(t, err)

	o := Order{
		ID:            GenerateID(),
		CustomerEmail: "elena@example.com",
		Items:         []cart.Item{{Product: products[0], Quantity: 1}},
		Status:        StatusPending,
	}
	require.NoError(t, orderRepo.Save(ctx, o))

	require.NoError(t, catalogSvc.DeleteProduct(ctx, products[0].ID))

	got, err := orderRepo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, products[0].Name, got.Items[0].Name)
}
