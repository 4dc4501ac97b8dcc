package checkout

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumiere-essence/maison-backend/internal/kv"
	"github.com/lumiere-essence/maison-backend/internal/modules/auth"
	"github.com/lumiere-essence/maison-backend/internal/modules/cart"
	"github.com/lumiere-essence/maison-backend/internal/modules/catalog"
	"github.com/lumiere-essence/maison-backend/internal/modules/order"
)

var testSession = &auth.Session{Name: "Elena Vane", Email: "elena@example.com"}

func newTestCheckout(t *testing.T, delays [3]time.Duration) (*Service, *cart.Manager, order.Repository) {
	t.Helper()
	carts := cart.NewManager()
	orders := order.NewKVRepository(kv.NewMemoryStore())
	svc := NewService(carts, orders, delays, zap.NewNop())
	return svc, carts, orders
}

func fillCart(carts *cart.Manager) {
	carts.With(testSession.Email, func(c *cart.Cart) {
		a := catalog.Product{ID: "A", Name: "Glow Essence Serum", Price: 64}
		b := catalog.Product{ID: "B", Name: "Silk Mane Hair Oil", Price: 48}
		c.Add(a)
		c.Add(a)
		c.Add(b)
	})
}

func validCard() PaymentRequest {
	return PaymentRequest{
		Method: MethodCard,
		Card: &CardDetails{
			Number: "4242 4242 4242 4242",
			Expiry: "12/28",
			CVV:    "123",
			Name:   "Elena Vane",
		},
	}
}

func TestBeginRequiresItems(t *testing.T) {
	svc, _, _ := newTestCheckout(t, [3]time.Duration{})
	require.ErrorIs(t, svc.Begin(testSession), ErrEmptyCart)
}

func TestShippingRequiresStreet(t *testing.T) {
	svc, carts, _ := newTestCheckout(t, [3]time.Duration{})
	fillCart(carts)
	require.NoError(t, svc.Begin(testSession))

	err := svc.SubmitShipping(testSession, ShippingRequest{City: "Paris"})
	require.ErrorIs(t, err, ErrStreetNeeded)

	// payment is unreachable before shipping succeeds
	err = svc.SubmitPayment(testSession, validCard())
	require.ErrorIs(t, err, ErrWrongState)

	require.NoError(t, svc.SubmitShipping(testSession, ShippingRequest{
		Street: "1 Sanctuary Road", Country: "France",
	}))
	st, err := svc.Status(testSession)
	require.NoError(t, err)
	require.Equal(t, StatePayment, st.State)
}

func TestUnsupportedCountryFallsBackToDefaultHub(t *testing.T) {
	svc, carts, orders := newTestCheckout(t, [3]time.Duration{})
	fillCart(carts)
	require.NoError(t, svc.Begin(testSession))
	require.NoError(t, svc.SubmitShipping(testSession, ShippingRequest{
		Street: "1 Sanctuary Road", Country: "Atlantis",
	}))
	require.NoError(t, svc.SubmitPayment(testSession, validCard()))

	require.Eventually(t, func() bool {
		st, err := svc.Status(testSession)
		return err == nil && st.State == StateConfirmed
	}, time.Second, time.Millisecond)

	all, err := orders.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "United States", all[0].Address.Country)
	require.Equal(t, "Not Provided", all[0].Address.Phone)
}

func TestFullFlowCreatesPendingOrderWithTax(t *testing.T) {
	svc, carts, orders := newTestCheckout(t, [3]time.Duration{})
	fillCart(carts)

	require.NoError(t, svc.Begin(testSession))
	require.NoError(t, svc.SubmitShipping(testSession, ShippingRequest{
		Street: "1 Sanctuary Road", City: "Paris", Country: "France", Phone: "+33 1 23 45",
	}))
	require.NoError(t, svc.SubmitPayment(testSession, validCard()))

	var confirmed FlowStatus
	require.Eventually(t, func() bool {
		st, err := svc.Status(testSession)
		if err != nil || st.State != StateConfirmed {
			return false
		}
		confirmed = st
		return true
	}, time.Second, time.Millisecond)

	require.Regexp(t, regexp.MustCompile(`^LUM-\d{5}$`), confirmed.OrderID)
	require.InDelta(t, 190.08, confirmed.GrandTotal, 1e-9)

	all, err := orders.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	o := all[0]
	require.Equal(t, confirmed.OrderID, o.ID)
	require.Equal(t, order.StatusPending, o.Status)
	require.Equal(t, "CARD", o.PaymentMethod)
	require.Equal(t, "elena@example.com", o.CustomerEmail)
	require.InDelta(t, 190.08, o.Total, 1e-9)
	require.Len(t, o.Items, 2)
	require.Equal(t, 2, o.Items[0].Quantity)
}

func TestAbandonDuringProcessingLeavesNoOrder(t *testing.T) {
	delays := [3]time.Duration{50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond}
	svc, carts, orders := newTestCheckout(t, delays)
	fillCart(carts)

	require.NoError(t, svc.Begin(testSession))
	require.NoError(t, svc.SubmitShipping(testSession, ShippingRequest{Street: "1 Sanctuary Road"}))
	require.NoError(t, svc.SubmitPayment(testSession, validCard()))

	svc.Abandon(testSession)

	// give any stray goroutine time to misbehave before asserting
	time.Sleep(250 * time.Millisecond)

	all, err := orders.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)

	_, err = svc.Status(testSession)
	require.ErrorIs(t, err, ErrNoFlow)
}

func TestProcessingReportsNamedStages(t *testing.T) {
	delays := [3]time.Duration{30 * time.Millisecond, 30 * time.Millisecond, 30 * time.Millisecond}
	svc, carts, _ := newTestCheckout(t, delays)
	fillCart(carts)

	require.NoError(t, svc.Begin(testSession))
	require.NoError(t, svc.SubmitShipping(testSession, ShippingRequest{Street: "1 Sanctuary Road"}))
	require.NoError(t, svc.SubmitPayment(testSession, PaymentRequest{Method: MethodUPI, UPIID: "lumiere@essence"}))

	seen := map[string]bool{}
	require.Eventually(t, func() bool {
		st, err := svc.Status(testSession)
		if err != nil {
			return false
		}
		if st.State == StateProcessing && st.StageName != "" {
			seen[st.StageName] = true
		}
		return st.State == StateConfirmed
	}, time.Second, time.Millisecond)
	require.NotEmpty(t, seen)
	for name := range seen {
		require.Contains(t, StageNames[:], name)
	}
}

func TestBeginReplacesPreviousFlow(t *testing.T) {
	svc, carts, _ := newTestCheckout(t, [3]time.Duration{})
	fillCart(carts)

	require.NoError(t, svc.Begin(testSession))
	require.NoError(t, svc.SubmitShipping(testSession, ShippingRequest{Street: "1 Sanctuary Road"}))

	require.NoError(t, svc.Begin(testSession))
	st, err := svc.Status(testSession)
	require.NoError(t, err)
	require.Equal(t, StateShipping, st.State)
}
