package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lumiere-essence/maison-backend/internal/modules/auth"
	"github.com/lumiere-essence/maison-backend/internal/modules/cart"
	"github.com/lumiere-essence/maison-backend/internal/modules/currency"
	"github.com/lumiere-essence/maison-backend/internal/modules/order"
)

var (
	ErrNoFlow       = errors.New("no checkout in progress")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrStreetNeeded = errors.New("a street address is required")
	ErrWrongState   = errors.New("operation not valid in the current checkout state")
)

// flow is one session's state machine. No order exists until the three
// processing stages have all completed.
type flow struct {
	state     State
	address   order.Address
	stage     int
	orderID   string
	cancelled bool
	cancel    chan struct{}

	// snapshot taken when payment is submitted
	method   Method
	items    []cart.Item
	subtotal float64
}

// Service drives per-session checkout flows.
type Service struct {
	carts  *cart.Manager
	orders order.Repository
	delays [3]time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu    sync.Mutex
	flows map[string]*flow // keyed by lower-cased session email
}

func NewService(carts *cart.Manager, orders order.Repository, delays [3]time.Duration, logger *zap.Logger) *Service {
	return &Service{
		carts:  carts,
		orders: orders,
		delays: delays,
		logger: logger,
		now:    time.Now,
		flows:  make(map[string]*flow),
	}
}

// Begin opens (or reopens) a checkout for the session. The cart must not be
// empty. Any previous flow for the session is discarded.
func (s *Service) Begin(sess *auth.Session) error {
	if s.carts.Get(sess.Email).Count() == 0 {
		return ErrEmptyCart
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.flows[key(sess.Email)]; ok {
		old.cancelled = true
		if old.state == StateProcessing {
			close(old.cancel)
		}
	}
	s.flows[key(sess.Email)] = &flow{state: StateShipping, cancel: make(chan struct{})}
	return nil
}

// SubmitShipping records the address. The payment step is unreachable until
// a non-empty street has been provided. An unsupported country falls back
// to the default hub.
func (s *Service) SubmitShipping(sess *auth.Session, req ShippingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[key(sess.Email)]
	if !ok {
		return ErrNoFlow
	}
	if f.state != StateShipping && f.state != StatePayment {
		return ErrWrongState
	}
	if strings.TrimSpace(req.Street) == "" {
		return ErrStreetNeeded
	}

	country := req.Country
	if !currency.Supported(country) {
		country = currency.DefaultCountry
	}
	phone := req.Phone
	if phone == "" {
		phone = "Not Provided"
	}
	f.address = order.Address{
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    country,
		Phone:      phone,
	}
	f.state = StatePayment
	return nil
}

// SubmitPayment validates the method, snapshots the cart, and starts the
// three simulated processing stages asynchronously.
func (s *Service) SubmitPayment(sess *auth.Session, req PaymentRequest) error {
	if err := validatePayment(req); err != nil {
		return err
	}

	var items []cart.Item
	var subtotal float64
	s.carts.With(sess.Email, func(c *cart.Cart) {
		items = c.Items()
		subtotal = c.Total()
	})
	if len(items) == 0 {
		return ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[key(sess.Email)]
	if !ok {
		return ErrNoFlow
	}
	if f.state != StatePayment {
		return ErrWrongState
	}
	f.method = req.Method
	f.items = items
	f.subtotal = subtotal
	f.state = StateProcessing
	f.stage = 0

	go s.process(sess, f)
	return nil
}

// process walks the named stages, then constructs and persists the order.
// Abandoning the flow at any point before the last stage completes leaves
// no order record.
func (s *Service) process(sess *auth.Session, f *flow) {
	for i := range StageNames {
		s.mu.Lock()
		if f.cancelled {
			s.mu.Unlock()
			return
		}
		f.stage = i + 1
		s.mu.Unlock()

		select {
		case <-f.cancel:
			return
		case <-time.After(s.delays[i]):
		}
	}

	s.mu.Lock()
	if f.cancelled {
		s.mu.Unlock()
		return
	}
	grand := round2(f.subtotal * (1 + TaxRate))
	o := order.Order{
		ID:            order.GenerateID(),
		CustomerName:  sess.Name,
		CustomerEmail: sess.Email,
		Items:         f.items,
		Total:         grand,
		Status:        order.StatusPending,
		PaymentMethod: strings.ToUpper(string(f.method)),
		Date:          s.now().Format("1/2/2006, 3:04:05 PM"),
		Address:       f.address,
	}
	s.mu.Unlock()

	if err := s.orders.Save(context.Background(), o); err != nil {
		s.logger.Error("order persistence failed", zap.Error(err), zap.String("email", sess.Email))
		s.mu.Lock()
		f.state = StatePayment
		f.stage = 0
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	f.state = StateConfirmed
	f.orderID = o.ID
	s.mu.Unlock()
	s.logger.Info("order confirmed",
		zap.String("order_id", o.ID), zap.String("email", sess.Email))
}

// Status returns the pollable view of the session's flow.
func (s *Service) Status(sess *auth.Session) (FlowStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[key(sess.Email)]
	if !ok {
		return FlowStatus{}, ErrNoFlow
	}
	st := FlowStatus{State: f.state, OrderID: f.orderID}
	if f.state == StateProcessing && f.stage >= 1 {
		st.Stage = f.stage
		st.StageName = StageNames[f.stage-1]
	}
	if f.state == StateConfirmed {
		st.GrandTotal = round2(f.subtotal * (1 + TaxRate))
	}
	return st, nil
}

// Abandon discards the session's flow. If processing is in flight it is
// stopped and no order is created.
func (s *Service) Abandon(sess *auth.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[key(sess.Email)]
	if !ok {
		return
	}
	f.cancelled = true
	if f.state == StateProcessing {
		close(f.cancel)
	}
	delete(s.flows, key(sess.Email))
}

func key(email string) string { return strings.ToLower(email) }

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
