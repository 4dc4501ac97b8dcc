package order

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Service defines order tracking and lifecycle logic.
type Service interface {
	// Track looks up an order by its public id for the tracking page.
	Track(ctx context.Context, id string) (*Order, error)

	// ListByCustomer returns the customer's orders, newest first.
	ListByCustomer(ctx context.Context, email string) ([]Order, error)

	// ListAll returns every order for the admin console.
	ListAll(ctx context.Context) ([]Order, error)

	// UpdateStatus overwrites an order's status. Only enum membership is
	// validated; transitions are unguarded by design.
	UpdateStatus(ctx context.Context, id, rawStatus string) (*Order, error)

	// Revenue sums totals over all non-Cancelled orders.
	Revenue(ctx context.Context) (float64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Track(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *service) ListByCustomer(ctx context.Context, email string) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(email)
	var out []Order
	for _, o := range orders {
		if strings.ToLower(o.CustomerEmail) == needle {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id, rawStatus string) (*Order, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.logger.Info("order status overwritten",
		zap.String("order_id", id), zap.String("status", string(status)))
	return s.repo.GetByID(ctx, id)
}

func (s *service) Revenue(ctx context.Context) (float64, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, o := range orders {
		if o.Status != StatusCancelled {
			sum += o.Total
		}
	}
	return sum, nil
}
