package admin

import (
	"context"

	"github.com/lumiere-essence/maison-backend/internal/modules/inquiry"
	"github.com/lumiere-essence/maison-backend/internal/modules/order"
	"github.com/lumiere-essence/maison-backend/internal/modules/user"
)

// Stats are the console dashboard counters. Revenue excludes cancelled
// orders; the order count does not.
type Stats struct {
	Revenue   float64 `json:"revenue"`
	Users     int     `json:"users"`
	Orders    int     `json:"orders"`
	Inquiries int     `json:"inquiries"`
}

type Service interface {
	Stats(ctx context.Context) (Stats, error)
	ListUsers(ctx context.Context) ([]user.User, error)
}

type service struct {
	users     user.Repository
	orders    order.Service
	inquiries inquiry.Repository
}

func NewService(users user.Repository, orders order.Service, inquiries inquiry.Repository) Service {
	return &service{users: users, orders: orders, inquiries: inquiries}
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	revenue, err := s.orders.Revenue(ctx)
	if err != nil {
		return Stats{}, err
	}
	inquiries, err := s.inquiries.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Revenue:   revenue,
		Users:     len(users),
		Orders:    len(orders),
		Inquiries: len(inquiries),
	}, nil
}

// ListUsers returns every stored member record, passwords included. The
// console is the only caller and sits behind the admin credential.
func (s *service) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}
