package order

import (
	"fmt"
	"math/rand"

	"github.com/lumiere-essence/maison-backend/internal/modules/cart"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// ParseStatus validates that a raw string is a known lifecycle state.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(raw), nil
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

// Address is the shipping destination captured at checkout.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// Order is an append-only purchase record. Items are snapshots taken at
// checkout; total includes tax. Status is the only field mutated after
// creation.
type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Items         []cart.Item `json:"items"`
	Total         float64     `json:"total"`
	Status        Status      `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	Date          string      `json:"date"`
	Address       Address     `json:"address"`
}

// GenerateID returns a LUM-##### identifier with five random digits.
// Uniqueness is by improbability only, as in the storefront.
func GenerateID() string {
	return fmt.Sprintf("LUM-%d", 10000+rand.Intn(90000))
}
