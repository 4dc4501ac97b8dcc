package checkout

// State is a step of the checkout flow. A flow only moves forward:
// shipping -> payment -> processing -> confirmed. There is no cancelled
// state; abandoning discards the flow without leaving an order behind.
type State string

const (
	StateShipping   State = "shipping"
	StatePayment    State = "payment"
	StateProcessing State = "processing"
	StateConfirmed  State = "confirmed"
)

// Method is a supported payment method.
type Method string

const (
	MethodCard    Method = "card"
	MethodUPI     Method = "upi"
	MethodExpress Method = "express"
	MethodBank    Method = "bank"
)

// StageNames are the three simulated processing phases, in order.
var StageNames = [3]string{
	"connecting to secure vault",
	"validating payment aura",
	"finalizing exchange",
}

// TaxRate is applied to the cart total at order creation.
const TaxRate = 0.08

// ShippingRequest captures the delivery address. Only the street is a hard
// requirement; everything else is best-effort form data.
type ShippingRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// CardDetails are the structural card fields. No issuer validation happens
// anywhere; the checks are shape-only.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"name"`
}

// PaymentRequest selects a method and carries its fields.
type PaymentRequest struct {
	Method Method       `json:"method"`
	Card   *CardDetails `json:"card,omitempty"`
	UPIID  string       `json:"upiId,omitempty"`
}

// FlowStatus is the pollable view of a session's checkout.
type FlowStatus struct {
	State      State   `json:"state"`
	Stage      int     `json:"stage,omitempty"` // 1..3 while processing
	StageName  string  `json:"stageName,omitempty"`
	OrderID    string  `json:"orderId,omitempty"`
	GrandTotal float64 `json:"grandTotal,omitempty"`
}
