package checkout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCard(t *testing.T) {
	base := func() *CardDetails {
		return &CardDetails{Number: "4242 4242 4242 4242", Expiry: "09/27", CVV: "321", Name: "Elena Vane"}
	}

	require.NoError(t, validateCard(base()))

	c := base()
	c.Number = "4242-4242-4242-4242"
	require.Error(t, validateCard(c), "separators other than spaces are rejected")

	c = base()
	c.Number = "4242 4242"
	require.Error(t, validateCard(c), "too short")

	c = base()
	c.Expiry = "13/27"
	require.Error(t, validateCard(c), "month out of range")

	c = base()
	c.Expiry = "9/27"
	require.Error(t, validateCard(c), "single-digit month")

	c = base()
	c.CVV = "12"
	require.Error(t, validateCard(c))

	c = base()
	c.Name = "   "
	require.Error(t, validateCard(c))

	require.Error(t, validateCard(nil))
}

func TestValidatePaymentMethods(t *testing.T) {
	require.NoError(t, validatePayment(PaymentRequest{Method: MethodUPI, UPIID: "elena.vane@oksbi"}))
	require.Error(t, validatePayment(PaymentRequest{Method: MethodUPI, UPIID: "no-handle"}))
	require.Error(t, validatePayment(PaymentRequest{Method: MethodUPI, UPIID: "elena@ok1"}), "handle must be letters only")

	require.NoError(t, validatePayment(PaymentRequest{Method: MethodExpress}))
	require.NoError(t, validatePayment(PaymentRequest{Method: MethodBank}))

	require.Error(t, validatePayment(PaymentRequest{Method: Method("crypto")}))
	require.Error(t, validatePayment(PaymentRequest{Method: MethodCard}), "card method without details")
}
