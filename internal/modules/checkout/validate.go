package checkout

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3}$`)
	// Virtual Payment Address: local part @ bare handle.
	vpaPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{2,}@[A-Za-z]{2,}$`)
)

// validatePayment performs the structural checks for a payment method.
// Nothing here talks to an issuer or bank.
func validatePayment(req PaymentRequest) error {
	switch req.Method {
	case MethodCard:
		return validateCard(req.Card)
	case MethodUPI:
		if !vpaPattern.MatchString(req.UPIID) {
			return fmt.Errorf("invalid VPA / UPI id")
		}
		return nil
	case MethodExpress, MethodBank:
		return nil
	}
	return fmt.Errorf("unknown payment method %q", req.Method)
}

func validateCard(card *CardDetails) error {
	if card == nil {
		return fmt.Errorf("card details are required")
	}
	digits := strings.ReplaceAll(card.Number, " ", "")
	if len(digits) < 13 || len(digits) > 19 {
		return fmt.Errorf("card number must be 13-19 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("card number must contain only digits")
		}
	}
	if !expiryPattern.MatchString(card.Expiry) {
		return fmt.Errorf("expiry must be MM/YY")
	}
	if !cvvPattern.MatchString(card.CVV) {
		return fmt.Errorf("security code must be 3 digits")
	}
	if strings.TrimSpace(card.Name) == "" {
		return fmt.Errorf("cardholder name is required")
	}
	return nil
}
