package auth

import (
	"context"
	"errors"
)

// Session is the logical logged-in user: a thin view over the stored record,
// carried in the token rather than persisted.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"isAdmin,omitempty"`
}

// One rejection message covers both unknown email and wrong password, so a
// caller cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials or account ritual incomplete")

var (
	// ErrWeakPassword is returned before any verification code is generated.
	ErrWeakPassword = errors.New("password does not satisfy the security protocol")
	// ErrLocked means three discordant codes were entered; the flow must be
	// explicitly restarted.
	ErrLocked = errors.New("verification halted: too many failed attempts")
	// ErrCodeMismatch is a countable wrong-code attempt.
	ErrCodeMismatch = errors.New("verification code mismatch")
	// ErrNoPendingSignup means Verify/Restart was called without Begin.
	ErrNoPendingSignup = errors.New("no pending sign-up for this email")
	// ErrCodeNotDelivered means the simulated delivery delay has not elapsed.
	ErrCodeNotDelivered = errors.New("verification code still in transit")
)

// Service defines authentication business logic.
type Service interface {
	// Login checks credentials and returns a session plus a signed token.
	Login(ctx context.Context, email, password string) (*Session, string, error)

	// BeginSignup validates the password rules and opens a verification
	// flow; the generated code is "delivered" after a simulated delay.
	BeginSignup(ctx context.Context, name, email, password string) error

	// Notification exposes the delivered code (the in-app mock of the
	// out-of-band channel). Errors until the delivery delay has elapsed.
	Notification(ctx context.Context, email string) (string, error)

	// VerifySignup consumes a code attempt. On the third consecutive
	// mismatch the flow locks until RestartSignup.
	VerifySignup(ctx context.Context, email, code string) (*Session, string, error)

	// RestartSignup regenerates the code and resets the attempt counter.
	RestartSignup(ctx context.Context, email string) error
}
