package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lumiere-essence/maison-backend/internal/modules/user"
)

// The bypass credential grants admin capability without ever being stored
// as a user record.
const (
	bypassEmail    = "admin@lumiere.com"
	bypassPassword = "admin"
	maxAttempts    = 3
)

// pendingSignup is the state of one in-flight verification flow.
type pendingSignup struct {
	name     string
	password string
	code     string
	attempts int
	readyAt  time.Time // when the simulated delivery completes
}

type service struct {
	users  user.Repository
	tokens *TokenIssuer
	logger *zap.Logger

	sendDelay time.Duration
	now       func() time.Time

	mu      sync.Mutex
	pending map[string]*pendingSignup // keyed by lower-cased email
}

// NewService creates the auth service. sendDelay simulates the time an
// email takes to arrive; tests pass zero.
func NewService(users user.Repository, tokens *TokenIssuer, sendDelay time.Duration, logger *zap.Logger) Service {
	return &service{
		users:     users,
		tokens:    tokens,
		logger:    logger,
		sendDelay: sendDelay,
		now:       time.Now,
		pending:   make(map[string]*pendingSignup),
	}
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, string, error) {
	emailLower := strings.ToLower(email)

	if emailLower == bypassEmail && password == bypassPassword {
		sess := &Session{Name: "Maison Admin", Email: emailLower, Admin: true}
		token, err := s.tokens.Issue(sess)
		if err != nil {
			return nil, "", err
		}
		return sess, token, nil
	}

	stored, err := s.users.GetByEmail(ctx, emailLower)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if stored.Password != password {
		s.logger.Info("login rejected", zap.String("email", emailLower))
		return nil, "", ErrInvalidCredentials
	}

	sess := &Session{Name: stored.Name, Email: stored.Email, Admin: stored.IsAdmin}
	token, err := s.tokens.Issue(sess)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

func (s *service) BeginSignup(ctx context.Context, name, email, password string) error {
	if issues := PasswordIssues(password); len(issues) > 0 {
		return fmt.Errorf("%w: missing %s", ErrWeakPassword, strings.Join(issues, ", "))
	}
	if name == "" {
		name = "Member"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[strings.ToLower(email)] = &pendingSignup{
		name:     name,
		password: password,
		code:     generateCode(),
		readyAt:  s.now().Add(s.sendDelay),
	}
	return nil
}

func (s *service) Notification(_ context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[strings.ToLower(email)]
	if !ok {
		return "", ErrNoPendingSignup
	}
	if s.now().Before(p.readyAt) {
		return "", ErrCodeNotDelivered
	}
	return p.code, nil
}

func (s *service) VerifySignup(ctx context.Context, email, code string) (*Session, string, error) {
	emailLower := strings.ToLower(email)

	s.mu.Lock()
	p, ok := s.pending[emailLower]
	if !ok {
		s.mu.Unlock()
		return nil, "", ErrNoPendingSignup
	}
	if p.attempts >= maxAttempts {
		s.mu.Unlock()
		return nil, "", ErrLocked
	}
	if code != p.code {
		p.attempts++
		attempts := p.attempts
		s.mu.Unlock()
		if attempts >= maxAttempts {
			return nil, "", ErrLocked
		}
		return nil, "", fmt.Errorf("%w (attempt %d/%d)", ErrCodeMismatch, attempts, maxAttempts)
	}
	delete(s.pending, emailLower)
	s.mu.Unlock()

	u := user.User{
		Name:       p.name,
		Email:      emailLower,
		Password:   p.password,
		IsVerified: true,
		JoinDate:   s.now().Format("2006-01-02"),
	}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, "", err
	}
	s.logger.Info("account created", zap.String("email", emailLower))

	sess := &Session{Name: u.Name, Email: u.Email}
	token, err := s.tokens.Issue(sess)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

func (s *service) RestartSignup(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[strings.ToLower(email)]
	if !ok {
		return ErrNoPendingSignup
	}
	p.code = generateCode()
	p.attempts = 0
	p.readyAt = s.now().Add(s.sendDelay)
	return nil
}

func generateCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
