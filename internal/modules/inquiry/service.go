package inquiry

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumiere-essence/maison-backend/internal/modules/auth"
)

var ErrMessageNeeded = errors.New("a message is required")

const defaultSubject = "General Inquiry"

// Request is the contact-form payload. Name and email come from the
// session, not the payload.
type Request struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Service interface {
	Create(ctx context.Context, sess *auth.Session, req Request) (*Inquiry, error)
	List(ctx context.Context) ([]Inquiry, error)
	Resolve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger, now: time.Now}
}

func (s *service) Create(ctx context.Context, sess *auth.Session, req Request) (*Inquiry, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMessageNeeded
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = defaultSubject
	}
	in := Inquiry{
		ID:      uuid.NewString(),
		Name:    sess.Name,
		Email:   sess.Email,
		Subject: subject,
		Message: req.Message,
		Date:    s.now().Format("Jan 2, 2006, 03:04 PM"),
		Status:  StatusNew,
	}
	if err := s.repo.Save(ctx, in); err != nil {
		return nil, err
	}
	s.logger.Info("inquiry received",
		zap.String("inquiry_id", in.ID), zap.String("subject", in.Subject))
	return &in, nil
}

func (s *service) List(ctx context.Context) ([]Inquiry, error) {
	return s.repo.List(ctx)
}

func (s *service) Resolve(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, StatusResolved)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
