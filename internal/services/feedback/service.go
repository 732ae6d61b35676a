package feedback

import (
	"context"
	"fmt"

	"supplyline/internal/domain"
)

// Service implements domain.FeedbackService.
type Service struct {
	auth    domain.Authorizer
	backend domain.FeedbackBackend
}

// New constructs a feedback Service.
func New(auth domain.Authorizer, backend domain.FeedbackBackend) *Service {
	return &Service{auth: auth, backend: backend}
}

// Submit rates a delivery from 1 to 5.
func (s *Service) Submit(ctx context.Context, form domain.FeedbackForm) (domain.Feedback, error) {
	if _, err := s.auth.Require(domain.RoleClient); err != nil {
		return domain.Feedback{}, err
	}
	if form.Rating < 1 || form.Rating > 5 {
		return domain.Feedback{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}
	return s.backend.SubmitFeedback(ctx, form)
}

// List returns all feedback.
func (s *Service) List(ctx context.Context) ([]domain.Feedback, error) {
	if _, err := s.auth.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.backend.ListFeedback(ctx)
}

// Compile-time assertion that Service implements domain.FeedbackService.
var _ domain.FeedbackService = (*Service)(nil)
