package application

import (
	"context"
	"fmt"
	"strings"

	"supplyline/internal/domain"
)

// Service implements domain.ApplicationService.
type Service struct {
	auth    domain.Authorizer
	backend domain.ApplicationBackend
}

// New constructs an application Service.
func New(auth domain.Authorizer, backend domain.ApplicationBackend) *Service {
	return &Service{auth: auth, backend: backend}
}

// Submit applies to become a volunteer.
func (s *Service) Submit(ctx context.Context, form domain.ApplicationForm) (domain.Application, error) {
	if _, err := s.auth.Require(domain.RoleClient); err != nil {
		return domain.Application{}, err
	}
	if strings.TrimSpace(form.Motivation) == "" {
		return domain.Application{}, fmt.Errorf("%w: motivation is required", domain.ErrInvalidInput)
	}
	return s.backend.SubmitApplication(ctx, form)
}

// ListMine returns the caller's own applications.
func (s *Service) ListMine(ctx context.Context) ([]domain.Application, error) {
	p, err := s.auth.Require()
	if err != nil {
		return nil, err
	}
	all, err := s.backend.ListApplications(ctx)
	if err != nil {
		return nil, err
	}
	mine := all[:0]
	for _, a := range all {
		if a.UserID == p.UserID {
			mine = append(mine, a)
		}
	}
	return mine, nil
}

// List returns every application.
func (s *Service) List(ctx context.Context) ([]domain.Application, error) {
	if _, err := s.auth.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.backend.ListApplications(ctx)
}

// Approve accepts an application.
func (s *Service) Approve(ctx context.Context, id domain.ApplicationID, note string) (domain.Application, error) {
	return s.review(ctx, id, true, note)
}

// Reject declines an application.
func (s *Service) Reject(ctx context.Context, id domain.ApplicationID, note string) (domain.Application, error) {
	return s.review(ctx, id, false, note)
}

func (s *Service) review(
	ctx context.Context,
	id domain.ApplicationID,
	approve bool,
	note string,
) (domain.Application, error) {
	if _, err := s.auth.Require(domain.RoleAdmin); err != nil {
		return domain.Application{}, err
	}
	if id == "" {
		return domain.Application{}, fmt.Errorf("%w: application id is required", domain.ErrInvalidInput)
	}
	return s.backend.ReviewApplication(ctx, id, approve, note)
}

// Compile-time assertion that Service implements domain.ApplicationService.
var _ domain.ApplicationService = (*Service)(nil)
