package user

import (
	"context"
	"fmt"

	"supplyline/internal/domain"
)

// Service implements domain.UserService.
type Service struct {
	auth    domain.Authorizer
	backend domain.UserBackend
}

// New constructs a user Service.
func New(auth domain.Authorizer, backend domain.UserBackend) *Service {
	return &Service{auth: auth, backend: backend}
}

// Me returns the logged-in account as the backend sees it.
func (s *Service) Me(ctx context.Context) (domain.User, error) {
	if _, err := s.auth.Require(); err != nil {
		return domain.User{}, err
	}
	return s.backend.Me(ctx)
}

// List returns every account.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	if _, err := s.auth.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.backend.ListUsers(ctx)
}

// SetRole changes an account's role.
func (s *Service) SetRole(ctx context.Context, id domain.UserID, role domain.Role) (domain.User, error) {
	if _, err := s.auth.Require(domain.RoleAdmin); err != nil {
		return domain.User{}, err
	}
	if id == "" {
		return domain.User{}, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if !role.Valid() {
		return domain.User{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	return s.backend.SetUserRole(ctx, id, role)
}

// Delete removes an account other than the caller's own.
func (s *Service) Delete(ctx context.Context, id domain.UserID) error {
	p, err := s.auth.Require(domain.RoleAdmin)
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if id == p.UserID {
		return fmt.Errorf("%w: cannot delete your own account", domain.ErrInvalidInput)
	}
	return s.backend.DeleteUser(ctx, id)
}

// Compile-time assertion that Service implements domain.UserService.
var _ domain.UserService = (*Service)(nil)
