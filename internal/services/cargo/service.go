package cargo

import (
	"context"
	"fmt"
	"strings"

	"supplyline/internal/domain"
)

// Service implements domain.CargoService.
type Service struct {
	auth    domain.Authorizer
	backend domain.CargoBackend
}

// New constructs a cargo Service.
func New(auth domain.Authorizer, backend domain.CargoBackend) *Service {
	return &Service{auth: auth, backend: backend}
}

// List returns the inventory to any logged-in account.
func (s *Service) List(ctx context.Context) ([]domain.CargoItem, error) {
	if _, err := s.auth.Require(); err != nil {
		return nil, err
	}
	return s.backend.ListCargo(ctx)
}

// Create adds an inventory line.
func (s *Service) Create(ctx context.Context, item domain.CargoItem) (domain.CargoItem, error) {
	if _, err := s.auth.Require(domain.RoleAdmin); err != nil {
		return domain.CargoItem{}, err
	}
	if err := check(item); err != nil {
		return domain.CargoItem{}, err
	}
	return s.backend.CreateCargo(ctx, item)
}

// Update replaces an inventory line.
func (s *Service) Update(ctx context.Context, item domain.CargoItem) (domain.CargoItem, error) {
	if _, err := s.auth.Require(domain.RoleAdmin); err != nil {
		return domain.CargoItem{}, err
	}
	if item.ID == "" {
		return domain.CargoItem{}, fmt.Errorf("%w: cargo id is required", domain.ErrInvalidInput)
	}
	if err := check(item); err != nil {
		return domain.CargoItem{}, err
	}
	return s.backend.UpdateCargo(ctx, item)
}

// Delete removes an inventory line.
func (s *Service) Delete(ctx context.Context, id domain.CargoID) error {
	if _, err := s.auth.Require(domain.RoleAdmin); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: cargo id is required", domain.ErrInvalidInput)
	}
	return s.backend.DeleteCargo(ctx, id)
}

func check(item domain.CargoItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidInput)
	}
	return nil
}

// Compile-time assertion that Service implements domain.CargoService.
var _ domain.CargoService = (*Service)(nil)
