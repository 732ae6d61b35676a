package round

import (
	"context"
	"fmt"
	"strings"

	"supplyline/internal/domain"
)

// Service implements domain.RoundService.
type Service struct {
	auth    domain.Authorizer
	backend domain.RoundBackend
}

// New constructs a round Service.
func New(auth domain.Authorizer, backend domain.RoundBackend) *Service {
	return &Service{auth: auth, backend: backend}
}

// List returns scheduled rounds.
func (s *Service) List(ctx context.Context) ([]domain.Round, error) {
	if _, err := s.auth.Require(); err != nil {
		return nil, err
	}
	return s.backend.ListRounds(ctx)
}

// Create schedules a round.
func (s *Service) Create(ctx context.Context, round domain.NewRound) (domain.Round, error) {
	if _, err := s.auth.Require(domain.RoleAdmin); err != nil {
		return domain.Round{}, err
	}
	if strings.TrimSpace(round.Title) == "" {
		return domain.Round{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if round.Capacity <= 0 {
		return domain.Round{}, fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidInput)
	}
	return s.backend.CreateRound(ctx, round)
}

// SignUp puts the caller on a round's signup list.
func (s *Service) SignUp(ctx context.Context, id domain.RoundID) (domain.Round, error) {
	if err := s.volunteer(id); err != nil {
		return domain.Round{}, err
	}
	return s.backend.SignUpRound(ctx, id)
}

// Withdraw takes the caller off a round's signup list.
func (s *Service) Withdraw(ctx context.Context, id domain.RoundID) (domain.Round, error) {
	if err := s.volunteer(id); err != nil {
		return domain.Round{}, err
	}
	return s.backend.WithdrawRound(ctx, id)
}

// Draw runs the round's lottery.
func (s *Service) Draw(ctx context.Context, id domain.RoundID) (domain.Round, error) {
	if err := s.admin(id); err != nil {
		return domain.Round{}, err
	}
	return s.backend.DrawRound(ctx, id)
}

// Delete removes a round.
func (s *Service) Delete(ctx context.Context, id domain.RoundID) error {
	if err := s.admin(id); err != nil {
		return err
	}
	return s.backend.DeleteRound(ctx, id)
}

func (s *Service) volunteer(id domain.RoundID) error {
	if _, err := s.auth.Require(domain.RoleVolunteer); err != nil {
		return err
	}
	return requireID(id)
}

func (s *Service) admin(id domain.RoundID) error {
	if _, err := s.auth.Require(domain.RoleAdmin); err != nil {
		return err
	}
	return requireID(id)
}

func requireID(id domain.RoundID) error {
	if id == "" {
		return fmt.Errorf("%w: round id is required", domain.ErrInvalidInput)
	}
	return nil
}

// Compile-time assertion that Service implements domain.RoundService.
var _ domain.RoundService = (*Service)(nil)
