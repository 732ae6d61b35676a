package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"supplyline/internal/domain"
)

// ErrOrderClosed is returned when cancelling an order that is already
// delivered or cancelled.
var ErrOrderClosed = errors.New("order is closed")

// ErrUnknownOrder is returned when an id is not among the caller's orders.
var ErrUnknownOrder = errors.New("no such order")

// Service implements domain.OrderService.
type Service struct {
	auth    domain.Authorizer
	backend domain.OrderBackend
}

// New constructs an order Service.
func New(auth domain.Authorizer, backend domain.OrderBackend) *Service {
	return &Service{auth: auth, backend: backend}
}

// Place submits a new order.
func (s *Service) Place(ctx context.Context, order domain.NewOrder) (domain.Order, error) {
	if _, err := s.auth.Require(domain.RoleClient); err != nil {
		return domain.Order{}, err
	}
	if strings.TrimSpace(order.Address) == "" {
		return domain.Order{}, fmt.Errorf("%w: delivery address is required", domain.ErrInvalidInput)
	}
	if len(order.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: at least one item is required", domain.ErrInvalidInput)
	}
	for _, it := range order.Items {
		if it.CargoID == "" {
			return domain.Order{}, fmt.Errorf("%w: item is missing a cargo id", domain.ErrInvalidInput)
		}
		if it.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("%w: quantity for %s must be positive", domain.ErrInvalidInput, it.CargoID)
		}
	}
	return s.backend.PlaceOrder(ctx, order)
}

// Cancel cancels one of the caller's orders. The latest known status is
// checked first so closed orders are refused without a write.
func (s *Service) Cancel(ctx context.Context, id domain.OrderID) (domain.Order, error) {
	if _, err := s.auth.Require(domain.RoleClient, domain.RoleAdmin); err != nil {
		return domain.Order{}, err
	}
	if id == "" {
		return domain.Order{}, fmt.Errorf("%w: order id is required", domain.ErrInvalidInput)
	}
	orders, err := s.backend.ListOrders(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.ID != id {
			continue
		}
		if o.Status.Terminal() {
			return domain.Order{}, fmt.Errorf("%w: %s is %s", ErrOrderClosed, id, o.Status)
		}
		return s.backend.CancelOrder(ctx, id)
	}
	return domain.Order{}, fmt.Errorf("%w: %s", ErrUnknownOrder, id)
}

// ListMine returns the caller's own orders.
func (s *Service) ListMine(ctx context.Context) ([]domain.Order, error) {
	p, err := s.auth.Require(domain.RoleClient)
	if err != nil {
		return nil, err
	}
	all, err := s.backend.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	mine := all[:0]
	for _, o := range all {
		if o.ClientID == p.UserID {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

// ListAll returns every order.
func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	if _, err := s.auth.Require(domain.RoleVolunteer, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.backend.ListOrders(ctx)
}

// UpdateStatus moves an order forward.
func (s *Service) UpdateStatus(
	ctx context.Context,
	id domain.OrderID,
	status domain.OrderStatus,
) (domain.Order, error) {
	if _, err := s.auth.Require(domain.RoleVolunteer, domain.RoleAdmin); err != nil {
		return domain.Order{}, err
	}
	if id == "" {
		return domain.Order{}, fmt.Errorf("%w: order id is required", domain.ErrInvalidInput)
	}
	switch status {
	case domain.OrderAccepted, domain.OrderDelivering, domain.OrderDelivered:
	default:
		return domain.Order{}, fmt.Errorf("%w: status must be accepted, delivering or delivered", domain.ErrInvalidInput)
	}
	return s.backend.UpdateOrderStatus(ctx, id, status)
}

// Compile-time assertion that Service implements domain.OrderService.
var _ domain.OrderService = (*Service)(nil)
