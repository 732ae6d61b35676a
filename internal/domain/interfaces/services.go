package interfaces

import (
	"context"

	domaintypes "supplyline/internal/domain/types"
)

// Authorizer answers "who is logged in, and may they do this".
type Authorizer interface {
	Current() (domaintypes.AuthProfile, bool, error)
	Require(roles ...domaintypes.Role) (domaintypes.AuthProfile, error)
}

// AuthService registers, logs in and logs out.
type AuthService interface {
	Authorizer
	Register(ctx context.Context, reg domaintypes.Registration) (domaintypes.AuthProfile, error)
	Login(ctx context.Context, creds domaintypes.Credentials) (domaintypes.AuthProfile, error)
	Logout() error
}

// UserService manages accounts.
type UserService interface {
	Me(ctx context.Context) (domaintypes.User, error)
	List(ctx context.Context) ([]domaintypes.User, error)
	SetRole(ctx context.Context, id domaintypes.UserID, role domaintypes.Role) (domaintypes.User, error)
	Delete(ctx context.Context, id domaintypes.UserID) error
}

// OrderService places and tracks delivery orders.
type OrderService interface {
	Place(ctx context.Context, order domaintypes.NewOrder) (domaintypes.Order, error)
	Cancel(ctx context.Context, id domaintypes.OrderID) (domaintypes.Order, error)
	ListMine(ctx context.Context) ([]domaintypes.Order, error)
	ListAll(ctx context.Context) ([]domaintypes.Order, error)
	UpdateStatus(
		ctx context.Context,
		id domaintypes.OrderID,
		status domaintypes.OrderStatus,
	) (domaintypes.Order, error)
}

// CargoService manages the inventory.
type CargoService interface {
	List(ctx context.Context) ([]domaintypes.CargoItem, error)
	Create(ctx context.Context, item domaintypes.CargoItem) (domaintypes.CargoItem, error)
	Update(ctx context.Context, item domaintypes.CargoItem) (domaintypes.CargoItem, error)
	Delete(ctx context.Context, id domaintypes.CargoID) error
}

// ApplicationService handles volunteer applications.
type ApplicationService interface {
	Submit(ctx context.Context, form domaintypes.ApplicationForm) (domaintypes.Application, error)
	ListMine(ctx context.Context) ([]domaintypes.Application, error)
	List(ctx context.Context) ([]domaintypes.Application, error)
	Approve(ctx context.Context, id domaintypes.ApplicationID, note string) (domaintypes.Application, error)
	Reject(ctx context.Context, id domaintypes.ApplicationID, note string) (domaintypes.Application, error)
}

// RoundService schedules rounds and runs signups.
type RoundService interface {
	List(ctx context.Context) ([]domaintypes.Round, error)
	Create(ctx context.Context, round domaintypes.NewRound) (domaintypes.Round, error)
	SignUp(ctx context.Context, id domaintypes.RoundID) (domaintypes.Round, error)
	Withdraw(ctx context.Context, id domaintypes.RoundID) (domaintypes.Round, error)
	Draw(ctx context.Context, id domaintypes.RoundID) (domaintypes.Round, error)
	Delete(ctx context.Context, id domaintypes.RoundID) error
}

// FeedbackService collects delivery ratings.
type FeedbackService interface {
	Submit(ctx context.Context, form domaintypes.FeedbackForm) (domaintypes.Feedback, error)
	List(ctx context.Context) ([]domaintypes.Feedback, error)
}
