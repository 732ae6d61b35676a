package interfaces

import (
	"context"

	domaintypes "supplyline/internal/domain/types"
)

// AuthBackend covers login and registration, in both the plaintext JSON
// mode and the encrypted text/plain mode.
type AuthBackend interface {
	Login(ctx context.Context, creds domaintypes.Credentials) (domaintypes.AuthResult, error)
	Register(ctx context.Context, reg domaintypes.Registration) (domaintypes.AuthResult, error)
	LoginEncrypted(
		ctx context.Context,
		cipher SessionCipher,
		creds domaintypes.Credentials,
	) (domaintypes.AuthResult, error)
	RegisterEncrypted(
		ctx context.Context,
		cipher SessionCipher,
		reg domaintypes.Registration,
	) (domaintypes.AuthResult, error)
	SetToken(token string)
}

// UserBackend covers account management.
type UserBackend interface {
	Me(ctx context.Context) (domaintypes.User, error)
	ListUsers(ctx context.Context) ([]domaintypes.User, error)
	SetUserRole(ctx context.Context, id domaintypes.UserID, role domaintypes.Role) (domaintypes.User, error)
	DeleteUser(ctx context.Context, id domaintypes.UserID) error
}

// OrderBackend covers the order screens.
type OrderBackend interface {
	ListOrders(ctx context.Context) ([]domaintypes.Order, error)
	PlaceOrder(ctx context.Context, order domaintypes.NewOrder) (domaintypes.Order, error)
	CancelOrder(ctx context.Context, id domaintypes.OrderID) (domaintypes.Order, error)
	UpdateOrderStatus(
		ctx context.Context,
		id domaintypes.OrderID,
		status domaintypes.OrderStatus,
	) (domaintypes.Order, error)
}

// CargoBackend covers inventory management.
type CargoBackend interface {
	ListCargo(ctx context.Context) ([]domaintypes.CargoItem, error)
	CreateCargo(ctx context.Context, item domaintypes.CargoItem) (domaintypes.CargoItem, error)
	UpdateCargo(ctx context.Context, item domaintypes.CargoItem) (domaintypes.CargoItem, error)
	DeleteCargo(ctx context.Context, id domaintypes.CargoID) error
}

// ApplicationBackend covers volunteer applications.
type ApplicationBackend interface {
	SubmitApplication(ctx context.Context, form domaintypes.ApplicationForm) (domaintypes.Application, error)
	ListApplications(ctx context.Context) ([]domaintypes.Application, error)
	ReviewApplication(
		ctx context.Context,
		id domaintypes.ApplicationID,
		approve bool,
		note string,
	) (domaintypes.Application, error)
}

// RoundBackend covers volunteer rounds and the lottery trigger.
type RoundBackend interface {
	ListRounds(ctx context.Context) ([]domaintypes.Round, error)
	CreateRound(ctx context.Context, round domaintypes.NewRound) (domaintypes.Round, error)
	SignUpRound(ctx context.Context, id domaintypes.RoundID) (domaintypes.Round, error)
	WithdrawRound(ctx context.Context, id domaintypes.RoundID) (domaintypes.Round, error)
	DrawRound(ctx context.Context, id domaintypes.RoundID) (domaintypes.Round, error)
	DeleteRound(ctx context.Context, id domaintypes.RoundID) error
}

// FeedbackBackend covers delivery feedback.
type FeedbackBackend interface {
	SubmitFeedback(ctx context.Context, form domaintypes.FeedbackForm) (domaintypes.Feedback, error)
	ListFeedback(ctx context.Context) ([]domaintypes.Feedback, error)
}

// Backend is the full REST surface of the delivery service.
type Backend interface {
	KeyExchangeTransport
	AuthBackend
	UserBackend
	OrderBackend
	CargoBackend
	ApplicationBackend
	RoundBackend
	FeedbackBackend
}
