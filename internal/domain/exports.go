package domain

import (
	interfaces "supplyline/internal/domain/interfaces"
	types "supplyline/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username            = types.Username
	UserID              = types.UserID
	OrderID             = types.OrderID
	CargoID             = types.CargoID
	ApplicationID       = types.ApplicationID
	RoundID             = types.RoundID
	FeedbackID          = types.FeedbackID
	SessionID           = types.SessionID
	Role                = types.Role
	User                = types.User
	Credentials         = types.Credentials
	Registration        = types.Registration
	AuthResult          = types.AuthResult
	OrderStatus         = types.OrderStatus
	OrderItem           = types.OrderItem
	Order               = types.Order
	NewOrder            = types.NewOrder
	CargoItem           = types.CargoItem
	ApplicationStatus   = types.ApplicationStatus
	Application         = types.Application
	ApplicationForm     = types.ApplicationForm
	RoundStatus         = types.RoundStatus
	Round               = types.Round
	NewRound            = types.NewRound
	Feedback            = types.Feedback
	FeedbackForm        = types.FeedbackForm
	Envelope            = types.Envelope
	SessionRecord       = types.SessionRecord
	AuthProfile         = types.AuthProfile
	KeyExchangeRequest  = types.KeyExchangeRequest
	KeyExchangeResponse = types.KeyExchangeResponse
	ServerKeyResponse   = types.ServerKeyResponse
)

// Constants re-exported from the types subpackage.
const (
	RoleClient    = types.RoleClient
	RoleVolunteer = types.RoleVolunteer
	RoleAdmin     = types.RoleAdmin

	OrderPending    = types.OrderPending
	OrderAccepted   = types.OrderAccepted
	OrderDelivering = types.OrderDelivering
	OrderDelivered  = types.OrderDelivered
	OrderCancelled  = types.OrderCancelled

	ApplicationPending  = types.ApplicationPending
	ApplicationApproved = types.ApplicationApproved
	ApplicationRejected = types.ApplicationRejected

	RoundOpen   = types.RoundOpen
	RoundDrawn  = types.RoundDrawn
	RoundClosed = types.RoundClosed

	StatusSuccess = types.StatusSuccess
)

// Errors re-exported from the types subpackage.
var (
	ErrNotLoggedIn  = types.ErrNotLoggedIn
	ErrRoleDenied   = types.ErrRoleDenied
	ErrInvalidInput = types.ErrInvalidInput
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SessionStore         = interfaces.SessionStore
	ProfileStore         = interfaces.ProfileStore
	KeyExchangeTransport = interfaces.KeyExchangeTransport
	SessionCipher        = interfaces.SessionCipher
	KeyExchange          = interfaces.KeyExchange
	AuthBackend          = interfaces.AuthBackend
	UserBackend          = interfaces.UserBackend
	OrderBackend         = interfaces.OrderBackend
	CargoBackend         = interfaces.CargoBackend
	ApplicationBackend   = interfaces.ApplicationBackend
	RoundBackend         = interfaces.RoundBackend
	FeedbackBackend      = interfaces.FeedbackBackend
	Backend              = interfaces.Backend
	Authorizer           = interfaces.Authorizer
	AuthService          = interfaces.AuthService
	UserService          = interfaces.UserService
	OrderService         = interfaces.OrderService
	CargoService         = interfaces.CargoService
	ApplicationService   = interfaces.ApplicationService
	RoundService         = interfaces.RoundService
	FeedbackService      = interfaces.FeedbackService
)
