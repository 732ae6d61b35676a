package api

import (
	"context"
	"net/http"
	"net/url"

	"supplyline/internal/domain"
)

// ---------- users ----------

// Me returns the logged-in account.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &out)
	return out, err
}

// ListUsers returns every account (admin).
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &out)
	return out, err
}

// SetUserRole changes an account's role (admin).
func (c *Client) SetUserRole(ctx context.Context, id domain.UserID, role domain.Role) (domain.User, error) {
	var out domain.User
	in := struct {
		Role domain.Role `json:"role"`
	}{Role: role}
	err := c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id.String())+"/role", in, &out)
	return out, err
}

// DeleteUser removes an account (admin).
func (c *Client) DeleteUser(ctx context.Context, id domain.UserID) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id.String()), nil, nil)
}

// ---------- orders ----------

// ListOrders returns the orders visible to the caller.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := c.do(ctx, http.MethodGet, "/api/orders", nil, &out)
	return out, err
}

// PlaceOrder submits a new order.
func (c *Client) PlaceOrder(ctx context.Context, order domain.NewOrder) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", order, &out)
	return out, err
}

// CancelOrder asks the backend to cancel an order.
func (c *Client) CancelOrder(ctx context.Context, id domain.OrderID) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodPost, "/api/orders/"+url.PathEscape(id.String())+"/cancel", nil, &out)
	return out, err
}

// UpdateOrderStatus moves an order along its delivery lifecycle.
func (c *Client) UpdateOrderStatus(
	ctx context.Context,
	id domain.OrderID,
	status domain.OrderStatus,
) (domain.Order, error) {
	var out domain.Order
	in := struct {
		Status domain.OrderStatus `json:"status"`
	}{Status: status}
	err := c.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id.String())+"/status", in, &out)
	return out, err
}

// ---------- cargo ----------

// ListCargo returns the inventory.
func (c *Client) ListCargo(ctx context.Context) ([]domain.CargoItem, error) {
	var out []domain.CargoItem
	err := c.do(ctx, http.MethodGet, "/api/cargo", nil, &out)
	return out, err
}

// CreateCargo adds an inventory line.
func (c *Client) CreateCargo(ctx context.Context, item domain.CargoItem) (domain.CargoItem, error) {
	var out domain.CargoItem
	err := c.do(ctx, http.MethodPost, "/api/cargo", item, &out)
	return out, err
}

// UpdateCargo replaces an inventory line.
func (c *Client) UpdateCargo(ctx context.Context, item domain.CargoItem) (domain.CargoItem, error) {
	var out domain.CargoItem
	err := c.do(ctx, http.MethodPut, "/api/cargo/"+url.PathEscape(item.ID.String()), item, &out)
	return out, err
}

// DeleteCargo removes an inventory line.
func (c *Client) DeleteCargo(ctx context.Context, id domain.CargoID) error {
	return c.do(ctx, http.MethodDelete, "/api/cargo/"+url.PathEscape(id.String()), nil, nil)
}

// ---------- applications ----------

// SubmitApplication applies to become a volunteer.
func (c *Client) SubmitApplication(ctx context.Context, form domain.ApplicationForm) (domain.Application, error) {
	var out domain.Application
	err := c.do(ctx, http.MethodPost, "/api/applications", form, &out)
	return out, err
}

// ListApplications returns applications visible to the caller.
func (c *Client) ListApplications(ctx context.Context) ([]domain.Application, error) {
	var out []domain.Application
	err := c.do(ctx, http.MethodGet, "/api/applications", nil, &out)
	return out, err
}

// ReviewApplication approves or rejects an application (admin).
func (c *Client) ReviewApplication(
	ctx context.Context,
	id domain.ApplicationID,
	approve bool,
	note string,
) (domain.Application, error) {
	action := "reject"
	if approve {
		action = "approve"
	}
	var out domain.Application
	in := struct {
		Note string `json:"note,omitempty"`
	}{Note: note}
	err := c.do(ctx, http.MethodPost, "/api/applications/"+url.PathEscape(id.String())+"/"+action, in, &out)
	return out, err
}

// ---------- rounds ----------

func roundPath(id domain.RoundID) string { return "/api/rounds/" + url.PathEscape(id.String()) }

// ListRounds returns scheduled rounds.
func (c *Client) ListRounds(ctx context.Context) ([]domain.Round, error) {
	var out []domain.Round
	err := c.do(ctx, http.MethodGet, "/api/rounds", nil, &out)
	return out, err
}

// CreateRound schedules a round (admin).
func (c *Client) CreateRound(ctx context.Context, round domain.NewRound) (domain.Round, error) {
	var out domain.Round
	err := c.do(ctx, http.MethodPost, "/api/rounds", round, &out)
	return out, err
}

// SignUpRound adds the caller to a round's signup list (volunteer).
func (c *Client) SignUpRound(ctx context.Context, id domain.RoundID) (domain.Round, error) {
	var out domain.Round
	err := c.do(ctx, http.MethodPost, roundPath(id)+"/signup", nil, &out)
	return out, err
}

// WithdrawRound removes the caller from a round's signup list (volunteer).
func (c *Client) WithdrawRound(ctx context.Context, id domain.RoundID) (domain.Round, error) {
	var out domain.Round
	err := c.do(ctx, http.MethodDelete, roundPath(id)+"/signup", nil, &out)
	return out, err
}

// DrawRound asks the backend to run the round's lottery (admin).
func (c *Client) DrawRound(ctx context.Context, id domain.RoundID) (domain.Round, error) {
	var out domain.Round
	err := c.do(ctx, http.MethodPost, roundPath(id)+"/draw", nil, &out)
	return out, err
}

// DeleteRound removes a round (admin).
func (c *Client) DeleteRound(ctx context.Context, id domain.RoundID) error {
	return c.do(ctx, http.MethodDelete, roundPath(id), nil, nil)
}

// ---------- feedback ----------

// SubmitFeedback rates a delivery.
func (c *Client) SubmitFeedback(ctx context.Context, form domain.FeedbackForm) (domain.Feedback, error) {
	var out domain.Feedback
	err := c.do(ctx, http.MethodPost, "/api/feedback", form, &out)
	return out, err
}

// ListFeedback returns all feedback (admin).
func (c *Client) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	var out []domain.Feedback
	err := c.do(ctx, http.MethodGet, "/api/feedback", nil, &out)
	return out, err
}

// Compile-time assertion that Client implements domain.Backend.
var _ domain.Backend = (*Client)(nil)
