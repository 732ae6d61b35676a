package devserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supplyline/internal/domain"
)

// orderFlow lists the forward-only delivery lifecycle.
var orderFlow = []domain.OrderStatus{
	domain.OrderPending,
	domain.OrderAccepted,
	domain.OrderDelivering,
	domain.OrderDelivered,
}

func flowIndex(st domain.OrderStatus) int {
	for i, s := range orderFlow {
		if s == st {
			return i
		}
	}
	return -1
}

func (s *Server) listOrders(c *gin.Context) {
	u := currentUser(c)
	s.mu.Lock()
	all := sortedValues(s.orders)
	s.mu.Unlock()

	if u.Role != domain.RoleClient {
		respondJSON(c, http.StatusOK, all)
		return
	}
	mine := make([]domain.Order, 0, len(all))
	for _, o := range all {
		if o.ClientID == u.ID {
			mine = append(mine, o)
		}
	}
	respondJSON(c, http.StatusOK, mine)
}

func (s *Server) placeOrder(c *gin.Context) {
	var in domain.NewOrder
	if !bind(c, &in) {
		return
	}
	if strings.TrimSpace(in.Address) == "" {
		respondError(c, fail(errInvalidInput, "address required"))
		return
	}
	if len(in.Items) == 0 {
		respondError(c, fail(errInvalidInput, "order has no items"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	want := map[domain.CargoID]int{}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			respondError(c, fail(errInvalidInput, "quantity for %s must be positive", it.CargoID))
			return
		}
		if _, ok := s.cargo[it.CargoID]; !ok {
			respondError(c, fail(errNotFound, "cargo %s not found", it.CargoID))
			return
		}
		want[it.CargoID] += it.Quantity
	}
	for id, n := range want {
		if item := s.cargo[id]; item.Quantity < n {
			respondError(c, fail(errConflict, "only %d %s in stock", item.Quantity, item.Name))
			return
		}
	}

	now := s.now().UTC()
	items := make([]domain.OrderItem, len(in.Items))
	for i, it := range in.Items {
		item := s.cargo[it.CargoID]
		item.Quantity -= it.Quantity
		item.UpdatedAt = now
		items[i] = domain.OrderItem{CargoID: it.CargoID, Name: item.Name, Quantity: it.Quantity}
	}
	o := &domain.Order{
		ID:        domain.OrderID(uuid.NewString()),
		ClientID:  currentUser(c).ID,
		Items:     items,
		Address:   in.Address,
		Notes:     in.Notes,
		Status:    domain.OrderPending,
		CreatedAt: now,
	}
	s.orders[o.ID] = o
	respondJSON(c, http.StatusCreated, *o)
}

func (s *Server) cancelOrder(c *gin.Context) {
	u := currentUser(c)
	id := domain.OrderID(c.Param("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok || (u.Role == domain.RoleClient && o.ClientID != u.ID) {
		respondError(c, fail(errNotFound, "order %s not found", id))
		return
	}
	if u.Role == domain.RoleVolunteer {
		respondError(c, fail(errForbidden, "volunteers cannot cancel orders"))
		return
	}
	if o.Status != domain.OrderPending {
		respondError(c, fail(errConflict, "order is %s and can no longer be cancelled", o.Status))
		return
	}
	now := s.now().UTC()
	for _, it := range o.Items {
		if item, ok := s.cargo[it.CargoID]; ok {
			item.Quantity += it.Quantity
			item.UpdatedAt = now
		}
	}
	o.Status = domain.OrderCancelled
	respondJSON(c, http.StatusOK, *o)
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var in struct {
		Status domain.OrderStatus `json:"status"`
	}
	if !bind(c, &in) {
		return
	}
	next := flowIndex(in.Status)
	if next < 0 {
		respondError(c, fail(errInvalidInput, "status must be one of accepted, delivering, delivered"))
		return
	}
	id := domain.OrderID(c.Param("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		respondError(c, fail(errNotFound, "order %s not found", id))
		return
	}
	if cur := flowIndex(o.Status); cur < 0 || next <= cur {
		respondError(c, fail(errConflict, "cannot move order from %s to %s", o.Status, in.Status))
		return
	}
	o.Status = in.Status
	respondJSON(c, http.StatusOK, *o)
}
