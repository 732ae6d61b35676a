package devserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supplyline/internal/domain"
)

func validCargo(item domain.CargoItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fail(errInvalidInput, "name required")
	}
	if item.Quantity < 0 {
		return fail(errInvalidInput, "quantity cannot be negative")
	}
	return nil
}

func (s *Server) listCargo(c *gin.Context) {
	s.mu.Lock()
	out := sortedValues(s.cargo)
	s.mu.Unlock()
	respondJSON(c, http.StatusOK, out)
}

func (s *Server) createCargo(c *gin.Context) {
	var item domain.CargoItem
	if !bind(c, &item) {
		return
	}
	if err := validCargo(item); err != nil {
		respondError(c, err)
		return
	}
	item.ID = domain.CargoID(uuid.NewString())
	item.UpdatedAt = s.now().UTC()

	s.mu.Lock()
	s.cargo[item.ID] = &item
	s.mu.Unlock()
	respondJSON(c, http.StatusCreated, item)
}

func (s *Server) updateCargo(c *gin.Context) {
	var item domain.CargoItem
	if !bind(c, &item) {
		return
	}
	if err := validCargo(item); err != nil {
		respondError(c, err)
		return
	}
	item.ID = domain.CargoID(c.Param("id"))
	item.UpdatedAt = s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cargo[item.ID]; !ok {
		respondError(c, fail(errNotFound, "cargo %s not found", item.ID))
		return
	}
	s.cargo[item.ID] = &item
	respondJSON(c, http.StatusOK, item)
}

func (s *Server) deleteCargo(c *gin.Context) {
	id := domain.CargoID(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cargo[id]; !ok {
		respondError(c, fail(errNotFound, "cargo %s not found", id))
		return
	}
	delete(s.cargo, id)
	respondJSON(c, http.StatusOK, nil)
}
