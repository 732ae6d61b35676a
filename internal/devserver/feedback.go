package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supplyline/internal/domain"
)

func (s *Server) submitFeedback(c *gin.Context) {
	var form domain.FeedbackForm
	if !bind(c, &form) {
		return
	}
	if form.Rating < 1 || form.Rating > 5 {
		respondError(c, fail(errInvalidInput, "rating must be between 1 and 5"))
		return
	}
	u := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	if form.OrderID != "" {
		o, ok := s.orders[form.OrderID]
		if !ok || o.ClientID != u.ID {
			respondError(c, fail(errNotFound, "order %s not found", form.OrderID))
			return
		}
	}
	f := &domain.Feedback{
		ID:        domain.FeedbackID(uuid.NewString()),
		UserID:    u.ID,
		OrderID:   form.OrderID,
		Rating:    form.Rating,
		Comment:   form.Comment,
		CreatedAt: s.now().UTC(),
	}
	s.feedback[f.ID] = f
	respondJSON(c, http.StatusCreated, *f)
}

func (s *Server) listFeedback(c *gin.Context) {
	s.mu.Lock()
	out := sortedValues(s.feedback)
	s.mu.Unlock()
	respondJSON(c, http.StatusOK, out)
}
