package devserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supplyline/internal/domain"
)

func (s *Server) submitApplication(c *gin.Context) {
	var form domain.ApplicationForm
	if !bind(c, &form) {
		return
	}
	if strings.TrimSpace(form.Motivation) == "" {
		respondError(c, fail(errInvalidInput, "motivation required"))
		return
	}
	u := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.applications {
		if a.UserID == u.ID && a.Status == domain.ApplicationPending {
			respondError(c, fail(errConflict, "an application is already pending"))
			return
		}
	}
	a := &domain.Application{
		ID:           domain.ApplicationID(uuid.NewString()),
		UserID:       u.ID,
		Username:     u.Username,
		Motivation:   form.Motivation,
		Availability: form.Availability,
		Status:       domain.ApplicationPending,
		SubmittedAt:  s.now().UTC(),
	}
	s.applications[a.ID] = a
	respondJSON(c, http.StatusCreated, *a)
}

func (s *Server) listApplications(c *gin.Context) {
	u := currentUser(c)
	s.mu.Lock()
	all := sortedValues(s.applications)
	s.mu.Unlock()

	if u.Role == domain.RoleAdmin {
		respondJSON(c, http.StatusOK, all)
		return
	}
	mine := make([]domain.Application, 0, 1)
	for _, a := range all {
		if a.UserID == u.ID {
			mine = append(mine, a)
		}
	}
	respondJSON(c, http.StatusOK, mine)
}

func (s *Server) reviewApplication(approve bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Note string `json:"note"`
		}
		if c.Request.ContentLength != 0 && !bind(c, &in) {
			return
		}
		id := domain.ApplicationID(c.Param("id"))

		s.mu.Lock()
		defer s.mu.Unlock()
		a, ok := s.applications[id]
		if !ok {
			respondError(c, fail(errNotFound, "application %s not found", id))
			return
		}
		if a.Status != domain.ApplicationPending {
			respondError(c, fail(errConflict, "application was already %s", a.Status))
			return
		}
		a.ReviewNote = in.Note
		a.Status = domain.ApplicationRejected
		if approve {
			a.Status = domain.ApplicationApproved
			if rec, ok := s.users[a.UserID]; ok && rec.user.Role == domain.RoleClient {
				rec.user.Role = domain.RoleVolunteer
			}
		}
		s.log.Noticef("application %s %s", a.ID, a.Status)
		respondJSON(c, http.StatusOK, *a)
	}
}
