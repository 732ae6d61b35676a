package devserver

import (
	"math/rand/v2"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supplyline/internal/domain"
)

func (s *Server) listRounds(c *gin.Context) {
	s.mu.Lock()
	out := sortedValues(s.rounds)
	s.mu.Unlock()
	slices.SortStableFunc(out, func(a, b domain.Round) int { return a.StartsAt.Compare(b.StartsAt) })
	respondJSON(c, http.StatusOK, out)
}

func (s *Server) createRound(c *gin.Context) {
	var in domain.NewRound
	if !bind(c, &in) {
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		respondError(c, fail(errInvalidInput, "title required"))
		return
	}
	if in.Capacity <= 0 {
		respondError(c, fail(errInvalidInput, "capacity must be positive"))
		return
	}
	r := &domain.Round{
		ID:       domain.RoundID(uuid.NewString()),
		Title:    in.Title,
		Location: in.Location,
		StartsAt: in.StartsAt.UTC(),
		Capacity: in.Capacity,
		Signups:  []domain.UserID{},
		Status:   domain.RoundOpen,
	}
	s.mu.Lock()
	s.rounds[r.ID] = r
	s.mu.Unlock()
	respondJSON(c, http.StatusCreated, *r)
}

// openRoundLocked looks up a round that still accepts signups. Callers hold s.mu.
func (s *Server) openRoundLocked(c *gin.Context) (*domain.Round, bool) {
	id := domain.RoundID(c.Param("id"))
	r, ok := s.rounds[id]
	if !ok {
		respondError(c, fail(errNotFound, "round %s not found", id))
		return nil, false
	}
	if r.Status != domain.RoundOpen {
		respondError(c, fail(errConflict, "round is %s", r.Status))
		return nil, false
	}
	return r, true
}

func (s *Server) signUpRound(c *gin.Context) {
	u := currentUser(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.openRoundLocked(c)
	if !ok {
		return
	}
	if r.HasSignup(u.ID) {
		respondError(c, fail(errConflict, "already signed up"))
		return
	}
	r.Signups = append(r.Signups, u.ID)
	respondJSON(c, http.StatusOK, *r)
}

func (s *Server) withdrawRound(c *gin.Context) {
	u := currentUser(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.openRoundLocked(c)
	if !ok {
		return
	}
	if !r.HasSignup(u.ID) {
		respondError(c, fail(errConflict, "not signed up"))
		return
	}
	r.Signups = slices.DeleteFunc(r.Signups, func(id domain.UserID) bool { return id == u.ID })
	respondJSON(c, http.StatusOK, *r)
}

// drawRound picks min(capacity, signups) volunteers uniformly at random.
func (s *Server) drawRound(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.openRoundLocked(c)
	if !ok {
		return
	}
	pool := slices.Clone(r.Signups)
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	r.Selected = pool[:min(r.Capacity, len(pool))]
	r.Status = domain.RoundDrawn
	s.log.Noticef("round %s drew %d of %d", r.ID, len(r.Selected), len(r.Signups))
	respondJSON(c, http.StatusOK, *r)
}

func (s *Server) deleteRound(c *gin.Context) {
	id := domain.RoundID(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rounds[id]; !ok {
		respondError(c, fail(errNotFound, "round %s not found", id))
		return
	}
	delete(s.rounds, id)
	respondJSON(c, http.StatusOK, nil)
}
