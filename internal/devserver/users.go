package devserver

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"supplyline/internal/domain"
)

// bind decodes a JSON body, answering 400 on failure.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondError(c, fail(errInvalidInput, "malformed request body"))
		return false
	}
	return true
}

// sortedValues returns map values ordered by key.
func sortedValues[K ~string, V any](m map[K]*V) []V {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, *m[k])
	}
	return out
}

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	out := make([]domain.User, 0, len(s.users))
	for _, rec := range s.users {
		out = append(out, rec.user)
	}
	s.mu.Unlock()
	slices.SortFunc(out, func(a, b domain.User) int { return strings.Compare(a.Username.String(), b.Username.String()) })
	respondJSON(c, http.StatusOK, out)
}

func (s *Server) setUserRole(c *gin.Context) {
	var in struct {
		Role domain.Role `json:"role"`
	}
	if !bind(c, &in) {
		return
	}
	if !in.Role.Valid() {
		respondError(c, fail(errInvalidInput, "unknown role %q", in.Role))
		return
	}
	id := domain.UserID(c.Param("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		respondError(c, fail(errNotFound, "user %s not found", id))
		return
	}
	if rec.user.Role == domain.RoleAdmin && in.Role != domain.RoleAdmin && s.adminCountLocked() == 1 {
		respondError(c, fail(errConflict, "cannot demote the last admin"))
		return
	}
	rec.user.Role = in.Role
	respondJSON(c, http.StatusOK, rec.user)
}

func (s *Server) deleteUser(c *gin.Context) {
	id := domain.UserID(c.Param("id"))
	if id == currentUser(c).ID {
		respondError(c, fail(errConflict, "cannot delete your own account"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		respondError(c, fail(errNotFound, "user %s not found", id))
		return
	}
	delete(s.users, id)
	delete(s.byName, rec.user.Username)
	for tok, uid := range s.tokens {
		if uid == id {
			delete(s.tokens, tok)
		}
	}
	respondJSON(c, http.StatusOK, nil)
}

func (s *Server) adminCountLocked() int {
	n := 0
	for _, rec := range s.users {
		if rec.user.Role == domain.RoleAdmin {
			n++
		}
	}
	return n
}
