package devserver

import (
	"crypto/rand"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"

	"supplyline/internal/domain"
)

const minPasswordLength = 6

func hashPassword(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, 1, 8*1024, 1, 32)
}

func (s *Server) register(c *gin.Context) {
	var reg domain.Registration
	x, ok := s.openExchange(c, &reg)
	if !ok {
		return
	}
	reg.Username = domain.Username(strings.TrimSpace(reg.Username.String()))
	if reg.Username == "" {
		x.fail(fail(errInvalidInput, "username required"))
		return
	}
	if len(reg.Password) < minPasswordLength {
		x.fail(fail(errInvalidInput, "password must be at least %d characters", minPasswordLength))
		return
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		x.fail(err)
		return
	}
	hash := hashPassword(reg.Password, salt)

	s.mu.Lock()
	if _, taken := s.byName[reg.Username]; taken {
		s.mu.Unlock()
		x.fail(fail(errConflict, "username %q is already taken", reg.Username))
		return
	}
	role := domain.RoleClient
	if len(s.users) == 0 {
		role = domain.RoleAdmin
	}
	u := domain.User{
		ID:       domain.UserID(uuid.NewString()),
		Username: reg.Username,
		Name:     reg.Name,
		Email:    reg.Email,
		Phone:    reg.Phone,
		Role:     role,
	}
	s.users[u.ID] = &userRecord{user: u, salt: salt, hash: hash}
	s.byName[u.Username] = u.ID
	tok := uuid.NewString()
	s.tokens[tok] = u.ID
	s.mu.Unlock()

	s.log.Noticef("registered %s as %s", u.Username, u.Role)
	x.reply(http.StatusCreated, domain.AuthResult{Token: tok, User: u})
}

func (s *Server) login(c *gin.Context) {
	var creds domain.Credentials
	x, ok := s.openExchange(c, &creds)
	if !ok {
		return
	}

	s.mu.Lock()
	id, known := s.byName[creds.Username]
	rec := s.users[id]
	s.mu.Unlock()
	if !known || rec == nil ||
		subtle.ConstantTimeCompare(hashPassword(creds.Password, rec.salt), rec.hash) != 1 {
		x.fail(fail(errUnauthenticated, "invalid username or password"))
		return
	}

	tok := uuid.NewString()
	s.mu.Lock()
	s.tokens[tok] = id
	u := s.users[id].user
	s.mu.Unlock()

	x.reply(http.StatusOK, domain.AuthResult{Token: tok, User: u})
}

func (s *Server) me(c *gin.Context) {
	respondJSON(c, http.StatusOK, currentUser(c))
}
