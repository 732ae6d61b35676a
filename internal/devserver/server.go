package devserver

import (
	"crypto/ecdh"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/op/go-logging.v1"

	"supplyline/internal/crypto"
	"supplyline/internal/domain"
)

const (
	ctxUser = "devserver.user"

	defaultSessionTTL = 30 * time.Minute
)

type userRecord struct {
	user domain.User
	salt []byte
	hash []byte
}

type session struct {
	key     []byte
	created time.Time
}

// Server is the in-memory backend.
type Server struct {
	priv       *ecdh.PrivateKey
	kdf        crypto.KDF
	spki       bool
	sessionTTL time.Duration
	log        *logging.Logger
	now        func() time.Time

	mu           sync.Mutex
	users        map[domain.UserID]*userRecord
	byName       map[domain.Username]domain.UserID
	tokens       map[string]domain.UserID
	sessions     map[domain.SessionID]session
	orders       map[domain.OrderID]*domain.Order
	cargo        map[domain.CargoID]*domain.CargoItem
	applications map[domain.ApplicationID]*domain.Application
	rounds       map[domain.RoundID]*domain.Round
	feedback     map[domain.FeedbackID]*domain.Feedback
}

// Option configures a Server.
type Option func(*Server)

// WithKDF selects the session key derivation; clients must match it.
func WithKDF(kdf crypto.KDF) Option { return func(s *Server) { s.kdf = kdf } }

// WithSPKI publishes the server key as SPKI DER instead of a raw point.
func WithSPKI(on bool) Option { return func(s *Server) { s.spki = on } }

// WithSessionTTL bounds how long an encryption session is accepted.
func WithSessionTTL(d time.Duration) Option { return func(s *Server) { s.sessionTTL = d } }

// WithLogger sets the module logger.
func WithLogger(l *logging.Logger) Option { return func(s *Server) { s.log = l } }

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// New returns an empty Server with a fresh ECDH key.
func New(opts ...Option) (*Server, error) {
	priv, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	s := &Server{
		priv:         priv,
		kdf:          crypto.KDFRaw,
		sessionTTL:   defaultSessionTTL,
		log:          logging.MustGetLogger("devserver"),
		now:          time.Now,
		users:        map[domain.UserID]*userRecord{},
		byName:       map[domain.Username]domain.UserID{},
		tokens:       map[string]domain.UserID{},
		sessions:     map[domain.SessionID]session{},
		orders:       map[domain.OrderID]*domain.Order{},
		cargo:        map[domain.CargoID]*domain.CargoItem{},
		applications: map[domain.ApplicationID]*domain.Application{},
		rounds:       map[domain.RoundID]*domain.Round{},
		feedback:     map[domain.FeedbackID]*domain.Feedback{},
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Handler builds the gin router.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())

	r.GET("/healthz", func(c *gin.Context) { respondJSON(c, http.StatusOK, gin.H{"time": s.now().UTC()}) })

	api := r.Group("/api")
	api.GET("/key-exchange/public-key", s.serverKey)
	api.POST("/key-exchange", s.exchangeKeys)
	api.POST("/auth/login", s.login)
	api.POST("/auth/register", s.register)

	authed := api.Group("", s.authenticate())
	admin := requireRole(domain.RoleAdmin)
	client := requireRole(domain.RoleClient)
	volunteer := requireRole(domain.RoleVolunteer)
	staff := requireRole(domain.RoleVolunteer, domain.RoleAdmin)

	authed.GET("/users/me", s.me)
	authed.GET("/users", admin, s.listUsers)
	authed.PUT("/users/:id/role", admin, s.setUserRole)
	authed.DELETE("/users/:id", admin, s.deleteUser)

	authed.GET("/orders", s.listOrders)
	authed.POST("/orders", client, s.placeOrder)
	authed.POST("/orders/:id/cancel", s.cancelOrder)
	authed.PUT("/orders/:id/status", staff, s.updateOrderStatus)

	authed.GET("/cargo", s.listCargo)
	authed.POST("/cargo", admin, s.createCargo)
	authed.PUT("/cargo/:id", admin, s.updateCargo)
	authed.DELETE("/cargo/:id", admin, s.deleteCargo)

	authed.POST("/applications", client, s.submitApplication)
	authed.GET("/applications", s.listApplications)
	authed.POST("/applications/:id/approve", admin, s.reviewApplication(true))
	authed.POST("/applications/:id/reject", admin, s.reviewApplication(false))

	authed.GET("/rounds", s.listRounds)
	authed.POST("/rounds", admin, s.createRound)
	authed.POST("/rounds/:id/signup", volunteer, s.signUpRound)
	authed.DELETE("/rounds/:id/signup", volunteer, s.withdrawRound)
	authed.POST("/rounds/:id/draw", admin, s.drawRound)
	authed.DELETE("/rounds/:id", admin, s.deleteRound)

	authed.POST("/feedback", client, s.submitFeedback)
	authed.GET("/feedback", admin, s.listFeedback)

	return r
}

// accessLog records method, path, status, bytes and duration.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := s.now()
		c.Next()
		s.log.Infof("%s %s %s %d %dB %s",
			c.Request.Method, c.Request.URL.Path, c.ClientIP(),
			c.Writer.Status(), c.Writer.Size(), s.now().Sub(start).Round(time.Microsecond))
	}
}

// authenticate resolves the bearer token to a user.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || tok == "" {
			respondError(c, fail(errUnauthenticated, "login required"))
			return
		}
		s.mu.Lock()
		id, ok := s.tokens[tok]
		var u domain.User
		if rec, exists := s.users[id]; ok && exists {
			u = rec.user
		} else {
			ok = false
		}
		s.mu.Unlock()
		if !ok {
			respondError(c, fail(errUnauthenticated, "session token is not valid; log in again"))
			return
		}
		c.Set(ctxUser, u)
		c.Next()
	}
}

func requireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		for _, r := range roles {
			if u.Role == r {
				c.Next()
				return
			}
		}
		respondError(c, fail(errForbidden, "role %s may not perform this action", u.Role))
	}
}

func currentUser(c *gin.Context) domain.User {
	v, _ := c.Get(ctxUser)
	u, _ := v.(domain.User)
	return u
}
