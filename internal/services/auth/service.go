package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"gopkg.in/op/go-logging.v1"

	"supplyline/internal/api"
	"supplyline/internal/domain"
)

// Service implements domain.AuthService.
type Service struct {
	backend    domain.AuthBackend
	kx         domain.KeyExchange
	profiles   domain.ProfileStore
	passphrase string
	serverURL  string
	encrypt    bool
	log        *logging.Logger
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithPlaintext disables the encrypted path for login and registration.
func WithPlaintext() Option { return func(s *Service) { s.encrypt = false } }

// WithLogger sets the module logger.
func WithLogger(l *logging.Logger) Option { return func(s *Service) { s.log = l } }

// New constructs an auth Service. passphrase seals the stored profile; ""
// stores it in the clear.
func New(
	backend domain.AuthBackend,
	kx domain.KeyExchange,
	profiles domain.ProfileStore,
	passphrase string,
	serverURL string,
	opts ...Option,
) *Service {
	s := &Service{
		backend:    backend,
		kx:         kx,
		profiles:   profiles,
		passphrase: passphrase,
		serverURL:  serverURL,
		encrypt:    true,
		log:        logging.MustGetLogger("auth"),
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Register creates an account and stores the resulting login.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (domain.AuthProfile, error) {
	reg.Username = domain.Username(strings.TrimSpace(reg.Username.String()))
	if reg.Username == "" || reg.Password == "" {
		return domain.AuthProfile{}, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	var (
		res domain.AuthResult
		err error
	)
	if s.secure(ctx) {
		res, err = s.backend.RegisterEncrypted(ctx, s.kx, reg)
	} else {
		res, err = s.backend.Register(ctx, reg)
	}
	if err != nil {
		return domain.AuthProfile{}, s.checkSession(err)
	}
	return s.remember(res)
}

// Login authenticates and stores the resulting login.
//
// Steps:
//  1. Handshake if no session key is held yet; a failed handshake means plaintext.
//  2. Send the credentials over whichever channel is available.
//  3. Persist the token and role, then hand the token to the backend client.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (domain.AuthProfile, error) {
	creds.Username = domain.Username(strings.TrimSpace(creds.Username.String()))
	if creds.Username == "" || creds.Password == "" {
		return domain.AuthProfile{}, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	var (
		res domain.AuthResult
		err error
	)
	if s.secure(ctx) {
		res, err = s.backend.LoginEncrypted(ctx, s.kx, creds)
	} else {
		res, err = s.backend.Login(ctx, creds)
	}
	if err != nil {
		return domain.AuthProfile{}, s.checkSession(err)
	}
	return s.remember(res)
}

// Logout forgets the stored login and the encryption session.
func (s *Service) Logout() error {
	s.backend.SetToken("")
	s.kx.Reset()
	return s.profiles.DeleteProfile()
}

// Current returns the stored login, if any.
func (s *Service) Current() (domain.AuthProfile, bool, error) {
	return s.profiles.LoadProfile(s.passphrase)
}

// Require returns the stored login if its role is one of roles. No roles
// means any logged-in account.
func (s *Service) Require(roles ...domain.Role) (domain.AuthProfile, error) {
	p, ok, err := s.Current()
	if err != nil {
		return domain.AuthProfile{}, err
	}
	if !ok {
		return domain.AuthProfile{}, domain.ErrNotLoggedIn
	}
	if len(roles) > 0 && !slices.Contains(roles, p.Role) {
		return domain.AuthProfile{}, fmt.Errorf(
			"%w: %s cannot do this (needs %s); if your role changed recently, run whoami to refresh it",
			domain.ErrRoleDenied, p.Role, joinRoles(roles))
	}
	return p, nil
}

// Refresh re-reads the account from the backend and updates the stored
// role, which changes when an application is approved.
func (s *Service) Refresh(ctx context.Context, users domain.UserBackend) (domain.AuthProfile, error) {
	p, err := s.Require()
	if err != nil {
		return domain.AuthProfile{}, err
	}
	me, err := users.Me(ctx)
	if err != nil {
		return domain.AuthProfile{}, err
	}
	if me.Role != p.Role {
		s.log.Noticef("role changed from %s to %s", p.Role, me.Role)
		p.Role = me.Role
		if err := s.profiles.SaveProfile(s.passphrase, p); err != nil {
			return domain.AuthProfile{}, err
		}
	}
	return p, nil
}

func (s *Service) secure(ctx context.Context) bool {
	if !s.encrypt {
		return false
	}
	if s.kx.EnsureInitialized(ctx) {
		return true
	}
	s.log.Warning("sending credentials without the encryption layer")
	return false
}

// checkSession drops the session key once the backend has forgotten it so
// the next encrypted call performs a fresh handshake.
func (s *Service) checkSession(err error) error {
	if errors.Is(err, api.ErrSessionExpired) {
		s.kx.Reset()
		return fmt.Errorf("%w; try again to start a new session", err)
	}
	return err
}

func (s *Service) remember(res domain.AuthResult) (domain.AuthProfile, error) {
	if res.Token == "" {
		return domain.AuthProfile{}, fmt.Errorf("%w: no token in response", api.ErrBadResponse)
	}
	p := domain.AuthProfile{
		ServerURL:   s.serverURL,
		UserID:      res.User.ID,
		Username:    res.User.Username,
		Role:        res.User.Role,
		Token:       res.Token,
		LoggedInUTC: s.now().Unix(),
	}
	if err := s.profiles.SaveProfile(s.passphrase, p); err != nil {
		return domain.AuthProfile{}, err
	}
	s.backend.SetToken(res.Token)
	s.log.Noticef("logged in as %s (%s)", p.Username, p.Role)
	return p, nil
}

func joinRoles(roles []domain.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = r.String()
	}
	return strings.Join(parts, " or ")
}

// Compile-time assertion that Service implements domain.AuthService.
var _ domain.AuthService = (*Service)(nil)
