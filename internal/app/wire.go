package app

import (
	"errors"
	"net/http"

	"supplyline/internal/api"
	"supplyline/internal/crypto"
	"supplyline/internal/domain"
	"supplyline/internal/keyexchange"
	"supplyline/internal/log"
	applicationsvc "supplyline/internal/services/application"
	authsvc "supplyline/internal/services/auth"
	cargosvc "supplyline/internal/services/cargo"
	feedbacksvc "supplyline/internal/services/feedback"
	ordersvc "supplyline/internal/services/order"
	roundsvc "supplyline/internal/services/round"
	usersvc "supplyline/internal/services/user"
	"supplyline/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Log          *log.Backend
	Sessions     domain.SessionStore
	Profiles     domain.ProfileStore
	Backend      *api.Client
	KeyExchange  *keyexchange.Client
	Auth         *authsvc.Service
	Users        domain.UserService
	Orders       domain.OrderService
	Cargo        domain.CargoService
	Applications domain.ApplicationService
	Rounds       domain.RoundService
	Feedback     domain.FeedbackService
	HTTP         *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	s := cfg.Settings
	if s == nil {
		return nil, errors.New("app: no configuration")
	}

	logBackend, err := log.New(s.Logging.File, s.Logging.Level, s.Logging.Disable)
	if err != nil {
		return nil, err
	}

	// File-based stores
	sessionStore := store.NewSessionFileStore(s.Storage.Home)
	profileStore := store.NewProfileFileStore(s.Storage.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: s.Backend.RequestTimeout()}
	}

	backend := api.New(s.Backend.URL, httpClient, logBackend.GetLogger("api"))
	kx := keyexchange.New(backend,
		keyexchange.WithStore(sessionStore, s.Backend.URL),
		keyexchange.WithKDF(crypto.KDF(s.Encryption.KDF)),
		keyexchange.WithLogger(logBackend.GetLogger("keyexchange")),
	)

	authOpts := []authsvc.Option{authsvc.WithLogger(logBackend.GetLogger("auth"))}
	if !s.Encryption.Enabled {
		authOpts = append(authOpts, authsvc.WithPlaintext())
	}
	auth := authsvc.New(backend, kx, profileStore, cfg.Passphrase, s.Backend.URL, authOpts...)

	w := &Wire{
		Log:          logBackend,
		Sessions:     sessionStore,
		Profiles:     profileStore,
		Backend:      backend,
		KeyExchange:  kx,
		Auth:         auth,
		Users:        usersvc.New(auth, backend),
		Orders:       ordersvc.New(auth, backend),
		Cargo:        cargosvc.New(auth, backend),
		Applications: applicationsvc.New(auth, backend),
		Rounds:       roundsvc.New(auth, backend),
		Feedback:     feedbacksvc.New(auth, backend),
		HTTP:         httpClient,
	}
	w.restoreLogin()
	return w, nil
}
