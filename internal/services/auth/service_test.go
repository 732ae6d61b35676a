package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"supplyline/internal/api"
	"supplyline/internal/crypto"
	"supplyline/internal/devserver"
	"supplyline/internal/domain"
	"supplyline/internal/keyexchange"
	"supplyline/internal/log"
	"supplyline/internal/services/auth"
	"supplyline/internal/store"
)

type harness struct {
	client   *api.Client
	kx       *keyexchange.Client
	profiles *store.ProfileFileStore
	svc      *auth.Service
}

func newHarness(t *testing.T, passphrase string, opts ...auth.Option) *harness {
	t.Helper()
	lb := log.Discard()
	ds, err := devserver.New(devserver.WithLogger(lb.GetLogger("devserver")))
	require.NoError(t, err)
	srv := httptest.NewServer(ds.Handler())
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	h := &harness{
		client:   api.New(srv.URL, srv.Client(), lb.GetLogger("api")),
		profiles: store.NewProfileFileStore(dir),
	}
	h.kx = keyexchange.New(h.client,
		keyexchange.WithStore(store.NewSessionFileStore(dir), srv.URL),
		keyexchange.WithLogger(lb.GetLogger("keyexchange")))
	opts = append(opts, auth.WithLogger(lb.GetLogger("auth")))
	h.svc = auth.New(h.client, h.kx, h.profiles, passphrase, srv.URL, opts...)
	return h
}

func TestRegisterLoginLogout(t *testing.T) {
	h := newHarness(t, "pw")
	ctx := context.Background()

	p, err := h.svc.Register(ctx, domain.Registration{Username: " dana ", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, domain.Username("dana"), p.Username)
	require.Equal(t, domain.RoleAdmin, p.Role)
	require.True(t, h.kx.IsInitialized(), "credentials went over the encrypted channel")

	cur, ok, err := h.svc.Current()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, p.Token, cur.Token)

	_, err = h.svc.Require(domain.RoleClient)
	require.ErrorIs(t, err, domain.ErrRoleDenied)
	require.Contains(t, err.Error(), "run whoami to refresh")
	_, err = h.svc.Require(domain.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, h.svc.Logout())
	require.False(t, h.kx.IsInitialized())
	_, err = h.svc.Require()
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)

	p2, err := h.svc.Login(ctx, domain.Credentials{Username: "dana", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, p.UserID, p2.UserID)
}

func TestLoginFallsBackToPlaintext(t *testing.T) {
	lb := log.Discard()
	ds, err := devserver.New(devserver.WithLogger(lb.GetLogger("devserver")))
	require.NoError(t, err)
	backend := ds.Handler()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/key-exchange") {
			http.NotFound(w, r)
			return
		}
		backend.ServeHTTP(w, r)
	}))
	defer srv.Close()

	client := api.New(srv.URL, srv.Client(), lb.GetLogger("api"))
	kx := keyexchange.New(client, keyexchange.WithLogger(lb.GetLogger("keyexchange")))
	svc := auth.New(client, kx, store.NewProfileFileStore(t.TempDir()), "", srv.URL, auth.WithLogger(lb.GetLogger("auth")))

	p, err := svc.Register(context.Background(), domain.Registration{Username: "eve", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, p.Token)
	require.False(t, kx.IsInitialized())
}

func TestPlaintextOption(t *testing.T) {
	h := newHarness(t, "", auth.WithPlaintext())
	_, err := h.svc.Register(context.Background(), domain.Registration{Username: "finn", Password: "secret1"})
	require.NoError(t, err)
	require.False(t, h.kx.IsInitialized())
}

func TestLoginValidation(t *testing.T) {
	h := newHarness(t, "")
	_, err := h.svc.Login(context.Background(), domain.Credentials{Username: "  "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoginWrongPassword(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()
	_, err := h.svc.Register(ctx, domain.Registration{Username: "gus", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, h.svc.Logout())

	_, err = h.svc.Login(ctx, domain.Credentials{Username: "gus", Password: "nope"})
	require.ErrorIs(t, err, api.ErrUnauthorized)
	_, ok, err := h.svc.Current()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRefreshPicksUpRoleChange(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()

	admin, err := h.client.Register(ctx, domain.Registration{Username: "root", Password: "secret1"})
	require.NoError(t, err)
	p, err := h.svc.Register(ctx, domain.Registration{Username: "hana", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, domain.RoleClient, p.Role)

	h.client.SetToken(admin.Token)
	_, err = h.client.SetUserRole(ctx, p.UserID, domain.RoleVolunteer)
	require.NoError(t, err)
	h.client.SetToken(p.Token)

	p, err = h.svc.Refresh(ctx, h.client)
	require.NoError(t, err)
	require.Equal(t, domain.RoleVolunteer, p.Role)
}

func TestKDFMismatchFailsLogin(t *testing.T) {
	lb := log.Discard()
	ds, err := devserver.New(devserver.WithKDF(crypto.KDFHKDFSHA256), devserver.WithLogger(lb.GetLogger("devserver")))
	require.NoError(t, err)
	srv := httptest.NewServer(ds.Handler())
	defer srv.Close()

	client := api.New(srv.URL, srv.Client(), lb.GetLogger("api"))
	kx := keyexchange.New(client, keyexchange.WithLogger(lb.GetLogger("keyexchange")))
	svc := auth.New(client, kx, store.NewProfileFileStore(t.TempDir()), "", srv.URL, auth.WithLogger(lb.GetLogger("auth")))

	_, err = svc.Register(context.Background(), domain.Registration{Username: "ivy", Password: "secret1"})
	require.Error(t, err)
}
