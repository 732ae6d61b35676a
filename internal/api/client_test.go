package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"supplyline/internal/api"
	"supplyline/internal/crypto"
	"supplyline/internal/devserver"
	"supplyline/internal/domain"
	"supplyline/internal/keyexchange"
	"supplyline/internal/log"
)

type fixture struct {
	srv    *httptest.Server
	client *api.Client
	kx     *keyexchange.Client
	clock  *time.Time
}

func newFixture(t *testing.T, kdf crypto.KDF) *fixture {
	t.Helper()
	lb := log.Discard()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f := &fixture{clock: &now}

	ds, err := devserver.New(
		devserver.WithKDF(kdf),
		devserver.WithLogger(lb.GetLogger("devserver")),
		devserver.WithSessionTTL(time.Hour),
		devserver.WithClock(func() time.Time { return *f.clock }),
	)
	require.NoError(t, err)
	f.srv = httptest.NewServer(ds.Handler())
	t.Cleanup(f.srv.Close)

	f.client = api.New(f.srv.URL, f.srv.Client(), lb.GetLogger("api"))
	f.kx = keyexchange.New(f.client,
		keyexchange.WithKDF(kdf),
		keyexchange.WithLogger(lb.GetLogger("keyexchange")))
	return f
}

func TestEncryptedRegisterAndLogin(t *testing.T) {
	for _, kdf := range []crypto.KDF{crypto.KDFRaw, crypto.KDFHKDFSHA256} {
		t.Run(string(kdf), func(t *testing.T) {
			f := newFixture(t, kdf)
			ctx := context.Background()
			require.NoError(t, f.kx.Initialize(ctx))

			reg, err := f.client.RegisterEncrypted(ctx, f.kx, domain.Registration{
				Username: "alice", Password: "correct horse", Name: "Alice",
			})
			require.NoError(t, err)
			require.NotEmpty(t, reg.Token)
			require.Equal(t, domain.RoleAdmin, reg.User.Role, "first account administers")

			res, err := f.client.LoginEncrypted(ctx, f.kx, domain.Credentials{Username: "alice", Password: "correct horse"})
			require.NoError(t, err)
			require.Equal(t, reg.User.ID, res.User.ID)

			f.client.SetToken(res.Token)
			me, err := f.client.Me(ctx)
			require.NoError(t, err)
			require.Equal(t, domain.Username("alice"), me.Username)
		})
	}
}

func TestEncryptedLoginBadPassword(t *testing.T) {
	f := newFixture(t, crypto.KDFRaw)
	ctx := context.Background()
	require.NoError(t, f.kx.Initialize(ctx))
	_, err := f.client.RegisterEncrypted(ctx, f.kx, domain.Registration{Username: "bob", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.client.LoginEncrypted(ctx, f.kx, domain.Credentials{Username: "bob", Password: "wrong!!"})
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Contains(t, err.Error(), "invalid username or password")
}

func TestEncryptedWithoutHandshake(t *testing.T) {
	f := newFixture(t, crypto.KDFRaw)
	_, err := f.client.LoginEncrypted(context.Background(), f.kx, domain.Credentials{Username: "x", Password: "y"})
	require.ErrorIs(t, err, api.ErrNoSession)
}

func TestExpiredSessionMapsTo419(t *testing.T) {
	f := newFixture(t, crypto.KDFRaw)
	ctx := context.Background()
	require.NoError(t, f.kx.Initialize(ctx))

	*f.clock = f.clock.Add(2 * time.Hour)
	_, err := f.client.LoginEncrypted(ctx, f.kx, domain.Credentials{Username: "x", Password: "y"})
	require.ErrorIs(t, err, api.ErrSessionExpired)

	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, api.StatusSessionExpired, apiErr.StatusCode)

	f.kx.Reset()
	require.NoError(t, f.kx.Initialize(ctx))
	_, err = f.client.RegisterEncrypted(ctx, f.kx, domain.Registration{Username: "x", Password: "yyyyyy"})
	require.NoError(t, err)
}

func TestPlaintextLoginFallback(t *testing.T) {
	f := newFixture(t, crypto.KDFRaw)
	ctx := context.Background()

	_, err := f.client.Register(ctx, domain.Registration{Username: "carol", Password: "hunter22"})
	require.NoError(t, err)
	_, err = f.client.Register(ctx, domain.Registration{Username: "carol", Password: "hunter22"})
	require.ErrorIs(t, err, api.ErrConflict)

	res, err := f.client.Login(ctx, domain.Credentials{Username: "carol", Password: "hunter22"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
}

func TestUnauthenticatedCalls(t *testing.T) {
	f := newFixture(t, crypto.KDFRaw)
	_, err := f.client.ListOrders(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestEnvelopeRejectedOn2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"error","message":"stock exhausted"}`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, srv.Client(), log.Discard().GetLogger("api"))
	_, err := c.ListCargo(context.Background())
	require.ErrorIs(t, err, api.ErrRejected)
	require.Contains(t, err.Error(), "stock exhausted")
}

func TestNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := api.New(srv.URL, srv.Client(), log.Discard().GetLogger("api"))
	_, err := c.ListRounds(context.Background())
	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "upstream exploded", apiErr.Message)
}

func TestOrderLifecycle(t *testing.T) {
	f := newFixture(t, crypto.KDFRaw)
	ctx := context.Background()

	admin, err := f.client.Register(ctx, domain.Registration{Username: "admin", Password: "adminpw"})
	require.NoError(t, err)
	f.client.SetToken(admin.Token)
	item, err := f.client.CreateCargo(ctx, domain.CargoItem{Name: "Insulin", Quantity: 5, Unit: "vial"})
	require.NoError(t, err)

	cl, err := f.client.Register(ctx, domain.Registration{Username: "client", Password: "clientpw"})
	require.NoError(t, err)
	require.Equal(t, domain.RoleClient, cl.User.Role)
	f.client.SetToken(cl.Token)

	_, err = f.client.PlaceOrder(ctx, domain.NewOrder{
		Items: []domain.OrderItem{{CargoID: item.ID, Quantity: 9}}, Address: "1 Main St",
	})
	require.ErrorIs(t, err, api.ErrConflict)

	o, err := f.client.PlaceOrder(ctx, domain.NewOrder{
		Items: []domain.OrderItem{{CargoID: item.ID, Quantity: 2}}, Address: "1 Main St",
	})
	require.NoError(t, err)
	require.Equal(t, domain.OrderPending, o.Status)
	require.Equal(t, "Insulin", o.Items[0].Name)

	_, err = f.client.UpdateOrderStatus(ctx, o.ID, domain.OrderAccepted)
	require.ErrorIs(t, err, api.ErrForbidden)

	f.client.SetToken(admin.Token)
	o, err = f.client.UpdateOrderStatus(ctx, o.ID, domain.OrderAccepted)
	require.NoError(t, err)
	_, err = f.client.UpdateOrderStatus(ctx, o.ID, domain.OrderPending)
	require.ErrorIs(t, err, api.ErrConflict)
	_, err = f.client.CancelOrder(ctx, o.ID)
	require.ErrorIs(t, err, api.ErrConflict)

	stock, err := f.client.ListCargo(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, stock[0].Quantity)
}

// opaqueCipher seals nothing and can open nothing.
type opaqueCipher struct{}

func (opaqueCipher) IsInitialized() bool { return true }
func (opaqueCipher) SessionID() domain.SessionID { return "s-1" }
func (opaqueCipher) Encrypt(p []byte) (string, error) { return string(p), nil }
func (opaqueCipher) EncryptWithSession(p []byte) (string, domain.SessionID, error) {
	return string(p), "s-1", nil
}

func (opaqueCipher) Decrypt(string) ([]byte, error) { return nil, crypto.ErrDecrypt }

func TestEncryptedPlainEnvelopeAsTextPlain(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusUnauthorized} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "s-1", r.Header.Get(api.HeaderSessionID))
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(code)
				_, _ = w.Write([]byte(`{"status":"error","message":"Invalid credentials"}`))
			}))
			defer srv.Close()

			c := api.New(srv.URL, srv.Client(), log.Discard().GetLogger("api"))
			_, err := c.LoginEncrypted(context.Background(), opaqueCipher{}, domain.Credentials{Username: "u", Password: "p"})

			var apiErr *api.APIError
			require.True(t, errors.As(err, &apiErr), "%v", err)
			require.Equal(t, "Invalid credentials", apiErr.Message)
			require.Equal(t, code, apiErr.StatusCode)
			if code == http.StatusOK {
				require.ErrorIs(t, err, api.ErrRejected)
			} else {
				require.ErrorIs(t, err, api.ErrUnauthorized)
			}
		})
	}
}

func TestEncryptedGarbageReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("not ciphertext"))
	}))
	defer srv.Close()

	c := api.New(srv.URL, srv.Client(), log.Discard().GetLogger("api"))
	_, err := c.LoginEncrypted(context.Background(), opaqueCipher{}, domain.Credentials{Username: "u", Password: "p"})
	require.ErrorIs(t, err, api.ErrBadResponse)
}
