package app_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"supplyline/internal/api"
	"supplyline/internal/app"
	"supplyline/internal/config"
	"supplyline/internal/devserver"
	"supplyline/internal/domain"
	"supplyline/internal/log"
)

func newBackend(t *testing.T) string {
	t.Helper()
	ds, err := devserver.New(devserver.WithLogger(log.Discard().GetLogger("devserver")))
	require.NoError(t, err)
	srv := httptest.NewServer(ds.Handler())
	t.Cleanup(srv.Close)
	return srv.URL
}

func newWire(t *testing.T, url string) *app.Wire {
	t.Helper()
	cfg := &config.Config{
		Backend:    config.Backend{URL: url},
		Encryption: config.Encryption{Enabled: true},
		Logging:    config.Logging{Disable: true},
		Storage:    config.Storage{Home: t.TempDir()},
	}
	require.NoError(t, cfg.FixupAndValidate())
	w, err := app.NewWire(app.Config{Settings: cfg})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func register(t *testing.T, w *app.Wire, name string) domain.AuthProfile {
	t.Helper()
	p, err := w.Auth.Register(context.Background(), domain.Registration{Username: domain.Username(name), Password: "password"})
	require.NoError(t, err)
	return p
}

func TestVolunteerJourney(t *testing.T) {
	url := newBackend(t)
	ctx := context.Background()

	admin := newWire(t, url)
	require.Equal(t, domain.RoleAdmin, register(t, admin, "admin").Role)

	alex := newWire(t, url)
	register(t, alex, "alex")

	_, err := alex.Applications.Submit(ctx, domain.ApplicationForm{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	a, err := alex.Applications.Submit(ctx, domain.ApplicationForm{Motivation: "I drive a van"})
	require.NoError(t, err)
	_, err = alex.Applications.Submit(ctx, domain.ApplicationForm{Motivation: "again"})
	require.ErrorIs(t, err, api.ErrConflict)

	pending, err := admin.Applications.List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	a, err = admin.Applications.Approve(ctx, a.ID, "welcome")
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationApproved, a.Status)

	_, err = alex.Rounds.SignUp(ctx, "r")
	require.ErrorIs(t, err, domain.ErrRoleDenied, "stored role is stale until refreshed")
	p, err := alex.Auth.Refresh(ctx, alex.Backend)
	require.NoError(t, err)
	require.Equal(t, domain.RoleVolunteer, p.Role)

	r, err := admin.Rounds.Create(ctx, domain.NewRound{Title: "Clinic run", Capacity: 1, StartsAt: time.Now().Add(24 * time.Hour)})
	require.NoError(t, err)
	r, err = alex.Rounds.SignUp(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, r.HasSignup(p.UserID))

	r, err = admin.Rounds.Draw(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoundDrawn, r.Status)
	require.Equal(t, []domain.UserID{p.UserID}, r.Selected)

	_, err = alex.Rounds.Withdraw(ctx, r.ID)
	require.ErrorIs(t, err, api.ErrConflict)
	require.NoError(t, admin.Rounds.Delete(ctx, r.ID))
}

func TestOrderJourney(t *testing.T) {
	url := newBackend(t)
	ctx := context.Background()

	admin := newWire(t, url)
	register(t, admin, "admin")
	bandages, err := admin.Cargo.Create(ctx, domain.CargoItem{Name: "Bandages", Quantity: 10})
	require.NoError(t, err)
	bandages.Quantity = 20
	_, err = admin.Cargo.Update(ctx, bandages)
	require.NoError(t, err)

	cli := newWire(t, url)
	register(t, cli, "cli")
	o, err := cli.Orders.Place(ctx, domain.NewOrder{
		Address: "2 Side St",
		Items:   []domain.OrderItem{{CargoID: bandages.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	mine, err := cli.Orders.ListMine(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	for _, st := range []domain.OrderStatus{domain.OrderAccepted, domain.OrderDelivering, domain.OrderDelivered} {
		o, err = admin.Orders.UpdateStatus(ctx, o.ID, st)
		require.NoError(t, err)
	}
	require.Equal(t, domain.OrderDelivered, o.Status)

	_, err = cli.Orders.Cancel(ctx, o.ID)
	require.Error(t, err)

	_, err = cli.Feedback.Submit(ctx, domain.FeedbackForm{OrderID: o.ID, Rating: 6})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = cli.Feedback.Submit(ctx, domain.FeedbackForm{OrderID: o.ID, Rating: 5, Comment: "fast"})
	require.NoError(t, err)

	fb, err := admin.Feedback.List(ctx)
	require.NoError(t, err)
	require.Len(t, fb, 1)
	require.Equal(t, 5, fb[0].Rating)

	stock, err := cli.Cargo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 16, stock[0].Quantity)

	users, err := admin.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	_, err = cli.Users.List(ctx)
	require.ErrorIs(t, err, domain.ErrRoleDenied)
}

func TestWireRestoresStoredLogin(t *testing.T) {
	url := newBackend(t)
	cfg := &config.Config{
		Backend:    config.Backend{URL: url},
		Encryption: config.Encryption{Enabled: false},
		Logging:    config.Logging{Disable: true},
		Storage:    config.Storage{Home: t.TempDir()},
	}
	require.NoError(t, cfg.FixupAndValidate())

	w1, err := app.NewWire(app.Config{Settings: cfg, Passphrase: "pp"})
	require.NoError(t, err)
	register(t, w1, "root")
	require.False(t, w1.KeyExchange.IsInitialized())
	require.NoError(t, w1.Close())

	w2, err := app.NewWire(app.Config{Settings: cfg, Passphrase: "pp"})
	require.NoError(t, err)
	defer w2.Close()
	me, err := w2.Users.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.Username("root"), me.Username)
}
