package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"supplyline/internal/crypto"
	"supplyline/internal/devserver"
	"supplyline/internal/log"
)

// Config holds the command line configuration.
type Config struct {
	Listen     string
	KDF        string
	SPKI       bool
	SessionTTL time.Duration
	LogLevel   string
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(versioninfo.Short()),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "devserver",
		Short: "In-memory delivery backend for local development",
		Example: `  # Serve on the default address with the raw KDF
  devserver

  # Match a client configured for HKDF and publish the key as SPKI
  devserver --kdf hkdf-sha256 --spki`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Listen, "listen", "l", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&cfg.KDF, "kdf", string(crypto.KDFRaw), "session key derivation (raw, hkdf-sha256)")
	cmd.Flags().BoolVar(&cfg.SPKI, "spki", false, "publish the server key as SPKI DER instead of a raw point")
	cmd.Flags().DurationVar(&cfg.SessionTTL, "session-ttl", 30*time.Minute, "lifetime of an encryption session")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", "INFO", "logging level (ERROR, WARNING, NOTICE, INFO, DEBUG)")
	return cmd
}

func run(ctx context.Context, cfg Config) error {
	kdf := crypto.KDF(cfg.KDF)
	if !kdf.Valid() {
		return errors.New("invalid argument --kdf: use raw or hkdf-sha256")
	}

	logBackend, err := log.New("", cfg.LogLevel, false)
	if err != nil {
		return err
	}
	defer logBackend.Close()
	l := logBackend.GetLogger("devserver")

	srv, err := devserver.New(
		devserver.WithKDF(kdf),
		devserver.WithSPKI(cfg.SPKI),
		devserver.WithSessionTTL(cfg.SessionTTL),
		devserver.WithLogger(l),
	)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Noticef("listening on %s (kdf %s)", cfg.Listen, kdf)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	case <-ctx.Done():
	}

	l.Notice("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
