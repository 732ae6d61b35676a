package app

import (
	"net/http"

	"supplyline/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings   *config.Config // validated configuration
	Passphrase string         // seals the stored profile; "" stores it in the clear
	HTTP       *http.Client   // optional; defaults to a client with the configured timeout
}
