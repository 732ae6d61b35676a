package commands

import (
	"github.com/spf13/cobra"

	"supplyline/internal/app"
	"supplyline/internal/config"
)

var (
	configFile string
	home       string
	serverURL  string
	passphrase string
	noEncrypt  bool
	logLevel   string

	wire *app.Wire
)

// Execute builds the command tree and runs it.
func Execute() {
	executeWithFang(newRootCommand())
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "supplyline",
		Short: "Client for the volunteer medical-supply delivery service",
		Long: `supplyline talks to the delivery service backend. Login and registration
are sent over an ECDH-negotiated AES-GCM channel when the backend offers one,
and as plain JSON otherwise.`,
		Example: `  # Create an account and log in
  supplyline --server http://127.0.0.1:8080 register alice --name "Alice"
  supplyline login alice

  # Place an order for two units of a cargo item
  supplyline order place --address "1 Main St" --item <cargo-id>=2`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			wire, err = app.NewWire(app.Config{Settings: cfg, Passphrase: passphrase})
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&configFile, "config", "c", "", "TOML configuration file")
	f.StringVar(&home, "home", "", "state directory (default ~/.supplyline)")
	f.StringVar(&serverURL, "server", "", "backend base URL (e.g. http://127.0.0.1:8080)")
	f.StringVarP(&passphrase, "passphrase", "p", "", "passphrase sealing the stored login")
	f.BoolVar(&noEncrypt, "no-encrypt", false, "send login and registration as plain JSON")
	f.StringVar(&logLevel, "log-level", "", "log level (ERROR, WARNING, NOTICE, INFO, DEBUG)")

	root.AddCommand(
		handshakeCmd(),
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		orderCmd(),
		cargoCmd(),
		applicationCmd(),
		roundCmd(),
		feedbackCmd(),
		userCmd(),
	)
	return root
}

// loadConfig applies flags on top of the file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("home") {
		cfg.Storage.Home = home
	}
	if flags.Changed("server") {
		cfg.Backend.URL = serverURL
	}
	if noEncrypt {
		cfg.Encryption.Enabled = false
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
