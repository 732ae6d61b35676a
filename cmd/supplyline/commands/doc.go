// Package commands defines the supplyline CLI and wires dependencies for subcommands.
//
// Commands
//
//   - handshake      Negotiate an encryption session with the backend
//   - register       Create an account
//   - login          Log in and store the token
//   - logout         Forget the stored login and session
//   - whoami         Show the logged-in account, refreshing its role
//   - order          Place, list, cancel and advance delivery orders
//   - cargo          Inspect and manage the inventory
//   - application    Apply to volunteer; review applications
//   - round          Volunteer rounds and their lottery
//   - feedback       Rate deliveries; read ratings
//   - user           Manage accounts
//
// # Implementation
//
// The root command loads the configuration (defaults, TOML file, environment,
// then flags) and builds the dependency graph before any subcommand runs, so
// handlers share one backend client, key exchange and set of services.
package commands
