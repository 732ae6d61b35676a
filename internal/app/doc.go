// Package app wires application dependencies for the CLI.
//
// It builds the log backend, file stores, backend client, key exchange and
// the role-gated services from a validated config.Config, exposing them via
// the Wire struct for commands to use.
package app
