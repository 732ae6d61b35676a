// Package user manages backend accounts.
package user
