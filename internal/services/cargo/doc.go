// Package cargo manages the medical-supply inventory.
package cargo
