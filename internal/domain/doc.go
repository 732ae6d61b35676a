// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (wire/state) and contracts (interfaces) only; the
// definitions live in the types and interfaces subpackages and are re-exported
// here under short names.
package domain
