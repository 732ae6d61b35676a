// Package auth logs in, registers and tracks who is logged in.
//
// Login and registration go over the encrypted channel whenever the key
// exchange can be initialized, and over plaintext JSON otherwise. The
// resulting profile is persisted so later commands can reuse the token.
package auth
