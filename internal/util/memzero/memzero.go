// Package memzero wipes sensitive buffers.
package memzero

import "runtime"

// Zero overwrites b with zeros. Best effort; the runtime may have copied b.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(b)
}
