// Command devserver runs the in-memory delivery backend for local use.
//
// It speaks the same REST and key-exchange endpoints the supplyline CLI
// expects, keeping everything in memory. The first account registered
// becomes an admin.
package main
