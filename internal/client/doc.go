// Package client implements the headless client application runtime.
//
// It wires configuration, the local sqlite store, the remote blob adapter,
// the crypto and sync services, and the device-linking handshake into a
// single process lifecycle. The root key is loaded from (or generated into)
// a key file on first run; all vault content crossing the process boundary
// is sealed under that key.
package client
