// Package server implements the development blob host.
//
// The host is deliberately dumb: it stores and returns opaque byte blobs
// under client-chosen object names and never inspects their content. All
// confidentiality and integrity guarantees live on the client side; the
// host only enforces bearer-credential authentication and a strict object
// naming scheme.
//
// The package also provides orchestration for the HTTP server lifecycle,
// including startup, signal handling, and graceful shutdown.
package server
