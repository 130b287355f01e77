package service

import "errors"

var (
	// ErrNotInitialized is returned when a sealing or sync operation runs
	// before the root key has been set.
	ErrNotInitialized = errors.New("root key is not set")

	// ErrSyncInProgress is returned when a sync cycle is requested while
	// another one is still running on the same engine.
	ErrSyncInProgress = errors.New("sync cycle already in progress")

	// ErrRollbackDetected is returned when the remote index carries a
	// counter lower than the last value this device observed. The remote
	// state must never be merged in that case.
	ErrRollbackDetected = errors.New("remote index rollback detected")

	// ErrRemoteChanged is returned by Push when another device advanced
	// the remote counter since this device last pulled. The caller should
	// pull, merge, and push again.
	ErrRemoteChanged = errors.New("remote index changed since last pull")
)
