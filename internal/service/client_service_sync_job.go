package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/gitvault/internal/logger"
)

type clientSyncJob struct {
	engine SyncEngine

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls engine.FullSync on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(engine SyncEngine) SyncJob {
	return &clientSyncJob{engine: engine}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that calls FullSync every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) runOnce(ctx context.Context) {
	log := logger.FromContext(ctx)

	err := j.engine.FullSync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrSyncInProgress):
		log.Debug().Msg("previous sync cycle still running, skipping tick")
	case errors.Is(err, ErrRemoteChanged):
		// another device pushed between our pull and push; the next tick
		// pulls the new state first
		log.Info().Msg("remote advanced during sync, retrying next tick")
	default:
		log.Warn().Err(err).Msg("background sync failed")
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
