package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSyncEngine struct {
	calls  atomic.Int64
	result error
	synced chan struct{}
}

func newStubSyncEngine(result error) *stubSyncEngine {
	return &stubSyncEngine{result: result, synced: make(chan struct{}, 16)}
}

func (s *stubSyncEngine) Pull(context.Context) error { return nil }
func (s *stubSyncEngine) Push(context.Context) error { return nil }

func (s *stubSyncEngine) FullSync(context.Context) error {
	s.calls.Add(1)
	select {
	case s.synced <- struct{}{}:
	default:
	}
	return s.result
}

func TestSyncJob_RunsPeriodically(t *testing.T) {
	engine := newStubSyncEngine(nil)
	job := NewClientSyncJob(engine)

	job.Start(testCtx(), 10*time.Millisecond)
	defer job.Stop()

	select {
	case <-engine.synced:
	case <-time.After(2 * time.Second):
		t.Fatal("expected FullSync to be called by the background job")
	}
}

func TestSyncJob_StopTerminatesJob(t *testing.T) {
	engine := newStubSyncEngine(nil)
	job := NewClientSyncJob(engine)

	job.Start(testCtx(), 10*time.Millisecond)

	select {
	case <-engine.synced:
	case <-time.After(2 * time.Second):
		t.Fatal("expected at least one sync before Stop")
	}

	job.Stop()
	callsAtStop := engine.calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, callsAtStop, engine.calls.Load(), "no syncs should run after Stop")
}

func TestSyncJob_StopWithoutStart(t *testing.T) {
	job := NewClientSyncJob(newStubSyncEngine(nil))

	require.NotPanics(t, job.Stop)
}

func TestSyncJob_SurvivesSyncErrors(t *testing.T) {
	engine := newStubSyncEngine(ErrRemoteChanged)
	job := NewClientSyncJob(engine)

	job.Start(testCtx(), 10*time.Millisecond)
	defer job.Stop()

	// errors do not kill the ticker loop
	for i := 0; i < 2; i++ {
		select {
		case <-engine.synced:
		case <-time.After(2 * time.Second):
			t.Fatal("expected the job to keep syncing after an error")
		}
	}
}

func TestSyncJob_RestartReplacesPreviousJob(t *testing.T) {
	engine := newStubSyncEngine(nil)
	job := NewClientSyncJob(engine)

	job.Start(testCtx(), 10*time.Millisecond)
	job.Start(testCtx(), 10*time.Millisecond)
	defer job.Stop()

	select {
	case <-engine.synced:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the restarted job to sync")
	}
}
