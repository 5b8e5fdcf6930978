package sync

import (
	"context"
	"fmt"
	"log"
	stdsync "sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/abhisek/mathrush/internal/store"
)

// RemoteService is the transport the Syncer pushes through. *Client is
// the HTTP implementation; tests substitute fakes.
type RemoteService interface {
	Fetch(ctx context.Context, userID string) (*Snapshot, error)
	Push(ctx context.Context, userID string, snap Snapshot) error
}

// Status is the non-blocking sync indicator surfaced to the UI.
type Status struct {
	Pending   bool
	LastSync  time.Time
	LastError error
}

// Syncer reconciles the local snapshot with the remote service. Local
// state stays authoritative and usable whatever the network does; a
// failed attempt leaves the pending flag set and a later cycle retries.
// There is no permanent failure state, only "not yet synced".
type Syncer struct {
	remote   RemoteService
	profiles store.ProfileRepo
	identity string
	now      func() time.Time

	mu      stdsync.Mutex
	pending bool
	last    time.Time
	lastErr error

	sched gocron.Scheduler
}

// NewSyncer creates a Syncer for one identity.
func NewSyncer(remote RemoteService, profiles store.ProfileRepo, identity string) *Syncer {
	return &Syncer{
		remote:   remote,
		profiles: profiles,
		identity: identity,
		now:      time.Now,
	}
}

// MarkPending flags that local mutations exist that the remote has not
// seen. Called by the engine after every persisted mutation.
func (s *Syncer) MarkPending() {
	s.mu.Lock()
	s.pending = true
	s.mu.Unlock()
}

// Status returns the current sync indicator state.
func (s *Syncer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Pending: s.pending, LastSync: s.last, LastError: s.lastErr}
}

// SyncNow runs one full reconcile cycle: fetch remote, merge, persist
// the merged snapshot locally, push it back. Safe to call repeatedly —
// the merge algebra makes at-least-once application harmless.
func (s *Syncer) SyncNow(ctx context.Context) error {
	err := s.syncOnce(ctx)

	s.mu.Lock()
	s.lastErr = err
	if err == nil {
		s.pending = false
		s.last = s.now()
	}
	s.mu.Unlock()
	return err
}

func (s *Syncer) syncOnce(ctx context.Context) error {
	local, err := s.profiles.Load(ctx, s.identity, s.now())
	if err != nil {
		return fmt.Errorf("load local snapshot: %w", err)
	}

	remote, err := s.remote.Fetch(ctx, s.identity)
	if err != nil {
		// Remote unreachable: keep working offline, try again later.
		return fmt.Errorf("fetch remote: %w", err)
	}

	merged := Reconcile(Snapshot{XP: local.XP, Progress: local.Progress}, remote)

	local.XP = merged.XP
	local.Progress = merged.Progress
	if err := s.profiles.Save(ctx, s.identity, local); err != nil {
		return fmt.Errorf("save merged snapshot: %w", err)
	}

	if err := s.remote.Push(ctx, s.identity, merged); err != nil {
		return fmt.Errorf("push merged: %w", err)
	}
	return nil
}

// Start launches the bounded background retry: every interval, run a
// cycle if anything is pending. Replaces the debounced fire-and-forget
// timer this engine grew up with; the schedule is a courtesy, not a
// correctness requirement.
func (s *Syncer) Start(interval time.Duration) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if !s.Status().Pending {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.SyncNow(ctx); err != nil {
				log.Printf("[sync] retry failed: %v", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("schedule sync job: %w", err)
	}

	sched.Start()
	s.sched = sched
	return nil
}

// Stop shuts down the background retry schedule.
func (s *Syncer) Stop() {
	if s.sched != nil {
		_ = s.sched.Shutdown()
	}
}
