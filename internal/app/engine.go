// Package app owns the single current snapshot per user identity and
// routes every mutation through the pure progression functions. All
// engine state transitions happen under one lock (single writer per
// identity) and are persisted before the method returns.
package app

import (
	"context"
	"fmt"
	"os"
	stdsync "sync"
	"time"

	"github.com/abhisek/mathrush/internal/league"
	"github.com/abhisek/mathrush/internal/progress"
	"github.com/abhisek/mathrush/internal/reward"
	"github.com/abhisek/mathrush/internal/store"
	"github.com/abhisek/mathrush/internal/xp"
)

// SyncMarker is notified after every persisted mutation so the syncer
// knows local state has moved ahead of the remote.
type SyncMarker interface {
	MarkPending()
}

// Options configures an Engine.
type Options struct {
	Identity string
	Profiles store.ProfileRepo
	Events   store.EventRepo // optional audit trail
	Syncer   SyncMarker      // optional
	Now      func() time.Time
	Rank     func() int // weekly final rank source; defaults to rank 1
}

// Engine applies progression events for one identity.
type Engine struct {
	mu       stdsync.Mutex
	identity string
	profiles store.ProfileRepo
	events   store.EventRepo
	syncer   SyncMarker
	now      func() time.Time
	rank     func() int

	snap store.Snapshot
}

// New loads the identity's snapshot and returns a ready Engine.
func New(ctx context.Context, opts Options) (*Engine, error) {
	e := &Engine{
		identity: opts.Identity,
		profiles: opts.Profiles,
		events:   opts.Events,
		syncer:   opts.Syncer,
		now:      opts.Now,
		rank:     opts.Rank,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.rank == nil {
		// No multi-user leaderboard exists yet; the sole tracked user
		// always finishes the week first.
		e.rank = func() int { return 1 }
	}

	snap, err := e.profiles.Load(ctx, e.identity, e.now())
	if err != nil {
		return nil, fmt.Errorf("load snapshot for %s: %w", e.identity, err)
	}
	e.snap = snap
	return e, nil
}

// Identity returns the identity this engine serves.
func (e *Engine) Identity() string { return e.identity }

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() store.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap
}

// ProblemEvent describes a completed problem as reported by the UI.
type ProblemEvent struct {
	Topic           string
	Accuracy        float64 // percent, 0-100
	Difficulty      reward.Difficulty
	StepsCompleted  int
	Mode            reward.Mode
	DurationSeconds int
}

// ProblemResult is what the UI shows after a completion.
type ProblemResult struct {
	Reward        reward.Reward
	LeveledUp     bool
	NewLevel      int
	CurrentStreak int
}

// ProblemCompleted folds one completed problem into the snapshot:
// reward XP (with mode adjustment and one-time first-in-topic bonus),
// weekly league XP, and activity/streak accounting.
func (e *Engine) ProblemCompleted(ctx context.Context, ev ProblemEvent) (ProblemResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.settleWeek(ctx); err != nil {
		return ProblemResult{}, err
	}

	isFirst := !e.snap.XP.HasFirstProblemIn(ev.Topic)
	r := reward.ForMode(reward.ProblemInput{
		Accuracy:       ev.Accuracy,
		Difficulty:     ev.Difficulty,
		StreakDays:     e.snap.Progress.CurrentStreak,
		StepsCompleted: ev.StepsCompleted,
		IsFirstInTopic: isFirst,
	}, ev.Mode)

	next := e.snap
	if isFirst {
		next.XP = xp.MarkFirstProblem(next.XP, ev.Topic)
	}
	var res xp.ApplyResult
	next.XP, res = xp.ApplyXP(next.XP, r.Total)
	next.League = league.AddWeeklyXP(next.League, r.Total)
	next.Progress = progress.RecordCompletion(next.Progress, ev.Topic, ev.DurationSeconds, e.now())

	if err := e.commit(ctx, next); err != nil {
		return ProblemResult{}, err
	}

	e.appendEvent(ctx, store.EventReward, r)
	if res.LeveledUp {
		e.appendEvent(ctx, store.EventLevelUp, map[string]int{"level": res.NewLevel})
	}
	return ProblemResult{
		Reward:        r,
		LeveledUp:     res.LeveledUp,
		NewLevel:      res.NewLevel,
		CurrentStreak: next.Progress.CurrentStreak,
	}, nil
}

// ArcadeResult is what the UI shows after a speed-drill round.
type ArcadeResult struct {
	Reward    reward.Reward
	LeveledUp bool
	NewLevel  int
}

// ArcadeFinished folds one finished arcade round into the snapshot. The
// round counts as a single completed problem for activity purposes.
func (e *Engine) ArcadeFinished(ctx context.Context, correctAnswers, answerStreak, durationSeconds int) (ArcadeResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.settleWeek(ctx); err != nil {
		return ArcadeResult{}, err
	}

	r := reward.ArithmeticReward(correctAnswers, answerStreak)

	next := e.snap
	var res xp.ApplyResult
	next.XP, res = xp.ApplyXP(next.XP, r.Total)
	next.League = league.AddWeeklyXP(next.League, r.Total)
	next.Progress = progress.RecordCompletion(next.Progress, "arithmetic", durationSeconds, e.now())

	if err := e.commit(ctx, next); err != nil {
		return ArcadeResult{}, err
	}
	e.appendEvent(ctx, store.EventReward, r)
	return ArcadeResult{Reward: r, LeveledUp: res.LeveledUp, NewLevel: res.NewLevel}, nil
}

// MultiplayerFinished awards the win or participation XP for a game.
func (e *Engine) MultiplayerFinished(ctx context.Context, won bool) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.settleWeek(ctx); err != nil {
		return 0, err
	}

	amount := reward.MultiplayerReward(won)

	next := e.snap
	next.XP, _ = xp.ApplyXP(next.XP, amount)
	next.League = league.AddWeeklyXP(next.League, amount)

	if err := e.commit(ctx, next); err != nil {
		return 0, err
	}
	e.appendEvent(ctx, store.EventReward, map[string]int{"total": amount})
	return amount, nil
}

// MasteryAchieved pays the one-time mastery bonus for id. The bonus and
// its paid-marker land in the same committed snapshot, so it stays
// exactly-once for the lifetime of the profile. A repeat call returns
// (0, nil): a normal no-op, not an error.
func (e *Engine) MasteryAchieved(ctx context.Context, kind reward.MasteryKind, id string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.settleWeek(ctx); err != nil {
		return 0, err
	}

	awarded := e.snap.XP.MasteredSubtopics
	if kind == reward.MasteryTopic {
		awarded = e.snap.XP.MasteredTopics
	}
	amount, ok := reward.MasteryReward(kind, id, awarded)
	if !ok {
		return 0, nil
	}

	next := e.snap
	if kind == reward.MasteryTopic {
		next.XP = xp.MarkMasteredTopic(next.XP, id)
	} else {
		next.XP = xp.MarkMasteredSubtopic(next.XP, id)
	}
	next.XP, _ = xp.ApplyXP(next.XP, amount)
	next.League = league.AddWeeklyXP(next.League, amount)

	if err := e.commit(ctx, next); err != nil {
		return 0, err
	}
	e.appendEvent(ctx, store.EventMastery, map[string]any{"kind": kind, "id": id, "amount": amount})
	return amount, nil
}

// CheckWeek settles a pending week boundary, if any. Called on app
// foreground so a rollover isn't deferred until the next completion.
func (e *Engine) CheckWeek(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settleWeek(ctx)
}

// Reset restores the documented default state. Explicit, irreversible,
// user-initiated; the only operation allowed to shrink the profiles.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.commit(ctx, store.DefaultSnapshot(e.now())); err != nil {
		return err
	}
	e.appendEvent(ctx, store.EventReset, nil)
	return nil
}

// settleWeek closes the competitive week if a boundary has passed. The
// rollover is persisted before any weekly XP can be credited to the new
// week. Idempotent within a week. Caller holds the lock.
func (e *Engine) settleWeek(ctx context.Context) error {
	if !league.BoundaryDue(e.now(), e.snap.League.WeekStart) {
		return nil
	}

	next := e.snap
	next.League = league.ProcessWeekEnd(next.League, e.rank(), e.now())
	if err := e.commit(ctx, next); err != nil {
		return fmt.Errorf("settle week: %w", err)
	}

	h := next.League.History[len(next.League.History)-1]
	e.appendEvent(ctx, store.EventRollover, h)
	return nil
}

// commit persists next and makes it the current snapshot. Caller holds
// the lock.
func (e *Engine) commit(ctx context.Context, next store.Snapshot) error {
	if err := e.profiles.Save(ctx, e.identity, next); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	e.snap = next
	if e.syncer != nil {
		e.syncer.MarkPending()
	}
	return nil
}

// appendEvent records an audit event; failures are logged, never fatal.
func (e *Engine) appendEvent(ctx context.Context, kind string, data any) {
	if e.events == nil {
		return
	}
	if err := e.events.Append(ctx, e.identity, kind, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record %s event: %v\n", kind, err)
	}
}
