package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/mathrush/internal/league"
	"github.com/abhisek/mathrush/internal/progress"
	"github.com/abhisek/mathrush/internal/xp"
)

// Snapshot is the full local progression state for one identity.
type Snapshot struct {
	XP       xp.Profile       `json:"xp"`
	Progress progress.Profile `json:"progress"`
	League   league.Profile   `json:"league"`
}

// DefaultSnapshot returns the documented zero-state for a new identity.
func DefaultSnapshot(now time.Time) Snapshot {
	return Snapshot{
		XP:       xp.NewProfile(),
		Progress: progress.NewProfile(),
		League:   league.NewProfile(now),
	}
}

// Profile kinds as stored in the profiles table.
const (
	kindXP       = "xp"
	kindProgress = "progress"
	kindLeague   = "league"
)

// ProfileRepo persists per-identity profile snapshots.
type ProfileRepo interface {
	// Load reads the identity's snapshot. Missing or corrupt rows fall
	// back to defaults; losing unsynced local state is preferable to
	// blocking the user, so Load only fails on storage errors.
	Load(ctx context.Context, identity string, now time.Time) (Snapshot, error)

	// Save writes all three profiles for the identity.
	Save(ctx context.Context, identity string, snap Snapshot) error

	// Delete removes the identity's profiles. Used by the explicit,
	// irreversible user-initiated reset.
	Delete(ctx context.Context, identity string) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Load(ctx context.Context, identity string, now time.Time) (Snapshot, error) {
	snap := DefaultSnapshot(now)

	if err := loadKind(ctx, r.db, identity, kindXP, &snap.XP); err != nil {
		return snap, err
	}
	if err := loadKind(ctx, r.db, identity, kindProgress, &snap.Progress); err != nil {
		return snap, err
	}
	if err := loadKind(ctx, r.db, identity, kindLeague, &snap.League); err != nil {
		return snap, err
	}

	// Guard the caches and invariants even against hand-edited rows.
	snap.XP.Level = xp.LevelFromXP(snap.XP.TotalXP)
	if snap.Progress.ProblemsByTopic == nil {
		snap.Progress.ProblemsByTopic = map[string]int{}
	}
	if snap.Progress.LongestStreak < snap.Progress.CurrentStreak {
		snap.Progress.LongestStreak = snap.Progress.CurrentStreak
	}
	if _, ok := league.ByID(snap.League.CurrentLeague); !ok {
		snap.League = league.NewProfile(now)
	}
	return snap, nil
}

// loadKind unmarshals one profile row into dst. A missing row leaves the
// default in place; a corrupt row is discarded whole with a warning —
// json.Unmarshal keeps decoding past a type mismatch, so decoding into a
// fresh value keeps partially-decoded fields from leaking through.
func loadKind[T any](ctx context.Context, db *sql.DB, identity, kind string, dst *T) error {
	var data string
	err := db.QueryRowContext(ctx,
		`SELECT data FROM profiles WHERE identity = ? AND kind = ?`,
		identity, kind,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s profile: %w", kind, err)
	}

	var decoded T
	if err := json.Unmarshal([]byte(data), &decoded); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt %s profile for %s, using defaults: %v\n", kind, identity, err)
		return nil
	}
	*dst = decoded
	return nil
}

func (r *profileRepo) Save(ctx context.Context, identity string, snap Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	kinds := []struct {
		kind string
		data any
	}{
		{kindXP, snap.XP},
		{kindProgress, snap.Progress},
		{kindLeague, snap.League},
	}
	for _, k := range kinds {
		b, err := json.Marshal(k.data)
		if err != nil {
			return fmt.Errorf("marshal %s profile: %w", k.kind, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO profiles (identity, kind, data, updated_at) VALUES (?, ?, ?, ?)
			 ON CONFLICT (identity, kind) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
			identity, k.kind, string(b), now,
		)
		if err != nil {
			return fmt.Errorf("save %s profile: %w", k.kind, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, identity string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE identity = ?`, identity); err != nil {
		return fmt.Errorf("delete profiles: %w", err)
	}
	return nil
}
