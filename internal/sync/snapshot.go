package sync

import (
	"github.com/abhisek/mathrush/internal/progress"
	"github.com/abhisek/mathrush/internal/xp"
)

// Snapshot is the sync payload: the XP and activity profiles a device
// exchanges with the remote snapshot service. League state is local-only
// and never synced.
type Snapshot struct {
	XP       xp.Profile       `json:"xp"`
	Progress progress.Profile `json:"progress"`
}

// Reconcile merges a local snapshot with a remote one so that no
// progress from either side is lost. An absent remote (first login, or
// fetch failed) degenerates to local-wins: the local snapshot is merged
// against zero defaults and becomes authoritative.
//
// The merge is symmetric, idempotent, and monotone, so at-least-once
// application across the local/remote boundary is safe without locking.
func Reconcile(local Snapshot, remote *Snapshot) Snapshot {
	if remote == nil {
		r := Snapshot{XP: xp.NewProfile(), Progress: progress.NewProfile()}
		remote = &r
	}
	return Snapshot{
		XP:       xp.Merge(local.XP, remote.XP),
		Progress: progress.Merge(local.Progress, remote.Progress),
	}
}
