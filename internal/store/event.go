package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Event kinds appended by the engine.
const (
	EventReward   = "reward"
	EventLevelUp  = "level_up"
	EventRollover = "week_rollover"
	EventMastery  = "mastery"
	EventReset    = "reset"
)

// EventRepo provides append access to the per-identity audit trail.
type EventRepo interface {
	// Append records one event. Data is JSON-marshaled.
	Append(ctx context.Context, identity, kind string, data any) error

	// CountByKind returns event counts grouped by kind for an identity.
	CountByKind(ctx context.Context, identity string) (map[string]int, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) Append(ctx context.Context, identity, kind string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO events (identity, kind, data, created_at) VALUES (?, ?, ?, ?)`,
		identity, kind, string(b), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountByKind(ctx context.Context, identity string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, COUNT(*) FROM events WHERE identity = ? GROUP BY kind`, identity,
	)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}
