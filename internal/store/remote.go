package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RemoteRepo stores pushed snapshots on the reference sync server. The
// payload is an opaque JSON blob; shape belongs to the sync package.
type RemoteRepo interface {
	// Get returns the stored snapshot for userID, or ok=false if the
	// user has never pushed one.
	Get(ctx context.Context, userID string) (data []byte, ok bool, err error)

	// Put stores the snapshot for userID, replacing any previous one.
	Put(ctx context.Context, userID string, data []byte) error
}

type remoteRepo struct {
	db *sql.DB
}

func (r *remoteRepo) Get(ctx context.Context, userID string) ([]byte, bool, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM remote_snapshots WHERE user_id = ?`, userID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get remote snapshot: %w", err)
	}
	return []byte(data), true, nil
}

func (r *remoteRepo) Put(ctx context.Context, userID string, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO remote_snapshots (user_id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		userID, string(data), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("put remote snapshot: %w", err)
	}
	return nil
}
