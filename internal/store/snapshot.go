package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anandk/termquest/internal/progress"
)

// snapshotRepo implements SnapshotRepo on the progress_snapshots table.
type snapshotRepo struct {
	db *sql.DB
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress_snapshots (taken_at, data) VALUES (?, ?)`,
		snap.TakenAt.UTC().Format(time.RFC3339), string(data))
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, taken_at, data FROM progress_snapshots ORDER BY id DESC LIMIT 1`)

	var (
		id      int
		takenAt string
		raw     string
	)
	if err := row.Scan(&id, &takenAt, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	// Missing newer fields backfill from the zero value; Normalize
	// allocates any nil collections so the snapshot is safe to use.
	var data progress.UserProgress
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}

	t, err := time.Parse(time.RFC3339, takenAt)
	if err != nil {
		return nil, fmt.Errorf("parse taken_at: %w", err)
	}

	return &Snapshot{ID: id, TakenAt: t, Data: data.Normalize()}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM progress_snapshots WHERE id NOT IN (
			SELECT id FROM progress_snapshots ORDER BY id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// DeleteAllSnapshots clears snapshot history (used by reset).
func (s *Store) DeleteAllSnapshots(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM progress_snapshots`); err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	return nil
}
