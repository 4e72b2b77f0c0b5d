package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// eventRepo implements EventRepo on the study_events table.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) Append(ctx context.Context, ev StudyEvent) error {
	ev.ID = uuid.NewString()
	if ev.HappenedAt.IsZero() {
		ev.HappenedAt = time.Now()
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO study_events (id, happened_at, event_type, payload) VALUES (?, ?, ?, ?)`,
		ev.ID, ev.HappenedAt.UTC().Format(time.RFC3339), ev.Type, string(payload))
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

func (r *eventRepo) Recent(ctx context.Context, limit int) ([]StudyEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT payload FROM study_events ORDER BY happened_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []StudyEvent
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		var ev StudyEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			return nil, fmt.Errorf("unmarshal event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *eventRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_events`); err != nil {
		return fmt.Errorf("delete events: %w", err)
	}
	return nil
}
