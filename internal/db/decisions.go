package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/decision-engine/internal/types"
)

// SaveDecision stores a serialized result bundle and returns its id. The
// bundle JSON is stored verbatim so replays see byte-identical data.
func (db *DB) SaveDecision(ctx context.Context, caller, company string, score float64, bundle *types.ResultBundle) (uuid.UUID, error) {
	content, err := json.Marshal(bundle)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal bundle: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO decisions (caller, company, score, bundle)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		caller, company, score, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save decision: %w", err)
	}
	return id, nil
}

// GetDecision retrieves the raw bundle JSON for a decision. Returns nil
// bytes when no decision with the id exists. The caller is expected to
// structurally validate the payload before use (it re-enters the pipeline
// from persistence).
func (db *DB) GetDecision(ctx context.Context, id uuid.UUID) (json.RawMessage, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT bundle FROM decisions WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get decision %s: %w", id, err)
	}
	return content, nil
}

// ListDecisions returns the most recent decision ids for a caller label,
// newest first.
func (db *DB) ListDecisions(ctx context.Context, caller string, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id FROM decisions WHERE caller = $1 ORDER BY created_at DESC LIMIT $2`,
		caller, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan decision id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
