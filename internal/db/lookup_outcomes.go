package db

import (
	"context"
	"fmt"

	"agelookup/internal/models"
)

// IncrementLookupOutcome upserts the count for a lookup outcome.
func (d *DB) IncrementLookupOutcome(ctx context.Context, outcome string) error {
	if outcome == "" {
		return ErrInvalidOutcome
	}
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO lookup_outcomes (outcome, count, last_seen_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (outcome) DO UPDATE
		SET count = lookup_outcomes.count + 1, last_seen_at = NOW()
	`, outcome)
	if err != nil {
		return fmt.Errorf("increment lookup outcome %q: %w", outcome, err)
	}
	return nil
}

// GetAllLookupOutcomes returns all outcome rows for metrics export.
func (d *DB) GetAllLookupOutcomes(ctx context.Context) ([]models.LookupOutcome, error) {
	rows, err := d.Pool.Query(ctx, `SELECT outcome, count, last_seen_at FROM lookup_outcomes ORDER BY outcome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []models.LookupOutcome
	for rows.Next() {
		var o models.LookupOutcome
		if err := rows.Scan(&o.Outcome, &o.Count, &o.LastSeenAt); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}
