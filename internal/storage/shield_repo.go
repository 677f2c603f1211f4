package storage

import (
	"context"
	"fmt"
	"time"
)

type ShieldRepo struct {
	db DBTX
}

func NewShieldRepo(db DBTX) *ShieldRepo {
	return &ShieldRepo{db: db}
}

func (r *ShieldRepo) Insert(ctx context.Context, activatedAt time.Time, reason string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO shield_activations (activated_at, trigger_reason)
		VALUES (?, ?)
	`, activatedAt, reason)
	if err != nil {
		return 0, fmt.Errorf("shield insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("shield last insert id: %w", err)
	}
	return id, nil
}

// UpdateSession records how long a shield session ran and how helpful it was.
func (r *ShieldRepo) UpdateSession(ctx context.Context, id int64, durationSeconds, rating int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE shield_activations
		SET duration_seconds = ?, helpful_rating = ?
		WHERE id = ?
	`, durationSeconds, rating, id)
	if err != nil {
		return fmt.Errorf("shield update: %w", err)
	}
	return nil
}

// CountBetween counts activations in [start, end).
func (r *ShieldRepo) CountBetween(ctx context.Context, start, end time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM shield_activations
		WHERE activated_at >= ? AND activated_at < ?
	`, start, end)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("shield count: %w", err)
	}
	return n, nil
}
