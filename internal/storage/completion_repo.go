package storage

import (
	"context"
	"fmt"
	"time"
)

type CompletionRepo struct {
	db DBTX
}

func NewCompletionRepo(db DBTX) *CompletionRepo {
	return &CompletionRepo{db: db}
}

type CompletionInsert struct {
	QuestID     int64
	CompletedAt time.Time
	Seconds     int
	XPEarned    int
	Primary     bool
}

func (r *CompletionRepo) Insert(ctx context.Context, in CompletionInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO quest_history (quest_id, completed_at, completion_time_seconds, xp_earned, was_primary)
		VALUES (?, ?, ?, ?, ?)
	`, in.QuestID, in.CompletedAt, in.Seconds, in.XPEarned, boolToInt(in.Primary))
	if err != nil {
		return 0, fmt.Errorf("completion insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("completion last insert id: %w", err)
	}
	return id, nil
}

// CountByCategorySince returns completion counts grouped by quest category
// for completions at or after since.
func (r *CompletionRepo) CountByCategorySince(ctx context.Context, since time.Time) ([]CategoryCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT q.category, COUNT(*)
		FROM quest_history qh
		JOIN quests q ON qh.quest_id = q.id
		WHERE qh.completed_at >= ?
		GROUP BY q.category
		ORDER BY COUNT(*) DESC, q.category
	`, since)
	if err != nil {
		return nil, fmt.Errorf("completion count by category: %w", err)
	}
	defer rows.Close()

	var out []CategoryCount
	for rows.Next() {
		var cc CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("completion count scan: %w", err)
		}
		out = append(out, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion count rows: %w", err)
	}
	return out, nil
}

// HasPrimaryBetween reports whether any primary completion falls in
// [start, end).
func (r *CompletionRepo) HasPrimaryBetween(ctx context.Context, start, end time.Time) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM quest_history
		WHERE was_primary = 1 AND completed_at >= ? AND completed_at < ?
	`, start, end)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("completion primary count: %w", err)
	}
	return n > 0, nil
}

// ListSince returns completions at or after since, newest first.
func (r *CompletionRepo) ListSince(ctx context.Context, since time.Time) ([]Completion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, quest_id, completed_at, completion_time_seconds, xp_earned, was_primary
		FROM quest_history
		WHERE completed_at >= ?
		ORDER BY completed_at DESC
	`, since)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		var primary int
		if err := rows.Scan(&c.ID, &c.QuestID, &c.CompletedAt, &c.Seconds, &c.XPEarned, &primary); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		c.Primary = primary != 0
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion rows: %w", err)
	}
	return out, nil
}

// CountAll returns the lifetime completion count.
func (r *CompletionRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quest_history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count all: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
