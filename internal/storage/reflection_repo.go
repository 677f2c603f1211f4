package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ReflectionRepo struct {
	db DBTX
}

func NewReflectionRepo(db DBTX) *ReflectionRepo {
	return &ReflectionRepo{db: db}
}

func (r *ReflectionRepo) Insert(ctx context.Context, ref Reflection) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO reflections (date, mood_rating, energy_level, relationship_stress, grateful_for, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, ref.Date, ref.Mood, ref.Energy, ref.Stress, ref.Grateful, ref.Notes)
	if err != nil {
		return 0, fmt.Errorf("reflection insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reflection last insert id: %w", err)
	}
	return id, nil
}

// Latest returns the most recent reflection, or nil when none exist.
// Nothing enforces one reflection per day; the newest row wins.
func (r *ReflectionRepo) Latest(ctx context.Context) (*Reflection, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, mood_rating, energy_level, relationship_stress, grateful_for, notes
		FROM reflections
		ORDER BY date DESC, id DESC
		LIMIT 1
	`)
	return scanReflectionRow(row)
}

// ByDate returns the newest reflection recorded for the given day.
func (r *ReflectionRepo) ByDate(ctx context.Context, date string) (*Reflection, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, mood_rating, energy_level, relationship_stress, grateful_for, notes
		FROM reflections
		WHERE date = ?
		ORDER BY id DESC
		LIMIT 1
	`, date)
	return scanReflectionRow(row)
}

// Recent returns up to limit reflections, newest first.
func (r *ReflectionRepo) Recent(ctx context.Context, limit int) ([]Reflection, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, mood_rating, energy_level, relationship_stress, grateful_for, notes
		FROM reflections
		ORDER BY date DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("reflection list: %w", err)
	}
	defer rows.Close()

	var out []Reflection
	for rows.Next() {
		var ref Reflection
		if err := rows.Scan(&ref.ID, &ref.Date, &ref.Mood, &ref.Energy, &ref.Stress, &ref.Grateful, &ref.Notes); err != nil {
			return nil, fmt.Errorf("reflection scan: %w", err)
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reflection rows: %w", err)
	}
	return out, nil
}

func scanReflectionRow(row *sql.Row) (*Reflection, error) {
	var ref Reflection
	if err := row.Scan(&ref.ID, &ref.Date, &ref.Mood, &ref.Energy, &ref.Stress, &ref.Grateful, &ref.Notes); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("reflection scan: %w", err)
	}
	return &ref, nil
}
