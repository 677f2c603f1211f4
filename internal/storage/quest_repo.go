package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type QuestRepo struct {
	db DBTX
}

func NewQuestRepo(db DBTX) *QuestRepo {
	return &QuestRepo{db: db}
}

type QuestInsert struct {
	Category        string
	Title           string
	Description     string
	DurationMinutes int
	XPValue         int
	Difficulty      int
	Tier            int
	WhyText         string
	Instructions    string
}

func (r *QuestRepo) Insert(ctx context.Context, in QuestInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO quests (
			category, title, description, duration_minutes,
			xp_value, difficulty_level, tier, why_text, instructions
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Category, in.Title, in.Description, in.DurationMinutes, in.XPValue, in.Difficulty, in.Tier, in.WhyText, in.Instructions)
	if err != nil {
		return 0, fmt.Errorf("quest insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("quest last insert id: %w", err)
	}
	return id, nil
}

func (r *QuestRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quests`).Scan(&n); err != nil {
		return 0, fmt.Errorf("quest count: %w", err)
	}
	return n, nil
}

func (r *QuestRepo) Get(ctx context.Context, id int64) (*Quest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, category, title, description, duration_minutes,
			xp_value, difficulty_level, tier, why_text, instructions
		FROM quests
		WHERE id = ?
	`, id)
	return scanQuestRow(row)
}

// ListByCategory returns every quest in category with difficulty_level at
// most maxDifficulty, ordered by difficulty then tier.
func (r *QuestRepo) ListByCategory(ctx context.Context, category string, maxDifficulty int) ([]Quest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category, title, description, duration_minutes,
			xp_value, difficulty_level, tier, why_text, instructions
		FROM quests
		WHERE category = ? AND difficulty_level <= ?
		ORDER BY difficulty_level, tier, id
	`, category, maxDifficulty)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest list rows: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuest(row rowScanner) (*Quest, error) {
	var q Quest
	if err := row.Scan(
		&q.ID, &q.Category, &q.Title, &q.Description, &q.DurationMinutes,
		&q.XPValue, &q.Difficulty, &q.Tier, &q.WhyText, &q.Instructions,
	); err != nil {
		return nil, fmt.Errorf("quest scan: %w", err)
	}
	return &q, nil
}

func scanQuestRow(row *sql.Row) (*Quest, error) {
	var q Quest
	if err := row.Scan(
		&q.ID, &q.Category, &q.Title, &q.Description, &q.DurationMinutes,
		&q.XPValue, &q.Difficulty, &q.Tier, &q.WhyText, &q.Instructions,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("quest scan: %w", err)
	}
	return &q, nil
}
