package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// ProfileID is the fixed id of the singleton profile row.
const ProfileID = 1

type ProfileRepo struct {
	db DBTX
}

func NewProfileRepo(db DBTX) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_date, current_level, total_xp, current_streak, best_streak, last_quest_date
		FROM user_profile
		WHERE id = ?
	`, ProfileID)

	var p Profile
	var lastDate sql.NullString
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.Level, &p.XP, &p.Streak, &p.BestStreak, &lastDate); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	if lastDate.Valid {
		p.LastQuestDate = &lastDate.String
	}
	return &p, nil
}

// GetOrCreate returns the profile, creating the level-1 default row on
// first run.
func (r *ProfileRepo) GetOrCreate(ctx context.Context) (*Profile, error) {
	p, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profile (id, current_level, total_xp) VALUES (?, 1, 0)
	`, ProfileID); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx)
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	var lastDate any
	if p.LastQuestDate != nil {
		lastDate = *p.LastQuestDate
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE user_profile
		SET current_level = ?, total_xp = ?, current_streak = ?, best_streak = ?, last_quest_date = ?
		WHERE id = ?
	`, p.Level, p.XP, p.Streak, p.BestStreak, lastDate, ProfileID)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}

// Reset restores the profile row to first-run defaults.
func (r *ProfileRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE user_profile
		SET current_level = 1, total_xp = 0, current_streak = 0, best_streak = 0, last_quest_date = NULL
		WHERE id = ?
	`, ProfileID)
	if err != nil {
		return fmt.Errorf("profile reset: %w", err)
	}
	return nil
}
