package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user_profile (
			id INTEGER PRIMARY KEY,
			created_date DATETIME DEFAULT CURRENT_TIMESTAMP,
			current_level INTEGER DEFAULT 1,
			total_xp INTEGER DEFAULT 0,
			current_streak INTEGER DEFAULT 0,
			best_streak INTEGER DEFAULT 0,
			last_quest_date TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			duration_minutes INTEGER DEFAULT 1,
			xp_value INTEGER NOT NULL,
			difficulty_level INTEGER NOT NULL,
			tier INTEGER DEFAULT 1,
			why_text TEXT,
			instructions TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS quest_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quest_id INTEGER NOT NULL,
			completed_at DATETIME NOT NULL,
			completion_time_seconds INTEGER DEFAULT 0,
			xp_earned INTEGER NOT NULL,
			was_primary INTEGER DEFAULT 1,
			FOREIGN KEY(quest_id) REFERENCES quests(id)
		);`,
		`CREATE TABLE IF NOT EXISTS reflections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			mood_rating INTEGER,
			energy_level INTEGER,
			relationship_stress INTEGER,
			grateful_for TEXT,
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS shield_activations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			activated_at DATETIME NOT NULL,
			trigger_reason TEXT,
			duration_seconds INTEGER DEFAULT 0,
			helpful_rating INTEGER DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_category_difficulty ON quests(category, difficulty_level);`,
		`CREATE INDEX IF NOT EXISTS idx_quest_history_completed_at ON quest_history(completed_at);`,
		`CREATE INDEX IF NOT EXISTS idx_reflections_date ON reflections(date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
