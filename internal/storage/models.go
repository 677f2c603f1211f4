package storage

import "time"

// Profile is the singleton user row (id = 1).
type Profile struct {
	ID            int64
	CreatedAt     time.Time
	Level         int
	XP            int
	Streak        int
	BestStreak    int
	LastQuestDate *string // "2006-01-02", nil before the first completion
}

// Quest is an immutable catalog entry. Rows are seeded once and never
// mutated or deleted.
type Quest struct {
	ID              int64
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

// Completion is an append-only quest_history row.
type Completion struct {
	ID          int64
	QuestID     int64
	CompletedAt time.Time
	Seconds     int
	XPEarned    int
	Primary     bool
}

// CategoryCount pairs a quest category with a completion count.
type CategoryCount struct {
	Category string
	Count    int
}

type Reflection struct {
	ID       int64
	Date     string // "2006-01-02"
	Mood     int
	Energy   int
	Stress   int
	Grateful string
	Notes    string
}

type ShieldActivation struct {
	ID          int64
	ActivatedAt time.Time
	Reason      string
	Duration    int // seconds, 0 while the session is open
	Rating      int // 0-10, 0 = unrated
}
