package engine

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/INTERPOLALERT/back-to-life/internal/storage"
)

// XPPerLevel is the flat per-level XP cost: level = xp/100 + 1.
const XPPerLevel = 100

// LevelForXP computes the level for a cumulative XP total. Level 1 starts
// at XP 0.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPForNextLevel returns how much XP is still needed to reach the next
// level from the given total.
func XPForNextLevel(xp int) int {
	return LevelForXP(xp)*XPPerLevel - xp
}

type CompletionResult struct {
	QuestID     int64
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Streak      int
	BestStreak  int
}

// RecordCompletion appends a quest_history row and updates XP, level and
// streak as a single transaction. Either everything is persisted or
// nothing is.
func (s *Service) RecordCompletion(ctx context.Context, questID int64, xpEarned, seconds int, primary bool) (*CompletionResult, error) {
	if xpEarned < 0 {
		return nil, ValidationError{Field: "xp", Msg: "must not be negative"}
	}
	if seconds < 0 {
		return nil, ValidationError{Field: "completion time", Msg: "must not be negative"}
	}

	quest, err := s.quests.Get(ctx, questID)
	if err != nil {
		return nil, err
	}
	if quest == nil {
		return nil, QuestNotFoundError{ID: questID}
	}

	now := s.now()
	today := s.today()

	var res *CompletionResult
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		profiles := storage.NewProfileRepo(tx)
		p, err := profiles.GetOrCreate(ctx)
		if err != nil {
			return err
		}
		levelBefore := p.Level

		if _, err := storage.NewCompletionRepo(tx).Insert(ctx, storage.CompletionInsert{
			QuestID:     questID,
			CompletedAt: now,
			Seconds:     seconds,
			XPEarned:    xpEarned,
			Primary:     primary,
		}); err != nil {
			return err
		}

		p.XP += xpEarned
		p.Level = LevelForXP(p.XP)
		p.Streak = nextStreak(p.LastQuestDate, today, p.Streak)
		if p.Streak > p.BestStreak {
			p.BestStreak = p.Streak
		}
		p.LastQuestDate = &today
		if err := profiles.Update(ctx, p); err != nil {
			return err
		}

		res = &CompletionResult{
			QuestID:     questID,
			XPAwarded:   xpEarned,
			LevelBefore: levelBefore,
			LevelAfter:  p.Level,
			LevelUp:     p.Level > levelBefore,
			Streak:      p.Streak,
			BestStreak:  p.BestStreak,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("completion recorded",
		zap.Int64("quest_id", questID),
		zap.Int("xp", xpEarned),
		zap.Bool("primary", primary),
		zap.Int("level", res.LevelAfter),
		zap.Bool("level_up", res.LevelUp),
		zap.Int("streak", res.Streak))

	return res, nil
}

// nextStreak applies the consecutive-day rule: one day since the last
// quest extends the streak, the same day keeps it, any gap resets to 1.
func nextStreak(lastQuestDate *string, today string, current int) int {
	if lastQuestDate == nil {
		return 1
	}
	last, err := time.Parse(time.DateOnly, *lastQuestDate)
	if err != nil {
		return 1
	}
	day, err := time.Parse(time.DateOnly, today)
	if err != nil {
		return 1
	}
	switch diff := int(day.Sub(last).Hours() / 24); diff {
	case 0:
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

// HasCompletedPrimaryToday reports whether a primary quest was already
// completed on the current calendar date.
func (s *Service) HasCompletedPrimaryToday(ctx context.Context) (bool, error) {
	start, end := dayBounds(s.now())
	return s.completions.HasPrimaryBetween(ctx, start, end)
}

// ClearAllData wipes every history table and resets the profile. The quest
// catalog is preserved.
func (s *Service) ClearAllData(ctx context.Context) error {
	if err := storage.ClearAllData(ctx, s.db); err != nil {
		return err
	}
	s.log.Warn("all user data cleared")
	return nil
}
