package engine

import (
	"context"

	"go.uber.org/zap"
)

// stressReminderThreshold is the reflection stress rating at which the
// shield reminder appears.
const stressReminderThreshold = 8

// StartShield records a shield mode activation and returns its id so the
// session can be closed with EndShield.
func (s *Service) StartShield(ctx context.Context, reason string) (int64, error) {
	id, err := s.shields.Insert(ctx, s.now(), reason)
	if err != nil {
		return 0, err
	}
	s.log.Info("shield mode activated", zap.Int64("id", id), zap.String("reason", reason))
	return id, nil
}

// EndShield closes a shield session with how long it ran and an optional
// helpfulness rating (0 = unrated).
func (s *Service) EndShield(ctx context.Context, id int64, durationSeconds, rating int) error {
	if durationSeconds < 0 {
		return ValidationError{Field: "duration", Msg: "must not be negative"}
	}
	if err := validateRating("rating", rating); err != nil {
		return err
	}
	return s.shields.UpdateSession(ctx, id, durationSeconds, rating)
}

// ShouldShowShieldReminder decides whether to surface the shield mode
// prompt. A session already opened today suppresses the reminder;
// otherwise it appears when the latest reflection reports high stress.
func (s *Service) ShouldShowShieldReminder(ctx context.Context) (bool, error) {
	start, end := dayBounds(s.now())
	today, err := s.shields.CountBetween(ctx, start, end)
	if err != nil {
		return false, err
	}
	if today > 0 {
		return false, nil
	}

	ref, err := s.reflections.Latest(ctx)
	if err != nil {
		return false, err
	}
	return ref != nil && ref.Stress >= stressReminderThreshold, nil
}
