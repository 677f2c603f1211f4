package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/INTERPOLALERT/back-to-life/internal/storage"
)

// ReflectionInput is a daily self-report. Date defaults to today when
// empty; ratings are 0-10.
type ReflectionInput struct {
	Date     string
	Mood     int
	Energy   int
	Stress   int
	Grateful string
	Notes    string
}

func validateRating(field string, v int) error {
	if v < 0 || v > 10 {
		return ValidationError{Field: field, Msg: "must be between 0 and 10"}
	}
	return nil
}

// SaveReflection validates and stores a reflection. Multiple reflections
// on one date are tolerated; readers take the newest.
func (s *Service) SaveReflection(ctx context.Context, in ReflectionInput) (int64, error) {
	if err := validateRating("mood", in.Mood); err != nil {
		return 0, err
	}
	if err := validateRating("energy", in.Energy); err != nil {
		return 0, err
	}
	if err := validateRating("stress", in.Stress); err != nil {
		return 0, err
	}

	date := in.Date
	if date == "" {
		date = s.today()
	} else if _, err := time.Parse(time.DateOnly, date); err != nil {
		return 0, ValidationError{Field: "date", Msg: "must be YYYY-MM-DD"}
	}

	id, err := s.reflections.Insert(ctx, storage.Reflection{
		Date:     date,
		Mood:     in.Mood,
		Energy:   in.Energy,
		Stress:   in.Stress,
		Grateful: in.Grateful,
		Notes:    in.Notes,
	})
	if err != nil {
		return 0, err
	}

	s.log.Debug("reflection saved",
		zap.String("date", date),
		zap.Int("mood", in.Mood),
		zap.Int("energy", in.Energy),
		zap.Int("stress", in.Stress))

	return id, nil
}

// LatestReflection returns the newest reflection, or nil when none exist.
func (s *Service) LatestReflection(ctx context.Context) (*storage.Reflection, error) {
	return s.reflections.Latest(ctx)
}

// ReflectionByDate returns the newest reflection recorded for one day.
func (s *Service) ReflectionByDate(ctx context.Context, date string) (*storage.Reflection, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, ValidationError{Field: "date", Msg: "must be YYYY-MM-DD"}
	}
	return s.reflections.ByDate(ctx, date)
}

// RecentReflections returns up to n reflections, newest first.
func (s *Service) RecentReflections(ctx context.Context, n int) ([]storage.Reflection, error) {
	if n <= 0 {
		n = 7
	}
	return s.reflections.Recent(ctx, n)
}
