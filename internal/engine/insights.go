package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/INTERPOLALERT/back-to-life/internal/catalog"
	"github.com/INTERPOLALERT/back-to-life/internal/storage"
)

// Insight is one (title, message) analytics pair.
type Insight struct {
	Title   string
	Message string
}

// insightWindowDays is how far back PatternInsights looks.
const insightWindowDays = 30

// PatternInsights analyzes the last 30 days and returns insights in a
// fixed priority order: best time of day, strongest category, streak
// record, lifetime total. With no history at all it returns a single
// encouragement entry.
func (s *Service) PatternInsights(ctx context.Context) ([]Insight, error) {
	var insights []Insight

	profile, err := s.profiles.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -insightWindowDays)
	completions, err := s.completions.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	if insight, ok := bestTimeOfDay(completionHourBuckets(completions)); ok {
		insights = append(insights, insight)
	}

	byCategory, err := s.completions.CountByCategorySince(ctx, since)
	if err != nil {
		return nil, err
	}
	if len(byCategory) > 0 {
		top := byCategory[0]
		name := catalog.Category(top.Category).DisplayName()
		insights = append(insights, Insight{
			Title:   "Strongest Domain",
			Message: fmt.Sprintf("%s is your most consistent area with %d completed quests this month.", name, top.Count),
		})
	}

	if profile.BestStreak > 0 {
		if profile.Streak == profile.BestStreak {
			insights = append(insights, Insight{
				Title:   "Record Streak!",
				Message: fmt.Sprintf("You're at your all-time best: %d days in a row. Legendary!", profile.BestStreak),
			})
		} else {
			insights = append(insights, Insight{
				Title:   "Previous Best",
				Message: fmt.Sprintf("Your best streak was %d days. You've proven you can do it again.", profile.BestStreak),
			})
		}
	}

	total, err := s.completions.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	if total >= 10 {
		insights = append(insights, Insight{
			Title:   "Total Progress",
			Message: fmt.Sprintf("You've completed %d quests total. Each one is proof you're rebuilding.", total),
		})
	}

	if len(insights) == 0 {
		insights = append(insights, Insight{
			Title:   "Just Getting Started",
			Message: "Complete more quests to unlock pattern insights about your progress!",
		})
	}

	return insights, nil
}

type hourBucket struct {
	name  string
	count int
}

// completionHourBuckets groups completions into Morning (<12),
// Afternoon (<17) and Evening buckets by local completion hour.
func completionHourBuckets(completions []storage.Completion) []hourBucket {
	buckets := []hourBucket{{name: "Morning"}, {name: "Afternoon"}, {name: "Evening"}}
	for _, c := range completions {
		switch h := c.CompletedAt.Hour(); {
		case h < 12:
			buckets[0].count++
		case h < 17:
			buckets[1].count++
		default:
			buckets[2].count++
		}
	}
	return buckets
}

func bestTimeOfDay(buckets []hourBucket) (Insight, bool) {
	total := 0
	best := buckets[0]
	for _, b := range buckets {
		total += b.count
		if b.count > best.count {
			best = b
		}
	}
	if total == 0 {
		return Insight{}, false
	}
	pct := best.count * 100 / total
	return Insight{
		Title:   "Best Time of Day",
		Message: fmt.Sprintf("You complete %d%% of your quests in the %s. That's your power time!", pct, strings.ToLower(best.name)),
	}, true
}
