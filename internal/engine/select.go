package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/INTERPOLALERT/back-to-life/internal/catalog"
	"github.com/INTERPOLALERT/back-to-life/internal/storage"
)

// TimeOfDay buckets the clock hour for selection adjustments.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"   // 05-11
	Afternoon TimeOfDay = "afternoon" // 12-16
	Evening   TimeOfDay = "evening"   // 17-21
	Night     TimeOfDay = "night"     // 22-04
)

func timeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 22:
		return Evening
	default:
		return Night
	}
}

// Selection is the outcome of the daily quest pick.
type Selection struct {
	Quest     storage.Quest
	Reason    string
	TimeOfDay TimeOfDay
}

// trailingWindowDays is the history window the selector considers when
// judging neglected categories.
const trailingWindowDays = 7

// lowEnergyCategories and stressReliefCategories are the reflection-driven
// category pools.
var (
	lowEnergyCategories = []catalog.Category{
		catalog.CategoryBodyRecovery,
		catalog.CategoryEatingDrinking,
	}
	stressReliefCategories = []catalog.Category{
		catalog.CategoryFinancial,
		catalog.CategoryCreative,
		catalog.CategorySocialRecovery,
	}
	morningCategories = []catalog.Category{
		catalog.CategoryBodyRecovery,
		catalog.CategoryEatingDrinking,
	}
	nightFallbackCategories = []catalog.Category{
		catalog.CategoryOrganization,
		catalog.CategoryCreative,
		catalog.CategoryAcademic,
	}
)

// bonusPreferenceOrder is the fixed category order for bonus quests.
var bonusPreferenceOrder = []catalog.Category{
	catalog.CategoryEatingDrinking,
	catalog.CategoryHygiene,
	catalog.CategoryOrganization,
	catalog.CategoryCreative,
	catalog.CategoryBodyRecovery,
	catalog.CategoryCryptoAI,
	catalog.CategoryFortnite,
}

// SelectDailyQuest picks today's quest from ambient state: the clock, the
// profile, the trailing week of completions and the latest reflection.
// It never mutates anything; the only non-determinism is the injected
// random source.
func (s *Service) SelectDailyQuest(ctx context.Context) (*Selection, error) {
	now := s.now()
	tod := timeOfDayFor(now.Hour())

	profile, err := s.profiles.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.recentCategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	lastReflection, err := s.reflections.Latest(ctx)
	if err != nil {
		return nil, err
	}

	category := s.priorityCategory(counts, lastReflection)
	difficulty := targetDifficulty(profile.Level, profile.Streak, lastReflection)

	quest, err := s.questForCategory(ctx, category, difficulty, tod)
	if err != nil {
		return nil, err
	}

	freshStart := profile.Streak == 0 && len(counts) == 0
	reason := buildReason(catalog.Category(quest.Category), tod, profile, lastReflection, freshStart)

	s.log.Debug("daily quest selected",
		zap.String("category", quest.Category),
		zap.Int64("quest_id", quest.ID),
		zap.Int("difficulty", difficulty),
		zap.String("time_of_day", string(tod)))

	return &Selection{Quest: *quest, Reason: reason, TimeOfDay: tod}, nil
}

func (s *Service) recentCategoryCounts(ctx context.Context) (map[catalog.Category]int, error) {
	since := s.now().AddDate(0, 0, -trailingWindowDays)
	rows, err := s.completions.CountByCategorySince(ctx, since)
	if err != nil {
		return nil, err
	}
	counts := make(map[catalog.Category]int, len(rows))
	for _, cc := range rows {
		counts[catalog.Category(cc.Category)] = cc.Count
	}
	return counts, nil
}

// priorityCategory applies the selection rules in order; the first match
// wins.
func (s *Service) priorityCategory(counts map[catalog.Category]int, lastReflection *storage.Reflection) catalog.Category {
	// Body quests always come first when the body has been neglected,
	// then hygiene.
	if counts[catalog.CategoryBodyRecovery] == 0 {
		return catalog.CategoryBodyRecovery
	}
	if counts[catalog.CategoryHygiene] == 0 {
		return catalog.CategoryHygiene
	}

	if lastReflection != nil {
		if lastReflection.Energy <= 3 {
			return s.pick(lowEnergyCategories)
		}
		if lastReflection.Stress >= 7 {
			return s.pick(stressReliefCategories)
		}
	}

	if len(counts) == 0 {
		return catalog.CategoryBodyRecovery
	}

	// Least-served category wins, ties broken by catalog order.
	best := catalog.All[0]
	bestCount := -1
	for _, c := range catalog.All {
		n := counts[c]
		if bestCount == -1 || n < bestCount {
			best = c
			bestCount = n
		}
	}
	return best
}

// questForCategory applies time-of-day adjustments and draws a concrete
// quest, falling back to an easy body quest if the catalog has no match.
func (s *Service) questForCategory(ctx context.Context, category catalog.Category, difficulty int, tod TimeOfDay) (*storage.Quest, error) {
	switch tod {
	case Morning:
		difficulty = clampDifficulty(difficulty - 1)
		gentle := category == catalog.CategoryBodyRecovery ||
			category == catalog.CategoryEatingDrinking ||
			category == catalog.CategoryHygiene
		if !gentle && s.rng.Float64() < 0.3 {
			category = s.pick(morningCategories)
		}
	case Night:
		// Social quests are unsuitable at night.
		if category == catalog.CategorySocialRecovery {
			category = s.pick(nightFallbackCategories)
		}
	}

	quest, err := s.randomQuest(ctx, category, difficulty)
	if err != nil {
		return nil, err
	}
	if quest == nil {
		quest, err = s.randomQuest(ctx, catalog.CategoryBodyRecovery, MinDifficulty)
		if err != nil {
			return nil, err
		}
		if quest == nil {
			return nil, QuestNotFoundError{}
		}
	}
	return quest, nil
}

// randomQuest draws uniformly from {category, difficulty_level <= max}.
// Returns nil when the subset is empty.
func (s *Service) randomQuest(ctx context.Context, category catalog.Category, maxDifficulty int) (*storage.Quest, error) {
	quests, err := s.quests.ListByCategory(ctx, string(category), maxDifficulty)
	if err != nil {
		return nil, err
	}
	if len(quests) == 0 {
		return nil, nil
	}
	q := quests[s.rng.Intn(len(quests))]
	return &q, nil
}

func (s *Service) pick(categories []catalog.Category) catalog.Category {
	return categories[s.rng.Intn(len(categories))]
}

// bonusMaxDifficulty keeps bonus quests light.
const bonusMaxDifficulty = 2

// SelectBonusQuests returns up to count extra quests, one per category in
// the fixed preference order, never reusing the primary quest's category.
func (s *Service) SelectBonusQuests(ctx context.Context, primary storage.Quest, count int) ([]storage.Quest, error) {
	if count <= 0 {
		return nil, nil
	}

	var out []storage.Quest
	for _, c := range bonusPreferenceOrder {
		if len(out) == count {
			break
		}
		if string(c) == primary.Category {
			continue
		}
		q, err := s.randomQuest(ctx, c, bonusMaxDifficulty)
		if err != nil {
			return nil, err
		}
		if q != nil {
			out = append(out, *q)
		}
	}
	return out, nil
}

// AdaptQuestOnFailure swaps a quest the user could not finish for one from
// the same category a tier lower. Quests are meant to be impossible to
// fail, so there is always a way down until difficulty 1.
func (s *Service) AdaptQuestOnFailure(ctx context.Context, questID int64) (*storage.Quest, error) {
	quest, err := s.quests.Get(ctx, questID)
	if err != nil {
		return nil, err
	}
	if quest == nil {
		return nil, QuestNotFoundError{ID: questID}
	}

	easier := clampDifficulty(quest.Difficulty - 1)
	replacement, err := s.randomQuest(ctx, catalog.Category(quest.Category), easier)
	if err != nil {
		return nil, err
	}
	if replacement == nil {
		return nil, QuestNotFoundError{ID: questID}
	}
	return replacement, nil
}
