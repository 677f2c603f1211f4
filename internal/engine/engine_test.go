package engine

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/INTERPOLALERT/back-to-life/internal/catalog"
	"github.com/INTERPOLALERT/back-to-life/internal/storage"
)

// testClock is a settable wall clock for pinning "today".
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func newTestService(t *testing.T) (*Service, *testClock, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := catalog.Seed(ctx, db); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	// Pinned to a Wednesday afternoon so no time-of-day adjustment fires.
	clock := &testClock{t: time.Date(2025, 6, 4, 14, 0, 0, 0, time.UTC)}
	svc := NewService(db,
		WithClock(clock.now),
		WithRand(rand.New(rand.NewSource(1))),
	)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, clock, cleanup
}

func setProfile(t *testing.T, svc *Service, mutate func(*storage.Profile)) {
	t.Helper()
	ctx := context.Background()
	p, err := svc.ProfileRepo().GetOrCreate(ctx)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	mutate(p)
	if err := svc.ProfileRepo().Update(ctx, p); err != nil {
		t.Fatalf("update profile: %v", err)
	}
}

func anyQuest(t *testing.T, svc *Service, category catalog.Category) storage.Quest {
	t.Helper()
	quests, err := svc.QuestRepo().ListByCategory(context.Background(), string(category), MaxDifficulty)
	if err != nil {
		t.Fatalf("list quests: %v", err)
	}
	if len(quests) == 0 {
		t.Fatalf("no quests in category %s", category)
	}
	return quests[0]
}

func TestLevelMath(t *testing.T) {
	cases := []struct{ xp, level int }{
		{0, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{250, 3},
		{-5, 1},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.level {
			t.Fatalf("LevelForXP(%d)=%d, want %d", c.xp, got, c.level)
		}
	}
	if got := XPForNextLevel(0); got != 100 {
		t.Fatalf("XPForNextLevel(0)=%d, want 100", got)
	}
	if got := XPForNextLevel(95); got != 5 {
		t.Fatalf("XPForNextLevel(95)=%d, want 5", got)
	}
}

func TestRecordCompletionLevelUp(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setProfile(t, svc, func(p *storage.Profile) {
		p.XP = 95
		p.Level = LevelForXP(95)
	})

	q := anyQuest(t, svc, catalog.CategoryBodyRecovery)
	res, err := svc.RecordCompletion(ctx, q.ID, 10, 300, true)
	if err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	if res.XPAwarded != 10 {
		t.Fatalf("XPAwarded=%d, want 10", res.XPAwarded)
	}
	if !res.LevelUp || res.LevelBefore != 1 || res.LevelAfter != 2 {
		t.Fatalf("level transition=%d->%d (up=%v), want 1->2 (up=true)",
			res.LevelBefore, res.LevelAfter, res.LevelUp)
	}

	p, err := svc.ProfileRepo().GetOrCreate(ctx)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.XP != 105 || p.Level != 2 {
		t.Fatalf("profile xp=%d level=%d, want 105/2", p.XP, p.Level)
	}
	if p.Level != LevelForXP(p.XP) {
		t.Fatalf("stored level %d disagrees with LevelForXP(%d)=%d", p.Level, p.XP, LevelForXP(p.XP))
	}
}

func TestRecordCompletionRejectsBadInput(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	q := anyQuest(t, svc, catalog.CategoryHygiene)

	var verr ValidationError
	if _, err := svc.RecordCompletion(ctx, q.ID, -1, 0, true); !errors.As(err, &verr) {
		t.Fatalf("negative xp: got %v, want ValidationError", err)
	}
	if _, err := svc.RecordCompletion(ctx, q.ID, 10, -1, true); !errors.As(err, &verr) {
		t.Fatalf("negative seconds: got %v, want ValidationError", err)
	}

	var nferr QuestNotFoundError
	if _, err := svc.RecordCompletion(ctx, 999999, 10, 0, true); !errors.As(err, &nferr) {
		t.Fatalf("unknown quest: got %v, want QuestNotFoundError", err)
	}

	// A rejected completion leaves no ledger row behind.
	total, err := svc.CompletionRepo().CountAll(ctx)
	if err != nil {
		t.Fatalf("count completions: %v", err)
	}
	if total != 0 {
		t.Fatalf("completions after rejected input=%d, want 0", total)
	}
}

func TestStreakContinuity(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	q := anyQuest(t, svc, catalog.CategoryBodyRecovery)

	res, err := svc.RecordCompletion(ctx, q.ID, 10, 0, true)
	if err != nil {
		t.Fatalf("day 1: %v", err)
	}
	if res.Streak != 1 {
		t.Fatalf("day 1 streak=%d, want 1", res.Streak)
	}

	// Second completion on the same day keeps the streak.
	res, err = svc.RecordCompletion(ctx, q.ID, 10, 0, false)
	if err != nil {
		t.Fatalf("day 1 again: %v", err)
	}
	if res.Streak != 1 {
		t.Fatalf("same-day streak=%d, want 1", res.Streak)
	}

	// The next calendar day extends it.
	clock.t = clock.t.AddDate(0, 0, 1)
	res, err = svc.RecordCompletion(ctx, q.ID, 10, 0, true)
	if err != nil {
		t.Fatalf("day 2: %v", err)
	}
	if res.Streak != 2 {
		t.Fatalf("day 2 streak=%d, want 2", res.Streak)
	}

	// A gap of more than one day resets to 1, not 0.
	clock.t = clock.t.AddDate(0, 0, 3)
	res, err = svc.RecordCompletion(ctx, q.ID, 10, 0, true)
	if err != nil {
		t.Fatalf("after gap: %v", err)
	}
	if res.Streak != 1 {
		t.Fatalf("post-gap streak=%d, want 1", res.Streak)
	}
	if res.BestStreak != 2 {
		t.Fatalf("best streak=%d, want 2 (never decreases)", res.BestStreak)
	}
}

func TestNextStreakTable(t *testing.T) {
	d1 := "2025-06-04"
	d2 := "2025-06-05"
	d4 := "2025-06-07"

	if got := nextStreak(nil, d1, 0); got != 1 {
		t.Fatalf("first ever=%d, want 1", got)
	}
	if got := nextStreak(&d1, d1, 3); got != 3 {
		t.Fatalf("same day=%d, want 3", got)
	}
	if got := nextStreak(&d1, d2, 3); got != 4 {
		t.Fatalf("next day=%d, want 4", got)
	}
	if got := nextStreak(&d1, d4, 3); got != 1 {
		t.Fatalf("gap=%d, want 1", got)
	}
}

func TestHasCompletedPrimaryToday(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	done, err := svc.HasCompletedPrimaryToday(ctx)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if done {
		t.Fatalf("fresh day reported complete")
	}

	q := anyQuest(t, svc, catalog.CategoryOrganization)

	// A bonus completion does not satisfy the daily quest.
	if _, err := svc.RecordCompletion(ctx, q.ID, 10, 0, false); err != nil {
		t.Fatalf("bonus completion: %v", err)
	}
	done, err = svc.HasCompletedPrimaryToday(ctx)
	if err != nil {
		t.Fatalf("check after bonus: %v", err)
	}
	if done {
		t.Fatalf("bonus completion counted as primary")
	}

	if _, err := svc.RecordCompletion(ctx, q.ID, 10, 0, true); err != nil {
		t.Fatalf("primary completion: %v", err)
	}
	done, err = svc.HasCompletedPrimaryToday(ctx)
	if err != nil {
		t.Fatalf("check after primary: %v", err)
	}
	if !done {
		t.Fatalf("primary completion not detected")
	}

	// Yesterday's completion does not leak into a new day.
	clock.t = clock.t.AddDate(0, 0, 1)
	done, err = svc.HasCompletedPrimaryToday(ctx)
	if err != nil {
		t.Fatalf("check next day: %v", err)
	}
	if done {
		t.Fatalf("yesterday's completion leaked into today")
	}
}

func TestTargetDifficulty(t *testing.T) {
	lowEnergy := &storage.Reflection{Energy: 2}

	cases := []struct {
		level, streak int
		reflection    *storage.Reflection
		want          int
	}{
		{1, 0, nil, 1},
		{5, 0, nil, 2},
		// level bonus caps at +2
		{20, 0, nil, 3},
		// the streak thresholds replace each other, the higher one wins
		{1, 7, nil, 2},
		{1, 14, nil, 3},
		{20, 14, nil, 5},
		// low energy subtracts but never drops below 1
		{1, 0, lowEnergy, 1},
		{10, 7, lowEnergy, 3},
	}
	for _, c := range cases {
		if got := targetDifficulty(c.level, c.streak, c.reflection); got != c.want {
			t.Fatalf("targetDifficulty(level=%d, streak=%d)=%d, want %d", c.level, c.streak, got, c.want)
		}
	}
}

func TestTimeOfDayBuckets(t *testing.T) {
	cases := []struct {
		hour int
		want TimeOfDay
	}{
		{5, Morning}, {11, Morning},
		{12, Afternoon}, {16, Afternoon},
		{17, Evening}, {21, Evening},
		{22, Night}, {3, Night},
	}
	for _, c := range cases {
		if got := timeOfDayFor(c.hour); got != c.want {
			t.Fatalf("timeOfDayFor(%d)=%s, want %s", c.hour, got, c.want)
		}
	}
}

func TestSelectDailyQuestFreshUser(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	sel, err := svc.SelectDailyQuest(ctx)
	if err != nil {
		t.Fatalf("SelectDailyQuest: %v", err)
	}
	if sel.Quest.Category != string(catalog.CategoryBodyRecovery) {
		t.Fatalf("fresh user category=%s, want %s", sel.Quest.Category, catalog.CategoryBodyRecovery)
	}
	if sel.Quest.Difficulty != 1 {
		t.Fatalf("fresh user difficulty=%d, want 1", sel.Quest.Difficulty)
	}
	if !strings.Contains(sel.Reason, "just getting started") {
		t.Fatalf("fresh user reason missing encouragement: %q", sel.Reason)
	}
}

func TestSelectDailyQuestNeglectedHygiene(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	body := anyQuest(t, svc, catalog.CategoryBodyRecovery)
	if _, err := svc.RecordCompletion(ctx, body.ID, 10, 0, true); err != nil {
		t.Fatalf("complete body quest: %v", err)
	}

	sel, err := svc.SelectDailyQuest(ctx)
	if err != nil {
		t.Fatalf("SelectDailyQuest: %v", err)
	}
	if sel.Quest.Category != string(catalog.CategoryHygiene) {
		t.Fatalf("category=%s, want %s (body served, hygiene untouched)", sel.Quest.Category, catalog.CategoryHygiene)
	}
}

func TestSelectDailyQuestLowEnergy(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	for _, c := range []catalog.Category{catalog.CategoryBodyRecovery, catalog.CategoryHygiene} {
		q := anyQuest(t, svc, c)
		if _, err := svc.RecordCompletion(ctx, q.ID, 10, 0, false); err != nil {
			t.Fatalf("complete %s quest: %v", c, err)
		}
	}
	if _, err := svc.SaveReflection(ctx, ReflectionInput{Mood: 4, Energy: 2, Stress: 5}); err != nil {
		t.Fatalf("save reflection: %v", err)
	}

	sel, err := svc.SelectDailyQuest(ctx)
	if err != nil {
		t.Fatalf("SelectDailyQuest: %v", err)
	}
	got := catalog.Category(sel.Quest.Category)
	if got != catalog.CategoryBodyRecovery && got != catalog.CategoryEatingDrinking {
		t.Fatalf("low-energy category=%s, want a gentle one", got)
	}
	if sel.Quest.Difficulty != 1 {
		t.Fatalf("low-energy difficulty=%d, want 1", sel.Quest.Difficulty)
	}
	if !strings.Contains(sel.Reason, "keeping it gentle") {
		t.Fatalf("low-energy reason missing energy note: %q", sel.Reason)
	}
}

func TestSelectDailyQuestMorningReducesDifficulty(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// A 14-day streak would normally push the target to difficulty 3.
	setProfile(t, svc, func(p *storage.Profile) { p.Streak = 14 })
	clock.t = time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		sel, err := svc.SelectDailyQuest(ctx)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if sel.TimeOfDay != Morning {
			t.Fatalf("draw %d time of day=%s, want morning", i, sel.TimeOfDay)
		}
		if sel.Quest.Difficulty > 2 {
			t.Fatalf("draw %d difficulty=%d, want <= 2 in the morning", i, sel.Quest.Difficulty)
		}
	}
}

func TestSelectDailyQuestMorningReroute(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	clock.t = time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)

	// With body, hygiene and eating served, the least-done rule lands on
	// ORGANIZATION, which the morning reroute may swap for a gentle start.
	for _, c := range []catalog.Category{
		catalog.CategoryBodyRecovery,
		catalog.CategoryHygiene,
		catalog.CategoryEatingDrinking,
	} {
		q := anyQuest(t, svc, c)
		if _, err := svc.RecordCompletion(ctx, q.ID, 10, 0, false); err != nil {
			t.Fatalf("complete %s quest: %v", c, err)
		}
	}

	sawOrganization := false
	sawGentle := false
	for i := 0; i < 50; i++ {
		sel, err := svc.SelectDailyQuest(ctx)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		switch catalog.Category(sel.Quest.Category) {
		case catalog.CategoryOrganization:
			sawOrganization = true
		case catalog.CategoryBodyRecovery, catalog.CategoryEatingDrinking:
			sawGentle = true
		default:
			t.Fatalf("draw %d category=%s, not reachable in the morning", i, sel.Quest.Category)
		}
	}
	if !sawOrganization {
		t.Fatalf("the priority category never survived the morning reroute")
	}
	if !sawGentle {
		t.Fatalf("the morning reroute never fired across 50 draws")
	}
}

func TestSelectDailyQuestNightAvoidsSocial(t *testing.T) {
	svc, clock, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	clock.t = time.Date(2025, 6, 4, 23, 0, 0, 0, time.UTC)

	for _, c := range []catalog.Category{catalog.CategoryBodyRecovery, catalog.CategoryHygiene} {
		q := anyQuest(t, svc, c)
		if _, err := svc.RecordCompletion(ctx, q.ID, 10, 0, false); err != nil {
			t.Fatalf("complete %s quest: %v", c, err)
		}
	}
	// High stress routes into {FINANCIAL, CREATIVE, SOCIAL_RECOVERY};
	// at night any SOCIAL_RECOVERY pick must be swapped away.
	if _, err := svc.SaveReflection(ctx, ReflectionInput{Mood: 4, Energy: 5, Stress: 9}); err != nil {
		t.Fatalf("save reflection: %v", err)
	}

	sawFallback := false
	for i := 0; i < 50; i++ {
		sel, err := svc.SelectDailyQuest(ctx)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if sel.TimeOfDay != Night {
			t.Fatalf("draw %d time of day=%s, want night", i, sel.TimeOfDay)
		}
		switch catalog.Category(sel.Quest.Category) {
		case catalog.CategorySocialRecovery:
			t.Fatalf("draw %d picked a social quest at night", i)
		case catalog.CategoryOrganization, catalog.CategoryAcademic:
			sawFallback = true
		case catalog.CategoryFinancial, catalog.CategoryCreative:
		default:
			t.Fatalf("draw %d category=%s, outside the stress-relief pool", i, sel.Quest.Category)
		}
	}
	if !sawFallback {
		t.Fatalf("the night reroute never fired across 50 draws")
	}
}

func TestSelectDailyQuestStressRelief(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	for _, c := range []catalog.Category{catalog.CategoryBodyRecovery, catalog.CategoryHygiene} {
		q := anyQuest(t, svc, c)
		if _, err := svc.RecordCompletion(ctx, q.ID, 10, 0, false); err != nil {
			t.Fatalf("complete %s quest: %v", c, err)
		}
	}
	if _, err := svc.SaveReflection(ctx, ReflectionInput{Mood: 4, Energy: 5, Stress: 7}); err != nil {
		t.Fatalf("save reflection: %v", err)
	}

	relief := map[catalog.Category]bool{
		catalog.CategoryFinancial:      true,
		catalog.CategoryCreative:       true,
		catalog.CategorySocialRecovery: true,
	}
	for i := 0; i < 20; i++ {
		sel, err := svc.SelectDailyQuest(ctx)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if !relief[catalog.Category(sel.Quest.Category)] {
			t.Fatalf("draw %d category=%s, outside the stress-relief pool", i, sel.Quest.Category)
		}
	}
}

func TestSelectDailyQuestLeastDone(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// Serve every category except CREATIVE and CRYPTO_AI. Both sit at
	// zero, so the tie breaks by catalog order in favor of CREATIVE.
	for _, c := range catalog.All {
		if c == catalog.CategoryCreative || c == catalog.CategoryCryptoAI {
			continue
		}
		q := anyQuest(t, svc, c)
		if _, err := svc.RecordCompletion(ctx, q.ID, 10, 0, false); err != nil {
			t.Fatalf("complete %s quest: %v", c, err)
		}
	}

	for i := 0; i < 5; i++ {
		sel, err := svc.SelectDailyQuest(ctx)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if sel.Quest.Category != string(catalog.CategoryCreative) {
			t.Fatalf("draw %d category=%s, want %s (least done, first in catalog order)",
				i, sel.Quest.Category, catalog.CategoryCreative)
		}
	}
}

func TestSelectBonusQuests(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	primary := anyQuest(t, svc, catalog.CategoryEatingDrinking)
	bonus, err := svc.SelectBonusQuests(ctx, primary, 3)
	if err != nil {
		t.Fatalf("SelectBonusQuests: %v", err)
	}
	if len(bonus) != 3 {
		t.Fatalf("bonus count=%d, want 3", len(bonus))
	}

	want := []catalog.Category{
		catalog.CategoryHygiene,
		catalog.CategoryOrganization,
		catalog.CategoryCreative,
	}
	for i, q := range bonus {
		if q.Category == primary.Category {
			t.Fatalf("bonus %d reuses the primary category %s", i, q.Category)
		}
		if q.Category != string(want[i]) {
			t.Fatalf("bonus %d category=%s, want %s", i, q.Category, want[i])
		}
		if q.Difficulty > 2 {
			t.Fatalf("bonus %d difficulty=%d, want <= 2", i, q.Difficulty)
		}
	}
}

func TestAdaptQuestOnFailure(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	quests, err := svc.QuestRepo().ListByCategory(ctx, string(catalog.CategoryBodyRecovery), MaxDifficulty)
	if err != nil {
		t.Fatalf("list quests: %v", err)
	}
	var hard *storage.Quest
	for i := range quests {
		if quests[i].Difficulty >= 2 {
			hard = &quests[i]
			break
		}
	}
	if hard == nil {
		t.Fatalf("catalog has no body quest above difficulty 1")
	}

	easier, err := svc.AdaptQuestOnFailure(ctx, hard.ID)
	if err != nil {
		t.Fatalf("AdaptQuestOnFailure: %v", err)
	}
	if easier.Category != hard.Category {
		t.Fatalf("replacement category=%s, want %s", easier.Category, hard.Category)
	}
	if easier.Difficulty >= hard.Difficulty {
		t.Fatalf("replacement difficulty=%d, want < %d", easier.Difficulty, hard.Difficulty)
	}

	var nferr QuestNotFoundError
	if _, err := svc.AdaptQuestOnFailure(ctx, 999999); !errors.As(err, &nferr) {
		t.Fatalf("unknown quest: got %v, want QuestNotFoundError", err)
	}
}

func TestSaveReflectionValidation(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	var verr ValidationError
	if _, err := svc.SaveReflection(ctx, ReflectionInput{Mood: 11, Energy: 5, Stress: 5}); !errors.As(err, &verr) {
		t.Fatalf("mood 11: got %v, want ValidationError", err)
	}
	if _, err := svc.SaveReflection(ctx, ReflectionInput{Mood: 5, Energy: -1, Stress: 5}); !errors.As(err, &verr) {
		t.Fatalf("energy -1: got %v, want ValidationError", err)
	}
	if _, err := svc.SaveReflection(ctx, ReflectionInput{Mood: 5, Energy: 5, Stress: 5, Date: "04-06-2025"}); !errors.As(err, &verr) {
		t.Fatalf("bad date: got %v, want ValidationError", err)
	}
}

func TestReflectionNewestWins(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.SaveReflection(ctx, ReflectionInput{Mood: 3, Energy: 3, Stress: 8}); err != nil {
		t.Fatalf("first reflection: %v", err)
	}
	if _, err := svc.SaveReflection(ctx, ReflectionInput{Mood: 7, Energy: 6, Stress: 2}); err != nil {
		t.Fatalf("second reflection: %v", err)
	}

	ref, err := svc.ReflectionByDate(ctx, "2025-06-04")
	if err != nil {
		t.Fatalf("ReflectionByDate: %v", err)
	}
	if ref == nil {
		t.Fatalf("expected a reflection for today")
	}
	if ref.Mood != 7 || ref.Stress != 2 {
		t.Fatalf("got mood=%d stress=%d, want the newer entry (7/2)", ref.Mood, ref.Stress)
	}
}

func TestShieldReminder(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	remind, err := svc.ShouldShowShieldReminder(ctx)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if remind {
		t.Fatalf("reminder shown with no history")
	}

	if _, err := svc.SaveReflection(ctx, ReflectionInput{Mood: 3, Energy: 4, Stress: 9}); err != nil {
		t.Fatalf("save reflection: %v", err)
	}
	remind, err = svc.ShouldShowShieldReminder(ctx)
	if err != nil {
		t.Fatalf("check after stress: %v", err)
	}
	if !remind {
		t.Fatalf("reminder not shown despite stress 9")
	}

	// An activation today suppresses the reminder even under high stress.
	id, err := svc.StartShield(ctx, "overwhelmed")
	if err != nil {
		t.Fatalf("StartShield: %v", err)
	}
	remind, err = svc.ShouldShowShieldReminder(ctx)
	if err != nil {
		t.Fatalf("check after activation: %v", err)
	}
	if remind {
		t.Fatalf("reminder shown despite an activation today")
	}

	if err := svc.EndShield(ctx, id, 600, 8); err != nil {
		t.Fatalf("EndShield: %v", err)
	}
	var verr ValidationError
	if err := svc.EndShield(ctx, id, -1, 5); !errors.As(err, &verr) {
		t.Fatalf("negative duration: got %v, want ValidationError", err)
	}
	if err := svc.EndShield(ctx, id, 60, 11); !errors.As(err, &verr) {
		t.Fatalf("rating 11: got %v, want ValidationError", err)
	}
}

func TestPatternInsights(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	insights, err := svc.PatternInsights(ctx)
	if err != nil {
		t.Fatalf("PatternInsights: %v", err)
	}
	if len(insights) != 1 || insights[0].Title != "Just Getting Started" {
		t.Fatalf("fresh insights=%+v, want the single starter entry", insights)
	}

	q := anyQuest(t, svc, catalog.CategoryCreative)
	for i := 0; i < 3; i++ {
		if _, err := svc.RecordCompletion(ctx, q.ID, 10, 0, i == 0); err != nil {
			t.Fatalf("completion %d: %v", i, err)
		}
	}

	insights, err = svc.PatternInsights(ctx)
	if err != nil {
		t.Fatalf("PatternInsights after history: %v", err)
	}
	titles := make(map[string]string, len(insights))
	for _, in := range insights {
		titles[in.Title] = in.Message
	}
	if _, ok := titles["Best Time of Day"]; !ok {
		t.Fatalf("missing Best Time of Day insight: %+v", insights)
	}
	msg, ok := titles["Strongest Domain"]
	if !ok {
		t.Fatalf("missing Strongest Domain insight: %+v", insights)
	}
	if !strings.Contains(msg, "Creative Reawakening") {
		t.Fatalf("strongest domain message=%q, want Creative Reawakening", msg)
	}
	if _, ok := titles["Record Streak!"]; !ok {
		t.Fatalf("missing Record Streak! insight while at the best streak: %+v", insights)
	}
}

func TestChampionMessage(t *testing.T) {
	cases := []struct {
		streak int
		want   string
	}{
		{0, "Every champion starts somewhere. Today is your day."},
		{1, "You're back. The champion is waking up."},
		{3, "Day 3. You're building momentum."},
		{10, "10 days strong. The champion is remembering."},
		{20, "20 days. You're not the same person who started."},
		{45, "45 days! The world better get ready."},
		{90, "90 days of greatness. The legend continues."},
	}
	for _, c := range cases {
		got := ChampionMessage(&storage.Profile{Streak: c.streak})
		if got != c.want {
			t.Fatalf("ChampionMessage(streak=%d)=%q, want %q", c.streak, got, c.want)
		}
	}
}

func TestClearAllData(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	q := anyQuest(t, svc, catalog.CategoryFinancial)
	if _, err := svc.RecordCompletion(ctx, q.ID, 50, 0, true); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	if _, err := svc.SaveReflection(ctx, ReflectionInput{Mood: 5, Energy: 5, Stress: 5}); err != nil {
		t.Fatalf("SaveReflection: %v", err)
	}

	if err := svc.ClearAllData(ctx); err != nil {
		t.Fatalf("ClearAllData: %v", err)
	}

	p, err := svc.ProfileRepo().GetOrCreate(ctx)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.XP != 0 || p.Level != 1 || p.Streak != 0 || p.BestStreak != 0 || p.LastQuestDate != nil {
		t.Fatalf("profile not reset: %+v", p)
	}

	total, err := svc.CompletionRepo().CountAll(ctx)
	if err != nil {
		t.Fatalf("count completions: %v", err)
	}
	if total != 0 {
		t.Fatalf("completions after reset=%d, want 0", total)
	}

	ref, err := svc.LatestReflection(ctx)
	if err != nil {
		t.Fatalf("latest reflection: %v", err)
	}
	if ref != nil {
		t.Fatalf("reflection survived reset: %+v", ref)
	}

	// The quest catalog must survive a reset.
	n, err := svc.QuestRepo().Count(ctx)
	if err != nil {
		t.Fatalf("count quests: %v", err)
	}
	if n == 0 {
		t.Fatalf("quest catalog wiped by reset")
	}
}
