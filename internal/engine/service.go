package engine

import (
	"database/sql"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/INTERPOLALERT/back-to-life/internal/storage"
)

// Service exposes quest selection, the progression ledger, reflections and
// shield tracking over one database handle. Profile state is always read
// through the repos, never cached, so callers can hold a Service for the
// whole process lifetime.
type Service struct {
	db          *sql.DB
	profiles    *storage.ProfileRepo
	quests      *storage.QuestRepo
	completions *storage.CompletionRepo
	reflections *storage.ReflectionRepo
	shields     *storage.ShieldRepo

	now func() time.Time
	rng *rand.Rand
	log *zap.Logger
}

type Option func(*Service)

// WithClock overrides the wall clock. Tests use it to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand overrides the random source so selection can be replayed
// deterministically.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:          db,
		profiles:    storage.NewProfileRepo(db),
		quests:      storage.NewQuestRepo(db),
		completions: storage.NewCompletionRepo(db),
		reflections: storage.NewReflectionRepo(db),
		shields:     storage.NewShieldRepo(db),
		now:         time.Now,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ProfileRepo() *storage.ProfileRepo       { return s.profiles }
func (s *Service) QuestRepo() *storage.QuestRepo           { return s.quests }
func (s *Service) CompletionRepo() *storage.CompletionRepo { return s.completions }
func (s *Service) ReflectionRepo() *storage.ReflectionRepo { return s.reflections }
func (s *Service) ShieldRepo() *storage.ShieldRepo         { return s.shields }

// today returns the current calendar date as "2006-01-02".
func (s *Service) today() string {
	return s.now().Format(time.DateOnly)
}

// dayBounds returns [midnight, next midnight) around t in t's location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
