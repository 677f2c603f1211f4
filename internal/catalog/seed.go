package catalog

import (
	"context"
	"database/sql"

	"github.com/INTERPOLALERT/back-to-life/internal/storage"
)

// Seed inserts the built-in quest table. It is idempotent: when the quests
// table already has rows, nothing is written.
func Seed(ctx context.Context, db *sql.DB) error {
	n, err := storage.NewQuestRepo(db).Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return storage.WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := storage.NewQuestRepo(tx)
		for _, d := range Defs() {
			if _, err := repo.Insert(ctx, storage.QuestInsert{
				Category:        string(d.Category),
				Title:           d.Title,
				Description:     d.Description,
				DurationMinutes: d.Minutes,
				XPValue:         d.XP,
				Difficulty:      d.Difficulty,
				Tier:            d.Tier,
				WhyText:         d.Why,
				Instructions:    d.Instructions,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
