package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// ClearAllData empties every history table and restores the profile to
// first-run defaults, as one transaction. The quest catalog is untouched.
func ClearAllData(ctx context.Context, db *sql.DB) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM quest_history`,
			`DELETE FROM reflections`,
			`DELETE FROM shield_activations`,
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("clear data: %w", err)
			}
		}
		return NewProfileRepo(tx).Reset(ctx)
	})
}
