package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type snapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *snapshotRepository {
	return &snapshotRepository{db: db}
}

// Replace заменяет таблицу, отсутствия и состав в одной транзакции:
// при ошибке прежнее состояние не меняется
func (r *snapshotRepository) Replace(ctx context.Context, snapshot *domain.Snapshot) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := writeTable(ctx, tx, snapshot.Table); err != nil {
			return err
		}

		absences := snapshot.Absences
		if absences == nil {
			absences = domain.NewAbsenceLog()
		}
		if err := writeAbsences(ctx, tx, absences); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM members`); err != nil {
			return err
		}
		for _, member := range snapshot.Roster {
			if err := insertMember(ctx, tx, member); err != nil {
				return err
			}
		}
		return nil
	})
}
