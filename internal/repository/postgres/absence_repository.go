package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type absenceRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewAbsenceRepository(db *sql.DB) *absenceRepository {
	return &absenceRepository{db: db, executor: db}
}

func (r *absenceRepository) Get(ctx context.Context) (*domain.AbsenceLog, error) {
	log := domain.NewAbsenceLog()

	days, err := r.executor.QueryContext(ctx, `SELECT day FROM absence_days ORDER BY day`)
	if err != nil {
		return nil, err
	}
	defer days.Close()

	for days.Next() {
		var day string
		if err := days.Scan(&day); err != nil {
			return nil, err
		}
		log.Dates[day] = &domain.AbsenceDay{AbsentMembers: []string{}, Notes: map[string]string{}}
	}
	if err := days.Err(); err != nil {
		return nil, err
	}

	query := `
		SELECT day, member_name, reason
		FROM absences
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day, member string
		var reason sql.NullString
		if err := rows.Scan(&day, &member, &reason); err != nil {
			return nil, err
		}

		entry, ok := log.Dates[day]
		if !ok {
			entry = &domain.AbsenceDay{Notes: map[string]string{}}
			log.Dates[day] = entry
		}
		entry.AbsentMembers = append(entry.AbsentMembers, member)
		if reason.Valid {
			entry.Notes[member] = reason.String
		}
	}

	return log, rows.Err()
}

func (r *absenceRepository) Replace(ctx context.Context, log *domain.AbsenceLog) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return writeAbsences(ctx, tx, log)
	})
}

func (r *absenceRepository) Reset(ctx context.Context) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM absence_days`)
	return err
}

func writeAbsences(ctx context.Context, executor DBExecutor, log *domain.AbsenceLog) error {
	if _, err := executor.ExecContext(ctx, `DELETE FROM absence_days`); err != nil {
		return err
	}

	for _, day := range log.SortedDates() {
		if _, err := executor.ExecContext(ctx, `INSERT INTO absence_days (day) VALUES ($1)`, day); err != nil {
			return err
		}

		entry := log.Dates[day]
		if entry == nil {
			continue
		}
		for _, member := range entry.AbsentMembers {
			var reason any
			if note, ok := entry.Notes[member]; ok {
				reason = note
			}
			_, err := executor.ExecContext(ctx,
				`INSERT INTO absences (day, member_name, reason) VALUES ($1, $2, $3)`,
				day, member, reason)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
