package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type activityRepository struct {
	executor DBExecutor
}

func NewActivityRepository(db *sql.DB) *activityRepository {
	return &activityRepository{executor: db}
}

func (r *activityRepository) Append(ctx context.Context, entry *domain.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (created_at, level, message)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	return r.executor.QueryRowContext(ctx, query, entry.Timestamp, string(entry.Level), entry.Message).
		Scan(&entry.ID)
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.ActivityEntry, error) {
	query := `
		SELECT id, created_at, level, message
		FROM activity_log
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ActivityEntry
	for rows.Next() {
		entry := &domain.ActivityEntry{}
		var level string
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &level, &entry.Message); err != nil {
			return nil, err
		}
		entry.Level = domain.Level(level)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
