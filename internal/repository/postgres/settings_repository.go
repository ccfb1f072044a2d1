package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/bagdasarian/position-helper/internal/domain"
)

const themeKey = "theme"

type themeValue struct {
	Dark bool `json:"dark"`
}

type settingsRepository struct {
	executor DBExecutor
}

func NewSettingsRepository(db *sql.DB) *settingsRepository {
	return &settingsRepository{executor: db}
}

func (r *settingsRepository) GetTheme(ctx context.Context) (*domain.Theme, error) {
	var raw []byte
	err := r.executor.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, themeKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.Theme{}, nil
		}
		return nil, err
	}

	var v themeValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &domain.Theme{Dark: v.Dark}, nil
}

func (r *settingsRepository) SetTheme(ctx context.Context, theme *domain.Theme) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	raw, err := json.Marshal(themeValue{Dark: theme.Dark})
	if err != nil {
		return err
	}

	_, err = r.executor.ExecContext(ctx, query, themeKey, string(raw), time.Now())
	return err
}
