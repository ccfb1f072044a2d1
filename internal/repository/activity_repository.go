package repository

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.ActivityEntry) error
	List(ctx context.Context) ([]*domain.ActivityEntry, error)
}

type SettingsRepository interface {
	GetTheme(ctx context.Context) (*domain.Theme, error)
	SetTheme(ctx context.Context, theme *domain.Theme) error
}

// SnapshotRepository заменяет всё состояние целиком (импорт интегрированного JSON)
type SnapshotRepository interface {
	Replace(ctx context.Context, snapshot *domain.Snapshot) error
}
