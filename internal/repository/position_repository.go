package repository

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type PositionRepository interface {
	GetTable(ctx context.Context) (*domain.PositionTable, error)
	SaveTable(ctx context.Context, table *domain.PositionTable) error
	AddRow(ctx context.Context, member string) error
}
