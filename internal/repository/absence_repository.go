package repository

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type AbsenceRepository interface {
	Get(ctx context.Context) (*domain.AbsenceLog, error)
	Replace(ctx context.Context, log *domain.AbsenceLog) error
	Reset(ctx context.Context) error
}
