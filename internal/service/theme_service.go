package service

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/charts"
)

type ThemeService interface {
	Get(ctx context.Context) (charts.ThemeColors, error)
	Set(ctx context.Context, dark bool) (charts.ThemeColors, error)
}
