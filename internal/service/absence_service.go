package service

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/analytics"
	"github.com/bagdasarian/position-helper/internal/charts"
	"github.com/bagdasarian/position-helper/internal/domain"
)

type AbsenceCharts struct {
	Bar     charts.Figure
	Pie     charts.Figure
	Daily   charts.Figure
	Monthly charts.Figure
}

// AbsenceStats - итоги по участникам и графики отсутствий
type AbsenceStats struct {
	Totals    []analytics.MemberCount
	Total     int
	DailyMean float64
	Charts    AbsenceCharts
}

type AbsenceService interface {
	Get(ctx context.Context) (*domain.AbsenceLog, error)
	Add(ctx context.Context, date, member, reason string) (*domain.AbsenceLog, *domain.Notice, error)
	Reset(ctx context.Context) (*domain.Notice, error)
	Import(ctx context.Context, filename string, data []byte) (*domain.AbsenceLog, *domain.Notice, error)
	Export(ctx context.Context) (*Download, error)
	Stats(ctx context.Context) (*AbsenceStats, error)
}
