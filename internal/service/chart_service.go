package service

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/analytics"
	"github.com/bagdasarian/position-helper/internal/charts"
)

// WorkloadCharts - графики нагрузки по активным участникам
type WorkloadCharts struct {
	Treemap      charts.Figure
	Distribution charts.Figure
	Heatmap      charts.Figure
	Deviation    charts.Figure
	Columns      []analytics.ColumnStats
}

type ChartService interface {
	Workload(ctx context.Context) (*WorkloadCharts, error)
}
