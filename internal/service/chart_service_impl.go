package service

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/analytics"
	"github.com/bagdasarian/position-helper/internal/charts"
	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/repository"
)

type chartService struct {
	positionRepo    repository.PositionRepository
	memberRepo      repository.MemberRepository
	settingsRepo    repository.SettingsRepository
	cache           *analytics.FrameCache
	specialPosition string
}

func NewChartService(
	positionRepo repository.PositionRepository,
	memberRepo repository.MemberRepository,
	settingsRepo repository.SettingsRepository,
	cache *analytics.FrameCache,
	specialPosition string,
) ChartService {
	return &chartService{
		positionRepo:    positionRepo,
		memberRepo:      memberRepo,
		settingsRepo:    settingsRepo,
		cache:           cache,
		specialPosition: specialPosition,
	}
}

func (s *chartService) Workload(ctx context.Context) (*WorkloadCharts, error) {
	table, err := s.positionRepo.GetTable(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	theme, err := s.settingsRepo.GetTheme(ctx)
	if err != nil {
		return nil, err
	}

	roster := make(map[string]*domain.Member, len(members))
	for _, m := range members {
		roster[m.Name] = m
	}

	frame := s.cache.Numeric(table)
	active := frame.SelectRows(domain.ActiveNames(frame.Members, roster))
	template := charts.Template(theme.Dark)

	return &WorkloadCharts{
		Treemap:      charts.Treemap(analytics.WorkloadTotals(active), template),
		Distribution: charts.Distribution(analytics.Distribution(active, s.specialPosition), s.specialPosition, template),
		Heatmap:      charts.Heatmap(active, theme.Dark),
		Deviation:    charts.DeviationHeatmap(analytics.Deviation(active, s.specialPosition), theme.Dark),
		Columns:      analytics.ColumnStatistics(active),
	}, nil
}
