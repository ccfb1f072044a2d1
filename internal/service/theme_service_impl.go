package service

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/charts"
	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/repository"
)

type themeService struct {
	settingsRepo repository.SettingsRepository
}

func NewThemeService(settingsRepo repository.SettingsRepository) ThemeService {
	return &themeService{settingsRepo: settingsRepo}
}

func (s *themeService) Get(ctx context.Context) (charts.ThemeColors, error) {
	theme, err := s.settingsRepo.GetTheme(ctx)
	if err != nil {
		return charts.ThemeColors{}, err
	}
	return charts.Colors(theme.Dark), nil
}

func (s *themeService) Set(ctx context.Context, dark bool) (charts.ThemeColors, error) {
	if err := s.settingsRepo.SetTheme(ctx, &domain.Theme{Dark: dark}); err != nil {
		return charts.ThemeColors{}, err
	}
	return charts.Colors(dark), nil
}
