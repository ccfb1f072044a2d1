package service

import (
	"context"
	"testing"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestThemeService(t *testing.T) {
	t.Run("по умолчанию светлая тема", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("GetTheme", mock.Anything).Return(&domain.Theme{}, nil)

		colors, err := NewThemeService(repo).Get(context.Background())

		require.NoError(t, err)
		assert.False(t, colors.Dark)
		assert.Equal(t, "plotly_white", colors.PlotlyTemplate)
	})

	t.Run("переключение на тёмную", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("SetTheme", mock.Anything, &domain.Theme{Dark: true}).Return(nil)

		colors, err := NewThemeService(repo).Set(context.Background(), true)

		require.NoError(t, err)
		assert.Equal(t, "plotly_dark", colors.PlotlyTemplate)
		repo.AssertExpectations(t)
	})
}

func TestActivityService_List(t *testing.T) {
	repo, service := newActivity()
	repo.On("List", mock.Anything).Return(nil, nil)

	entries, err := service.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
