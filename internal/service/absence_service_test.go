package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/position-helper/internal/charts"
	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAbsenceService() (*MockAbsenceRepository, *MockSettingsRepository, *MockActivityRepository, AbsenceService) {
	repo := new(MockAbsenceRepository)
	settings := new(MockSettingsRepository)
	activityRepo, activity := newActivity()
	return repo, settings, activityRepo, NewAbsenceService(repo, settings, activity)
}

func TestAbsenceService_Add(t *testing.T) {
	t.Run("новая запись", func(t *testing.T) {
		repo, _, activityRepo, service := newAbsenceService()
		repo.On("Get", mock.Anything).Return(domain.NewAbsenceLog(), nil)
		repo.On("Replace", mock.Anything, mock.Anything).Return(nil)
		expectActivity(activityRepo, domain.LevelSuccess, "member 'Alice' marked absent on 2024-01-07")

		log, notice, err := service.Add(context.Background(), "2024-01-07", "Alice", " trip ")

		require.NoError(t, err)
		assert.Equal(t, domain.LevelSuccess, notice.Level)
		assert.Equal(t, []string{"Alice"}, log.Dates["2024-01-07"].AbsentMembers)
		assert.Equal(t, "trip", log.Dates["2024-01-07"].Notes["Alice"])
		repo.AssertExpectations(t)
		activityRepo.AssertExpectations(t)
	})

	t.Run("повторная запись обновляет причину", func(t *testing.T) {
		repo, _, activityRepo, service := newAbsenceService()
		existing := domain.NewAbsenceLog()
		existing.Add("2024-01-07", "Alice", "trip")
		repo.On("Get", mock.Anything).Return(existing, nil)
		repo.On("Replace", mock.Anything, mock.Anything).Return(nil)

		log, notice, err := service.Add(context.Background(), "2024-01-07", "Alice", "sick")

		require.NoError(t, err)
		assert.Equal(t, domain.LevelWarning, notice.Level)
		assert.Contains(t, notice.Message, "reason updated")
		assert.Len(t, log.Dates["2024-01-07"].AbsentMembers, 1)
		assert.Equal(t, "sick", log.Dates["2024-01-07"].Notes["Alice"])
		activityRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: неверная дата", func(t *testing.T) {
		repo, _, _, service := newAbsenceService()

		for _, date := range []string{"", "07.01.2024", "2024-13-01"} {
			_, _, err := service.Add(context.Background(), date, "Alice", "")
			assert.ErrorIs(t, err, domain.ErrBadRequest, date)
		}
		repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: участник не выбран", func(t *testing.T) {
		_, _, _, service := newAbsenceService()

		_, _, err := service.Add(context.Background(), "2024-01-07", " ", "")

		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestAbsenceService_Reset(t *testing.T) {
	repo, _, activityRepo, service := newAbsenceService()
	repo.On("Reset", mock.Anything).Return(nil)
	expectActivity(activityRepo, domain.LevelWarning, "absence records reset")

	notice, err := service.Reset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.LevelWarning, notice.Level)
	repo.AssertExpectations(t)
}

func TestAbsenceService_Import(t *testing.T) {
	t.Run("успешный импорт", func(t *testing.T) {
		repo, _, activityRepo, service := newAbsenceService()
		repo.On("Replace", mock.Anything, mock.MatchedBy(func(l *domain.AbsenceLog) bool {
			return l.Total() == 2
		})).Return(nil)
		expectActivity(activityRepo, domain.LevelSuccess, "absence file 'a.json' imported (1 dates, 2 records)")

		body := []byte(`{"dates": {"2024-01-07": {"absent_members": ["A", "B"], "notes": {}}}}`)
		log, _, err := service.Import(context.Background(), "a.json", body)

		require.NoError(t, err)
		assert.Equal(t, 2, log.Total())
		repo.AssertExpectations(t)
	})

	t.Run("ошибка: нет dates - состояние не меняется", func(t *testing.T) {
		repo, _, _, service := newAbsenceService()

		_, _, err := service.Import(context.Background(), "a.json", []byte(`{}`))

		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
		repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})
}

func TestAbsenceService_Stats(t *testing.T) {
	t.Run("итоги и графики", func(t *testing.T) {
		repo, settings, _, service := newAbsenceService()
		log := domain.NewAbsenceLog()
		log.Add("2024-01-07", "Alice", "")
		log.Add("2024-01-14", "Alice", "")
		log.Add("2024-01-14", "Bob", "")
		repo.On("Get", mock.Anything).Return(log, nil)
		settings.On("GetTheme", mock.Anything).Return(&domain.Theme{Dark: true}, nil)

		stats, err := service.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, "Alice", stats.Totals[0].Member)
		assert.InDelta(t, 1.5, stats.DailyMean, 1e-9)
		assert.Equal(t, charts.TemplateDark, stats.Charts.Bar.Layout.Template)
		assert.NotEmpty(t, stats.Charts.Monthly.Data)
	})

	t.Run("ошибка хранилища", func(t *testing.T) {
		repo, _, _, service := newAbsenceService()
		repo.On("Get", mock.Anything).Return(nil, errors.New("db down"))

		_, err := service.Stats(context.Background())

		require.Error(t, err)
	})
}

func TestAbsenceService_Export(t *testing.T) {
	repo, _, _, service := newAbsenceService()
	log := domain.NewAbsenceLog()
	log.Add("2024-01-07", "Alice", "trip")
	repo.On("Get", mock.Anything).Return(log, nil)

	download, err := service.Export(context.Background())

	require.NoError(t, err)
	assert.Regexp(t, `^absence_data_\d{8}_\d{6}\.json$`, download.FileName)
	assert.Contains(t, string(download.Body), `"absent_members": [`)
}
