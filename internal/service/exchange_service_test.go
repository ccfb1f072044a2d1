package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type exchangeFixture struct {
	positions *MockPositionRepository
	absences  *MockAbsenceRepository
	members   *MockMemberRepository
	snapshots *MockSnapshotRepository
	activity  *MockActivityRepository
	service   ExchangeService
}

func newExchangeFixture() *exchangeFixture {
	f := &exchangeFixture{
		positions: new(MockPositionRepository),
		absences:  new(MockAbsenceRepository),
		members:   new(MockMemberRepository),
		snapshots: new(MockSnapshotRepository),
	}
	var activity ActivityService
	f.activity, activity = newActivity()
	f.service = NewExchangeService(f.positions, f.absences, f.members, f.snapshots, activity)
	return f
}

func TestExchangeService_ExportImport(t *testing.T) {
	f := newExchangeFixture()
	ctx := context.Background()

	table := newTable([]string{"홍길동", "Alice"}, []string{"Camera"}, [][]float64{{1}, {2}})
	absences := domain.NewAbsenceLog()
	absences.Add("2024-01-07", "Alice", "trip")
	alice := domain.NewMember("Alice")
	alice.IsActive = false
	f.positions.On("GetTable", mock.Anything).Return(table, nil)
	f.absences.On("Get", mock.Anything).Return(absences, nil)
	f.members.On("List", mock.Anything).Return([]*domain.Member{domain.NewMember("홍길동"), alice}, nil)
	f.activity.On("Append", mock.Anything, mock.Anything).Return(nil)

	download, err := f.service.Export(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^integrated_position_data_\d{8}_\d{6}\.json$`, download.FileName)

	var replaced *domain.Snapshot
	f.snapshots.On("Replace", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		replaced = args.Get(1).(*domain.Snapshot)
	}).Return(nil)

	result, notice, err := f.service.Import(ctx, download.FileName, download.Body)

	require.NoError(t, err)
	assert.Equal(t, domain.LevelSuccess, notice.Level)
	assert.Contains(t, notice.Message, "(2 members, 1 absence records)")
	assert.Same(t, result.Snapshot, replaced)
	assert.Equal(t, table.Members, replaced.Table.Members)
	assert.False(t, replaced.Roster[1].IsActive)
}

func TestExchangeService_Import(t *testing.T) {
	t.Run("ошибка формата - состояние не меняется", func(t *testing.T) {
		f := newExchangeFixture()

		_, _, err := f.service.Import(context.Background(), "a.json", []byte(`{"absence_data": {}}`))

		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
		f.snapshots.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: не JSON", func(t *testing.T) {
		f := newExchangeFixture()

		_, _, err := f.service.Import(context.Background(), "a.xlsx", []byte(`{}`))

		assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
	})

	t.Run("ошибка хранилища", func(t *testing.T) {
		f := newExchangeFixture()
		f.snapshots.On("Replace", mock.Anything, mock.Anything).Return(errors.New("tx failed"))

		body := []byte(`{"team_data": {"members": ["Bob"], "positions": ["P"], "data": {"Bob": {"P": 1}}}}`)
		_, _, err := f.service.Import(context.Background(), "a.json", body)

		require.Error(t, err)
		f.activity.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})
}
