package service

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByName(ctx context.Context, name string) (*domain.Member, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Update(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type MockPositionRepository struct {
	mock.Mock
}

func (m *MockPositionRepository) GetTable(ctx context.Context) (*domain.PositionTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PositionTable), args.Error(1)
}

func (m *MockPositionRepository) SaveTable(ctx context.Context, table *domain.PositionTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockPositionRepository) AddRow(ctx context.Context, member string) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

type MockAbsenceRepository struct {
	mock.Mock
}

func (m *MockAbsenceRepository) Get(ctx context.Context) (*domain.AbsenceLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AbsenceLog), args.Error(1)
}

func (m *MockAbsenceRepository) Replace(ctx context.Context, log *domain.AbsenceLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAbsenceRepository) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Append(ctx context.Context, entry *domain.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context) ([]*domain.ActivityEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ActivityEntry), args.Error(1)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetTheme(ctx context.Context) (*domain.Theme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theme), args.Error(1)
}

func (m *MockSettingsRepository) SetTheme(ctx context.Context, theme *domain.Theme) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Replace(ctx context.Context, snapshot *domain.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}
