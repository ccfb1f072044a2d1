package service

import (
	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/stretchr/testify/mock"
)

func newTable(members, positions []string, values [][]float64) *domain.PositionTable {
	table := domain.NewPositionTable()
	table.Members = members
	table.Positions = positions
	for _, row := range values {
		cells := make([]domain.Cell, len(row))
		for j, v := range row {
			cells[j] = domain.NumberCell(v)
		}
		table.Cells = append(table.Cells, cells)
	}
	return table
}

func newActivity() (*MockActivityRepository, ActivityService) {
	repo := new(MockActivityRepository)
	return repo, NewActivityService(repo)
}

func expectActivity(repo *MockActivityRepository, level domain.Level, message string) {
	repo.On("Append", mock.Anything, mock.MatchedBy(func(e *domain.ActivityEntry) bool {
		return e.Level == level && e.Message == message
	})).Return(nil).Once()
}
