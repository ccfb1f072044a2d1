package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionRepository_GetTable(t *testing.T) {
	t.Run("таблица собирается в порядке позиций", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPositionRepository(db)

		mock.ExpectQuery("SELECT name FROM positions").
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("SW").AddRow("Camera"))
		mock.ExpectQuery("SELECT member_name, cells FROM position_rows").
			WillReturnRows(sqlmock.NewRows([]string{"member_name", "cells"}).
				AddRow("Alice", []byte(`{"Camera":2,"SW":1}`)).
				AddRow("Bob", []byte(`{"SW":"sick"}`)))

		table, err := repo.GetTable(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultIndexName, table.IndexName)
		assert.Equal(t, []string{"SW", "Camera"}, table.Positions)
		assert.Equal(t, []string{"Alice", "Bob"}, table.Members)

		v, ok := table.Cell(0, 1).Float()
		require.True(t, ok)
		assert.Equal(t, 2.0, v)
		assert.Equal(t, "sick", table.Cell(1, 0).Text)
		assert.True(t, table.Cell(1, 1).IsBlank())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустая таблица", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPositionRepository(db)

		mock.ExpectQuery("SELECT name FROM positions").WillReturnRows(sqlmock.NewRows([]string{"name"}))
		mock.ExpectQuery("SELECT member_name, cells").WillReturnRows(sqlmock.NewRows([]string{"member_name", "cells"}))

		table, err := repo.GetTable(context.Background())

		require.NoError(t, err)
		assert.True(t, table.IsEmpty())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPositionRepository_SaveTable(t *testing.T) {
	t.Run("таблица перезаписывается целиком", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPositionRepository(db)

		table := domain.NewPositionTable()
		table.Positions = []string{"SW", "Camera"}
		table.Members = []string{"Alice"}
		table.Cells = [][]domain.Cell{{domain.NumberCell(3), {}}}

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM position_rows").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM positions").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("INSERT INTO positions").WithArgs("SW", 0).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO positions").WithArgs("Camera", 1).WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectExec("INSERT INTO position_rows").WithArgs("Alice", 0, `{"SW":3}`).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.SaveTable(context.Background(), table))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка вставки откатывает транзакцию", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPositionRepository(db)

		table := domain.NewPositionTable()
		table.Positions = []string{"SW"}

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM position_rows").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM positions").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO positions").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		require.Error(t, repo.SaveTable(context.Background(), table))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPositionRepository_AddRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPositionRepository(db)

	mock.ExpectQuery("SELECT name FROM positions").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("SW").AddRow("Camera"))
	mock.ExpectExec("INSERT INTO position_rows").
		WithArgs("Carol", `{"Camera":0,"SW":0}`).
		WillReturnResult(sqlmock.NewResult(3, 1))

	require.NoError(t, repo.AddRow(context.Background(), "Carol"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
