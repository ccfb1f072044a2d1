package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_Append(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewActivityRepository(db)

	entry := &domain.ActivityEntry{Level: domain.LevelSuccess, Message: "member 'Alice' added"}
	mock.ExpectQuery("INSERT INTO activity_log").
		WithArgs(sqlmock.AnyArg(), "success", "member 'Alice' added").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	require.NoError(t, repo.Append(context.Background(), entry))
	assert.Equal(t, 7, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewActivityRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT id, created_at, level, message FROM activity_log").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "level", "message"}).
			AddRow(1, now, "success", "added").
			AddRow(2, now, "warning", "deleted"))

	entries, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.LevelWarning, entries[1].Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Theme(t *testing.T) {
	t.Run("по умолчанию светлая тема", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewSettingsRepository(db)

		mock.ExpectQuery("SELECT value FROM settings").WithArgs("theme").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		theme, err := repo.GetTheme(context.Background())

		require.NoError(t, err)
		assert.False(t, theme.Dark)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("сохраненная тёмная тема", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewSettingsRepository(db)

		mock.ExpectQuery("SELECT value FROM settings").WithArgs("theme").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"dark":true}`)))

		theme, err := repo.GetTheme(context.Background())

		require.NoError(t, err)
		assert.True(t, theme.Dark)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("запись темы", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewSettingsRepository(db)

		mock.ExpectExec("INSERT INTO settings").
			WithArgs("theme", `{"dark":true}`, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetTheme(context.Background(), &domain.Theme{Dark: true}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSnapshotRepository_Replace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSnapshotRepository(db)

	table := domain.NewPositionTable()
	table.Positions = []string{"SW"}
	table.Members = []string{"Alice"}
	table.Cells = [][]domain.Cell{{domain.NumberCell(1)}}

	snapshot := &domain.Snapshot{
		Table:    table,
		Absences: domain.NewAbsenceLog(),
		Roster:   []*domain.Member{domain.NewMember("Alice")},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM position_rows").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM positions").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO positions").WithArgs("SW", 0).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO position_rows").WithArgs("Alice", 0, `{"SW":1}`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM absence_days").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM members").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO members").WithArgs("Alice", "", true, "{}", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Replace(context.Background(), snapshot))
	assert.NoError(t, mock.ExpectationsWereMet())
}
