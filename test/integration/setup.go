//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bagdasarian/position-helper/internal/analytics"
	"github.com/bagdasarian/position-helper/internal/logger"
	"github.com/bagdasarian/position-helper/internal/repository/postgres"
	"github.com/bagdasarian/position-helper/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const specialPosition = "SW 배정 횟수"

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:17.7",
		tcpostgres.WithDatabase("position_helper_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, container.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
	}
	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать migrations/000001_init.up.sql")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}

type services struct {
	members   service.MemberService
	positions service.PositionService
	absences  service.AbsenceService
	charts    service.ChartService
	exchange  service.ExchangeService
	activity  service.ActivityService
}

func setupServices(t *testing.T) *services {
	logger.SetOutput(io.Discard)
	db := setupTestDB(t)

	memberRepo := postgres.NewMemberRepository(db)
	positionRepo := postgres.NewPositionRepository(db)
	absenceRepo := postgres.NewAbsenceRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	cache := analytics.NewFrameCache(0)
	activity := service.NewActivityService(postgres.NewActivityRepository(db))

	return &services{
		members:   service.NewMemberService(memberRepo, positionRepo, absenceRepo, activity),
		positions: service.NewPositionService(positionRepo, cache, activity),
		absences:  service.NewAbsenceService(absenceRepo, settingsRepo, activity),
		charts:    service.NewChartService(positionRepo, memberRepo, settingsRepo, cache, specialPosition),
		exchange: service.NewExchangeService(positionRepo, absenceRepo, memberRepo,
			postgres.NewSnapshotRepository(db), activity),
		activity: activity,
	}
}
