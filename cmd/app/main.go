package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/bagdasarian/position-helper/internal/analytics"
	"github.com/bagdasarian/position-helper/internal/config"
	"github.com/bagdasarian/position-helper/internal/db"
	"github.com/bagdasarian/position-helper/internal/handler"
	"github.com/bagdasarian/position-helper/internal/handler/server"
	"github.com/bagdasarian/position-helper/internal/logger"
	"github.com/bagdasarian/position-helper/internal/repository/postgres"
	"github.com/bagdasarian/position-helper/internal/service"
)

var CLI struct {
	Version kong.VersionFlag
	Host    string `help:"Address to listen on." default:"${host}"`
	Port    int    `help:"Port to listen on." default:"${port}"`
	Debug   bool   `help:"Enable debug logging."`
}

func main() {
	cfg := config.Load()

	kong.Parse(&CLI,
		kong.Name("position-helper"),
		kong.Description("Position assignment helper: team roster, position counts, absences and statistics"),
		kong.UsageOnError(),
		kong.Vars{
			"version": "v1.0.0",
			"host":    cfg.Server.Host,
			"port":    strconv.Itoa(cfg.Server.Port),
		},
	)
	cfg.Server.Host = CLI.Host
	cfg.Server.Port = CLI.Port
	cfg.Server.Debug = CLI.Debug

	if err := logger.Init(logger.Config{Debug: cfg.Server.Debug, Dir: cfg.Log.Dir}); err != nil {
		panic(err)
	}

	database := db.MustLoad(cfg)
	logger.Info("successfully connected to database")
	defer database.Close()

	memberRepo := postgres.NewMemberRepository(database)
	positionRepo := postgres.NewPositionRepository(database)
	absenceRepo := postgres.NewAbsenceRepository(database)
	activityRepo := postgres.NewActivityRepository(database)
	settingsRepo := postgres.NewSettingsRepository(database)
	snapshotRepo := postgres.NewSnapshotRepository(database)

	cache := analytics.NewFrameCache(cfg.Analytics.CacheTTL)

	activityService := service.NewActivityService(activityRepo)
	memberService := service.NewMemberService(memberRepo, positionRepo, absenceRepo, activityService)
	positionService := service.NewPositionService(positionRepo, cache, activityService)
	absenceService := service.NewAbsenceService(absenceRepo, settingsRepo, activityService)
	chartService := service.NewChartService(positionRepo, memberRepo, settingsRepo, cache, cfg.Analytics.SpecialPosition)
	exchangeService := service.NewExchangeService(positionRepo, absenceRepo, memberRepo, snapshotRepo, activityService)
	themeService := service.NewThemeService(settingsRepo)

	h := handler.NewHandler(
		memberService,
		positionService,
		absenceService,
		chartService,
		exchangeService,
		activityService,
		themeService,
	)
	srv := server.NewServer(h, cfg.Server.Addr())

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "err", err)
	}
}
