package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/position-helper/internal/analytics"
	"github.com/bagdasarian/position-helper/internal/charts"
	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/exchange"
	"github.com/bagdasarian/position-helper/internal/logger"
	"github.com/bagdasarian/position-helper/internal/repository"
	"github.com/dustin/go-humanize"
)

type absenceService struct {
	absenceRepo  repository.AbsenceRepository
	settingsRepo repository.SettingsRepository
	activity     ActivityService
	now          func() time.Time
}

func NewAbsenceService(
	absenceRepo repository.AbsenceRepository,
	settingsRepo repository.SettingsRepository,
	activity ActivityService,
) AbsenceService {
	return &absenceService{
		absenceRepo:  absenceRepo,
		settingsRepo: settingsRepo,
		activity:     activity,
		now:          time.Now,
	}
}

func (s *absenceService) Get(ctx context.Context) (*domain.AbsenceLog, error) {
	return s.absenceRepo.Get(ctx)
}

func (s *absenceService) Add(ctx context.Context, date, member, reason string) (*domain.AbsenceLog, *domain.Notice, error) {
	date, err := domain.ValidateDate(date)
	if err != nil {
		return nil, nil, err
	}
	member = strings.TrimSpace(member)
	if member == "" {
		return nil, nil, domain.NewBadRequestError("member is required")
	}
	reason = strings.TrimSpace(reason)

	log, err := s.absenceRepo.Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	created := log.Add(date, member, reason)
	if err := s.absenceRepo.Replace(ctx, log); err != nil {
		return nil, nil, err
	}

	if created {
		return log, s.activity.Record(ctx, domain.LevelSuccess,
			fmt.Sprintf("member '%s' marked absent on %s", member, date)), nil
	}
	msg := fmt.Sprintf("member '%s' is already marked absent on %s", member, date)
	if reason != "" {
		msg += "; reason updated"
	}
	return log, &domain.Notice{Level: domain.LevelWarning, Message: msg}, nil
}

func (s *absenceService) Reset(ctx context.Context) (*domain.Notice, error) {
	if err := s.absenceRepo.Reset(ctx); err != nil {
		return nil, err
	}
	return s.activity.Record(ctx, domain.LevelWarning, "absence records reset"), nil
}

func (s *absenceService) Import(ctx context.Context, filename string, data []byte) (*domain.AbsenceLog, *domain.Notice, error) {
	logger.Info("absence upload received", "file", filename, "size", humanize.Bytes(uint64(len(data))))

	log, err := exchange.DecodeAbsences(filename, data)
	if err != nil {
		return nil, nil, err
	}
	if err := s.absenceRepo.Replace(ctx, log); err != nil {
		return nil, nil, err
	}

	notice := s.activity.Record(ctx, domain.LevelSuccess,
		fmt.Sprintf("absence file '%s' imported (%d dates, %d records)", filename, len(log.Dates), log.Total()))
	return log, notice, nil
}

func (s *absenceService) Export(ctx context.Context) (*Download, error) {
	log, err := s.absenceRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	body, err := exchange.EncodeAbsences(log)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return &Download{
		FileName:    "absence_data_" + now.Format("20060102_150405") + ".json",
		ContentType: "application/json",
		Body:        body,
		CreatedAt:   now,
	}, nil
}

func (s *absenceService) Stats(ctx context.Context) (*AbsenceStats, error) {
	log, err := s.absenceRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	theme, err := s.settingsRepo.GetTheme(ctx)
	if err != nil {
		return nil, err
	}
	template := charts.Template(theme.Dark)

	totals := analytics.AbsenceTotals(log)
	daily, mean := analytics.DailyAbsences(log)
	monthly := analytics.MonthlyAbsences(log)

	return &AbsenceStats{
		Totals:    totals,
		Total:     log.Total(),
		DailyMean: mean,
		Charts: AbsenceCharts{
			Bar:     charts.AbsenceBar(totals, template),
			Pie:     charts.AbsencePie(totals, template),
			Daily:   charts.AbsenceDaily(daily, mean, template),
			Monthly: charts.AbsenceMonthly(monthly, template),
		},
	}, nil
}
