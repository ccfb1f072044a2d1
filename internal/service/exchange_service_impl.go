package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/exchange"
	"github.com/bagdasarian/position-helper/internal/logger"
	"github.com/bagdasarian/position-helper/internal/repository"
	"github.com/dustin/go-humanize"
)

type exchangeService struct {
	positionRepo repository.PositionRepository
	absenceRepo  repository.AbsenceRepository
	memberRepo   repository.MemberRepository
	snapshotRepo repository.SnapshotRepository
	activity     ActivityService
	now          func() time.Time
}

func NewExchangeService(
	positionRepo repository.PositionRepository,
	absenceRepo repository.AbsenceRepository,
	memberRepo repository.MemberRepository,
	snapshotRepo repository.SnapshotRepository,
	activity ActivityService,
) ExchangeService {
	return &exchangeService{
		positionRepo: positionRepo,
		absenceRepo:  absenceRepo,
		memberRepo:   memberRepo,
		snapshotRepo: snapshotRepo,
		activity:     activity,
		now:          time.Now,
	}
}

// Import заменяет таблицу, отсутствия и состав одной транзакцией
func (s *exchangeService) Import(ctx context.Context, filename string, data []byte) (*exchange.ImportResult, *domain.Notice, error) {
	logger.Info("integrated upload received", "file", filename, "size", humanize.Bytes(uint64(len(data))))

	result, err := exchange.DecodeIntegrated(filename, data)
	if err != nil {
		logger.Warn("integrated upload rejected", "file", filename, "err", err)
		return nil, nil, err
	}
	if err := s.snapshotRepo.Replace(ctx, result.Snapshot); err != nil {
		return nil, nil, err
	}

	notice := s.activity.Record(ctx, domain.LevelSuccess,
		fmt.Sprintf("integrated JSON '%s' imported (%d members, %d absence records)",
			filename, result.Members, result.Absences))
	return result, notice, nil
}

func (s *exchangeService) Export(ctx context.Context) (*Download, error) {
	table, err := s.positionRepo.GetTable(ctx)
	if err != nil {
		return nil, err
	}
	absences, err := s.absenceRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	body, err := exchange.Encode(exchange.BuildDocument(&domain.Snapshot{
		Table:    table,
		Absences: absences,
		Roster:   roster,
	}, now))
	if err != nil {
		return nil, err
	}

	fileName := exchange.ExportFileName(now)
	s.activity.Record(ctx, domain.LevelSuccess, fmt.Sprintf("integrated JSON saved as %s", fileName))
	logger.Info("integrated export prepared", "file", fileName, "size", humanize.Bytes(uint64(len(body))))

	return &Download{
		FileName:    fileName,
		ContentType: "application/json",
		Body:        body,
		CreatedAt:   now,
	}, nil
}
