package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/position-helper/internal/analytics"
	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/exchange"
	"github.com/bagdasarian/position-helper/internal/logger"
	"github.com/bagdasarian/position-helper/internal/repository"
	"github.com/dustin/go-humanize"
)

type positionService struct {
	positionRepo repository.PositionRepository
	cache        *analytics.FrameCache
	activity     ActivityService
	now          func() time.Time
}

func NewPositionService(
	positionRepo repository.PositionRepository,
	cache *analytics.FrameCache,
	activity ActivityService,
) PositionService {
	return &positionService{
		positionRepo: positionRepo,
		cache:        cache,
		activity:     activity,
		now:          time.Now,
	}
}

func (s *positionService) view(table *domain.PositionTable) *TableView {
	bounds, highlights := analytics.Highlights(s.cache.Numeric(table))
	return &TableView{Table: table, Bounds: bounds, Highlights: highlights}
}

func (s *positionService) GetTable(ctx context.Context) (*TableView, error) {
	table, err := s.positionRepo.GetTable(ctx)
	if err != nil {
		return nil, err
	}
	return s.view(table), nil
}

func (s *positionService) UpdateTable(ctx context.Context, columns []string, rows []map[string]any) (*TableView, *domain.Notice, error) {
	table, err := tableFromRecords(columns, rows)
	if err != nil {
		return nil, nil, err
	}

	if err := s.positionRepo.SaveTable(ctx, table); err != nil {
		return nil, nil, err
	}
	logger.Debug("position table saved", "members", len(table.Members), "positions", len(table.Positions))

	return s.view(table), &domain.Notice{Level: domain.LevelSuccess, Message: "position table saved"}, nil
}

func tableFromRecords(columns []string, rows []map[string]any) (*domain.PositionTable, error) {
	if len(columns) == 0 {
		return nil, domain.NewBadRequestError("columns are required")
	}

	table := domain.NewPositionTable()
	indexColumn := columns[0]
	seen := map[string]bool{}
	for _, c := range columns[1:] {
		name := strings.TrimSpace(c)
		if name == "" {
			return nil, domain.NewBadRequestError("position names must not be empty")
		}
		if seen[name] {
			return nil, domain.NewBadRequestError(fmt.Sprintf("duplicate position: %s", name))
		}
		seen[name] = true
		table.Positions = append(table.Positions, name)
	}

	for _, record := range rows {
		raw, _ := record[indexColumn].(string)
		member := strings.TrimSpace(raw)
		if member == "" {
			continue
		}
		if table.HasMember(member) {
			return nil, domain.NewBadRequestError(fmt.Sprintf("duplicate member: %s", member))
		}

		cells := make([]domain.Cell, len(table.Positions))
		for j, c := range columns[1:] {
			cells[j] = domain.ParseEditedCell(record[c])
		}
		table.Members = append(table.Members, member)
		table.Cells = append(table.Cells, cells)
	}
	return table, nil
}

func (s *positionService) ImportSpreadsheet(ctx context.Context, filename string, data []byte) (*TableView, *domain.Notice, error) {
	logger.Info("spreadsheet upload received", "file", filename, "size", humanize.Bytes(uint64(len(data))))

	table, err := exchange.ReadSpreadsheet(filename, data)
	if err != nil {
		return nil, nil, err
	}
	if err := s.positionRepo.SaveTable(ctx, table); err != nil {
		return nil, nil, err
	}

	notice := s.activity.Record(ctx, domain.LevelSuccess,
		fmt.Sprintf("spreadsheet '%s' imported (%d members, %d positions)", filename, len(table.Members), len(table.Positions)))
	return s.view(table), notice, nil
}

func (s *positionService) ExportSpreadsheet(ctx context.Context) (*Download, error) {
	table, err := s.positionRepo.GetTable(ctx)
	if err != nil {
		return nil, err
	}
	body, err := exchange.WriteSpreadsheet(table)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &Download{
		FileName:    exchange.SpreadsheetFileName(now),
		ContentType: exchange.SpreadsheetMediaType(),
		Body:        body,
		CreatedAt:   now,
	}, nil
}
