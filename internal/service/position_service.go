package service

import (
	"context"
	"time"

	"github.com/bagdasarian/position-helper/internal/analytics"
	"github.com/bagdasarian/position-helper/internal/domain"
)

// TableView - таблица позиций вместе с подсветкой ячеек
type TableView struct {
	Table      *domain.PositionTable
	Bounds     []analytics.ColumnBounds
	Highlights []analytics.Highlight
}

type Download struct {
	FileName    string
	ContentType string
	Body        []byte
	CreatedAt   time.Time
}

type PositionService interface {
	GetTable(ctx context.Context) (*TableView, error)
	// UpdateTable заменяет таблицу записями из редактора. Первая колонка - имя участника.
	UpdateTable(ctx context.Context, columns []string, rows []map[string]any) (*TableView, *domain.Notice, error)
	ImportSpreadsheet(ctx context.Context, filename string, data []byte) (*TableView, *domain.Notice, error)
	ExportSpreadsheet(ctx context.Context) (*Download, error)
}
