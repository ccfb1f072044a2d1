package service

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/exchange"
)

// ExchangeService - импорт и экспорт интегрированного JSON
type ExchangeService interface {
	Import(ctx context.Context, filename string, data []byte) (*exchange.ImportResult, *domain.Notice, error)
	Export(ctx context.Context) (*Download, error)
}
