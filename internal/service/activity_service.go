package service

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type ActivityService interface {
	// Record пишет запись в журнал действий и возвращает сообщение для клиента
	Record(ctx context.Context, level domain.Level, message string) *domain.Notice
	List(ctx context.Context) ([]*domain.ActivityEntry, error)
}
