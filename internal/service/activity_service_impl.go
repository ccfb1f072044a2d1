package service

import (
	"context"
	"time"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/logger"
	"github.com/bagdasarian/position-helper/internal/repository"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	now          func() time.Time
}

func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo, now: time.Now}
}

// Record не прерывает операцию, если журнал недоступен: ошибка только логируется
func (s *activityService) Record(ctx context.Context, level domain.Level, message string) *domain.Notice {
	entry := &domain.ActivityEntry{Timestamp: s.now(), Level: level, Message: message}
	if err := s.activityRepo.Append(ctx, entry); err != nil {
		logger.Warn("failed to append activity", "level", level, "message", message, "err", err)
	}
	return &domain.Notice{Level: level, Message: message}
}

func (s *activityService) List(ctx context.Context) ([]*domain.ActivityEntry, error) {
	entries, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.ActivityEntry{}
	}
	return entries, nil
}
