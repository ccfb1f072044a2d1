package repository

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type MemberRepository interface {
	List(ctx context.Context) ([]*domain.Member, error)
	GetByName(ctx context.Context, name string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, member *domain.Member) error
	// Delete удаляет участника из состава и из таблицы позиций одной транзакцией
	Delete(ctx context.Context, name string) error
}
