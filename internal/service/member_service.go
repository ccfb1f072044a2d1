package service

import (
	"context"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type MemberService interface {
	List(ctx context.Context) ([]*domain.MemberView, error)
	ActiveMembers(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name, memo string, isActive *bool) (*domain.Member, *domain.Notice, error)
	Delete(ctx context.Context, name string) (*domain.Notice, error)
	SetActive(ctx context.Context, name string, isActive bool) (*domain.Member, *domain.Notice, error)
	Toggle(ctx context.Context, name string) (*domain.Member, *domain.Notice, error)
	SaveMemo(ctx context.Context, name, memo string) (*domain.Member, *domain.Notice, error)
}
