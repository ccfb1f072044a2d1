package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/logger"
	"github.com/bagdasarian/position-helper/internal/repository"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type memberService struct {
	memberRepo   repository.MemberRepository
	positionRepo repository.PositionRepository
	absenceRepo  repository.AbsenceRepository
	activity     ActivityService
}

// NewMemberService создает новый экземпляр MemberService
func NewMemberService(
	memberRepo repository.MemberRepository,
	positionRepo repository.PositionRepository,
	absenceRepo repository.AbsenceRepository,
	activity ActivityService,
) MemberService {
	return &memberService{
		memberRepo:   memberRepo,
		positionRepo: positionRepo,
		absenceRepo:  absenceRepo,
		activity:     activity,
	}
}

// sortNames упорядочивает имена по правилам корейской локали
func sortNames(names []string) {
	c := collate.New(language.Korean)
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})
}

// List возвращает объединение состава и строк таблицы позиций
func (s *memberService) List(ctx context.Context) ([]*domain.MemberView, error) {
	roster, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	table, err := s.positionRepo.GetTable(ctx)
	if err != nil {
		return nil, err
	}
	absences, err := s.absenceRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	totals := absences.TotalsByMember()

	views := map[string]*domain.MemberView{}
	for _, m := range roster {
		views[m.Name] = &domain.MemberView{Member: *m, InRoster: true}
	}
	for _, name := range table.Members {
		v, ok := views[name]
		if !ok {
			v = &domain.MemberView{Member: *domain.NewMember(name)}
			views[name] = v
		}
		v.InTable = true
	}

	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sortNames(names)

	result := make([]*domain.MemberView, 0, len(names))
	for _, name := range names {
		v := views[name]
		v.AbsenceTotal = totals[name]
		result = append(result, v)
	}
	return result, nil
}

// ActiveMembers - строки таблицы без участников в отпуске
func (s *memberService) ActiveMembers(ctx context.Context) ([]string, error) {
	table, err := s.positionRepo.GetTable(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := s.rosterMap(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ActiveNames(table.Members, roster), nil
}

func (s *memberService) rosterMap(ctx context.Context) (map[string]*domain.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	roster := make(map[string]*domain.Member, len(members))
	for _, m := range members {
		roster[m.Name] = m
	}
	return roster, nil
}

func (s *memberService) Add(ctx context.Context, name, memo string, isActive *bool) (*domain.Member, *domain.Notice, error) {
	name, err := domain.ValidateMemberName(name)
	if err != nil {
		return nil, nil, err
	}
	memo, err = domain.ValidateMemberMemo(memo)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.memberRepo.GetByName(ctx, name)
	if err == nil && existing != nil {
		return nil, nil, domain.ErrMemberExists
	}
	if err != nil && !errors.Is(err, repository.ErrMemberNotFound) {
		return nil, nil, err
	}

	member := domain.NewMember(name)
	member.Memo = memo
	if isActive != nil {
		member.IsActive = *isActive
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, nil, err
	}
	if err := s.positionRepo.AddRow(ctx, name); err != nil {
		if delErr := s.memberRepo.Delete(ctx, name); delErr != nil {
			logger.Error("failed to roll back member creation", "member", name, "err", delErr)
		}
		return nil, nil, fmt.Errorf("failed to add table row: %w", err)
	}

	notice := s.activity.Record(ctx, domain.LevelSuccess,
		fmt.Sprintf("member '%s' added (status: %s)", name, domain.StatusText(member.IsActive)))
	return member, notice, nil
}

func (s *memberService) Delete(ctx context.Context, name string) (*domain.Notice, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("member name is required")
	}

	if err := s.memberRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domain.NewNotFoundError("member")
		}
		return nil, err
	}

	return s.activity.Record(ctx, domain.LevelWarning, fmt.Sprintf("member '%s' deleted", name)), nil
}

// resolve возвращает участника из состава. Участник, который есть только в
// таблице позиций, сначала заносится в состав со значениями по умолчанию.
func (s *memberService) resolve(ctx context.Context, name string) (*domain.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("member name is required")
	}

	member, err := s.memberRepo.GetByName(ctx, name)
	if err == nil {
		return member, nil
	}
	if !errors.Is(err, repository.ErrMemberNotFound) {
		return nil, err
	}

	table, err := s.positionRepo.GetTable(ctx)
	if err != nil {
		return nil, err
	}
	if !table.HasMember(name) {
		return nil, domain.NewNotFoundError("member")
	}

	member = domain.NewMember(name)
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	logger.Debug("table-only member added to roster", "member", name)
	return member, nil
}

func (s *memberService) SetActive(ctx context.Context, name string, isActive bool) (*domain.Member, *domain.Notice, error) {
	member, err := s.resolve(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	return s.setActive(ctx, member, isActive)
}

func (s *memberService) setActive(ctx context.Context, member *domain.Member, isActive bool) (*domain.Member, *domain.Notice, error) {
	if member.IsActive == isActive {
		return member, &domain.Notice{
			Level:   domain.LevelInfo,
			Message: fmt.Sprintf("member '%s' is already %s", member.Name, domain.StatusText(isActive)),
		}, nil
	}

	member.IsActive = isActive
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, nil, err
	}

	notice := s.activity.Record(ctx, domain.LevelSuccess,
		fmt.Sprintf("member '%s' status changed to %s", member.Name, domain.StatusText(isActive)))
	return member, notice, nil
}

func (s *memberService) Toggle(ctx context.Context, name string) (*domain.Member, *domain.Notice, error) {
	member, err := s.resolve(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	return s.setActive(ctx, member, !member.IsActive)
}

func (s *memberService) SaveMemo(ctx context.Context, name, memo string) (*domain.Member, *domain.Notice, error) {
	memo, err := domain.ValidateMemberMemo(memo)
	if err != nil {
		return nil, nil, err
	}
	member, err := s.resolve(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	member.Memo = memo
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, nil, err
	}

	notice := s.activity.Record(ctx, domain.LevelSuccess, fmt.Sprintf("memo saved for '%s'", member.Name))
	return member, notice, nil
}
