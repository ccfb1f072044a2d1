package domain

import "time"

type Member struct {
	Name        string
	Memo        string
	IsActive    bool
	Preferences map[string]any
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewMember возвращает участника с настройками по умолчанию
func NewMember(name string) *Member {
	return &Member{
		Name:        name,
		IsActive:    true,
		Preferences: map[string]any{},
	}
}

// MemberView - участник в том виде, в котором его видит клиент:
// объединение состава и строк таблицы позиций
type MemberView struct {
	Member
	InRoster     bool
	InTable      bool
	AbsenceTotal int
}

func StatusText(isActive bool) string {
	if isActive {
		return "active"
	}
	return "on leave"
}

// ActiveNames фильтрует имена, оставляя активных. Участник, которого нет в
// составе, считается активным.
func ActiveNames(names []string, roster map[string]*Member) []string {
	active := make([]string, 0, len(names))
	for _, name := range names {
		m, ok := roster[name]
		if !ok || m.IsActive {
			active = append(active, name)
		}
	}
	return active
}
