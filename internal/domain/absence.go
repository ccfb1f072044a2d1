package domain

import (
	"slices"
	"sort"
)

// AbsenceDay - запись об отсутствии на конкретную дату
type AbsenceDay struct {
	AbsentMembers []string
	Notes         map[string]string
}

type AbsenceLog struct {
	Dates map[string]*AbsenceDay
}

func NewAbsenceLog() *AbsenceLog {
	return &AbsenceLog{Dates: map[string]*AbsenceDay{}}
}

// Add регистрирует отсутствие. Если участник уже отмечен на эту дату,
// обновляется только причина (когда она передана), и возвращается false.
func (l *AbsenceLog) Add(date, member, reason string) bool {
	if l.Dates == nil {
		l.Dates = map[string]*AbsenceDay{}
	}
	day, ok := l.Dates[date]
	if !ok {
		day = &AbsenceDay{Notes: map[string]string{}}
		l.Dates[date] = day
	}
	if day.Notes == nil {
		day.Notes = map[string]string{}
	}
	created := !slices.Contains(day.AbsentMembers, member)
	if created {
		day.AbsentMembers = append(day.AbsentMembers, member)
	}
	if reason != "" {
		day.Notes[member] = reason
	}
	return created
}

func (l *AbsenceLog) TotalsByMember() map[string]int {
	totals := map[string]int{}
	if l == nil {
		return totals
	}
	for _, day := range l.Dates {
		for _, m := range day.AbsentMembers {
			totals[m]++
		}
	}
	return totals
}

func (l *AbsenceLog) Total() int {
	total := 0
	for _, n := range l.TotalsByMember() {
		total += n
	}
	return total
}

func (l *AbsenceLog) SortedDates() []string {
	if l == nil {
		return nil
	}
	dates := make([]string, 0, len(l.Dates))
	for d := range l.Dates {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
