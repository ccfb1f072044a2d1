package analytics

import (
	"sort"
	"time"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type MemberCount struct {
	Member string
	Count  int
}

// AbsenceTotals - число отсутствий по участникам, по убыванию
func AbsenceTotals(log *domain.AbsenceLog) []MemberCount {
	totals := log.TotalsByMember()
	out := make([]MemberCount, 0, len(totals))
	for m, n := range totals {
		out = append(out, MemberCount{Member: m, Count: n})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Member < out[b].Member
	})
	return out
}

type DailyCount struct {
	Date  time.Time
	Count int
}

// DailyAbsences возвращает число отсутствующих по датам и среднее по дням.
// Ключи, которые не являются датой, пропускаются.
func DailyAbsences(log *domain.AbsenceLog) ([]DailyCount, float64) {
	var out []DailyCount
	for _, key := range log.SortedDates() {
		d, err := time.Parse(domain.DateLayout, key)
		if err != nil {
			continue
		}
		out = append(out, DailyCount{Date: d, Count: len(log.Dates[key].AbsentMembers)})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Date.Before(out[b].Date) })

	if len(out) == 0 {
		return nil, 0
	}
	sum := 0
	for _, d := range out {
		sum += d.Count
	}
	return out, float64(sum) / float64(len(out))
}

type MonthlyCount struct {
	Month    string
	Year     int
	MonthNum int
	Absences int
	Days     int
}

func (m MonthlyCount) Average() float64 {
	if m.Days == 0 {
		return 0
	}
	return float64(m.Absences) / float64(m.Days)
}

func MonthlyAbsences(log *domain.AbsenceLog) []MonthlyCount {
	byMonth := map[string]*MonthlyCount{}
	daily, _ := DailyAbsences(log)
	for _, d := range daily {
		key := d.Date.Format("2006-01")
		mc, ok := byMonth[key]
		if !ok {
			mc = &MonthlyCount{Month: key, Year: d.Date.Year(), MonthNum: int(d.Date.Month())}
			byMonth[key] = mc
		}
		mc.Absences += d.Count
		mc.Days++
	}

	out := make([]MonthlyCount, 0, len(byMonth))
	for _, mc := range byMonth {
		out = append(out, *mc)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Month < out[b].Month })
	return out
}

// MonthlyPivot - сводная таблица год x месяц, отсутствующие клетки = 0
type MonthlyPivot struct {
	Years  []int
	Months []int
	Values [][]int
}

func PivotMonthly(months []MonthlyCount) MonthlyPivot {
	yearSet, monthSet := map[int]bool{}, map[int]bool{}
	for _, m := range months {
		yearSet[m.Year] = true
		monthSet[m.MonthNum] = true
	}

	p := MonthlyPivot{Years: sortedKeys(yearSet), Months: sortedKeys(monthSet)}
	p.Values = make([][]int, len(p.Years))
	for i := range p.Values {
		p.Values[i] = make([]int, len(p.Months))
	}
	for _, m := range months {
		p.Values[indexOf(p.Years, m.Year)][indexOf(p.Months, m.MonthNum)] = m.Absences
	}
	return p
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func indexOf(values []int, v int) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
