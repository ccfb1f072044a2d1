package charts

import (
	"fmt"
	"strconv"

	"github.com/bagdasarian/position-helper/internal/analytics"
)

// AbsenceBar - горизонтальная диаграмма отсутствий с линией среднего
func AbsenceBar(totals []analytics.MemberCount, template string) Figure {
	if len(totals) == 0 {
		return Empty(template, noDataText)
	}

	members := make([]string, len(totals))
	counts := make([]float64, len(totals))
	sum := 0
	for i, t := range totals {
		members[i] = t.Member
		counts[i] = float64(t.Count)
		sum += t.Count
	}
	mean := float64(sum) / float64(len(totals))

	fig := Figure{
		Data: []Trace{{
			Type:          "bar",
			Orientation:   "h",
			X:             counts,
			Y:             members,
			Marker:        &Marker{Color: counts, ColorScale: scaleSequential},
			TextTemplate:  "%{x}회",
			HoverTemplate: "<b>%{y}</b><br>불참 횟수: %{x}회<extra></extra>",
		}},
		Layout: Layout{
			Title:    fmt.Sprintf("팀원별 불참 횟수 (총 %d회, 평균 %.1f회)", sum, mean),
			Template: template,
			XAxis:    &Axis{Title: "불참 횟수"},
			YAxis:    &Axis{Title: "팀원", AutoMargin: true},
			Shapes: []Shape{{
				Type: "line", YRef: "paper",
				X0: mean, X1: mean, Y0: 0, Y1: 1,
				Line: Line{Color: "orange", Width: 2, Dash: "dash"},
			}},
			Annotations: []Annotation{{
				Text: fmt.Sprintf("평균: %.1f회", mean), YRef: "paper",
				X: mean, Y: 1, XAnchor: "left", YAnchor: "bottom",
			}},
		},
	}
	style(&fig.Layout, max(300, len(totals)*25))
	return fig
}

// AbsencePie - доли отсутствий по участникам
func AbsencePie(totals []analytics.MemberCount, template string) Figure {
	if len(totals) == 0 {
		return Empty(template, noDataText)
	}

	labels := make([]string, len(totals))
	values := make([]float64, len(totals))
	sum := 0
	for i, t := range totals {
		labels[i] = t.Member
		values[i] = float64(t.Count)
		sum += t.Count
	}

	fig := Figure{
		Data: []Trace{{
			Type:          "pie",
			Labels:        labels,
			Values:        values,
			Hole:          0.3,
			TextInfo:      "label+percent",
			Marker:        &Marker{Colors: palette(highContrast, len(totals))},
			HoverTemplate: "<b>%{label}</b><br>불참 횟수: %{value}회<br>비율: %{percent}<extra></extra>",
		}},
		Layout: Layout{
			Title:    fmt.Sprintf("팀원별 불참 비율 분포 (총 %d회)", sum),
			Template: template,
		},
	}
	style(&fig.Layout, 350)
	return fig
}

// AbsenceDaily - число отсутствующих по датам с линией среднего
func AbsenceDaily(daily []analytics.DailyCount, mean float64, template string) Figure {
	if len(daily) == 0 {
		return Empty(template, noDataText)
	}

	dates := make([]string, len(daily))
	counts := make([]float64, len(daily))
	for i, d := range daily {
		dates[i] = d.Date.Format("2006-01-02")
		counts[i] = float64(d.Count)
	}

	fig := Figure{
		Data: []Trace{{
			Type:          "scatter",
			X:             dates,
			Y:             counts,
			Fill:          "tozeroy",
			Marker:        &Marker{Color: qualitativeSafe[0]},
			HoverTemplate: "<b>%{x|%Y-%m-%d}</b><br>불참자 수: %{y}명<extra></extra>",
		}},
		Layout: Layout{
			Title:    fmt.Sprintf("날짜별 불참자 수 추이 (평균 %.1f명, 총 %d일)", mean, len(daily)),
			Template: template,
			XAxis:    &Axis{Title: "날짜", TickFormat: "%m/%d"},
			YAxis:    &Axis{Title: "불참자 수"},
			Shapes: []Shape{{
				Type: "line", XRef: "paper",
				X0: 0, X1: 1, Y0: mean, Y1: mean,
				Line: Line{Color: "orange", Width: 2, Dash: "dash"},
			}},
			Annotations: []Annotation{{
				Text: fmt.Sprintf("평균: %.1f명", mean), XRef: "paper",
				X: 1, Y: mean, XAnchor: "right", YAnchor: "bottom",
			}},
		},
	}
	style(&fig.Layout, 300)
	return fig
}

// AbsenceMonthly - сводная тепловая карта год x месяц
func AbsenceMonthly(months []analytics.MonthlyCount, template string) Figure {
	if len(months) == 0 {
		return Empty(template, noDataText)
	}

	total := 0
	peak := months[0]
	for _, m := range months {
		total += m.Absences
		if m.Absences > peak.Absences {
			peak = m
		}
	}

	pivot := analytics.PivotMonthly(months)
	z := make([][]float64, len(pivot.Values))
	for i, row := range pivot.Values {
		z[i] = make([]float64, len(row))
		for j, v := range row {
			z[i][j] = float64(v)
		}
	}
	monthText := make([]string, len(pivot.Months))
	for i, m := range pivot.Months {
		monthText[i] = strconv.Itoa(m) + "월"
	}
	years := make([]string, len(pivot.Years))
	for i, y := range pivot.Years {
		years[i] = strconv.Itoa(y)
	}

	fig := Figure{
		Data: []Trace{{
			Type:          "heatmap",
			X:             pivot.Months,
			Y:             years,
			Z:             nullable(z),
			Text:          numberLabels(z),
			TextTemplate:  "%{text}",
			ColorScale:    scaleSequential,
			ColorBar:      &ColorBar{Title: "불참자 수"},
			HoverTemplate: "<b>%{y}년 %{x}월</b><br>불참자 수: %{z}명<extra></extra>",
		}},
		Layout: Layout{
			Title: fmt.Sprintf("월별 불참 히트맵 (총 %d명, 최고: %s %d명)",
				total, peak.Month, peak.Absences),
			Template: template,
			XAxis:    &Axis{Title: "월", TickMode: "array", TickVals: pivot.Months, TickText: monthText},
			YAxis:    &Axis{Title: "연도"},
		},
	}
	style(&fig.Layout, max(200, len(pivot.Years)*50))
	return fig
}
