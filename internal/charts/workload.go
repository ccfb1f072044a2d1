package charts

import (
	"fmt"
	"math"

	"github.com/bagdasarian/position-helper/internal/analytics"
)

const (
	heatmapRowHeight = 45
	heatmapMinHeight = 400
	heatmapMaxHeight = 1500
	heatmapTextRows  = 30
	heatmapTextCols  = 20
	noDataText       = "데이터 없음"
)

// Treemap - доля общего объёма работы по участникам
func Treemap(totals []analytics.MemberTotal, template string) Figure {
	if len(totals) == 0 {
		return Empty(template, noDataText)
	}

	labels := make([]string, len(totals))
	parents := make([]string, len(totals))
	values := make([]float64, len(totals))
	for i, t := range totals {
		labels[i] = t.Member
		values[i] = t.Total
	}

	fig := Figure{
		Data: []Trace{{
			Type:          "treemap",
			Labels:        labels,
			Parents:       parents,
			Values:        values,
			Marker:        &Marker{Colors: values, ColorScale: scaleSequential},
			TextInfo:      "label+value+percent root",
			HoverTemplate: "<b>%{label}</b><br>총 횟수: %{value}<extra></extra>",
		}},
		Layout: Layout{Title: "팀원별 총 업무량 비율 (Treemap)", Template: template},
	}
	style(&fig.Layout, 0)
	return fig
}

// Distribution - box plot по позициям с наложенными точками всех значений
func Distribution(samples []analytics.PositionSamples, special string, template string) Figure {
	title := "포지션별 수행 횟수 분포 (Box Plot)"
	for _, ps := range samples {
		if ps.Position == special {
			title = "포지션별 수행 횟수 분포 (Box Plot, SW는 0값 제외)"
			break
		}
	}

	var filled []analytics.PositionSamples
	for _, ps := range samples {
		if len(ps.Samples) > 0 {
			filled = append(filled, ps)
		}
	}
	if len(filled) == 0 {
		return Empty(template, noDataText)
	}

	colors := palette(qualitativeSafe, len(filled))
	var strips, boxes []Trace
	for i, ps := range filled {
		x := make([]string, len(ps.Samples))
		y := make([]float64, len(ps.Samples))
		members := make([][]string, len(ps.Samples))
		for k, s := range ps.Samples {
			x[k] = ps.Position
			y[k] = s.Count
			members[k] = []string{s.Member}
		}

		strips = append(strips, Trace{
			Type:          "box",
			Name:          ps.Position,
			X:             x,
			Y:             y,
			CustomData:    members,
			BoxPoints:     "all",
			Jitter:        0.35,
			Opacity:       0.5,
			Marker:        &Marker{Color: colors[i], Size: 6},
			HoverTemplate: "팀원: %{customdata[0]}<br>횟수: %{y:.0f}<br><extra></extra>",
			ShowLegend:    ptr(false),
		})
		boxes = append(boxes, Trace{
			Type:          "box",
			Name:          ps.Position,
			X:             x,
			Y:             y,
			CustomData:    members,
			BoxPoints:     "outliers",
			Marker:        &Marker{Color: colors[i], Symbol: "x", Size: 9, Opacity: 1, Line: &Line{Width: 1}},
			HoverTemplate: "팀원(이상치): %{customdata[0]}<br>횟수: %{y:.0f}<br><extra></extra>",
		})
	}

	fig := Figure{
		Data: append(strips, boxes...),
		Layout: Layout{
			Title:    title,
			Template: template,
			XAxis:    &Axis{Title: "포지션"},
			YAxis:    &Axis{Title: "횟수", RangeMode: "tozero"},
		},
	}
	style(&fig.Layout, 350)
	return fig
}

func heatmapHeight(rows int) int {
	return max(heatmapMinHeight, min(heatmapMaxHeight, rows*heatmapRowHeight))
}

func useCellText(rows, cols int) bool {
	return rows <= heatmapTextRows && cols <= heatmapTextCols
}

func rowSeparators(rows, cols int, dark bool) []Shape {
	if rows <= 1 {
		return nil
	}
	color := "rgba(200, 200, 200, 0.7)"
	if dark {
		color = "rgba(100, 100, 100, 0.7)"
	}
	shapes := make([]Shape, 0, rows-1)
	for i := 0; i < rows-1; i++ {
		y := float64(i) + 0.5
		shapes = append(shapes, Shape{
			Type: "line",
			X0:   -0.5, Y0: y,
			X1: float64(cols) - 0.5, Y1: y,
			Line: Line{Color: color, Width: 1},
		})
	}
	return shapes
}

func memberAxis(members []string) *Axis {
	ticks := make([]int, len(members))
	for i := range ticks {
		ticks[i] = i
	}
	return &Axis{
		Title:      "팀원",
		TickMode:   "array",
		TickVals:   ticks,
		TickText:   members,
		Range:      []float64{-0.5, float64(len(members)) - 0.5},
		AutoMargin: true,
	}
}

func numberLabels(values [][]float64) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = formatCount(v)
		}
	}
	return out
}

func formatCount(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// Heatmap - число выполнений по участникам и позициям
func Heatmap(f *analytics.Frame, dark bool) Figure {
	template := Template(dark)
	if f.IsEmpty() {
		return Empty(template, noDataText)
	}

	rows, cols := f.Rows(), f.Cols()
	trace := Trace{
		Type:       "heatmap",
		X:          f.Positions,
		Y:          f.Members,
		Z:          nullable(f.Values),
		ColorScale: scaleSequential,
		ColorBar:   &ColorBar{Title: "횟수"},
	}
	if useCellText(rows, cols) {
		trace.Text = numberLabels(f.Values)
		trace.TextTemplate = "%{text}"
	}

	height := heatmapHeight(rows)
	fig := Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Title:    "팀원-포지션별 수행 횟수 Heatmap",
			Template: template,
			XAxis:    &Axis{Title: "포지션", Side: "bottom"},
			YAxis:    memberAxis(f.Members),
			Shapes:   rowSeparators(rows, cols, dark),
		},
	}
	style(&fig.Layout, height)
	return fig
}

// DeviationHeatmap - отклонение от среднего по позиции, шкала симметрична
// относительно нуля
func DeviationHeatmap(m *analytics.DeviationMatrix, dark bool) Figure {
	template := Template(dark)
	rows, cols := len(m.Members), len(m.Positions)
	if rows <= 1 || cols == 0 {
		return Empty(template, noDataText)
	}

	title := "팀원-포지션별 평균 대비 편차"
	switch m.Special {
	case analytics.SpecialPerformers:
		title = "팀원-포지션별 평균 대비 편차 (SW는 >0 평균 기준, 0은 '-' 표시)"
	case analytics.SpecialNoPerformers:
		title = "팀원-포지션별 평균 대비 편차 (SW 수행자 없음)"
	}

	trace := Trace{
		Type:       "heatmap",
		X:          m.Positions,
		Y:          m.Members,
		Z:          nullable(m.Values),
		ColorScale: scaleDiverging,
		ZMid:       ptr(0.0),
		ZMin:       ptr(-m.MaxAbs),
		ZMax:       ptr(m.MaxAbs),
		ColorBar:   &ColorBar{Title: "편차 (+ 과다 / – 부족)"},
	}
	if useCellText(rows, cols) {
		trace.Text = m.Labels
		trace.TextTemplate = "%{text}"
	}

	fig := Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Title:    title,
			Template: template,
			XAxis:    &Axis{Title: "포지션", Side: "bottom"},
			YAxis:    memberAxis(m.Members),
		},
	}
	style(&fig.Layout, heatmapHeight(rows))
	return fig
}
