package analytics

import (
	"math"
	"sort"
)

const (
	// HighlightColumns - сколько самых изменчивых колонок подсвечивается
	HighlightColumns = 5
	// HighlightSigma - порог отклонения в стандартных отклонениях
	HighlightSigma = 1.0
)

type ColumnStats struct {
	Position string
	Count    int
	Mean     float64
	Std      float64
}

// CV - коэффициент вариации; 0, если среднее равно нулю
func (s ColumnStats) CV() float64 {
	if s.Mean == 0 {
		return 0
	}
	return s.Std / s.Mean
}

// Mean считает среднее, пропуская NaN
func Mean(values []float64) (float64, int) {
	sum, n := 0.0, 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN(), 0
	}
	return sum / float64(n), n
}

// SampleStd - выборочное стандартное отклонение (ddof = 1) без NaN
func SampleStd(values []float64) float64 {
	mean, n := Mean(values)
	if n < 2 {
		return math.NaN()
	}
	ss := 0.0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

func ColumnStatistics(f *Frame) []ColumnStats {
	stats := make([]ColumnStats, f.Cols())
	for j, pos := range f.Positions {
		col := f.Column(j)
		mean, n := Mean(col)
		stats[j] = ColumnStats{
			Position: pos,
			Count:    n,
			Mean:     mean,
			Std:      SampleStd(col),
		}
	}
	return stats
}

type HighlightKind string

const (
	HighlightLow  HighlightKind = "low"
	HighlightHigh HighlightKind = "high"
)

type ColumnBounds struct {
	Position string
	CV       float64
	Lower    float64
	Upper    float64
}

type Highlight struct {
	Member   string
	Position string
	Value    float64
	Kind     HighlightKind
}

// Highlights выбирает до HighlightColumns колонок с наибольшим коэффициентом
// вариации и отмечает ячейки за пределами mean ± σ.
func Highlights(f *Frame) ([]ColumnBounds, []Highlight) {
	var candidates []ColumnBounds
	for _, s := range ColumnStatistics(f) {
		if math.IsNaN(s.Std) || s.Std == 0 || math.IsNaN(s.Mean) {
			continue
		}
		candidates = append(candidates, ColumnBounds{
			Position: s.Position,
			CV:       s.CV(),
			Lower:    s.Mean - HighlightSigma*s.Std,
			Upper:    s.Mean + HighlightSigma*s.Std,
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].CV > candidates[b].CV
	})
	if len(candidates) > HighlightColumns {
		candidates = candidates[:HighlightColumns]
	}

	var highlights []Highlight
	for i, member := range f.Members {
		for _, b := range candidates {
			v := f.Values[i][f.ColumnIndex(b.Position)]
			switch {
			case math.IsNaN(v):
			case v < b.Lower:
				highlights = append(highlights, Highlight{Member: member, Position: b.Position, Value: v, Kind: HighlightLow})
			case v > b.Upper:
				highlights = append(highlights, Highlight{Member: member, Position: b.Position, Value: v, Kind: HighlightHigh})
			}
		}
	}

	return candidates, highlights
}
