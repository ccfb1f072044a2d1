package analytics

import (
	"math"
	"strconv"
)

type MemberTotal struct {
	Member string
	Total  float64
}

// WorkloadTotals суммирует строки (NaN = 0) и оставляет только ненулевые
func WorkloadTotals(f *Frame) []MemberTotal {
	filled := f.FillNaN(0)
	var totals []MemberTotal
	for i, member := range filled.Members {
		sum := 0.0
		for _, v := range filled.Values[i] {
			sum += v
		}
		if sum > 0 {
			totals = append(totals, MemberTotal{Member: member, Total: sum})
		}
	}
	return totals
}

type Sample struct {
	Member string
	Count  float64
}

type PositionSamples struct {
	Position string
	Samples  []Sample
}

// Distribution раскладывает таблицу по позициям. Для специальной позиции
// значения <= 0 исключаются.
func Distribution(f *Frame, special string) []PositionSamples {
	filled := f.FillNaN(0)
	out := make([]PositionSamples, 0, filled.Cols())
	for j, pos := range filled.Positions {
		ps := PositionSamples{Position: pos}
		for i, member := range filled.Members {
			v := filled.Values[i][j]
			if pos == special && v <= 0 {
				continue
			}
			ps.Samples = append(ps.Samples, Sample{Member: member, Count: v})
		}
		out = append(out, ps)
	}
	return out
}

type SpecialMode string

const (
	SpecialAbsent       SpecialMode = ""
	SpecialPerformers   SpecialMode = "performers"
	SpecialNoPerformers SpecialMode = "no_performers"
)

type DeviationMatrix struct {
	Members   []string
	Positions []string
	// Values содержит NaN там, где отклонение не определено
	Values  [][]float64
	Labels  [][]string
	MaxAbs  float64
	Special SpecialMode
}

// Deviation вычитает из каждой ячейки среднее по колонке. Для специальной
// позиции среднее берётся только по участникам со значением > 0, а у
// остальных отклонение не определено и подписывается "-".
func Deviation(f *Frame, special string) *DeviationMatrix {
	filled := f.FillNaN(0)
	m := &DeviationMatrix{
		Members:   filled.Members,
		Positions: filled.Positions,
		Values:    make([][]float64, filled.Rows()),
		Labels:    make([][]string, filled.Rows()),
	}
	for i := range filled.Members {
		m.Values[i] = make([]float64, filled.Cols())
		m.Labels[i] = make([]string, filled.Cols())
	}

	for j, pos := range filled.Positions {
		col := filled.Column(j)
		if pos == special {
			m.Special = fillSpecialDeviation(m, j, col)
			continue
		}
		mean, _ := Mean(col)
		for i, v := range col {
			m.Values[i][j] = v - mean
			m.Labels[i][j] = roundLabel(v - mean)
		}
	}

	for _, row := range m.Values {
		for _, v := range row {
			if !math.IsNaN(v) && math.Abs(v) > m.MaxAbs {
				m.MaxAbs = math.Abs(v)
			}
		}
	}

	return m
}

func fillSpecialDeviation(m *DeviationMatrix, j int, col []float64) SpecialMode {
	var performers []float64
	for _, v := range col {
		if v > 0 {
			performers = append(performers, v)
		}
	}

	if len(performers) == 0 {
		for i := range col {
			m.Values[i][j] = math.NaN()
			m.Labels[i][j] = "-"
		}
		return SpecialNoPerformers
	}

	mean, _ := Mean(performers)
	for i, v := range col {
		if v > 0 {
			m.Values[i][j] = v - mean
			m.Labels[i][j] = roundLabel(v - mean)
		} else {
			m.Values[i][j] = math.NaN()
			m.Labels[i][j] = "-"
		}
	}
	return SpecialPerformers
}

func roundLabel(v float64) string {
	r := math.Round(v*10) / 10
	// -0.0 -> 0.0
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}
