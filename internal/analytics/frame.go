package analytics

import (
	"math"
	"slices"

	"github.com/bagdasarian/position-helper/internal/domain"
)

// Frame - числовое представление таблицы позиций. Нечисловые и пустые
// ячейки хранятся как NaN.
type Frame struct {
	Members   []string
	Positions []string
	Values    [][]float64
}

func NumericFrame(table *domain.PositionTable) *Frame {
	f := &Frame{
		Members:   slices.Clone(table.Members),
		Positions: slices.Clone(table.Positions),
		Values:    make([][]float64, len(table.Members)),
	}
	for i := range table.Members {
		row := make([]float64, len(table.Positions))
		for j := range table.Positions {
			if v, ok := table.Cell(i, j).Float(); ok {
				row[j] = v
			} else {
				row[j] = math.NaN()
			}
		}
		f.Values[i] = row
	}
	return f
}

func (f *Frame) Rows() int { return len(f.Members) }

func (f *Frame) Cols() int { return len(f.Positions) }

func (f *Frame) IsEmpty() bool {
	return f.Rows() == 0 || f.Cols() == 0
}

// FillNaN возвращает копию, в которой NaN заменены на v
func (f *Frame) FillNaN(v float64) *Frame {
	out := f.clone()
	for _, row := range out.Values {
		for j, x := range row {
			if math.IsNaN(x) {
				row[j] = v
			}
		}
	}
	return out
}

// SelectRows возвращает копию только с указанными участниками, в их порядке
func (f *Frame) SelectRows(members []string) *Frame {
	out := &Frame{Positions: slices.Clone(f.Positions)}
	for _, m := range members {
		idx := slices.Index(f.Members, m)
		if idx < 0 {
			continue
		}
		out.Members = append(out.Members, m)
		out.Values = append(out.Values, slices.Clone(f.Values[idx]))
	}
	return out
}

func (f *Frame) Column(j int) []float64 {
	col := make([]float64, len(f.Values))
	for i, row := range f.Values {
		col[i] = row[j]
	}
	return col
}

func (f *Frame) ColumnIndex(position string) int {
	return slices.Index(f.Positions, position)
}

func (f *Frame) clone() *Frame {
	out := &Frame{
		Members:   slices.Clone(f.Members),
		Positions: slices.Clone(f.Positions),
		Values:    make([][]float64, len(f.Values)),
	}
	for i, row := range f.Values {
		out.Values[i] = slices.Clone(row)
	}
	return out
}
