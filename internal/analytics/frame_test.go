package analytics

import (
	"math"
	"testing"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTable строит таблицу из значений: float64, string или nil
func newTable(members, positions []string, values [][]any) *domain.PositionTable {
	t := domain.NewPositionTable()
	t.Members = members
	t.Positions = positions
	for _, row := range values {
		cells := make([]domain.Cell, len(row))
		for j, v := range row {
			switch x := v.(type) {
			case float64:
				cells[j] = domain.NumberCell(x)
			case int:
				cells[j] = domain.NumberCell(float64(x))
			case string:
				cells[j] = domain.TextCell(x)
			}
		}
		t.Cells = append(t.Cells, cells)
	}
	return t
}

func TestNumericFrame(t *testing.T) {
	table := newTable(
		[]string{"Alice", "Bob"},
		[]string{"SW", "Camera"},
		[][]any{{2, "3"}, {"sick", nil}},
	)

	f := NumericFrame(table)

	require.Equal(t, 2, f.Rows())
	assert.Equal(t, 2.0, f.Values[0][0])
	assert.Equal(t, 3.0, f.Values[0][1], "числовая строка приводится к числу")
	assert.True(t, math.IsNaN(f.Values[1][0]))
	assert.True(t, math.IsNaN(f.Values[1][1]))
}

func TestFrame_FillNaNDoesNotMutate(t *testing.T) {
	f := NumericFrame(newTable([]string{"A"}, []string{"P"}, [][]any{{nil}}))

	filled := f.FillNaN(0)

	assert.Equal(t, 0.0, filled.Values[0][0])
	assert.True(t, math.IsNaN(f.Values[0][0]))
}

func TestFrame_SelectRows(t *testing.T) {
	f := NumericFrame(newTable(
		[]string{"A", "B", "C"},
		[]string{"P"},
		[][]any{{1}, {2}, {3}},
	))

	sel := f.SelectRows([]string{"C", "A", "ghost"})

	assert.Equal(t, []string{"C", "A"}, sel.Members)
	assert.Equal(t, 3.0, sel.Values[0][0])
	assert.Equal(t, 1.0, sel.Values[1][0])
}
