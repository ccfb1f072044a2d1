package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEditedCell(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Cell
	}{
		{"nil", nil, Cell{}},
		{"число", 3.0, NumberCell(3)},
		{"числовая строка", " 2.5", NumberCell(2.5)},
		{"пустая строка", "", Cell{}},
		{"комментарий с решёткой", "# later", Cell{}},
		{"корейский комментарий", "도와주는것도 포함", Cell{}},
		{"произвольный текст", "휴가", TextCell("휴가")},
		{"nan", "nan", Cell{}},
		{"NaN", "NaN", Cell{}},
		{"inf", "inf", Cell{}},
		{"-Infinity", "-Infinity", Cell{}},
		{"float NaN", math.NaN(), Cell{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEditedCell(tt.raw))
		})
	}
}

func TestCell_Float(t *testing.T) {
	v, ok := TextCell("4").Float()
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	_, ok = TextCell("휴가").Float()
	assert.False(t, ok)

	_, ok = Cell{}.Float()
	assert.False(t, ok)
}

func TestCell_JSON(t *testing.T) {
	cells := []Cell{NumberCell(1.5), TextCell("x"), {}}
	data, err := json.Marshal(cells)
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, "x", null]`, string(data))

	var decoded []Cell
	require.NoError(t, json.Unmarshal([]byte(`[2, "y", null, true]`), &decoded))
	require.Len(t, decoded, 4)
	assert.Equal(t, NumberCell(2), decoded[0])
	assert.Equal(t, TextCell("y"), decoded[1])
	assert.True(t, decoded[2].IsBlank())
	assert.Equal(t, TextCell("true"), decoded[3])
}

func TestCell_NonFinite(t *testing.T) {
	_, ok := TextCell("NaN").Float()
	assert.False(t, ok)

	data, err := json.Marshal(map[string]Cell{"nan": NumberCell(math.NaN()), "inf": NumberCell(math.Inf(-1))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nan": null, "inf": null}`, string(data))
}

func TestPositionTable_AddRemove(t *testing.T) {
	table := NewPositionTable()
	table.Positions = []string{"Camera", "Audio"}

	assert.True(t, table.AddMember("Alice"))
	assert.False(t, table.AddMember("Alice"))
	assert.Equal(t, map[string]Cell{"Camera": NumberCell(0), "Audio": NumberCell(0)}, table.Row("Alice"))

	table.AddMember("Bob")
	assert.True(t, table.RemoveMember("Alice"))
	assert.False(t, table.RemoveMember("Alice"))
	assert.Equal(t, []string{"Bob"}, table.Members)
	assert.Len(t, table.Cells, 1)
	assert.Nil(t, table.Row("Alice"))
	assert.True(t, table.Cell(5, 0).IsBlank())
}

func TestActiveNames(t *testing.T) {
	roster := map[string]*Member{
		"Alice": {Name: "Alice", IsActive: true},
		"Bob":   {Name: "Bob", IsActive: false},
	}
	assert.Equal(t, []string{"Alice", "Carol"}, ActiveNames([]string{"Alice", "Bob", "Carol"}, roster))
}
