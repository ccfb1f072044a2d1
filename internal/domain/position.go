package domain

import (
	"encoding/json"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// DefaultIndexName - фиксированная подпись индексной колонки таблицы
const DefaultIndexName = "팀원"

// Cell - значение ячейки таблицы позиций: число, произвольный текст или пусто
type Cell struct {
	Number *float64
	Text   string
}

func NumberCell(v float64) Cell {
	return Cell{Number: &v}
}

func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Text: s}
}

func (c Cell) IsBlank() bool {
	return c.Number == nil && c.Text == ""
}

// Float возвращает числовое значение ячейки. Текст, который парсится как
// число, тоже считается числом.
func (c Cell) Float() (float64, bool) {
	if c.Number != nil {
		return *c.Number, true
	}
	if c.Text == "" {
		return 0, false
	}
	return ParseNumber(c.Text)
}

// ParseNumber разбирает число из строки. NaN и бесконечности числами не
// считаются: в JSON для них нет представления.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

var commentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^#`),
	regexp.MustCompile(`^도와주는것도`),
}

// ParseEditedCell превращает значение из редактируемой таблицы в ячейку.
// Пустые значения и комментарии становятся пустыми ячейками.
func ParseEditedCell(raw any) Cell {
	switch v := raw.(type) {
	case nil:
		return Cell{}
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Cell{}
		}
		return NumberCell(v)
	case int:
		return NumberCell(float64(v))
	case bool:
		return TextCell(strconv.FormatBool(v))
	case string:
		if v == "" {
			return Cell{}
		}
		for _, p := range commentPatterns {
			if p.MatchString(v) {
				return Cell{}
			}
		}
		if f, ok := ParseNumber(v); ok {
			return NumberCell(f)
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			// "nan", "inf" и подобные
			return Cell{}
		}
		return TextCell(v)
	default:
		return Cell{}
	}
}

type PositionTable struct {
	IndexName string
	Members   []string
	Positions []string
	Cells     [][]Cell
}

func NewPositionTable() *PositionTable {
	return &PositionTable{IndexName: DefaultIndexName}
}

func (t *PositionTable) RowIndex(member string) int {
	return slices.Index(t.Members, member)
}

func (t *PositionTable) HasMember(member string) bool {
	return t.RowIndex(member) >= 0
}

func (t *PositionTable) Cell(row, col int) Cell {
	if row < 0 || row >= len(t.Cells) || col < 0 || col >= len(t.Cells[row]) {
		return Cell{}
	}
	return t.Cells[row][col]
}

// AddMember добавляет строку, заполненную нулями по всем позициям
func (t *PositionTable) AddMember(member string) bool {
	if t.HasMember(member) {
		return false
	}
	row := make([]Cell, len(t.Positions))
	for i := range row {
		row[i] = NumberCell(0)
	}
	t.Members = append(t.Members, member)
	t.Cells = append(t.Cells, row)
	return true
}

func (t *PositionTable) RemoveMember(member string) bool {
	idx := t.RowIndex(member)
	if idx < 0 {
		return false
	}
	t.Members = slices.Delete(t.Members, idx, idx+1)
	if idx < len(t.Cells) {
		t.Cells = slices.Delete(t.Cells, idx, idx+1)
	}
	return true
}

// Row возвращает строку участника как отображение позиция -> ячейка
func (t *PositionTable) Row(member string) map[string]Cell {
	idx := t.RowIndex(member)
	if idx < 0 {
		return nil
	}
	row := make(map[string]Cell, len(t.Positions))
	for j, pos := range t.Positions {
		row[pos] = t.Cell(idx, j)
	}
	return row
}

func (t *PositionTable) IsEmpty() bool {
	return len(t.Members) == 0 && len(t.Positions) == 0
}

func (c Cell) MarshalJSON() ([]byte, error) {
	switch {
	case c.Number != nil && (math.IsNaN(*c.Number) || math.IsInf(*c.Number, 0)):
		return []byte("null"), nil
	case c.Number != nil:
		return []byte(strconv.FormatFloat(*c.Number, 'f', -1, 64)), nil
	case c.Text != "":
		return json.Marshal(c.Text)
	default:
		return []byte("null"), nil
	}
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*c = NumberCell(v)
	case string:
		*c = TextCell(v)
	case bool:
		*c = TextCell(strconv.FormatBool(v))
	default:
		*c = Cell{}
	}
	return nil
}
