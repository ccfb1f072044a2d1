package exchange

import (
	"bytes"
	"testing"
	"time"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadSpreadsheet(t *testing.T) {
	t.Run("xlsx", func(t *testing.T) {
		data := workbook(t, [][]any{
			{"이름", "Camera", "Sound"},
			{"Alice", 3, "note"},
			{"Bob", 1},
			{"", 9, 9},
		})

		table, err := ReadSpreadsheet("team.xlsx", data)
		require.NoError(t, err)

		assert.Equal(t, domain.DefaultIndexName, table.IndexName)
		assert.Equal(t, []string{"Camera", "Sound"}, table.Positions)
		assert.Equal(t, []string{"Alice", "Bob"}, table.Members)
		v, ok := table.Cells[0][0].Float()
		require.True(t, ok)
		assert.Equal(t, 3.0, v)
		assert.Equal(t, "note", table.Cells[0][1].Text)
		assert.True(t, table.Cells[1][1].IsBlank())
	})

	t.Run("nan и inf становятся пустыми", func(t *testing.T) {
		data := workbook(t, [][]any{{"팀원", "P", "Q"}, {"Alice", "nan", "-Infinity"}})

		table, err := ReadSpreadsheet("team.xlsx", data)
		require.NoError(t, err)
		assert.True(t, table.Cells[0][0].IsBlank())
		assert.True(t, table.Cells[0][1].IsBlank())
	})

	t.Run("неподдерживаемое расширение", func(t *testing.T) {
		_, err := ReadSpreadsheet("team.csv", []byte("a,b"))
		assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
	})

	t.Run("повреждённый xlsx", func(t *testing.T) {
		_, err := ReadSpreadsheet("team.xlsx", []byte("not a zip"))
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	})

	t.Run("повторяющийся участник", func(t *testing.T) {
		data := workbook(t, [][]any{{"팀원", "P"}, {"A", 1}, {"A", 2}})
		_, err := ReadSpreadsheet("team.xlsx", data)
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	})

	t.Run("заголовок без позиций", func(t *testing.T) {
		data := workbook(t, [][]any{{"팀원"}, {"A"}})
		_, err := ReadSpreadsheet("team.xlsx", data)
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	})
}

func TestWriteSpreadsheet(t *testing.T) {
	table := sampleSnapshot().Table

	data, err := WriteSpreadsheet(table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, SheetName, f.GetSheetName(0))
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"팀원", "Camera", "SW 배정 횟수"}, rows[0])
	assert.Equal(t, []string{"홍길동", "2", "0"}, rows[1])
	assert.Equal(t, "휴가", rows[2][1])

	back, err := ReadSpreadsheet("export.xlsx", data)
	require.NoError(t, err)
	assert.Equal(t, table.Members, back.Members)
}

func TestSpreadsheetFileName(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	assert.Equal(t, "position_data_20240305_140709.xlsx", SpreadsheetFileName(now))
}
