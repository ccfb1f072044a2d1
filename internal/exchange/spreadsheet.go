package exchange

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName     = "positions"
	maxXLSRows    = 100000
	xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SpreadsheetMediaType - Content-Type выгрузки таблицы
func SpreadsheetMediaType() string { return xlsxMediaType }

// SpreadsheetFileName возвращает имя файла выгрузки таблицы
func SpreadsheetFileName(now time.Time) string {
	return "position_data_" + now.Format(fileStampLayout) + ".xlsx"
}

func readRows(data []byte, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, domain.NewInvalidFormatError("failed to read xls file: %v", err)
		}
		if workbook.NumSheets() == 0 {
			return nil, domain.NewInvalidFormatError("no worksheet found")
		}
		rows := workbook.ReadAllCells(maxXLSRows)
		if len(rows) == 0 {
			return nil, domain.NewInvalidFormatError("worksheet is empty")
		}
		return rows, nil
	case ".xlsx":
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, domain.NewInvalidFormatError("failed to read xlsx file: %v", err)
		}
		defer func() { _ = file.Close() }()

		sheet := file.GetSheetName(0)
		if sheet == "" {
			return nil, domain.NewInvalidFormatError("no worksheet found")
		}
		rows, err := file.GetRows(sheet)
		if err != nil {
			return nil, domain.NewInvalidFormatError("failed to read worksheet: %v", err)
		}
		if len(rows) == 0 {
			return nil, domain.NewInvalidFormatError("worksheet is empty")
		}
		return rows, nil
	default:
		return nil, &domain.DomainError{
			Code:    domain.CodeUnsupportedFile,
			Message: fmt.Sprintf("unsupported file type: %s. Only .xlsx and .xls files are accepted", filename),
		}
	}
}

// ReadSpreadsheet строит таблицу позиций из первого листа файла. Первая
// строка - заголовок, первая колонка - имя участника.
func ReadSpreadsheet(filename string, data []byte) (*domain.PositionTable, error) {
	rows, err := readRows(data, filename)
	if err != nil {
		return nil, err
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, domain.NewInvalidFormatError("header must contain the member column and at least one position")
	}

	// подпись индексной колонки не берётся из файла
	table := domain.NewPositionTable()
	for _, h := range header[1:] {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, domain.NewInvalidFormatError("position names must not be empty")
		}
		table.Positions = append(table.Positions, h)
	}

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		member := strings.TrimSpace(row[0])
		if member == "" {
			continue
		}
		if table.HasMember(member) {
			return nil, domain.NewInvalidFormatError("duplicate member row: %s", member)
		}
		cells := make([]domain.Cell, len(table.Positions))
		for j := range table.Positions {
			if j+1 < len(row) {
				cells[j] = parseSheetCell(row[j+1])
			}
		}
		table.Members = append(table.Members, member)
		table.Cells = append(table.Cells, cells)
	}
	return table, nil
}

func parseSheetCell(raw string) domain.Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.Cell{}
	}
	if v, ok := domain.ParseNumber(s); ok {
		return domain.NumberCell(v)
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return domain.Cell{}
	}
	return domain.TextCell(raw)
}

// WriteSpreadsheet сохраняет таблицу в xlsx
func WriteSpreadsheet(table *domain.PositionTable) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := make([]any, 0, len(table.Positions)+1)
	header = append(header, table.IndexName)
	for _, p := range table.Positions {
		header = append(header, p)
	}
	if err := file.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, member := range table.Members {
		row := make([]any, 0, len(table.Positions)+1)
		row = append(row, member)
		for j := range table.Positions {
			c := table.Cell(i, j)
			switch {
			case c.Number != nil:
				row = append(row, *c.Number)
			case c.Text != "":
				row = append(row, c.Text)
			default:
				row = append(row, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := file.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %s: %w", member, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
