// Package exchange читает и пишет файлы обмена: интегрированный JSON,
// отдельный JSON отсутствий и таблицы Excel.
package exchange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bagdasarian/position-helper/internal/domain"
)

const (
	FormatVersion = "1.0"
	Description   = "포지션 배정 도우미 통합 데이터"

	createdAtLayout = "2006-01-02T15:04:05.000000"
	fileStampLayout = "20060102_150405"
)

type Metadata struct {
	Version     string `json:"version"`
	CreatedAt   string `json:"created_at"`
	Description string `json:"description"`
}

type TeamData struct {
	Members   []string                          `json:"members"`
	Positions []string                          `json:"positions"`
	Data      map[string]map[string]domain.Cell `json:"data"`
}

type AbsenceDayData struct {
	AbsentMembers []string          `json:"absent_members"`
	Notes         map[string]string `json:"notes"`
}

type AbsenceData struct {
	Dates map[string]AbsenceDayData `json:"dates"`
}

type MemberMeta struct {
	Memo        string         `json:"memo"`
	IsActive    bool           `json:"is_active"`
	Preferences map[string]any `json:"preferences"`
}

// Document - интегрированный файл: таблица, отсутствия и метаданные состава
type Document struct {
	Metadata    Metadata              `json:"metadata"`
	TeamData    TeamData              `json:"team_data"`
	AbsenceData AbsenceData           `json:"absence_data"`
	MembersMeta map[string]MemberMeta `json:"members_meta"`
}

// ImportResult - восстановленное состояние и счётчики для сообщения
type ImportResult struct {
	Snapshot *domain.Snapshot
	Members  int
	Absences int
}

// ExportFileName возвращает имя файла выгрузки для момента now
func ExportFileName(now time.Time) string {
	return "integrated_position_data_" + now.Format(fileStampLayout) + ".json"
}

// BuildDocument собирает документ выгрузки из текущего состояния
func BuildDocument(s *domain.Snapshot, now time.Time) *Document {
	table := s.Table
	if table == nil {
		table = domain.NewPositionTable()
	}

	doc := &Document{
		Metadata: Metadata{
			Version:     FormatVersion,
			CreatedAt:   now.Format(createdAtLayout),
			Description: Description,
		},
		TeamData: TeamData{
			Members:   append([]string{}, table.Members...),
			Positions: append([]string{}, table.Positions...),
			Data:      make(map[string]map[string]domain.Cell, len(table.Members)),
		},
		AbsenceData: AbsenceToData(s.Absences),
		MembersMeta: make(map[string]MemberMeta, len(s.Roster)),
	}
	for _, member := range table.Members {
		doc.TeamData.Data[member] = table.Row(member)
	}
	for _, m := range s.Roster {
		prefs := m.Preferences
		if prefs == nil {
			prefs = map[string]any{}
		}
		doc.MembersMeta[m.Name] = MemberMeta{Memo: m.Memo, IsActive: m.IsActive, Preferences: prefs}
	}
	return doc
}

// Encode пишет документ с отступом в 4 пробела, не экранируя не-ASCII
func Encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func requireJSON(filename string) error {
	if strings.ToLower(filepath.Ext(filename)) != ".json" {
		return &domain.DomainError{
			Code:    domain.CodeUnsupportedFile,
			Message: fmt.Sprintf("unsupported file type: %s. Only JSON files are accepted", filename),
		}
	}
	return nil
}

// DecodeIntegrated разбирает интегрированный JSON. Порядок строк задаёт
// members, порядок колонок - positions; лишние ключи из data добавляются
// в конец по алфавиту.
func DecodeIntegrated(filename string, body []byte) (*ImportResult, error) {
	if err := requireJSON(filename); err != nil {
		return nil, err
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, domain.NewInvalidFormatError("invalid JSON: %v", err)
	}

	rawTeam, ok := top["team_data"]
	if !ok {
		return nil, domain.NewInvalidFormatError("invalid integrated JSON: 'team_data' field is required")
	}
	var teamFields map[string]json.RawMessage
	if err := json.Unmarshal(rawTeam, &teamFields); err != nil || teamFields == nil {
		return nil, domain.NewInvalidFormatError("team data structure is invalid")
	}
	for _, key := range []string{"data", "members", "positions"} {
		if _, ok := teamFields[key]; !ok {
			return nil, domain.NewInvalidFormatError("team data structure is invalid")
		}
	}
	var team TeamData
	if err := json.Unmarshal(rawTeam, &team); err != nil {
		return nil, domain.NewInvalidFormatError("team data structure is invalid: %v", err)
	}

	table, err := tableFromTeamData(team)
	if err != nil {
		return nil, err
	}

	absences := domain.NewAbsenceLog()
	if raw, ok := top["absence_data"]; ok && string(raw) != "null" {
		absences, err = decodeAbsenceData(raw, false)
		if err != nil {
			return nil, err
		}
	}

	var meta map[string]json.RawMessage
	if raw, ok := top["members_meta"]; ok {
		// members_meta не обязателен, битое значение равносильно отсутствию
		_ = json.Unmarshal(raw, &meta)
	}
	roster, err := rosterFromMeta(team.Members, meta)
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Snapshot: &domain.Snapshot{Table: table, Absences: absences, Roster: roster},
		Members:  len(team.Members),
		Absences: absences.Total(),
	}, nil
}

func tableFromTeamData(team TeamData) (*domain.PositionTable, error) {
	table := domain.NewPositionTable()

	// имена строк обрезаются так же, как имена в составе
	data := make(map[string]map[string]domain.Cell, len(team.Data))
	for name, row := range team.Data {
		key := strings.TrimSpace(name)
		if _, ok := data[key]; !ok || key == name {
			data[key] = row
		}
	}
	delete(data, "")
	team.Data = data

	seen := map[string]bool{}
	for _, raw := range team.Members {
		m := strings.TrimSpace(raw)
		if m != "" && !seen[m] {
			seen[m] = true
			table.Members = append(table.Members, m)
		}
	}
	table.Members = append(table.Members, extraKeys(seen, team.Data)...)

	seenPos := map[string]bool{}
	for _, p := range team.Positions {
		if !seenPos[p] {
			seenPos[p] = true
			table.Positions = append(table.Positions, p)
		}
	}
	var extraPos []string
	for _, row := range team.Data {
		for p := range row {
			if !seenPos[p] {
				seenPos[p] = true
				extraPos = append(extraPos, p)
			}
		}
	}
	sort.Strings(extraPos)
	table.Positions = append(table.Positions, extraPos...)

	for _, name := range table.Positions {
		if strings.TrimSpace(name) == "" {
			return nil, domain.NewInvalidFormatError("position names must not be empty")
		}
	}

	table.Cells = make([][]domain.Cell, len(table.Members))
	for i, m := range table.Members {
		row := make([]domain.Cell, len(table.Positions))
		for j, p := range table.Positions {
			row[j] = team.Data[m][p]
		}
		table.Cells[i] = row
	}
	return table, nil
}

func extraKeys[V any](seen map[string]bool, data map[string]V) []string {
	var extra []string
	for k := range data {
		if !seen[k] {
			seen[k] = true
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return extra
}

// rosterFromMeta строит состав ровно из списка members. Для участников без
// метаданных используются значения по умолчанию.
func rosterFromMeta(members []string, meta map[string]json.RawMessage) ([]*domain.Member, error) {
	roster := make([]*domain.Member, 0, len(members))
	seen := map[string]bool{}
	for _, raw := range members {
		name, err := domain.ValidateMemberName(raw)
		if err != nil {
			return nil, domain.NewInvalidFormatError("member %q: %v", raw, err)
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		m := domain.NewMember(name)
		if rawMeta, ok := meta[raw]; ok {
			applyMeta(m, rawMeta)
		} else if rawMeta, ok := meta[name]; ok {
			applyMeta(m, rawMeta)
		}
		roster = append(roster, m)
	}
	return roster, nil
}

func applyMeta(m *domain.Member, raw json.RawMessage) {
	var fields struct {
		Memo        *string        `json:"memo"`
		IsActive    *bool          `json:"is_active"`
		Preferences map[string]any `json:"preferences"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return
	}
	if fields.Memo != nil {
		m.Memo = *fields.Memo
	}
	if fields.IsActive != nil {
		m.IsActive = *fields.IsActive
	}
	if fields.Preferences != nil {
		m.Preferences = fields.Preferences
	}
}
