package handler

import (
	"time"

	"github.com/bagdasarian/position-helper/internal/charts"
	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/exchange"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type NoticeResponse struct {
	Level   domain.Level `json:"level"`
	Message string       `json:"message"`
}

type MemberRequest struct {
	Name     string `json:"name"`
	Memo     string `json:"memo"`
	IsActive *bool  `json:"is_active"`
}

type MemberNameRequest struct {
	Name string `json:"name"`
}

type SetIsActiveRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}

type MemoRequest struct {
	Name string `json:"name"`
	Memo string `json:"memo"`
}

type MemberResponse struct {
	Name         string         `json:"name"`
	Memo         string         `json:"memo"`
	IsActive     bool           `json:"is_active"`
	Status       string         `json:"status"`
	Preferences  map[string]any `json:"preferences"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
	InRoster     bool           `json:"in_roster"`
	InTable      bool           `json:"in_table"`
	AbsenceTotal int            `json:"absence_total"`
}

type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

type ActiveMembersResponse struct {
	Members []string `json:"members"`
}

type MemberResultResponse struct {
	Member MemberResponse  `json:"member"`
	Notice *NoticeResponse `json:"notice,omitempty"`
}

type NoticeOnlyResponse struct {
	Notice *NoticeResponse `json:"notice"`
}

// SplitTable - таблица в формате split: index, columns, data
type SplitTable struct {
	IndexName string          `json:"index_name"`
	Index     []string        `json:"index"`
	Columns   []string        `json:"columns"`
	Data      [][]domain.Cell `json:"data"`
}

type BoundsResponse struct {
	Position string  `json:"position"`
	CV       float64 `json:"cv"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
}

type HighlightResponse struct {
	Member   string  `json:"member"`
	Position string  `json:"position"`
	Value    float64 `json:"value"`
	Kind     string  `json:"kind"`
}

type TableResponse struct {
	Table      SplitTable          `json:"table"`
	Bounds     []BoundsResponse    `json:"bounds"`
	Highlights []HighlightResponse `json:"highlights"`
	Notice     *NoticeResponse     `json:"notice,omitempty"`
}

type UpdateTableRequest struct {
	Columns []string         `json:"columns"`
	Data    []map[string]any `json:"data"`
}

type AddAbsenceRequest struct {
	Date   string `json:"date"`
	Member string `json:"member"`
	Reason string `json:"reason"`
}

type AbsenceResponse struct {
	AbsenceData exchange.AbsenceData `json:"absence_data"`
	Notice      *NoticeResponse      `json:"notice,omitempty"`
}

type AbsenceTotalResponse struct {
	Member string `json:"member"`
	Count  int    `json:"count"`
}

type AbsenceChartsResponse struct {
	Bar     charts.Figure `json:"bar"`
	Pie     charts.Figure `json:"pie"`
	Daily   charts.Figure `json:"daily"`
	Monthly charts.Figure `json:"monthly"`
}

type AbsenceStatsResponse struct {
	Totals    []AbsenceTotalResponse `json:"totals"`
	Total     int                    `json:"total"`
	DailyMean float64                `json:"daily_mean"`
	Charts    AbsenceChartsResponse  `json:"charts"`
}

type ColumnStatsResponse struct {
	Position string   `json:"position"`
	Count    int      `json:"count"`
	Mean     *float64 `json:"mean"`
	Std      *float64 `json:"std"`
}

type WorkloadResponse struct {
	Treemap      charts.Figure         `json:"treemap"`
	Distribution charts.Figure         `json:"distribution"`
	Heatmap      charts.Figure         `json:"heatmap"`
	Deviation    charts.Figure         `json:"deviation"`
	Columns      []ColumnStatsResponse `json:"columns"`
}

type ActivityEntryResponse struct {
	Timestamp string       `json:"ts"`
	Level     domain.Level `json:"level"`
	Message   string       `json:"msg"`
}

type ActivityResponse struct {
	Entries []ActivityEntryResponse `json:"entries"`
}

type ThemeRequest struct {
	Dark *bool `json:"dark"`
}

type ImportResponse struct {
	Members  int             `json:"members"`
	Absences int             `json:"absences"`
	Notice   *NoticeResponse `json:"notice"`
}
