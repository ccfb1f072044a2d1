package handler

import (
	"math"

	"github.com/bagdasarian/position-helper/internal/analytics"
	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/service"
)

func domainNoticeToHTTP(n *domain.Notice) *NoticeResponse {
	if n == nil {
		return nil
	}
	return &NoticeResponse{Level: n.Level, Message: n.Message}
}

func domainMemberToHTTP(m *domain.Member) MemberResponse {
	prefs := m.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	resp := MemberResponse{
		Name:        m.Name,
		Memo:        m.Memo,
		IsActive:    m.IsActive,
		Status:      domain.StatusText(m.IsActive),
		Preferences: prefs,
		UpdatedAt:   m.UpdatedAt,
		InRoster:    true,
	}
	if !m.CreatedAt.IsZero() {
		createdAt := m.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

func memberViewToHTTP(v *domain.MemberView) MemberResponse {
	resp := domainMemberToHTTP(&v.Member)
	resp.InRoster = v.InRoster
	resp.InTable = v.InTable
	resp.AbsenceTotal = v.AbsenceTotal
	return resp
}

func domainTableToHTTP(t *domain.PositionTable) SplitTable {
	split := SplitTable{
		IndexName: t.IndexName,
		Index:     append([]string{}, t.Members...),
		Columns:   append([]string{}, t.Positions...),
		Data:      make([][]domain.Cell, len(t.Members)),
	}
	for i := range t.Members {
		row := make([]domain.Cell, len(t.Positions))
		for j := range t.Positions {
			row[j] = t.Cell(i, j)
		}
		split.Data[i] = row
	}
	return split
}

func tableViewToHTTP(v *service.TableView, notice *domain.Notice) TableResponse {
	resp := TableResponse{
		Table:      domainTableToHTTP(v.Table),
		Bounds:     make([]BoundsResponse, 0, len(v.Bounds)),
		Highlights: make([]HighlightResponse, 0, len(v.Highlights)),
		Notice:     domainNoticeToHTTP(notice),
	}
	for _, b := range v.Bounds {
		resp.Bounds = append(resp.Bounds, BoundsResponse{Position: b.Position, CV: b.CV, Lower: b.Lower, Upper: b.Upper})
	}
	for _, h := range v.Highlights {
		resp.Highlights = append(resp.Highlights, HighlightResponse{
			Member: h.Member, Position: h.Position, Value: h.Value, Kind: string(h.Kind),
		})
	}
	return resp
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func columnStatsToHTTP(stats []analytics.ColumnStats) []ColumnStatsResponse {
	out := make([]ColumnStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, ColumnStatsResponse{
			Position: s.Position,
			Count:    s.Count,
			Mean:     finite(s.Mean),
			Std:      finite(s.Std),
		})
	}
	return out
}

func absenceStatsToHTTP(s *service.AbsenceStats) AbsenceStatsResponse {
	totals := make([]AbsenceTotalResponse, 0, len(s.Totals))
	for _, t := range s.Totals {
		totals = append(totals, AbsenceTotalResponse{Member: t.Member, Count: t.Count})
	}
	return AbsenceStatsResponse{
		Totals:    totals,
		Total:     s.Total,
		DailyMean: s.DailyMean,
		Charts: AbsenceChartsResponse{
			Bar:     s.Charts.Bar,
			Pie:     s.Charts.Pie,
			Daily:   s.Charts.Daily,
			Monthly: s.Charts.Monthly,
		},
	}
}

func activityToHTTP(entries []*domain.ActivityEntry) ActivityResponse {
	resp := ActivityResponse{Entries: make([]ActivityEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, ActivityEntryResponse{
			Timestamp: e.Timestamp.Format(domain.ActivityTimeLayout),
			Level:     e.Level,
			Message:   e.Message,
		})
	}
	return resp
}
