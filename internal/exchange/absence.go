package exchange

import (
	"encoding/json"
	"slices"

	"github.com/bagdasarian/position-helper/internal/domain"
)

// AbsenceToData переводит журнал в формат файла обмена
func AbsenceToData(log *domain.AbsenceLog) AbsenceData {
	data := AbsenceData{Dates: map[string]AbsenceDayData{}}
	if log == nil {
		return data
	}
	for date, day := range log.Dates {
		members := day.AbsentMembers
		if members == nil {
			members = []string{}
		}
		notes := day.Notes
		if notes == nil {
			notes = map[string]string{}
		}
		data.Dates[date] = AbsenceDayData{AbsentMembers: members, Notes: notes}
	}
	return data
}

// decodeAbsenceData разбирает журнал отсутствий. Ключ dates обязателен
// только в отдельном файле; внутри интегрированного его отсутствие означает
// пустой журнал.
func decodeAbsenceData(raw json.RawMessage, requireDates bool) (*domain.AbsenceLog, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, domain.NewInvalidFormatError("absence data must be an object")
	}
	if _, ok := fields["dates"]; !ok && requireDates {
		return nil, domain.NewInvalidFormatError("invalid absence data format: 'dates' field is required")
	}

	var data AbsenceData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, domain.NewInvalidFormatError("invalid absence data: %v", err)
	}

	log := domain.NewAbsenceLog()
	for key, day := range data.Dates {
		date, err := domain.ValidateDate(key)
		if err != nil || date != key {
			return nil, domain.NewInvalidFormatError("invalid absence date %q: expected YYYY-MM-DD", key)
		}
		entry := &domain.AbsenceDay{Notes: map[string]string{}}
		for _, m := range day.AbsentMembers {
			if !slices.Contains(entry.AbsentMembers, m) {
				entry.AbsentMembers = append(entry.AbsentMembers, m)
			}
		}
		if entry.AbsentMembers == nil {
			entry.AbsentMembers = []string{}
		}
		for m, note := range day.Notes {
			if slices.Contains(entry.AbsentMembers, m) && note != "" {
				entry.Notes[m] = note
			}
		}
		log.Dates[date] = entry
	}
	return log, nil
}

// DecodeAbsences разбирает отдельный JSON отсутствий с обязательным ключом dates
func DecodeAbsences(filename string, body []byte) (*domain.AbsenceLog, error) {
	if err := requireJSON(filename); err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, domain.NewInvalidFormatError("invalid JSON")
	}
	return decodeAbsenceData(body, true)
}

// EncodeAbsences - отдельная выгрузка журнала отсутствий
func EncodeAbsences(log *domain.AbsenceLog) ([]byte, error) {
	return Encode(AbsenceToData(log))
}
