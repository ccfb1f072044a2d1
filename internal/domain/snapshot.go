package domain

// Snapshot - полное состояние приложения: таблица позиций, отсутствия и состав
type Snapshot struct {
	Table    *PositionTable
	Absences *AbsenceLog
	Roster   []*Member
}
