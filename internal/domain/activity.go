package domain

import "time"

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// ActivityTimeLayout - формат отметки времени в журнале действий
const ActivityTimeLayout = "2006-01-02 15:04:05"

type ActivityEntry struct {
	ID        int
	Timestamp time.Time
	Level     Level
	Message   string
}

// Notice - сообщение о результате операции, которое показывается пользователю
type Notice struct {
	Level   Level
	Message string
}

type Theme struct {
	Dark bool
}
