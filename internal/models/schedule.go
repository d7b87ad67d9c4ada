package models

import "time"

// ScheduleType distinguishes teaching sessions, exams, and thesis defenses.
type ScheduleType string

const (
	ScheduleClass   ScheduleType = "CLASS"
	ScheduleExam    ScheduleType = "EXAM"
	ScheduleDefense ScheduleType = "DEFENSE"
)

// Valid reports whether the type is a known schedule entry kind.
func (t ScheduleType) Valid() bool {
	switch t {
	case ScheduleClass, ScheduleExam, ScheduleDefense:
		return true
	}
	return false
}

// ScheduleItem is one calendar entry (date in YYYY-MM-DD, time as HH:mm - HH:mm).
type ScheduleItem struct {
	ID        string       `json:"id"`
	Subject   string       `json:"subject"`
	Lecturer  string       `json:"lecturer"`
	Date      string       `json:"date"`
	Time      string       `json:"time"`
	Room      string       `json:"room"`
	Batch     string       `json:"batch"`
	Degree    DegreeTrack  `json:"degree"`
	Type      ScheduleType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}

// ScheduleFilter narrows down schedule entries for calendar rendering.
type ScheduleFilter struct {
	From   string
	To     string
	Degree DegreeTrack
	Type   ScheduleType
	Batch  string
}
