package models

import "time"

// ClassInfo represents an administrative class grouping students of one track.
// The roster size is derived from the student collection, never stored.
type ClassInfo struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Degree    DegreeTrack `json:"degree"`
	Major     string      `json:"major"`
	Batch     string      `json:"batch"`
	Advisor   string      `json:"advisor"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ClassDetail extends ClassInfo with the computed student count.
type ClassDetail struct {
	ClassInfo
	TotalStudents int `json:"total_students"`
}

// ClassFilter defines filter criteria for listing classes.
type ClassFilter struct {
	Search   string
	Degree   DegreeTrack
	Batch    string
	Page     int
	PageSize int
}
