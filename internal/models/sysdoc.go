package models

import "time"

// SystemDocType classifies document library entries.
type SystemDocType string

const (
	SysDocTemplate   SystemDocType = "TEMPLATE"
	SysDocDecision   SystemDocType = "DECISION"
	SysDocRegulation SystemDocType = "REGULATION"
)

// Valid reports whether the type is a known library entry kind.
func (t SystemDocType) Valid() bool {
	switch t {
	case SysDocTemplate, SysDocDecision, SysDocRegulation:
		return true
	}
	return false
}

// SystemDocument is an administrator-managed library entry (blank form,
// decision template, or regulation text), independent of any student.
// DocumentID optionally links the entry to a stage-template document
// requirement so student checklists resolve their blank form explicitly
// instead of guessing by name.
type SystemDocument struct {
	ID          string        `json:"id"`
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Type        SystemDocType `json:"type"`
	Degree      DegreeTrack   `json:"degree"`
	StageID     int           `json:"stage_id,omitempty"`
	DocumentID  string        `json:"document_id,omitempty"`
	Description string        `json:"description,omitempty"`
	DownloadURL string        `json:"download_url"`
	LastUpdated string        `json:"last_updated"`
	CreatedAt   time.Time     `json:"created_at"`
}

// SystemDocumentFilter narrows down library entries.
type SystemDocumentFilter struct {
	Search  string
	Type    SystemDocType
	Degree  DegreeTrack
	StageID int
}
