package models

// DocumentStatus tracks fulfillment of a single document requirement on a
// student's checklist. Template-level documents carry no meaningful status.
type DocumentStatus string

const (
	DocMissing  DocumentStatus = "MISSING"
	DocPending  DocumentStatus = "PENDING"
	DocApproved DocumentStatus = "APPROVED"
	DocRejected DocumentStatus = "REJECTED"
)

// Valid reports whether the status is a known fulfillment state.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocMissing, DocPending, DocApproved, DocRejected:
		return true
	}
	return false
}

// DocumentItem is one named piece of paperwork a stage demands. The ID is
// stable across template edits; per-student fulfillment state is keyed on it.
type DocumentItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Required    bool           `json:"required"`
	Status      DocumentStatus `json:"status"`
	FileURL     string         `json:"file_url,omitempty"`
	TemplateURL string         `json:"template_url,omitempty"`
	DateUpdated string         `json:"date_updated,omitempty"`
}

// TrainingStage is one ordered phase of an academic pipeline. The numeric ID
// doubles as the ordering position within a track. IsCompleted and IsCurrent
// are instance-only flags; on templates they are always false.
type TrainingStage struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	IsCompleted bool           `json:"is_completed"`
	IsCurrent   bool           `json:"is_current"`
	Documents   []DocumentItem `json:"documents"`
}

// Clone returns a deep copy of the stage. Student instances and templates must
// never share document slices.
func (s TrainingStage) Clone() TrainingStage {
	out := s
	out.Documents = make([]DocumentItem, len(s.Documents))
	copy(out.Documents, s.Documents)
	return out
}

// CloneStages deep-copies an entire stage list.
func CloneStages(stages []TrainingStage) []TrainingStage {
	out := make([]TrainingStage, len(stages))
	for i, s := range stages {
		out[i] = s.Clone()
	}
	return out
}
