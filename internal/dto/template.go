package dto

// TemplateDocumentRequest is one document requirement inside a stage of a
// track template. Per-student fields (status, uploaded file) never appear
// here; the template only describes what every student of the track owes.
type TemplateDocumentRequest struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Required    bool   `json:"required"`
	TemplateURL string `json:"templateUrl" validate:"omitempty"`
}

// TemplateStageRequest is one ordered stage of a track template.
type TemplateStageRequest struct {
	ID          int                       `json:"id" validate:"required,min=1"`
	Name        string                    `json:"name" validate:"required"`
	Description string                    `json:"description"`
	Documents   []TemplateDocumentRequest `json:"documents" validate:"dive"`
}

// SaveTemplateRequest replaces the full stage template of one degree track.
type SaveTemplateRequest struct {
	Stages []TemplateStageRequest `json:"stages" validate:"required,min=1,dive"`
}

// SaveTemplateResponse reports how many students were reconciled against
// the new template.
type SaveTemplateResponse struct {
	Degree           string `json:"degree"`
	StagesSaved      int    `json:"stagesSaved"`
	StudentsUpdated  int    `json:"studentsUpdated"`
	DocumentsDropped int    `json:"documentsDropped"`
	DocumentsAdded   int    `json:"documentsAdded"`
}
