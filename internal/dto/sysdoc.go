package dto

// CreateSystemDocumentRequest adds a document library entry.
type CreateSystemDocumentRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=TEMPLATE DECISION REGULATION"`
	Degree      string `json:"degree" validate:"required,oneof=MASTER PHD"`
	StageID     int    `json:"stageId" validate:"omitempty,min=1"`
	DocumentID  string `json:"documentId"`
	Description string `json:"description"`
	DownloadURL string `json:"downloadUrl" validate:"required"`
}

// UpdateSystemDocumentRequest carries the mutable library entry fields.
type UpdateSystemDocumentRequest struct {
	Code        *string `json:"code" validate:"omitempty,min=1"`
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Type        *string `json:"type" validate:"omitempty,oneof=TEMPLATE DECISION REGULATION"`
	StageID     *int    `json:"stageId" validate:"omitempty,min=1"`
	DocumentID  *string `json:"documentId"`
	Description *string `json:"description"`
	DownloadURL *string `json:"downloadUrl" validate:"omitempty,min=1"`
}

// SystemDocumentQuery mirrors supported library filters.
type SystemDocumentQuery struct {
	Search  string `form:"search"`
	Type    string `form:"type" validate:"omitempty,oneof=TEMPLATE DECISION REGULATION"`
	Degree  string `form:"degree" validate:"omitempty,oneof=MASTER PHD"`
	StageID int    `form:"stageId" validate:"omitempty,min=1"`
}
