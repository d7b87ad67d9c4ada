package dto

// GenerateDraftRequest asks for an AI-assisted administrative document draft.
type GenerateDraftRequest struct {
	DocumentName string `json:"documentName" validate:"required"`
	StudentID    string `json:"studentId" validate:"required"`
	Context      string `json:"context"`
}

// GenerateDraftResponse carries the drafted Markdown body.
type GenerateDraftResponse struct {
	DocumentName string `json:"documentName"`
	StudentID    string `json:"studentId"`
	Content      string `json:"content"`
}

// AnalyzeProgressRequest asks for a short progress assessment of a student.
type AnalyzeProgressRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

// AnalyzeProgressResponse carries the assessment text.
type AnalyzeProgressResponse struct {
	StudentID string `json:"studentId"`
	Analysis  string `json:"analysis"`
}
