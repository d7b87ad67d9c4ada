package dto

// CreateExportRequest queues an asynchronous export job.
type CreateExportRequest struct {
	Type         string `json:"type" validate:"required,oneof=STUDENT_ROSTER TUITION_LEDGER DRAFT_PDF"`
	Format       string `json:"format" validate:"required,oneof=csv pdf"`
	Degree       string `json:"degree" validate:"omitempty,oneof=MASTER PHD"`
	ClassID      string `json:"classId"`
	StudentID    string `json:"studentId"`
	DocumentName string `json:"documentName"`
	Body         string `json:"body"`
}

// ExportJobResponse reports the state of one export job.
type ExportJobResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Progress   int    `json:"progress"`
	ResultURL  string `json:"resultUrl,omitempty"`
	Error      string `json:"error,omitempty"`
	CreatedAt  string `json:"createdAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}
