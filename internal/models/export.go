package models

import "time"

// ExportType enumerates supported export jobs.
type ExportType string

const (
	ExportStudentRoster ExportType = "STUDENT_ROSTER"
	ExportTuitionLedger ExportType = "TUITION_LEDGER"
	ExportDraftPDF      ExportType = "DRAFT_PDF"
)

// ExportFormat enumerates output encodings.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportStatus tracks job lifecycle.
type ExportStatus string

const (
	ExportQueued     ExportStatus = "QUEUED"
	ExportProcessing ExportStatus = "PROCESSING"
	ExportDone       ExportStatus = "DONE"
	ExportFailed     ExportStatus = "FAILED"
)

// ExportJobParams carries the inputs captured at job creation time.
type ExportJobParams struct {
	Degree       DegreeTrack  `json:"degree,omitempty"`
	ClassID      string       `json:"class_id,omitempty"`
	StudentID    string       `json:"student_id,omitempty"`
	Format       ExportFormat `json:"format"`
	DocumentName string       `json:"document_name,omitempty"`
	Body         string       `json:"body,omitempty"`
}

// ExportJob is an asynchronous export request with its progress and result.
type ExportJob struct {
	ID           string          `json:"id"`
	Type         ExportType      `json:"type"`
	Params       ExportJobParams `json:"params"`
	Status       ExportStatus    `json:"status"`
	Progress     int             `json:"progress"`
	ResultPath   string          `json:"-"`
	ResultURL    string          `json:"result_url,omitempty"`
	ErrorMessage string          `json:"error,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty"`
}
