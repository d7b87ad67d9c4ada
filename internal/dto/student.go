package dto

import "github.com/edumanage/postgrad-api/internal/models"

// CreateStudentRequest is the payload for enrolling a new student.
type CreateStudentRequest struct {
	FullName       string             `json:"fullName" validate:"required"`
	DOB            string             `json:"dob" validate:"required,datetime=2006-01-02"`
	Email          string             `json:"email" validate:"required,email"`
	Phone          string             `json:"phone" validate:"omitempty"`
	Degree         models.DegreeTrack `json:"degree" validate:"required,oneof=MASTER PHD"`
	Major          string             `json:"major" validate:"required"`
	ClassID        string             `json:"classId" validate:"omitempty"`
	Batch          string             `json:"batch" validate:"required"`
	EnrollmentDate string             `json:"enrollmentDate" validate:"omitempty,datetime=2006-01-02"`
	AvatarURL      string             `json:"avatarUrl" validate:"omitempty,url"`
	Notes          string             `json:"notes"`
}

// UpdateStudentRequest carries the mutable profile fields. The degree track
// is fixed at enrollment and cannot be changed here.
type UpdateStudentRequest struct {
	FullName  *string `json:"fullName" validate:"omitempty,min=1"`
	DOB       *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Major     *string `json:"major" validate:"omitempty,min=1"`
	ClassID   *string `json:"classId"`
	Batch     *string `json:"batch" validate:"omitempty,min=1"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
	Notes     *string `json:"notes"`
}

// StudentQuery mirrors supported listing filters.
type StudentQuery struct {
	Search  string `form:"search"`
	Degree  string `form:"degree" validate:"omitempty,oneof=MASTER PHD"`
	ClassID string `form:"classId"`
	Batch   string `form:"batch"`
	Stage   int    `form:"stage" validate:"omitempty,min=1"`
	Page    int    `form:"page" validate:"omitempty,min=1"`
	Size    int    `form:"size" validate:"omitempty,min=1,max=200"`
}

// UpdateDocumentStatusRequest sets the review status of one document.
type UpdateDocumentStatusRequest struct {
	Status models.DocumentStatus `json:"status" validate:"required,oneof=MISSING PENDING APPROVED REJECTED"`
}

// AttachDocumentFileRequest records an uploaded file for a document.
type AttachDocumentFileRequest struct {
	FileURL string `json:"fileUrl" validate:"required"`
}

// AdvanceStageRequest marks the current stage completed and moves the
// student to the given stage.
type AdvanceStageRequest struct {
	StageID int `json:"stageId" validate:"required,min=1"`
}
