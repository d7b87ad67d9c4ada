package dto

// CreateClassRequest is the payload for opening a new cohort class.
type CreateClassRequest struct {
	Name    string `json:"name" validate:"required"`
	Degree  string `json:"degree" validate:"required,oneof=MASTER PHD"`
	Major   string `json:"major" validate:"required"`
	Batch   string `json:"batch" validate:"required"`
	Advisor string `json:"advisor"`
}

// UpdateClassRequest carries the mutable class fields.
type UpdateClassRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Major   *string `json:"major" validate:"omitempty,min=1"`
	Batch   *string `json:"batch" validate:"omitempty,min=1"`
	Advisor *string `json:"advisor"`
}

// ClassQuery mirrors supported listing filters.
type ClassQuery struct {
	Search string `form:"search"`
	Degree string `form:"degree" validate:"omitempty,oneof=MASTER PHD"`
	Batch  string `form:"batch"`
}
