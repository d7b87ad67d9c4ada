package dto

// CreateScheduleRequest adds one calendar entry.
type CreateScheduleRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Lecturer string `json:"lecturer" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required"`
	Room     string `json:"room" validate:"required"`
	Batch    string `json:"batch" validate:"required"`
	Degree   string `json:"degree" validate:"required,oneof=MASTER PHD"`
	Type     string `json:"type" validate:"required,oneof=CLASS EXAM DEFENSE"`
}

// UpdateScheduleRequest carries the mutable calendar entry fields.
type UpdateScheduleRequest struct {
	Subject  *string `json:"subject" validate:"omitempty,min=1"`
	Lecturer *string `json:"lecturer" validate:"omitempty,min=1"`
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time     *string `json:"time" validate:"omitempty,min=1"`
	Room     *string `json:"room" validate:"omitempty,min=1"`
	Batch    *string `json:"batch" validate:"omitempty,min=1"`
	Type     *string `json:"type" validate:"omitempty,oneof=CLASS EXAM DEFENSE"`
}

// ScheduleQuery mirrors supported calendar filters.
type ScheduleQuery struct {
	From   string `form:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" validate:"omitempty,datetime=2006-01-02"`
	Degree string `form:"degree" validate:"omitempty,oneof=MASTER PHD"`
	Type   string `form:"type" validate:"omitempty,oneof=CLASS EXAM DEFENSE"`
	Batch  string `form:"batch"`
}
