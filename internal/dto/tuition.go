package dto

import "github.com/edumanage/postgrad-api/internal/models"

// CreateTuitionRequest adds a tuition record to a student.
type CreateTuitionRequest struct {
	Title     string               `json:"title" validate:"required"`
	Amount    int64                `json:"amount" validate:"required,min=0"`
	DueDate   string               `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Status    models.TuitionStatus `json:"status" validate:"omitempty,oneof=PAID UNPAID OVERDUE"`
	TermIndex int                  `json:"termIndex" validate:"omitempty,min=1"`
}

// UpdateTuitionRequest updates a tuition record in place.
type UpdateTuitionRequest struct {
	Title       *string               `json:"title" validate:"omitempty,min=1"`
	Amount      *int64                `json:"amount" validate:"omitempty,min=0"`
	DueDate     *string               `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Status      *models.TuitionStatus `json:"status" validate:"omitempty,oneof=PAID UNPAID OVERDUE"`
	PaymentDate *string               `json:"paymentDate" validate:"omitempty,datetime=2006-01-02"`
}
