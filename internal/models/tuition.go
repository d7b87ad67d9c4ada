package models

// TuitionStatus is authoritative payment state. OVERDUE is recorded by the
// administrator, not derived from the due date.
type TuitionStatus string

const (
	TuitionPaid    TuitionStatus = "PAID"
	TuitionUnpaid  TuitionStatus = "UNPAID"
	TuitionOverdue TuitionStatus = "OVERDUE"
)

// Valid reports whether the status is a known payment state.
func (s TuitionStatus) Valid() bool {
	switch s {
	case TuitionPaid, TuitionUnpaid, TuitionOverdue:
		return true
	}
	return false
}

// TuitionRecord is one billed installment owned by exactly one student.
type TuitionRecord struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Amount      int64         `json:"amount"`
	DueDate     string        `json:"due_date"`
	Status      TuitionStatus `json:"status"`
	PaymentDate string        `json:"payment_date,omitempty"`
	TermIndex   int           `json:"term_index"`
}
