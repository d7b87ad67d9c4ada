package models

import "time"

// NotificationType grades alert severity.
type NotificationType string

const (
	NotificationWarning NotificationType = "WARNING"
	NotificationDanger  NotificationType = "DANGER"
	NotificationInfo    NotificationType = "INFO"
)

// AppNotification is a transient, derived alert. It is never stored: the whole
// list is recomputed from the student collection on demand, so the ID must be a
// pure function of the student and the rule that produced the alert.
type AppNotification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	StudentID   string           `json:"student_id,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
	ActionLabel string           `json:"action_label,omitempty"`
}
