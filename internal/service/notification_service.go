package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edumanage/postgrad-api/internal/models"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
)

type studentLister interface {
	All(ctx context.Context) ([]models.Student, error)
}

// NotificationService derives transient alerts by scanning the student
// collection. Nothing is persisted; calling Derive twice on unchanged data
// yields the same list with the same IDs.
type NotificationService struct {
	students studentLister
	logger   *zap.Logger
	now      func() time.Time
}

// NotificationServiceParams bundles NotificationService dependencies.
type NotificationServiceParams struct {
	Students studentLister
	Logger   *zap.Logger
	Now      func() time.Time
}

// NewNotificationService constructs NotificationService.
func NewNotificationService(params NotificationServiceParams) *NotificationService {
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &NotificationService{students: params.Students, logger: params.Logger, now: params.Now}
}

// Derive scans every student and returns the full alert list. A student can
// contribute at most one tuition alert and one document alert.
func (s *NotificationService) Derive(ctx context.Context) ([]models.AppNotification, error) {
	students, err := s.students.All(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to scan students")
	}
	return DeriveNotifications(students, s.now()), nil
}

// DeriveNotifications computes the alert list for the given students at the
// given instant. It is a pure function: notification IDs depend only on the
// student and the rule, never on when the scan ran.
func DeriveNotifications(students []models.Student, at time.Time) []models.AppNotification {
	notis := make([]models.AppNotification, 0)

	for _, student := range students {
		overdue := 0
		for _, t := range student.TuitionRecords {
			if t.Status == models.TuitionOverdue {
				overdue++
			}
		}
		if overdue > 0 {
			notis = append(notis, models.AppNotification{
				ID:          fmt.Sprintf("noti_tuit_%s", student.ID),
				Type:        models.NotificationDanger,
				Title:       "Nợ học phí quá hạn",
				Message:     fmt.Sprintf("Học viên %s đang nợ %d khoản thu.", student.FullName, overdue),
				StudentID:   student.ID,
				Timestamp:   at,
				ActionLabel: "Xem công nợ",
			})
		}

		current := student.CurrentStage()
		if current == nil {
			continue
		}
		missing := 0
		for _, d := range current.Documents {
			if d.Required && d.Status == models.DocMissing {
				missing++
			}
		}
		if missing > 0 {
			notis = append(notis, models.AppNotification{
				ID:          fmt.Sprintf("noti_doc_%s", student.ID),
				Type:        models.NotificationWarning,
				Title:       "Thiếu hồ sơ bắt buộc",
				Message:     fmt.Sprintf("%s thiếu %d tài liệu ở giai đoạn \"%s\".", student.FullName, missing, current.Name),
				StudentID:   student.ID,
				Timestamp:   at,
				ActionLabel: "Kiểm tra ngay",
			})
		}
	}
	return notis
}
