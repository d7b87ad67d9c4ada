package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
)

func debtorStudent() models.Student {
	return models.Student{
		ID:             "st-1",
		FullName:       "Lê Văn Cường",
		Degree:         models.DegreeMaster,
		CurrentStageID: 1,
		Stages: []models.TrainingStage{
			{
				ID: 1, Name: "Nhập học", IsCurrent: true,
				Documents: []models.DocumentItem{
					{ID: "m1-1", Name: "Đơn nhập học", Required: true, Status: models.DocMissing},
					{ID: "m1-2", Name: "Bằng đại học", Required: true, Status: models.DocMissing},
					{ID: "m1-3", Name: "Ảnh thẻ", Required: false, Status: models.DocMissing},
				},
			},
		},
		TuitionRecords: []models.TuitionRecord{
			{ID: "t1", Title: "Học phí kỳ 1", Status: models.TuitionOverdue},
			{ID: "t2", Title: "Học phí kỳ 2", Status: models.TuitionUnpaid},
		},
	}
}

func TestDeriveNotificationsBuildsBothAlerts(t *testing.T) {
	at := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	notis := DeriveNotifications([]models.Student{debtorStudent()}, at)

	require.Len(t, notis, 2)

	tuition := notis[0]
	assert.Equal(t, "noti_tuit_st-1", tuition.ID)
	assert.Equal(t, models.NotificationDanger, tuition.Type)
	assert.Equal(t, "Nợ học phí quá hạn", tuition.Title)
	assert.Equal(t, "Học viên Lê Văn Cường đang nợ 1 khoản thu.", tuition.Message)
	assert.Equal(t, "Xem công nợ", tuition.ActionLabel)
	assert.Equal(t, at, tuition.Timestamp)

	doc := notis[1]
	assert.Equal(t, "noti_doc_st-1", doc.ID)
	assert.Equal(t, models.NotificationWarning, doc.Type)
	assert.Equal(t, "Thiếu hồ sơ bắt buộc", doc.Title)
	assert.Equal(t, "Lê Văn Cường thiếu 2 tài liệu ở giai đoạn \"Nhập học\".", doc.Message)
	assert.Equal(t, "Kiểm tra ngay", doc.ActionLabel)
}

func TestDeriveNotificationsIsDeterministic(t *testing.T) {
	at := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	students := []models.Student{debtorStudent()}

	first := DeriveNotifications(students, at)
	second := DeriveNotifications(students, at)
	assert.Equal(t, first, second)
}

func TestDeriveNotificationsIgnoresSettledStudents(t *testing.T) {
	st := debtorStudent()
	st.TuitionRecords[0].Status = models.TuitionPaid
	for i := range st.Stages[0].Documents {
		st.Stages[0].Documents[i].Status = models.DocApproved
	}

	notis := DeriveNotifications([]models.Student{st}, time.Now())
	assert.Empty(t, notis)
}

func TestDeriveNotificationsSkipsOptionalAndOffStageDocuments(t *testing.T) {
	st := debtorStudent()
	st.TuitionRecords = nil
	// Required docs approved, only the optional one stays missing.
	st.Stages[0].Documents[0].Status = models.DocApproved
	st.Stages[0].Documents[1].Status = models.DocApproved

	// A later stage full of missing required docs must not alert while the
	// student is still in stage 1.
	st.Stages = append(st.Stages, models.TrainingStage{
		ID: 2, Name: "Học tập",
		Documents: []models.DocumentItem{
			{ID: "m2-1", Name: "Bảng điểm", Required: true, Status: models.DocMissing},
		},
	})

	notis := DeriveNotifications([]models.Student{st}, time.Now())
	assert.Empty(t, notis)
}

func TestNotificationServiceDerive(t *testing.T) {
	students := repository.NewStudentStore()
	st := debtorStudent()
	st.ID = ""
	require.NoError(t, students.Create(context.Background(), &st))

	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc := NewNotificationService(NotificationServiceParams{
		Students: students,
		Now:      func() time.Time { return fixed },
	})

	notis, err := svc.Derive(context.Background())
	require.NoError(t, err)
	require.Len(t, notis, 2)
	assert.Equal(t, "noti_tuit_"+st.ID, notis[0].ID)
	assert.Equal(t, fixed, notis[0].Timestamp)
}
