package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
	"github.com/edumanage/postgrad-api/internal/service"
)

func TestNotificationHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	students := repository.NewStudentStore()
	require.NoError(t, students.Create(context.Background(), &models.Student{
		ID:             "sv-1",
		FullName:       "Trần Thị B",
		Degree:         models.DegreeMaster,
		CurrentStageID: 1,
		Stages: []models.TrainingStage{
			{ID: 1, Name: "Nhập học", IsCurrent: true, Documents: []models.DocumentItem{
				{ID: "m1-1", Name: "Đơn nhập học", Required: true, Status: models.DocMissing},
			}},
		},
		TuitionRecords: []models.TuitionRecord{
			{ID: "t1", Title: "Học phí HK1", Amount: 15000000, Status: models.TuitionOverdue},
		},
	}))

	svc := service.NewNotificationService(service.NotificationServiceParams{
		Students: students,
		Now:      func() time.Time { return time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC) },
	})
	handler := NewNotificationHandler(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/notifications", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []models.AppNotification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)

	ids := []string{envelope.Data[0].ID, envelope.Data[1].ID}
	assert.Contains(t, ids, "noti_tuit_sv-1")
	assert.Contains(t, ids, "noti_doc_sv-1")
}

func TestNotificationHandlerListEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := service.NewNotificationService(service.NotificationServiceParams{
		Students: repository.NewStudentStore(),
	})
	handler := NewNotificationHandler(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/notifications", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
