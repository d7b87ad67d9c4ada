package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
	"github.com/edumanage/postgrad-api/pkg/storage"
)

func newExportFixture(t *testing.T) (*ExportService, *repository.StudentStore) {
	t.Helper()
	students := repository.NewStudentStore()
	classes := repository.NewClassStore()

	require.NoError(t, classes.Create(context.Background(), &models.ClassInfo{
		ID: "class-it-1", Name: "CH-CNTT-K1", Degree: models.DegreeMaster,
	}))
	require.NoError(t, students.Create(context.Background(), &models.Student{
		ID:          "sv-1",
		StudentCode: "MCS20261001",
		FullName:    "Nguyễn Văn A",
		Degree:      models.DegreeMaster,
		Major:       "Khoa học máy tính",
		Batch:       "2026A",
		ClassID:     "class-it-1",
		Email:       "a.nguyen@example.edu.vn",
		Phone:       "0901234567",
		CurrentStageID: 1,
		Stages: []models.TrainingStage{
			{ID: 1, Name: "Nhập học", IsCurrent: true},
		},
		TuitionRecords: []models.TuitionRecord{
			{ID: "t1", Title: "Học phí kỳ 1", Amount: 15000000, DueDate: "2026-09-15", Status: models.TuitionUnpaid},
		},
	}))

	store, err := storage.NewExportStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewDownloadSigner("test-secret", time.Hour)

	svc := NewExportService(students, classes, store, signer,
		ExportConfig{APIPrefix: "/api/v1", ResultTTL: time.Hour}, nil, nil, nil)
	return svc, students
}

func readStoredExport(t *testing.T, svc *ExportService, name string) string {
	t.Helper()
	file, err := svc.Open(name)
	require.NoError(t, err)
	defer file.Close() //nolint:errcheck
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	return string(content)
}

func TestGenerateStudentRosterCSV(t *testing.T) {
	svc, _ := newExportFixture(t)

	job := &models.ExportJob{
		ID:     "exp-1",
		Type:   models.ExportStudentRoster,
		Params: models.ExportJobParams{Format: models.FormatCSV},
	}
	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, "student_roster_exp-1.csv", result.RelativePath)
	assert.Equal(t, "/api/v1/exports/download/"+result.Token, result.URL)

	content := readStoredExport(t, svc, result.RelativePath)
	assert.Contains(t, content, "Mã học viên,Họ tên")
	assert.Contains(t, content, "MCS20261001,Nguyễn Văn A,Thạc sĩ,Khoa học máy tính,2026A,CH-CNTT-K1,Nhập học")

	exportID, path, _, err := svc.ParseToken(result.Token, false)
	require.NoError(t, err)
	assert.Equal(t, "exp-1", exportID)
	assert.Equal(t, result.RelativePath, path)
}

func TestGenerateTuitionLedgerCSV(t *testing.T) {
	svc, _ := newExportFixture(t)

	job := &models.ExportJob{
		ID:     "exp-2",
		Type:   models.ExportTuitionLedger,
		Params: models.ExportJobParams{Format: models.FormatCSV},
	}
	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)

	content := readStoredExport(t, svc, result.RelativePath)
	assert.Contains(t, content, "Khoản thu,Số tiền,Hạn nộp")
	assert.Contains(t, content, "MCS20261001,Nguyễn Văn A,Học phí kỳ 1,15000000,2026-09-15,UNPAID")
}

func TestGenerateDraftPDF(t *testing.T) {
	svc, _ := newExportFixture(t)

	job := &models.ExportJob{
		ID:   "exp-3",
		Type: models.ExportDraftPDF,
		Params: models.ExportJobParams{
			Format:       models.FormatPDF,
			DocumentName: "Quyết định giao đề tài",
			Body:         "Nội dung dự thảo quyết định.",
		},
	}
	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, "draft_pdf_exp-3.pdf", result.RelativePath)

	content := readStoredExport(t, svc, result.RelativePath)
	assert.Equal(t, "%PDF", content[:4])
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	svc, _ := newExportFixture(t)

	_, err := svc.Generate(context.Background(), &models.ExportJob{
		ID:     "exp-4",
		Type:   models.ExportStudentRoster,
		Params: models.ExportJobParams{Format: "xlsx"},
	})
	require.Error(t, err)
}
