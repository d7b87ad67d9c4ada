package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
)

func newResolveFixture(t *testing.T) (*SystemDocumentService, *repository.StudentStore) {
	t.Helper()
	docs := repository.NewSystemDocumentStore()
	students := repository.NewStudentStore()

	linked := &models.SystemDocument{
		ID: "bm-05", Code: "BM.05/SĐH", Name: "Đơn xin nhận đề tài luận văn",
		Type: models.SysDocTemplate, Degree: models.DegreeMaster,
		StageID: 3, DocumentID: "m3-1", DownloadURL: "#",
	}
	require.NoError(t, docs.Create(context.Background(), linked))

	stageScoped := &models.SystemDocument{
		ID: "bm-02", Code: "BM.02/SĐH", Name: "Cam kết thực hiện quy chế đào tạo",
		Type: models.SysDocTemplate, Degree: models.DegreeMaster,
		StageID: 1, DownloadURL: "#",
	}
	require.NoError(t, docs.Create(context.Background(), stageScoped))

	svc := NewSystemDocumentService(SystemDocumentServiceParams{Repo: docs, Students: students})
	return svc, students
}

func TestResolveForStudentExplicitLink(t *testing.T) {
	svc, students := newResolveFixture(t)

	student := &models.Student{
		Degree: models.DegreeMaster, CurrentStageID: 3,
		Stages: []models.TrainingStage{
			{ID: 3, Name: "Đề cương", IsCurrent: true, Documents: []models.DocumentItem{
				{ID: "m3-1", Name: "Phiếu đăng ký tên đề tài & GVHD", Required: true, Status: models.DocMissing},
			}},
		},
	}
	require.NoError(t, students.Create(context.Background(), student))

	doc, err := svc.ResolveForStudent(context.Background(), student.ID, "m3-1")
	require.NoError(t, err)
	assert.Equal(t, "bm-05", doc.ID)
}

func TestResolveForStudentStageFallback(t *testing.T) {
	svc, students := newResolveFixture(t)

	student := &models.Student{
		Degree: models.DegreeMaster, CurrentStageID: 1,
		Stages: []models.TrainingStage{
			{ID: 1, Name: "Nhập học", IsCurrent: true, Documents: []models.DocumentItem{
				{ID: "m1-2", Name: "Giấy báo nhập học", Required: true, Status: models.DocMissing},
			}},
		},
	}
	require.NoError(t, students.Create(context.Background(), student))

	// m1-2 carries no explicit link; the stage-scoped TEMPLATE entry wins.
	doc, err := svc.ResolveForStudent(context.Background(), student.ID, "m1-2")
	require.NoError(t, err)
	assert.Equal(t, "bm-02", doc.ID)
}

func TestResolveForStudentUnknownDocument(t *testing.T) {
	svc, students := newResolveFixture(t)

	student := &models.Student{
		Degree: models.DegreeMaster, CurrentStageID: 1,
		Stages: []models.TrainingStage{
			{ID: 1, Name: "Nhập học", IsCurrent: true},
		},
	}
	require.NoError(t, students.Create(context.Background(), student))

	_, err := svc.ResolveForStudent(context.Background(), student.ID, "nope")
	require.Error(t, err)
}
