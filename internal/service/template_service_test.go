package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
)

func seedMasterStudent(t *testing.T, students *repository.StudentStore) *models.Student {
	t.Helper()
	student := &models.Student{
		FullName:       "Nguyễn Văn An",
		Degree:         models.DegreeMaster,
		StudentCode:    "MCS20230001",
		CurrentStageID: 1,
		Stages: []models.TrainingStage{
			{
				ID: 1, Name: "Nhập học", IsCurrent: true,
				Documents: []models.DocumentItem{
					{ID: "m1-1", Name: "Đơn nhập học", Required: true, Status: models.DocApproved, FileURL: "/files/don.pdf"},
					{ID: "m1-2", Name: "Bằng đại học", Required: true, Status: models.DocPending, FileURL: "/files/bang.pdf"},
				},
			},
			{
				ID: 2, Name: "Học tập",
				Documents: []models.DocumentItem{
					{ID: "m2-1", Name: "Bảng điểm", Required: true, Status: models.DocMissing},
				},
			},
		},
	}
	require.NoError(t, students.Create(context.Background(), student))
	return student
}

func newTemplateFixture(t *testing.T) (*TemplateService, *repository.TemplateStore, *repository.StudentStore) {
	t.Helper()
	templates := repository.NewTemplateStore()
	students := repository.NewStudentStore()
	svc := NewTemplateService(TemplateServiceParams{Templates: templates, Students: students})
	return svc, templates, students
}

func TestSaveTemplatePreservesStudentStateOnRename(t *testing.T) {
	svc, _, students := newTemplateFixture(t)
	st := seedMasterStudent(t, students)

	resp, err := svc.Save(context.Background(), models.DegreeMaster, dto.SaveTemplateRequest{
		Stages: []dto.TemplateStageRequest{
			{
				ID: 1, Name: "Tiếp nhận hồ sơ",
				Documents: []dto.TemplateDocumentRequest{
					{ID: "m1-1", Name: "Đơn xin nhập học (bản mới)", Required: false, TemplateURL: "/forms/don-v2.pdf"},
					{ID: "m1-2", Name: "Bằng đại học", Required: true},
				},
			},
			{
				ID: 2, Name: "Học tập",
				Documents: []dto.TemplateDocumentRequest{
					{ID: "m2-1", Name: "Bảng điểm", Required: true},
				},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.StudentsUpdated)

	got, err := students.FindByID(context.Background(), st.ID)
	require.NoError(t, err)
	doc := got.Stages[0].Documents[0]
	assert.Equal(t, "Đơn xin nhập học (bản mới)", doc.Name)
	assert.False(t, doc.Required)
	assert.Equal(t, "/forms/don-v2.pdf", doc.TemplateURL)
	assert.Equal(t, models.DocApproved, doc.Status)
	assert.Equal(t, "/files/don.pdf", doc.FileURL)
	assert.True(t, got.Stages[0].IsCurrent)
	assert.Equal(t, "Tiếp nhận hồ sơ", got.Stages[0].Name)
}

func TestSaveTemplateDropsRemovedDocuments(t *testing.T) {
	svc, _, students := newTemplateFixture(t)
	st := seedMasterStudent(t, students)

	resp, err := svc.Save(context.Background(), models.DegreeMaster, dto.SaveTemplateRequest{
		Stages: []dto.TemplateStageRequest{
			{
				ID: 1, Name: "Nhập học",
				Documents: []dto.TemplateDocumentRequest{
					{ID: "m1-1", Name: "Đơn nhập học", Required: true},
				},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.DocumentsDropped)

	got, err := students.FindByID(context.Background(), st.ID)
	require.NoError(t, err)
	require.Len(t, got.Stages, 1)
	require.Len(t, got.Stages[0].Documents, 1)
	assert.Equal(t, "m1-1", got.Stages[0].Documents[0].ID)
}

func TestSaveTemplateAddsNewDocumentsAsMissing(t *testing.T) {
	svc, _, students := newTemplateFixture(t)
	st := seedMasterStudent(t, students)

	_, err := svc.Save(context.Background(), models.DegreeMaster, dto.SaveTemplateRequest{
		Stages: []dto.TemplateStageRequest{
			{
				ID: 1, Name: "Nhập học",
				Documents: []dto.TemplateDocumentRequest{
					{ID: "m1-1", Name: "Đơn nhập học", Required: true},
					{ID: "m1-3", Name: "Sơ yếu lý lịch", Required: true},
				},
			},
			{
				ID: 3, Name: "Bảo vệ luận văn",
				Documents: []dto.TemplateDocumentRequest{
					{ID: "m3-1", Name: "Luận văn", Required: true},
				},
			},
		},
	})
	require.NoError(t, err)

	got, err := students.FindByID(context.Background(), st.ID)
	require.NoError(t, err)
	require.Len(t, got.Stages, 2)

	added := got.Stages[0].Documents[1]
	assert.Equal(t, "m1-3", added.ID)
	assert.Equal(t, models.DocMissing, added.Status)
	assert.Empty(t, added.FileURL)

	newStage := got.Stages[1]
	assert.Equal(t, 3, newStage.ID)
	assert.False(t, newStage.IsCompleted)
	assert.False(t, newStage.IsCurrent)
	assert.Equal(t, models.DocMissing, newStage.Documents[0].Status)
}

func TestSaveTemplateLeavesOtherTrackUntouched(t *testing.T) {
	svc, _, students := newTemplateFixture(t)
	phd := &models.Student{
		FullName:       "Trần Thị Bình",
		Degree:         models.DegreePhD,
		CurrentStageID: 1,
		Stages: []models.TrainingStage{
			{
				ID: 1, Name: "Xét tuyển NCS", IsCurrent: true,
				Documents: []models.DocumentItem{
					{ID: "p1-1", Name: "Đề cương nghiên cứu", Required: true, Status: models.DocApproved},
				},
			},
		},
	}
	require.NoError(t, students.Create(context.Background(), phd))

	_, err := svc.Save(context.Background(), models.DegreeMaster, dto.SaveTemplateRequest{
		Stages: []dto.TemplateStageRequest{
			{ID: 1, Name: "Nhập học", Documents: []dto.TemplateDocumentRequest{{ID: "m1-1", Name: "Đơn", Required: true}}},
		},
	})
	require.NoError(t, err)

	got, err := students.FindByID(context.Background(), phd.ID)
	require.NoError(t, err)
	require.Len(t, got.Stages, 1)
	assert.Equal(t, "Xét tuyển NCS", got.Stages[0].Name)
	assert.Equal(t, "p1-1", got.Stages[0].Documents[0].ID)
}

func TestSaveTemplateNormalizesDocumentState(t *testing.T) {
	svc, templates, _ := newTemplateFixture(t)

	_, err := svc.Save(context.Background(), models.DegreePhD, dto.SaveTemplateRequest{
		Stages: []dto.TemplateStageRequest{
			{ID: 1, Name: "Xét tuyển", Documents: []dto.TemplateDocumentRequest{{ID: "p1-1", Name: "Đề cương", Required: true}}},
		},
	})
	require.NoError(t, err)

	stored, err := templates.Get(context.Background(), models.DegreePhD)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].IsCurrent)
	assert.False(t, stored[0].IsCompleted)
	assert.Equal(t, models.DocMissing, stored[0].Documents[0].Status)
	assert.Empty(t, stored[0].Documents[0].FileURL)
}

func TestSaveTemplateRejectsBadStageLists(t *testing.T) {
	svc, _, _ := newTemplateFixture(t)

	_, err := svc.Save(context.Background(), models.DegreeMaster, dto.SaveTemplateRequest{
		Stages: []dto.TemplateStageRequest{
			{ID: 2, Name: "B", Documents: nil},
			{ID: 1, Name: "A", Documents: nil},
		},
	})
	assert.Error(t, err)

	_, err = svc.Save(context.Background(), models.DegreeMaster, dto.SaveTemplateRequest{
		Stages: []dto.TemplateStageRequest{
			{
				ID: 1, Name: "A",
				Documents: []dto.TemplateDocumentRequest{
					{ID: "m1-1", Name: "X", Required: true},
					{ID: "m1-1", Name: "Y", Required: false},
				},
			},
		},
	})
	assert.Error(t, err)

	_, err = svc.Save(context.Background(), "BACHELOR", dto.SaveTemplateRequest{
		Stages: []dto.TemplateStageRequest{{ID: 1, Name: "A"}},
	})
	assert.Error(t, err)
}

func TestSaveTemplateIsIdempotent(t *testing.T) {
	svc, _, students := newTemplateFixture(t)
	st := seedMasterStudent(t, students)

	req := dto.SaveTemplateRequest{
		Stages: []dto.TemplateStageRequest{
			{
				ID: 1, Name: "Nhập học",
				Documents: []dto.TemplateDocumentRequest{
					{ID: "m1-1", Name: "Đơn nhập học", Required: true},
					{ID: "m1-2", Name: "Bằng đại học", Required: true},
				},
			},
			{
				ID: 2, Name: "Học tập",
				Documents: []dto.TemplateDocumentRequest{
					{ID: "m2-1", Name: "Bảng điểm", Required: true},
				},
			},
		},
	}

	_, err := svc.Save(context.Background(), models.DegreeMaster, req)
	require.NoError(t, err)
	first, err := students.FindByID(context.Background(), st.ID)
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), models.DegreeMaster, req)
	require.NoError(t, err)
	second, err := students.FindByID(context.Background(), st.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Stages, second.Stages)
}
