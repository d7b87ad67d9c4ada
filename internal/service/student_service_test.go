package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
)

func newStudentFixture(t *testing.T) (*StudentService, *repository.StudentStore, *repository.TemplateStore) {
	t.Helper()
	students := repository.NewStudentStore()
	templates := repository.NewTemplateStore()
	classes := repository.NewClassStore()

	require.NoError(t, templates.Set(context.Background(), models.DegreeMaster, []models.TrainingStage{
		{
			ID: 1, Name: "Nhập học",
			Documents: []models.DocumentItem{
				{ID: "m1-1", Name: "Đơn nhập học", Required: true, Status: models.DocMissing},
			},
		},
		{
			ID: 2, Name: "Học tập",
			Documents: []models.DocumentItem{
				{ID: "m2-1", Name: "Bảng điểm", Required: true, Status: models.DocMissing},
			},
		},
	}))

	svc := NewStudentService(StudentServiceParams{
		Repo:      students,
		Templates: templates,
		Classes:   classes,
		Now:       func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) },
	})
	return svc, students, templates
}

func createStudent(t *testing.T, svc *StudentService) *models.Student {
	t.Helper()
	st, err := svc.Create(context.Background(), dto.CreateStudentRequest{
		FullName: "Phạm Minh Đức",
		DOB:      "1998-04-12",
		Email:    "duc.pham@example.edu.vn",
		Degree:   models.DegreeMaster,
		Major:    "Khoa học máy tính",
		Batch:    "2026A",
	})
	require.NoError(t, err)
	return st
}

func TestCreateStudentSeedsChecklistFromTemplate(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	st := createStudent(t, svc)

	assert.Equal(t, 1, st.CurrentStageID)
	require.Len(t, st.Stages, 2)
	assert.True(t, st.Stages[0].IsCurrent)
	assert.False(t, st.Stages[1].IsCurrent)
	assert.Equal(t, models.DocMissing, st.Stages[0].Documents[0].Status)
	assert.Contains(t, st.StudentCode, "MCS2026")
	assert.Equal(t, "2026-08-28", st.EnrollmentDate)
	assert.NotEmpty(t, st.AvatarURL)
}

func TestCreateStudentIsolatedFromLaterTemplateEdits(t *testing.T) {
	svc, students, templates := newStudentFixture(t)
	st := createStudent(t, svc)

	stages, err := templates.Get(context.Background(), models.DegreeMaster)
	require.NoError(t, err)
	stages[0].Documents[0].Name = "Đã đổi tên"
	require.NoError(t, templates.Set(context.Background(), models.DegreeMaster, stages))

	got, err := students.FindByID(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Đơn nhập học", got.Stages[0].Documents[0].Name)
}

func TestCreateStudentRequiresTemplate(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	_, err := svc.Create(context.Background(), dto.CreateStudentRequest{
		FullName: "Hoàng Thị Em",
		DOB:      "1997-01-30",
		Email:    "em.hoang@example.edu.vn",
		Degree:   models.DegreePhD,
		Major:    "Vật lý",
		Batch:    "2026B",
	})
	assert.Error(t, err)
}

func TestUpdateStudentCannotChangeDegree(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	st := createStudent(t, svc)

	name := "Phạm Minh Đức (cập nhật)"
	updated, err := svc.Update(context.Background(), st.ID, dto.UpdateStudentRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.FullName)
	// The update payload carries no degree field at all; the stored track is
	// whatever enrollment fixed it to.
	assert.Equal(t, models.DegreeMaster, updated.Degree)
}

func TestAttachDocumentFileMovesMissingToPending(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	st := createStudent(t, svc)

	got, err := svc.AttachDocumentFile(context.Background(), st.ID, 1, "m1-1", dto.AttachDocumentFileRequest{
		FileURL: "/uploads/don.pdf",
	})
	require.NoError(t, err)
	doc := got.Stages[0].Documents[0]
	assert.Equal(t, models.DocPending, doc.Status)
	assert.Equal(t, "/uploads/don.pdf", doc.FileURL)
	assert.Equal(t, "2026-08-28", doc.DateUpdated)
}

func TestUpdateDocumentStatus(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	st := createStudent(t, svc)

	got, err := svc.UpdateDocumentStatus(context.Background(), st.ID, 1, "m1-1", dto.UpdateDocumentStatusRequest{
		Status: models.DocApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DocApproved, got.Stages[0].Documents[0].Status)

	_, err = svc.UpdateDocumentStatus(context.Background(), st.ID, 1, "nope", dto.UpdateDocumentStatusRequest{
		Status: models.DocApproved,
	})
	assert.Error(t, err)
}

func TestAdvanceStage(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	st := createStudent(t, svc)

	got, err := svc.AdvanceStage(context.Background(), st.ID, dto.AdvanceStageRequest{StageID: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStageID)
	assert.True(t, got.Stages[0].IsCompleted)
	assert.False(t, got.Stages[0].IsCurrent)
	assert.True(t, got.Stages[1].IsCurrent)

	_, err = svc.AdvanceStage(context.Background(), st.ID, dto.AdvanceStageRequest{StageID: 99})
	assert.Error(t, err)
}

func TestTuitionLifecycle(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	st := createStudent(t, svc)

	got, err := svc.AddTuition(context.Background(), st.ID, dto.CreateTuitionRequest{
		Title:   "Học phí kỳ 1",
		Amount:  15000000,
		DueDate: "2026-09-30",
	})
	require.NoError(t, err)
	require.Len(t, got.TuitionRecords, 1)
	rec := got.TuitionRecords[0]
	assert.Equal(t, models.TuitionUnpaid, rec.Status)

	paid := models.TuitionPaid
	got, err = svc.UpdateTuition(context.Background(), st.ID, rec.ID, dto.UpdateTuitionRequest{Status: &paid})
	require.NoError(t, err)
	assert.Equal(t, models.TuitionPaid, got.TuitionRecords[0].Status)
	assert.Equal(t, "2026-08-28", got.TuitionRecords[0].PaymentDate)

	got, err = svc.DeleteTuition(context.Background(), st.ID, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, got.TuitionRecords)
}

func TestListStudentsFiltersAndPaginates(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	createStudent(t, svc)
	createStudent(t, svc)

	list, pagination, err := svc.List(context.Background(), dto.StudentQuery{Degree: "MASTER", Page: 1, Size: 1})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 2, pagination.TotalCount)

	list, _, err = svc.List(context.Background(), dto.StudentQuery{Degree: "PHD"})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListStudentsFiltersByStage(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	createStudent(t, svc)
	advanced := createStudent(t, svc)

	_, err := svc.AdvanceStage(context.Background(), advanced.ID, dto.AdvanceStageRequest{StageID: 2})
	require.NoError(t, err)

	list, pagination, err := svc.List(context.Background(), dto.StudentQuery{Stage: 2})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, advanced.ID, list[0].ID)
	assert.Equal(t, 1, pagination.TotalCount)

	list, _, err = svc.List(context.Background(), dto.StudentQuery{Stage: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEqual(t, advanced.ID, list[0].ID)
}
