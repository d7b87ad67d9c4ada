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

func newClassFixture(t *testing.T) (*ClassService, *repository.ClassStore, *repository.StudentStore) {
	t.Helper()
	classes := repository.NewClassStore()
	students := repository.NewStudentStore()
	svc := NewClassService(ClassServiceParams{Repo: classes, Students: students})
	return svc, classes, students
}

func TestClassRosterSizeIsDerived(t *testing.T) {
	svc, _, students := newClassFixture(t)

	created, err := svc.Create(context.Background(), dto.CreateClassRequest{
		Name:   "Cao học KHMT 2026A",
		Degree: "MASTER",
		Major:  "Khoa học máy tính",
		Batch:  "2026A",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.TotalStudents)
	assert.Equal(t, "Chưa phân công", created.Advisor)

	for i := 0; i < 3; i++ {
		st := &models.Student{FullName: "SV", Degree: models.DegreeMaster, ClassID: created.ID}
		require.NoError(t, students.Create(context.Background(), st))
	}

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalStudents)
}

func TestDeleteClassUnassignsMembers(t *testing.T) {
	svc, _, students := newClassFixture(t)

	created, err := svc.Create(context.Background(), dto.CreateClassRequest{
		Name:   "NCS Vật lý 2025",
		Degree: "PHD",
		Major:  "Vật lý",
		Batch:  "2025",
	})
	require.NoError(t, err)

	st := &models.Student{FullName: "NCS", Degree: models.DegreePhD, ClassID: created.ID}
	require.NoError(t, students.Create(context.Background(), st))

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	got, err := students.FindByID(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ClassID)

	_, err = svc.Get(context.Background(), created.ID)
	assert.Error(t, err)
}

func TestUpdateClassKeepsDegree(t *testing.T) {
	svc, _, _ := newClassFixture(t)

	created, err := svc.Create(context.Background(), dto.CreateClassRequest{
		Name:   "Cao học Toán 2026",
		Degree: "MASTER",
		Major:  "Toán",
		Batch:  "2026",
	})
	require.NoError(t, err)

	advisor := "TS. Nguyễn Văn Giang"
	got, err := svc.Update(context.Background(), created.ID, dto.UpdateClassRequest{Advisor: &advisor})
	require.NoError(t, err)
	assert.Equal(t, advisor, got.Advisor)
	assert.Equal(t, models.DegreeMaster, got.Degree)
}
