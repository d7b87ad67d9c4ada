package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
)

type mapCacheRepo struct {
	entries map[string][]byte
}

func newMapCacheRepo() *mapCacheRepo {
	return &mapCacheRepo{entries: make(map[string][]byte)}
}

func (r *mapCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := r.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (r *mapCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.entries[key] = raw
	return nil
}

func (r *mapCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	delete(r.entries, pattern)
	return nil
}

func TestDashboardStats(t *testing.T) {
	students := repository.NewStudentStore()
	classes := repository.NewClassStore()

	graduated := &models.Student{
		FullName: "Đã tốt nghiệp", Degree: models.DegreeMaster, CurrentStageID: 2,
		Stages: []models.TrainingStage{
			{ID: 1, Name: "Nhập học", IsCompleted: true},
			{ID: 2, Name: "Bảo vệ", IsCompleted: true, IsCurrent: true},
		},
	}
	require.NoError(t, students.Create(context.Background(), graduated))

	delayed := &models.Student{
		FullName: "Chậm tiến độ", Degree: models.DegreePhD, CurrentStageID: 1,
		Stages: []models.TrainingStage{
			{
				ID: 1, Name: "Xét tuyển", IsCurrent: true,
				Documents: []models.DocumentItem{
					{ID: "p1-1", Status: models.DocMissing, Required: true},
					{ID: "p1-2", Status: models.DocMissing, Required: true},
					{ID: "p1-3", Status: models.DocMissing},
					{ID: "p1-4", Status: models.DocPending},
				},
			},
		},
		TuitionRecords: []models.TuitionRecord{
			{ID: "t1", Status: models.TuitionOverdue},
		},
	}
	require.NoError(t, students.Create(context.Background(), delayed))

	onTrack := &models.Student{
		FullName: "Đúng tiến độ", Degree: models.DegreeMaster, CurrentStageID: 1,
		Stages: []models.TrainingStage{
			{
				ID: 1, Name: "Nhập học", IsCurrent: true,
				Documents: []models.DocumentItem{
					{ID: "m1-1", Status: models.DocMissing},
					{ID: "m1-2", Status: models.DocApproved},
				},
			},
		},
	}
	require.NoError(t, students.Create(context.Background(), onTrack))

	require.NoError(t, classes.Create(context.Background(), &models.ClassInfo{Name: "Lớp 1", Degree: models.DegreeMaster}))

	svc := NewDashboardService(DashboardServiceParams{Students: students, Classes: classes})
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 2, stats.MasterStudents)
	assert.Equal(t, 1, stats.PhdStudents)
	assert.Equal(t, 1, stats.TotalClasses)
	assert.Equal(t, 1, stats.GraduatedCount)
	assert.Equal(t, 1, stats.DelayedCount)
	assert.Equal(t, 1, stats.TuitionOverdue)
	assert.Equal(t, 1, stats.PendingDocuments)

	require.Len(t, stats.StageBreakdown, 3)
	assert.Equal(t, "MASTER", stats.StageBreakdown[0].Degree)

	require.Len(t, stats.UrgentTasks, 1)
	assert.Equal(t, models.NotificationDanger, stats.UrgentTasks[0].Type)
	assert.Equal(t, delayed.ID, stats.UrgentTasks[0].StudentID)
	require.Len(t, stats.WarningTasks, 1)
	assert.Equal(t, models.NotificationWarning, stats.WarningTasks[0].Type)
}

func TestDashboardStatsCacheDroppedOnStudentWrite(t *testing.T) {
	students := repository.NewStudentStore()
	classes := repository.NewClassStore()
	templates := repository.NewTemplateStore()
	require.NoError(t, templates.Set(context.Background(), models.DegreeMaster, []models.TrainingStage{
		{ID: 1, Name: "Nhập học"},
	}))

	cacheSvc := NewCacheService(newMapCacheRepo(), nil, time.Minute, nil, true)
	dash := NewDashboardService(DashboardServiceParams{
		Students: students,
		Classes:  classes,
		Cache:    cacheSvc,
		CacheTTL: time.Minute,
	})
	studentSvc := NewStudentService(StudentServiceParams{
		Repo:      students,
		Templates: templates,
		Classes:   classes,
		Stats:     dash,
	})

	before, err := dash.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, before.TotalStudents)

	_, err = studentSvc.Create(context.Background(), dto.CreateStudentRequest{
		FullName: "Lê Văn C",
		DOB:      "1999-01-20",
		Email:    "c.le@example.edu.vn",
		Degree:   models.DegreeMaster,
		Major:    "Dược học",
		Batch:    "2026A",
	})
	require.NoError(t, err)

	// Enrollment dropped the cached overview, so the next read recomputes.
	after, err := dash.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, after.TotalStudents)
}

func TestDashboardStatsEmptyCollection(t *testing.T) {
	svc := NewDashboardService(DashboardServiceParams{
		Students: repository.NewStudentStore(),
		Classes:  repository.NewClassStore(),
	})
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalStudents)
	assert.Zero(t, stats.GraduatedCount)
	assert.Empty(t, stats.StageBreakdown)
	assert.Empty(t, stats.UrgentTasks)
	assert.Empty(t, stats.WarningTasks)
}
