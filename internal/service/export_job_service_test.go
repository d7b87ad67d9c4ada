package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
	"github.com/edumanage/postgrad-api/pkg/jobs"
	"github.com/edumanage/postgrad-api/pkg/storage"
)

type queueStub struct {
	enqueued []jobs.Task
	err      error
}

func (q *queueStub) Enqueue(task jobs.Task) error {
	if q.err != nil {
		return q.err
	}
	q.enqueued = append(q.enqueued, task)
	return nil
}

type generatorFake struct {
	result *ExportResult
	err    error
}

func (g *generatorFake) Generate(ctx context.Context, job *models.ExportJob) (*ExportResult, error) {
	return g.result, g.err
}

func TestCreateJobQueuesExport(t *testing.T) {
	repo := repository.NewExportJobStore()
	queue := &queueStub{}
	svc := NewExportJobService(repo, queue, nil, nil, ExportJobConfig{})

	resp, err := svc.CreateJob(context.Background(), dto.CreateExportRequest{
		Type:   "STUDENT_ROSTER",
		Format: "csv",
		Degree: "MASTER",
	})
	require.NoError(t, err)
	assert.Equal(t, "QUEUED", resp.Status)
	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, resp.ID, queue.enqueued[0].ExportID)
}

func TestCreateJobValidation(t *testing.T) {
	svc := NewExportJobService(repository.NewExportJobStore(), &queueStub{}, nil, nil, ExportJobConfig{})

	_, err := svc.CreateJob(context.Background(), dto.CreateExportRequest{Type: "WHATEVER", Format: "csv"})
	assert.Error(t, err)

	_, err = svc.CreateJob(context.Background(), dto.CreateExportRequest{Type: "DRAFT_PDF", Format: "pdf"})
	assert.Error(t, err)

	_, err = svc.CreateJob(context.Background(), dto.CreateExportRequest{
		Type: "DRAFT_PDF", Format: "csv", DocumentName: "Quyết định", Body: "Nội dung",
	})
	assert.Error(t, err)
}

func TestCreateJobMarksFailedWhenEnqueueFails(t *testing.T) {
	repo := repository.NewExportJobStore()
	queue := &queueStub{err: errors.New("queue stopped")}
	svc := NewExportJobService(repo, queue, nil, nil, ExportJobConfig{})

	_, err := svc.CreateJob(context.Background(), dto.CreateExportRequest{Type: "STUDENT_ROSTER", Format: "pdf"})
	assert.Error(t, err)
}

func TestExportWorkerHandleSuccess(t *testing.T) {
	repo := repository.NewExportJobStore()
	job := &models.ExportJob{
		Type:   models.ExportStudentRoster,
		Params: models.ExportJobParams{Format: models.FormatCSV},
		Status: models.ExportQueued,
	}
	require.NoError(t, repo.Create(context.Background(), job))

	gen := &generatorFake{result: &ExportResult{
		RelativePath: "student_roster_" + job.ID + ".csv",
		URL:          "/api/v1/exports/download/token123",
	}}
	worker := NewExportWorker(repo, gen, nil, 3, nil)

	require.NoError(t, worker.Handle(context.Background(), jobs.Task{ExportID: job.ID, Attempt: 1}))

	got, err := repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ExportDone, got.Status)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, "/api/v1/exports/download/token123", got.ResultURL)
	require.NotNil(t, got.FinishedAt)
}

func TestExportWorkerRetriesThenFails(t *testing.T) {
	repo := repository.NewExportJobStore()
	job := &models.ExportJob{
		Type:   models.ExportTuitionLedger,
		Params: models.ExportJobParams{Format: models.FormatPDF},
		Status: models.ExportQueued,
	}
	require.NoError(t, repo.Create(context.Background(), job))

	gen := &generatorFake{err: errors.New("render failed")}
	worker := NewExportWorker(repo, gen, nil, 2, nil)

	// First attempt goes back to the queue.
	require.Error(t, worker.Handle(context.Background(), jobs.Task{ExportID: job.ID, Attempt: 1}))
	got, err := repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ExportQueued, got.Status)

	// Final attempt marks the job failed.
	require.Error(t, worker.Handle(context.Background(), jobs.Task{ExportID: job.ID, Attempt: 2}))
	got, err = repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ExportFailed, got.Status)
	assert.Equal(t, "render failed", got.ErrorMessage)
}

func TestExportServiceGeneratesRosterCSV(t *testing.T) {
	students := repository.NewStudentStore()
	st := &models.Student{
		FullName:    "Ngô Văn Inh",
		StudentCode: "MCS20260042",
		Degree:      models.DegreeMaster,
		Major:       "Khoa học dữ liệu",
		Batch:       "2026A",
	}
	require.NoError(t, students.Create(context.Background(), st))

	dir := t.TempDir()
	store, err := newTestStorage(dir)
	require.NoError(t, err)
	signer := storage.NewDownloadSigner("test-secret", time.Hour)
	svc := NewExportService(students, repository.NewClassStore(), store, signer, ExportConfig{APIPrefix: "/api/v1"}, nil, nil, nil)

	job := &models.ExportJob{
		ID:     "job-1",
		Type:   models.ExportStudentRoster,
		Params: models.ExportJobParams{Format: models.FormatCSV},
	}
	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)
	assert.Contains(t, result.URL, "/api/v1/exports/download/")
	assert.NotEmpty(t, result.Token)

	file, err := svc.Open(result.RelativePath)
	require.NoError(t, err)
	defer file.Close() //nolint:errcheck

	info, err := file.Stat()
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func newTestStorage(dir string) (fileStorage, error) {
	return storage.NewExportStorage(dir)
}
