package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edumanage/postgrad-api/internal/models"
)

// ExportJobStore tracks asynchronous export jobs in memory.
type ExportJobStore struct {
	mu   sync.RWMutex
	jobs map[string]models.ExportJob
}

// NewExportJobStore constructs an empty store.
func NewExportJobStore() *ExportJobStore {
	return &ExportJobStore{jobs: make(map[string]models.ExportJob)}
}

// Create inserts the job, assigning an ID when absent.
func (s *ExportJobStore) Create(ctx context.Context, job *models.ExportJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now().UTC()
	s.jobs[job.ID] = *job
	return nil
}

// GetByID returns the job or ErrNoRecord.
func (s *ExportJobStore) GetByID(ctx context.Context, id string) (*models.ExportJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &job, nil
}

// UpdateExportJobParams carries optional job field updates.
type UpdateExportJobParams struct {
	Status       *models.ExportStatus
	Progress     *int
	ResultPath   *string
	ResultURL    *string
	ErrorMessage *string
	FinishedAt   *time.Time
}

// Update applies the provided field updates to the job.
func (s *ExportJobStore) Update(ctx context.Context, id string, params UpdateExportJobParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return ErrNoRecord
	}
	if params.Status != nil {
		job.Status = *params.Status
	}
	if params.Progress != nil {
		job.Progress = *params.Progress
	}
	if params.ResultPath != nil {
		job.ResultPath = *params.ResultPath
	}
	if params.ResultURL != nil {
		job.ResultURL = *params.ResultURL
	}
	if params.ErrorMessage != nil {
		job.ErrorMessage = *params.ErrorMessage
	}
	if params.FinishedAt != nil {
		job.FinishedAt = params.FinishedAt
	}
	s.jobs[id] = job
	return nil
}

// ListFinishedBefore returns finished jobs older than the cutoff, for cleanup.
func (s *ExportJobStore) ListFinishedBefore(ctx context.Context, cutoff time.Time) ([]models.ExportJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ExportJob, 0)
	for _, job := range s.jobs {
		if job.FinishedAt != nil && job.FinishedAt.Before(cutoff) {
			out = append(out, job)
		}
	}
	return out, nil
}
