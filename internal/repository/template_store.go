package repository

import (
	"context"
	"sync"

	"github.com/edumanage/postgrad-api/internal/models"
)

// TemplateStore owns the two administrator-edited stage templates. Templates
// are replaced outright on save; reads hand out deep copies so student seeding
// can never alias template state.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[models.DegreeTrack][]models.TrainingStage
}

// NewTemplateStore constructs an empty store. Callers seed it at startup.
func NewTemplateStore() *TemplateStore {
	return &TemplateStore{templates: make(map[models.DegreeTrack][]models.TrainingStage)}
}

// Get returns a deep copy of the template for the track, or ErrNoRecord when
// the track was never seeded.
func (s *TemplateStore) Get(ctx context.Context, track models.DegreeTrack) ([]models.TrainingStage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stages, ok := s.templates[track]
	if !ok {
		return nil, ErrNoRecord
	}
	return models.CloneStages(stages), nil
}

// Set replaces the template for the track. The administrator's edit is
// authoritative; no merge happens at the template level.
func (s *TemplateStore) Set(ctx context.Context, track models.DegreeTrack, stages []models.TrainingStage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.templates[track] = models.CloneStages(stages)
	return nil
}
