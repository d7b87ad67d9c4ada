package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edumanage/postgrad-api/internal/models"
)

// ClassStore holds administrative classes in memory, newest first.
type ClassStore struct {
	mu      sync.RWMutex
	classes map[string]models.ClassInfo
	order   []string
}

// NewClassStore constructs an empty store.
func NewClassStore() *ClassStore {
	return &ClassStore{classes: make(map[string]models.ClassInfo)}
}

// List returns classes matching the filter plus the total count.
func (s *ClassStore) List(ctx context.Context, filter models.ClassFilter) ([]models.ClassInfo, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.ClassInfo, 0, len(s.order))
	for _, id := range s.order {
		c := s.classes[id]
		if !matchClass(c, filter) {
			continue
		}
		matched = append(matched, c)
	}
	total := len(matched)
	start, end := paginate(total, filter.Page, filter.PageSize)
	return matched[start:end], total, nil
}

// FindByID returns the class or ErrNoRecord.
func (s *ClassStore) FindByID(ctx context.Context, id string) (*models.ClassInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.classes[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &c, nil
}

// Create inserts the class, assigning an ID when absent.
func (s *ClassStore) Create(ctx context.Context, class *models.ClassInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	class.CreatedAt = now
	class.UpdatedAt = now
	s.classes[class.ID] = *class
	s.order = append([]string{class.ID}, s.order...)
	return nil
}

// Update replaces the stored class.
func (s *ClassStore) Update(ctx context.Context, class *models.ClassInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.classes[class.ID]
	if !ok {
		return ErrNoRecord
	}
	class.CreatedAt = existing.CreatedAt
	class.UpdatedAt = time.Now().UTC()
	s.classes[class.ID] = *class
	return nil
}

// Delete removes the class. Member students are the caller's responsibility.
func (s *ClassStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[id]; !ok {
		return ErrNoRecord
	}
	delete(s.classes, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func matchClass(c models.ClassInfo, filter models.ClassFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Major), needle) {
			return false
		}
	}
	if filter.Degree != "" && c.Degree != filter.Degree {
		return false
	}
	if filter.Batch != "" && c.Batch != filter.Batch {
		return false
	}
	return true
}
