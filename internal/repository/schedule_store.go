package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edumanage/postgrad-api/internal/models"
)

// ScheduleStore holds calendar entries in memory.
type ScheduleStore struct {
	mu    sync.RWMutex
	items map[string]models.ScheduleItem
}

// NewScheduleStore constructs an empty store.
func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{items: make(map[string]models.ScheduleItem)}
}

// List returns schedule entries matching the filter, ordered by date then time.
func (s *ScheduleStore) List(ctx context.Context, filter models.ScheduleFilter) ([]models.ScheduleItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.ScheduleItem, 0, len(s.items))
	for _, item := range s.items {
		if !matchSchedule(item, filter) {
			continue
		}
		matched = append(matched, item)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date == matched[j].Date {
			return matched[i].Time < matched[j].Time
		}
		return matched[i].Date < matched[j].Date
	})
	return matched, nil
}

// FindByID returns the entry or ErrNoRecord.
func (s *ScheduleStore) FindByID(ctx context.Context, id string) (*models.ScheduleItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &item, nil
}

// Create inserts the entry, assigning an ID when absent.
func (s *ScheduleStore) Create(ctx context.Context, item *models.ScheduleItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.CreatedAt = time.Now().UTC()
	s.items[item.ID] = *item
	return nil
}

// Update replaces the stored entry.
func (s *ScheduleStore) Update(ctx context.Context, item *models.ScheduleItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[item.ID]
	if !ok {
		return ErrNoRecord
	}
	item.CreatedAt = existing.CreatedAt
	s.items[item.ID] = *item
	return nil
}

// Delete removes the entry.
func (s *ScheduleStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNoRecord
	}
	delete(s.items, id)
	return nil
}

func matchSchedule(item models.ScheduleItem, filter models.ScheduleFilter) bool {
	if filter.From != "" && item.Date < filter.From {
		return false
	}
	if filter.To != "" && item.Date > filter.To {
		return false
	}
	if filter.Degree != "" && item.Degree != filter.Degree {
		return false
	}
	if filter.Type != "" && item.Type != filter.Type {
		return false
	}
	if filter.Batch != "" && item.Batch != filter.Batch {
		return false
	}
	return true
}
