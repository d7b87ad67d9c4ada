package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edumanage/postgrad-api/internal/models"
)

// StudentStore holds the student collection in memory. Every value crossing
// the store boundary is deep-copied so callers can never alias the stage list
// of a stored student.
type StudentStore struct {
	mu       sync.RWMutex
	students map[string]models.Student
	order    []string
}

// NewStudentStore constructs an empty store.
func NewStudentStore() *StudentStore {
	return &StudentStore{students: make(map[string]models.Student)}
}

// List returns students matching the filter, newest first, plus the total count.
func (s *StudentStore) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Student, 0, len(s.order))
	for _, id := range s.order {
		st := s.students[id]
		if !matchStudent(st, filter) {
			continue
		}
		matched = append(matched, st.Clone())
	}
	total := len(matched)
	start, end := paginate(total, filter.Page, filter.PageSize)
	return matched[start:end], total, nil
}

// All returns a deep-copied snapshot of every student, newest first.
func (s *StudentStore) All(ctx context.Context) ([]models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Student, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.students[id].Clone())
	}
	return out, nil
}

// FindByID returns the student or ErrNoRecord.
func (s *StudentStore) FindByID(ctx context.Context, id string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[id]
	if !ok {
		return nil, ErrNoRecord
	}
	clone := st.Clone()
	return &clone, nil
}

// ExistsByCode reports whether a student code is already taken by another record.
func (s *StudentStore) ExistsByCode(ctx context.Context, code, excludeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if st.StudentCode == code && st.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// Create inserts the student, assigning an ID when absent.
func (s *StudentStore) Create(ctx context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now
	s.students[student.ID] = student.Clone()
	s.order = append([]string{student.ID}, s.order...)
	return nil
}

// Update replaces the stored student wholesale.
func (s *StudentStore) Update(ctx context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.students[student.ID]
	if !ok {
		return ErrNoRecord
	}
	student.CreatedAt = existing.CreatedAt
	student.UpdatedAt = time.Now().UTC()
	s.students[student.ID] = student.Clone()
	return nil
}

// Delete removes the student entirely.
func (s *StudentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return ErrNoRecord
	}
	delete(s.students, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// UpdateAllOfDegree applies fn to every student of the given track and swaps
// the collection in one critical section, so reconciliation is atomic from the
// caller's perspective.
func (s *StudentStore) UpdateAllOfDegree(ctx context.Context, degree models.DegreeTrack, fn func(models.Student) models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for id, st := range s.students {
		if st.Degree != degree {
			continue
		}
		updated := fn(st.Clone())
		updated.ID = st.ID
		updated.CreatedAt = st.CreatedAt
		updated.UpdatedAt = now
		s.students[id] = updated.Clone()
	}
	return nil
}

// UnassignClass clears the class affiliation on every member of the class.
func (s *StudentStore) UnassignClass(ctx context.Context, classID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for id, st := range s.students {
		if st.ClassID != classID {
			continue
		}
		st.ClassID = ""
		st.UpdatedAt = now
		s.students[id] = st
	}
	return nil
}

// CountByClass derives the roster size for a class from the collection.
func (s *StudentStore) CountByClass(ctx context.Context, classID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, st := range s.students {
		if st.ClassID == classID {
			count++
		}
	}
	return count, nil
}

func matchStudent(st models.Student, filter models.StudentFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(st.FullName), needle) &&
			!strings.Contains(strings.ToLower(st.StudentCode), needle) {
			return false
		}
	}
	if filter.ClassID != "" && st.ClassID != filter.ClassID {
		return false
	}
	if filter.Degree != "" && st.Degree != filter.Degree {
		return false
	}
	if filter.StageID != 0 && st.CurrentStageID != filter.StageID {
		return false
	}
	if filter.Batch != "" && st.Batch != filter.Batch {
		return false
	}
	return true
}
