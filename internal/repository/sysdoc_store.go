package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edumanage/postgrad-api/internal/models"
)

// SystemDocumentStore holds the document library in memory, newest first.
type SystemDocumentStore struct {
	mu    sync.RWMutex
	docs  map[string]models.SystemDocument
	order []string
}

// NewSystemDocumentStore constructs an empty store.
func NewSystemDocumentStore() *SystemDocumentStore {
	return &SystemDocumentStore{docs: make(map[string]models.SystemDocument)}
}

// List returns library entries matching the filter.
func (s *SystemDocumentStore) List(ctx context.Context, filter models.SystemDocumentFilter) ([]models.SystemDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.SystemDocument, 0, len(s.order))
	for _, id := range s.order {
		doc := s.docs[id]
		if !matchSystemDocument(doc, filter) {
			continue
		}
		matched = append(matched, doc)
	}
	return matched, nil
}

// FindByID returns the entry or ErrNoRecord.
func (s *SystemDocumentStore) FindByID(ctx context.Context, id string) (*models.SystemDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &doc, nil
}

// FindByDocumentID resolves the library entry explicitly linked to a stage
// document requirement for the given track.
func (s *SystemDocumentStore) FindByDocumentID(ctx context.Context, degree models.DegreeTrack, documentID string) (*models.SystemDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		doc := s.docs[id]
		if doc.Degree == degree && doc.DocumentID != "" && doc.DocumentID == documentID {
			return &doc, nil
		}
	}
	return nil, ErrNoRecord
}

// Create inserts the entry, assigning an ID when absent.
func (s *SystemDocumentStore) Create(ctx context.Context, doc *models.SystemDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	doc.CreatedAt = time.Now().UTC()
	s.docs[doc.ID] = *doc
	s.order = append([]string{doc.ID}, s.order...)
	return nil
}

// Update replaces the stored entry.
func (s *SystemDocumentStore) Update(ctx context.Context, doc *models.SystemDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.docs[doc.ID]
	if !ok {
		return ErrNoRecord
	}
	doc.CreatedAt = existing.CreatedAt
	s.docs[doc.ID] = *doc
	return nil
}

// Delete removes the entry.
func (s *SystemDocumentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return ErrNoRecord
	}
	delete(s.docs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func matchSystemDocument(doc models.SystemDocument, filter models.SystemDocumentFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(doc.Name), needle) &&
			!strings.Contains(strings.ToLower(doc.Code), needle) {
			return false
		}
	}
	if filter.Type != "" && doc.Type != filter.Type {
		return false
	}
	if filter.Degree != "" && doc.Degree != filter.Degree {
		return false
	}
	if filter.StageID != 0 && doc.StageID != filter.StageID {
		return false
	}
	return true
}
