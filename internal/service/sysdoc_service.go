package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
)

type systemDocumentRepository interface {
	List(ctx context.Context, filter models.SystemDocumentFilter) ([]models.SystemDocument, error)
	FindByID(ctx context.Context, id string) (*models.SystemDocument, error)
	FindByDocumentID(ctx context.Context, degree models.DegreeTrack, documentID string) (*models.SystemDocument, error)
	Create(ctx context.Context, doc *models.SystemDocument) error
	Update(ctx context.Context, doc *models.SystemDocument) error
	Delete(ctx context.Context, id string) error
}

type studentResolver interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// SystemDocumentService manages the administrator's library of blank forms,
// decision templates, and regulations.
type SystemDocumentService struct {
	repo      systemDocumentRepository
	students  studentResolver
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// SystemDocumentServiceParams bundles SystemDocumentService dependencies.
type SystemDocumentServiceParams struct {
	Repo      systemDocumentRepository
	Students  studentResolver
	Validator *validator.Validate
	Logger    *zap.Logger
	Now       func() time.Time
}

// NewSystemDocumentService constructs SystemDocumentService.
func NewSystemDocumentService(params SystemDocumentServiceParams) *SystemDocumentService {
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &SystemDocumentService{repo: params.Repo, students: params.Students, validator: params.Validator, logger: params.Logger, now: params.Now}
}

// List returns library entries matching the filter.
func (s *SystemDocumentService) List(ctx context.Context, query dto.SystemDocumentQuery) ([]models.SystemDocument, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid library query")
	}
	docs, err := s.repo.List(ctx, models.SystemDocumentFilter{
		Search:  query.Search,
		Type:    models.SystemDocType(query.Type),
		Degree:  models.DegreeTrack(query.Degree),
		StageID: query.StageID,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list library")
	}
	return docs, nil
}

// Get returns one library entry.
func (s *SystemDocumentService) Get(ctx context.Context, id string) (*models.SystemDocument, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "library entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load library entry")
	}
	return doc, nil
}

// ResolveTemplate finds the blank form linked to a stage-template document
// requirement through its explicit document ID.
func (s *SystemDocumentService) ResolveTemplate(ctx context.Context, degree models.DegreeTrack, documentID string) (*models.SystemDocument, error) {
	if !degree.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown degree track")
	}
	doc, err := s.repo.FindByDocumentID(ctx, degree, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no form linked to document")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve form")
	}
	return doc, nil
}

// ResolveForStudent resolves the blank form behind one requirement on a
// student's checklist. The explicit document ID link wins; when no entry
// carries the link, the lookup falls back to TEMPLATE entries scoped to the
// student's track and the stage holding the requirement.
func (s *SystemDocumentService) ResolveForStudent(ctx context.Context, studentID, documentID string) (*models.SystemDocument, error) {
	if s.students == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "student resolution not configured")
	}
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	stageID := 0
	for _, stage := range student.Stages {
		for _, doc := range stage.Documents {
			if doc.ID == documentID {
				stageID = stage.ID
				break
			}
		}
	}
	if stageID == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "document not on student checklist")
	}

	doc, err := s.repo.FindByDocumentID(ctx, student.Degree, documentID)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, repository.ErrNoRecord) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve form")
	}

	candidates, err := s.repo.List(ctx, models.SystemDocumentFilter{
		Type:    models.SysDocTemplate,
		Degree:  student.Degree,
		StageID: stageID,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve form")
	}
	if len(candidates) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no form available for document")
	}
	return &candidates[0], nil
}

// Create adds a library entry.
func (s *SystemDocumentService) Create(ctx context.Context, req dto.CreateSystemDocumentRequest) (*models.SystemDocument, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid library payload")
	}
	doc := &models.SystemDocument{
		ID:          uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		Type:        models.SystemDocType(req.Type),
		Degree:      models.DegreeTrack(req.Degree),
		StageID:     req.StageID,
		DocumentID:  req.DocumentID,
		Description: req.Description,
		DownloadURL: req.DownloadURL,
		LastUpdated: s.now().Format("2006-01-02"),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create library entry")
	}
	return doc, nil
}

// Update edits a library entry and refreshes its last-updated date.
func (s *SystemDocumentService) Update(ctx context.Context, id string, req dto.UpdateSystemDocumentRequest) (*models.SystemDocument, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid library payload")
	}
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Code != nil {
		doc.Code = *req.Code
	}
	if req.Name != nil {
		doc.Name = *req.Name
	}
	if req.Type != nil {
		doc.Type = models.SystemDocType(*req.Type)
	}
	if req.StageID != nil {
		doc.StageID = *req.StageID
	}
	if req.DocumentID != nil {
		doc.DocumentID = *req.DocumentID
	}
	if req.Description != nil {
		doc.Description = *req.Description
	}
	if req.DownloadURL != nil {
		doc.DownloadURL = *req.DownloadURL
	}
	doc.LastUpdated = s.now().Format("2006-01-02")
	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update library entry")
	}
	return doc, nil
}

// Delete removes a library entry.
func (s *SystemDocumentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return appErrors.Clone(appErrors.ErrNotFound, "library entry not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete library entry")
	}
	return nil
}
