package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
)

type classRepository interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.ClassInfo, int, error)
	FindByID(ctx context.Context, id string) (*models.ClassInfo, error)
	Create(ctx context.Context, class *models.ClassInfo) error
	Update(ctx context.Context, class *models.ClassInfo) error
	Delete(ctx context.Context, id string) error
}

type rosterCounter interface {
	CountByClass(ctx context.Context, classID string) (int, error)
	UnassignClass(ctx context.Context, classID string) error
}

// ClassService manages cohort classes. Roster sizes are always derived from
// the student collection, so they can never drift from the truth.
type ClassService struct {
	repo      classRepository
	students  rosterCounter
	stats     statsInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// ClassServiceParams bundles ClassService dependencies.
type ClassServiceParams struct {
	Repo      classRepository
	Students  rosterCounter
	Stats     statsInvalidator
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(params ClassServiceParams) *ClassService {
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	return &ClassService{
		repo:      params.Repo,
		students:  params.Students,
		stats:     params.Stats,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (s *ClassService) invalidateStats(ctx context.Context) {
	if s.stats != nil {
		s.stats.InvalidateCache(ctx)
	}
}

// List returns classes with computed roster sizes.
func (s *ClassService) List(ctx context.Context, query dto.ClassQuery) ([]models.ClassDetail, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class query")
	}
	classes, _, err := s.repo.List(ctx, models.ClassFilter{
		Search: query.Search,
		Degree: models.DegreeTrack(query.Degree),
		Batch:  query.Batch,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	details := make([]models.ClassDetail, 0, len(classes))
	for _, c := range classes {
		count, err := s.students.CountByClass(ctx, c.ID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count class roster")
		}
		details = append(details, models.ClassDetail{ClassInfo: c, TotalStudents: count})
	}
	return details, nil
}

// Get returns one class with its computed roster size.
func (s *ClassService) Get(ctx context.Context, id string) (*models.ClassDetail, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	count, err := s.students.CountByClass(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count class roster")
	}
	return &models.ClassDetail{ClassInfo: *class, TotalStudents: count}, nil
}

// Create opens a new class.
func (s *ClassService) Create(ctx context.Context, req dto.CreateClassRequest) (*models.ClassDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	advisor := req.Advisor
	if advisor == "" {
		advisor = "Chưa phân công"
	}
	class := &models.ClassInfo{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Degree:  models.DegreeTrack(req.Degree),
		Major:   req.Major,
		Batch:   req.Batch,
		Advisor: advisor,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	s.invalidateStats(ctx)
	return &models.ClassDetail{ClassInfo: *class}, nil
}

// Update edits the mutable class fields. The degree track stays fixed so the
// class can never contain students from both pipelines.
func (s *ClassService) Update(ctx context.Context, id string, req dto.UpdateClassRequest) (*models.ClassDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Major != nil {
		class.Major = *req.Major
	}
	if req.Batch != nil {
		class.Batch = *req.Batch
	}
	if req.Advisor != nil {
		class.Advisor = *req.Advisor
	}
	if err := s.repo.Update(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class")
	}
	s.invalidateStats(ctx)
	return s.Get(ctx, id)
}

// Delete removes a class and clears the affiliation on every member, so no
// student is left pointing at a class that no longer exists.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}
	if err := s.students.UnassignClass(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to unassign class members")
	}
	s.logger.Info("class deleted", zap.String("class_id", id))
	s.invalidateStats(ctx)
	return nil
}
