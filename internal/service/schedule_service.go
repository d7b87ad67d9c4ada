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

type scheduleRepository interface {
	List(ctx context.Context, filter models.ScheduleFilter) ([]models.ScheduleItem, error)
	FindByID(ctx context.Context, id string) (*models.ScheduleItem, error)
	Create(ctx context.Context, item *models.ScheduleItem) error
	Update(ctx context.Context, item *models.ScheduleItem) error
	Delete(ctx context.Context, id string) error
}

// ScheduleService manages the teaching, exam, and defense calendar.
type ScheduleService struct {
	repo      scheduleRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// ScheduleServiceParams bundles ScheduleService dependencies.
type ScheduleServiceParams struct {
	Repo      scheduleRepository
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewScheduleService constructs ScheduleService.
func NewScheduleService(params ScheduleServiceParams) *ScheduleService {
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	return &ScheduleService{repo: params.Repo, validator: params.Validator, logger: params.Logger}
}

// List returns calendar entries matching the filter, ordered by date and time.
func (s *ScheduleService) List(ctx context.Context, query dto.ScheduleQuery) ([]models.ScheduleItem, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule query")
	}
	items, err := s.repo.List(ctx, models.ScheduleFilter{
		From:   query.From,
		To:     query.To,
		Degree: models.DegreeTrack(query.Degree),
		Type:   models.ScheduleType(query.Type),
		Batch:  query.Batch,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}
	return items, nil
}

// Create adds a calendar entry.
func (s *ScheduleService) Create(ctx context.Context, req dto.CreateScheduleRequest) (*models.ScheduleItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}
	item := &models.ScheduleItem{
		ID:       uuid.NewString(),
		Subject:  req.Subject,
		Lecturer: req.Lecturer,
		Date:     req.Date,
		Time:     req.Time,
		Room:     req.Room,
		Batch:    req.Batch,
		Degree:   models.DegreeTrack(req.Degree),
		Type:     models.ScheduleType(req.Type),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create schedule entry")
	}
	return item, nil
}

// Update edits a calendar entry in place.
func (s *ScheduleService) Update(ctx context.Context, id string, req dto.UpdateScheduleRequest) (*models.ScheduleItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule entry")
	}
	if req.Subject != nil {
		item.Subject = *req.Subject
	}
	if req.Lecturer != nil {
		item.Lecturer = *req.Lecturer
	}
	if req.Date != nil {
		item.Date = *req.Date
	}
	if req.Time != nil {
		item.Time = *req.Time
	}
	if req.Room != nil {
		item.Room = *req.Room
	}
	if req.Batch != nil {
		item.Batch = *req.Batch
	}
	if req.Type != nil {
		item.Type = models.ScheduleType(*req.Type)
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update schedule entry")
	}
	return item, nil
}

// Delete removes a calendar entry.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return appErrors.Clone(appErrors.ErrNotFound, "schedule entry not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete schedule entry")
	}
	return nil
}
