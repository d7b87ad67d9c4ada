package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
)

type templateRepository interface {
	Get(ctx context.Context, track models.DegreeTrack) ([]models.TrainingStage, error)
	Set(ctx context.Context, track models.DegreeTrack, stages []models.TrainingStage) error
}

type studentReconciler interface {
	UpdateAllOfDegree(ctx context.Context, degree models.DegreeTrack, fn func(models.Student) models.Student) error
	All(ctx context.Context) ([]models.Student, error)
}

// TemplateService owns the per-track stage templates and reconciles every
// existing student of a track when its template is replaced.
type TemplateService struct {
	templates templateRepository
	students  studentReconciler
	stats     statsInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// TemplateServiceParams bundles TemplateService dependencies.
type TemplateServiceParams struct {
	Templates templateRepository
	Students  studentReconciler
	Stats     statsInvalidator
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewTemplateService constructs TemplateService.
func NewTemplateService(params TemplateServiceParams) *TemplateService {
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	return &TemplateService{
		templates: params.Templates,
		students:  params.Students,
		stats:     params.Stats,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// Get returns the stage template of one track.
func (s *TemplateService) Get(ctx context.Context, track models.DegreeTrack) ([]models.TrainingStage, error) {
	if !track.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown degree track")
	}
	stages, err := s.templates.Get(ctx, track)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "template not found for track")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load template")
	}
	return stages, nil
}

// Save validates and stores the new template of one track, then rewrites the
// stage list of every student on that track against it. Students of the other
// track are untouched. Returns a summary of what the reconciliation changed.
func (s *TemplateService) Save(ctx context.Context, track models.DegreeTrack, req dto.SaveTemplateRequest) (*dto.SaveTemplateResponse, error) {
	if !track.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown degree track")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid template payload")
	}

	stages := normalizeTemplate(req.Stages)
	if err := validateTemplate(stages); err != nil {
		return nil, err
	}

	if err := s.templates.Set(ctx, track, stages); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store template")
	}

	var updated, dropped, added int
	err := s.students.UpdateAllOfDegree(ctx, track, func(st models.Student) models.Student {
		merged, stats := mergeStages(stages, st.Stages)
		st.Stages = merged
		updated++
		dropped += stats.dropped
		added += stats.added
		return st
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reconcile students")
	}

	s.logger.Info("stage template replaced",
		zap.String("degree", string(track)),
		zap.Int("stages", len(stages)),
		zap.Int("students_updated", updated))

	if s.stats != nil {
		s.stats.InvalidateCache(ctx)
	}

	return &dto.SaveTemplateResponse{
		Degree:           string(track),
		StagesSaved:      len(stages),
		StudentsUpdated:  updated,
		DocumentsDropped: dropped,
		DocumentsAdded:   added,
	}, nil
}

// normalizeTemplate converts the request payload into stored template stages.
// Per-student state never survives into a template: every document starts
// MISSING with no file, and the stage progress flags are cleared.
func normalizeTemplate(in []dto.TemplateStageRequest) []models.TrainingStage {
	stages := make([]models.TrainingStage, 0, len(in))
	for _, st := range in {
		stage := models.TrainingStage{
			ID:          st.ID,
			Name:        st.Name,
			Description: st.Description,
		}
		stage.Documents = make([]models.DocumentItem, 0, len(st.Documents))
		for _, d := range st.Documents {
			stage.Documents = append(stage.Documents, models.DocumentItem{
				ID:          d.ID,
				Name:        d.Name,
				Required:    d.Required,
				Status:      models.DocMissing,
				TemplateURL: d.TemplateURL,
			})
		}
		stages = append(stages, stage)
	}
	return stages
}

// validateTemplate enforces structural rules on a stage list: stage IDs must
// be unique and strictly ascending, and document IDs unique within a stage.
func validateTemplate(stages []models.TrainingStage) error {
	prev := 0
	for _, stage := range stages {
		if stage.ID <= prev {
			return appErrors.Clone(appErrors.ErrInvalidTemplate,
				fmt.Sprintf("stage ids must be unique and ascending, got %d after %d", stage.ID, prev))
		}
		prev = stage.ID

		seen := make(map[string]struct{}, len(stage.Documents))
		for _, doc := range stage.Documents {
			if _, dup := seen[doc.ID]; dup {
				return appErrors.Clone(appErrors.ErrInvalidTemplate,
					fmt.Sprintf("duplicate document id %q in stage %d", doc.ID, stage.ID))
			}
			seen[doc.ID] = struct{}{}
		}
	}
	return nil
}

type mergeStats struct {
	dropped int
	added   int
}

// mergeStages rebuilds a student's stage list from the new template. The
// template dictates which stages and documents exist plus their names,
// descriptions, required flags, template links, and ordering. The student's
// old list contributes only per-student state: stage completion and currency
// flags, and per-document status and uploaded file. Stages or documents absent
// from the template are dropped along with their state; template entries the
// student has never seen are adopted as-is, MISSING with no file.
func mergeStages(template, existing []models.TrainingStage) ([]models.TrainingStage, mergeStats) {
	var stats mergeStats

	byStageID := make(map[int]models.TrainingStage, len(existing))
	for _, st := range existing {
		byStageID[st.ID] = st
	}

	kept := make(map[int]struct{}, len(template))
	merged := make([]models.TrainingStage, 0, len(template))
	for _, tpl := range template {
		kept[tpl.ID] = struct{}{}
		stage := tpl.Clone()

		old, ok := byStageID[tpl.ID]
		if !ok {
			stats.added += len(stage.Documents)
			merged = append(merged, stage)
			continue
		}

		stage.IsCompleted = old.IsCompleted
		stage.IsCurrent = old.IsCurrent
		docs, docStats := mergeDocuments(tpl.Documents, old.Documents)
		stage.Documents = docs
		stats.dropped += docStats.dropped
		stats.added += docStats.added
		merged = append(merged, stage)
	}

	for _, old := range existing {
		if _, ok := kept[old.ID]; !ok {
			stats.dropped += len(old.Documents)
		}
	}
	return merged, stats
}

// mergeDocuments merges one stage's document list by stable document ID,
// keeping the student's status and uploaded file wherever the ID survives.
func mergeDocuments(template, existing []models.DocumentItem) ([]models.DocumentItem, mergeStats) {
	var stats mergeStats

	byID := make(map[string]models.DocumentItem, len(existing))
	for _, d := range existing {
		byID[d.ID] = d
	}

	kept := make(map[string]struct{}, len(template))
	merged := make([]models.DocumentItem, 0, len(template))
	for _, tpl := range template {
		kept[tpl.ID] = struct{}{}
		doc := tpl

		old, ok := byID[tpl.ID]
		if !ok {
			doc.Status = models.DocMissing
			doc.FileURL = ""
			stats.added++
			merged = append(merged, doc)
			continue
		}

		doc.Status = old.Status
		doc.FileURL = old.FileURL
		doc.DateUpdated = old.DateUpdated
		merged = append(merged, doc)
	}

	for _, old := range existing {
		if _, ok := kept[old.ID]; !ok {
			stats.dropped++
		}
	}
	return merged, stats
}
