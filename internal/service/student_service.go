package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error)
	All(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	ExistsByCode(ctx context.Context, code, excludeID string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

type templateReader interface {
	Get(ctx context.Context, track models.DegreeTrack) ([]models.TrainingStage, error)
}

type classLookup interface {
	FindByID(ctx context.Context, id string) (*models.ClassInfo, error)
}

// StudentService manages student profiles and the per-student checklist
// state: document statuses, uploaded files, stage progression, and tuition.
type StudentService struct {
	repo      studentRepository
	templates templateReader
	classes   classLookup
	stats     statsInvalidator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// StudentServiceParams bundles StudentService dependencies.
type StudentServiceParams struct {
	Repo      studentRepository
	Templates templateReader
	Classes   classLookup
	Stats     statsInvalidator
	Validator *validator.Validate
	Logger    *zap.Logger
	Now       func() time.Time
}

// NewStudentService constructs StudentService.
func NewStudentService(params StudentServiceParams) *StudentService {
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &StudentService{
		repo:      params.Repo,
		templates: params.Templates,
		classes:   params.Classes,
		stats:     params.Stats,
		validator: params.Validator,
		logger:    params.Logger,
		now:       params.Now,
	}
}

// invalidateStats drops the cached dashboard overview after a write.
func (s *StudentService) invalidateStats(ctx context.Context) {
	if s.stats != nil {
		s.stats.InvalidateCache(ctx)
	}
}

// List returns students with pagination metadata.
func (s *StudentService) List(ctx context.Context, query dto.StudentQuery) ([]models.Student, *models.Pagination, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student query")
	}
	filter := models.StudentFilter{
		Search:   query.Search,
		Degree:   models.DegreeTrack(query.Degree),
		ClassID:  query.ClassID,
		Batch:    query.Batch,
		StageID:  query.Stage,
		Page:     query.Page,
		PageSize: query.Size,
	}
	students, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	return students, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Get returns one student profile.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create enrolls a new student. The stage checklist is a deep copy of the
// current track template with the first stage marked current, so later edits
// to the template never leak backwards into this student without an explicit
// template save.
func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if req.ClassID != "" {
		class, err := s.classes.FindByID(ctx, req.ClassID)
		if err != nil {
			if errors.Is(err, repository.ErrNoRecord) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
		}
		if class.Degree != req.Degree {
			return nil, appErrors.Clone(appErrors.ErrConflict, "class belongs to a different degree track")
		}
	}

	stages, err := s.templates.Get(ctx, req.Degree)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "no stage template configured for track")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load template")
	}
	if len(stages) > 0 {
		stages[0].IsCurrent = true
	}

	code, err := s.generateStudentCode(ctx, req.Degree)
	if err != nil {
		return nil, err
	}

	now := s.now()
	enrollment := req.EnrollmentDate
	if enrollment == "" {
		enrollment = now.Format("2006-01-02")
	}
	avatar := req.AvatarURL
	if avatar == "" {
		avatar = fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random&color=fff", url.QueryEscape(req.FullName))
	}

	student := &models.Student{
		ID:             uuid.NewString(),
		FullName:       req.FullName,
		DOB:            req.DOB,
		Email:          req.Email,
		Phone:          req.Phone,
		Degree:         req.Degree,
		Major:          req.Major,
		ClassID:        req.ClassID,
		Batch:          req.Batch,
		StudentCode:    code,
		EnrollmentDate: enrollment,
		AvatarURL:      avatar,
		CurrentStageID: firstStageID(stages),
		Stages:         stages,
		Notes:          req.Notes,
		TuitionRecords: []models.TuitionRecord{},
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	s.logger.Info("student enrolled",
		zap.String("student_id", student.ID),
		zap.String("degree", string(student.Degree)),
		zap.String("code", student.StudentCode))
	s.invalidateStats(ctx)
	return student, nil
}

// Update edits the mutable profile fields. The degree track is fixed at
// enrollment because the stage checklist belongs to it.
func (s *StudentService) Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ClassID != nil && *req.ClassID != "" {
		class, err := s.classes.FindByID(ctx, *req.ClassID)
		if err != nil {
			if errors.Is(err, repository.ErrNoRecord) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
		}
		if class.Degree != student.Degree {
			return nil, appErrors.Clone(appErrors.ErrConflict, "class belongs to a different degree track")
		}
	}

	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.DOB != nil {
		student.DOB = *req.DOB
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Major != nil {
		student.Major = *req.Major
	}
	if req.ClassID != nil {
		student.ClassID = *req.ClassID
	}
	if req.Batch != nil {
		student.Batch = *req.Batch
	}
	if req.AvatarURL != nil {
		student.AvatarURL = *req.AvatarURL
	}
	if req.Notes != nil {
		student.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	s.invalidateStats(ctx)
	return student, nil
}

// Delete removes a student and all owned records.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	s.invalidateStats(ctx)
	return nil
}

// UpdateDocumentStatus sets the review status of one document on a student's
// checklist and stamps the change date.
func (s *StudentService) UpdateDocumentStatus(ctx context.Context, id string, stageID int, documentID string, req dto.UpdateDocumentStatusRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}
	return s.mutateDocument(ctx, id, stageID, documentID, func(doc *models.DocumentItem) {
		doc.Status = req.Status
		doc.DateUpdated = s.now().Format("2006-01-02")
	})
}

// AttachDocumentFile records an uploaded file on a document and moves it to
// PENDING review when it was still MISSING.
func (s *StudentService) AttachDocumentFile(ctx context.Context, id string, stageID int, documentID string, req dto.AttachDocumentFileRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid file payload")
	}
	return s.mutateDocument(ctx, id, stageID, documentID, func(doc *models.DocumentItem) {
		doc.FileURL = req.FileURL
		if doc.Status == models.DocMissing {
			doc.Status = models.DocPending
		}
		doc.DateUpdated = s.now().Format("2006-01-02")
	})
}

// AdvanceStage marks the current stage completed and makes the target stage
// current. The target must exist on the student's own checklist.
func (s *StudentService) AdvanceStage(ctx context.Context, id string, req dto.AdvanceStageRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid stage payload")
	}
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	target := -1
	for i := range student.Stages {
		if student.Stages[i].ID == req.StageID {
			target = i
			break
		}
	}
	if target == -1 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "stage not found on student")
	}

	for i := range student.Stages {
		if student.Stages[i].ID == student.CurrentStageID {
			student.Stages[i].IsCompleted = true
		}
		student.Stages[i].IsCurrent = false
	}
	student.Stages[target].IsCurrent = true
	student.CurrentStageID = req.StageID

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	s.invalidateStats(ctx)
	return student, nil
}

// AddTuition appends a billed installment to a student.
func (s *StudentService) AddTuition(ctx context.Context, id string, req dto.CreateTuitionRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid tuition payload")
	}
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.TuitionUnpaid
	}
	record := models.TuitionRecord{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Amount:    req.Amount,
		DueDate:   req.DueDate,
		Status:    status,
		TermIndex: req.TermIndex,
	}
	student.TuitionRecords = append(student.TuitionRecords, record)
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	s.invalidateStats(ctx)
	return student, nil
}

// UpdateTuition edits one installment in place.
func (s *StudentService) UpdateTuition(ctx context.Context, id, tuitionID string, req dto.UpdateTuitionRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid tuition payload")
	}
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range student.TuitionRecords {
		if student.TuitionRecords[i].ID != tuitionID {
			continue
		}
		rec := &student.TuitionRecords[i]
		if req.Title != nil {
			rec.Title = *req.Title
		}
		if req.Amount != nil {
			rec.Amount = *req.Amount
		}
		if req.DueDate != nil {
			rec.DueDate = *req.DueDate
		}
		if req.Status != nil {
			rec.Status = *req.Status
			if *req.Status == models.TuitionPaid && rec.PaymentDate == "" {
				rec.PaymentDate = s.now().Format("2006-01-02")
			}
		}
		if req.PaymentDate != nil {
			rec.PaymentDate = *req.PaymentDate
		}
		found = true
		break
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "tuition record not found")
	}
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	s.invalidateStats(ctx)
	return student, nil
}

// DeleteTuition removes one installment.
func (s *StudentService) DeleteTuition(ctx context.Context, id, tuitionID string) (*models.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range student.TuitionRecords {
		if student.TuitionRecords[i].ID == tuitionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "tuition record not found")
	}
	student.TuitionRecords = append(student.TuitionRecords[:idx], student.TuitionRecords[idx+1:]...)
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	s.invalidateStats(ctx)
	return student, nil
}

func (s *StudentService) mutateDocument(ctx context.Context, id string, stageID int, documentID string, mutate func(*models.DocumentItem)) (*models.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range student.Stages {
		if student.Stages[i].ID != stageID {
			continue
		}
		for j := range student.Stages[i].Documents {
			if student.Stages[i].Documents[j].ID != documentID {
				continue
			}
			mutate(&student.Stages[i].Documents[j])
			if err := s.repo.Update(ctx, student); err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
			}
			s.invalidateStats(ctx)
			return student, nil
		}
		return nil, appErrors.Clone(appErrors.ErrNotFound, "document not found in stage")
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "stage not found on student")
}

// generateStudentCode builds a code like MCS20261234 and retries on the rare
// collision with an existing record.
func (s *StudentService) generateStudentCode(ctx context.Context, degree models.DegreeTrack) (string, error) {
	prefix := "MCS"
	if degree == models.DegreePhD {
		prefix = "PHD"
	}
	year := s.now().Year()
	for attempt := 0; attempt < 10; attempt++ {
		code := fmt.Sprintf("%s%d%04d", prefix, year, 1000+rand.Intn(9000))
		taken, err := s.repo.ExistsByCode(ctx, code, "")
		if err != nil {
			return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check student code")
		}
		if !taken {
			return code, nil
		}
	}
	return "", appErrors.Clone(appErrors.ErrConflict, "could not allocate a unique student code")
}

func firstStageID(stages []models.TrainingStage) int {
	if len(stages) == 0 {
		return 0
	}
	return stages[0].ID
}
