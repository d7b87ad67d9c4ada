package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
)

type textGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type studentGetter interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// Fallback strings returned when the generator fails. The drafting endpoints
// never surface a collaborator failure as an error; the administrator sees the
// fallback text and decides what to do.
const (
	draftEmptyFallback    = "Không thể tạo nội dung văn bản."
	draftErrorFallback    = "Đã xảy ra lỗi khi kết nối với AI. Vui lòng kiểm tra API Key."
	analysisEmptyFallback = "Không thể phân tích dữ liệu."
	analysisErrorFallback = "Lỗi phân tích AI."
)

// DraftService produces AI-assisted administrative document drafts and short
// progress assessments for individual students.
type DraftService struct {
	generator textGenerator
	students  studentGetter
	validator *validator.Validate
	logger    *zap.Logger
}

// DraftServiceParams bundles DraftService dependencies.
type DraftServiceParams struct {
	Generator textGenerator
	Students  studentGetter
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewDraftService constructs DraftService.
func NewDraftService(params DraftServiceParams) *DraftService {
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	return &DraftService{
		generator: params.Generator,
		students:  params.Students,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// GenerateDocument drafts a formal Vietnamese administrative document for the
// student. Generator failures fall back to a fixed message instead of an error.
func (s *DraftService) GenerateDocument(ctx context.Context, req dto.GenerateDraftRequest) (*dto.GenerateDraftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid draft payload")
	}
	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	prompt := buildDocumentPrompt(student, req.DocumentName, req.Context)
	content, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("document draft generation failed",
			zap.String("student_id", student.ID),
			zap.Error(err))
		content = draftErrorFallback
	} else if strings.TrimSpace(content) == "" {
		content = draftEmptyFallback
	}

	return &dto.GenerateDraftResponse{
		DocumentName: req.DocumentName,
		StudentID:    student.ID,
		Content:      content,
	}, nil
}

// AnalyzeProgress returns a short assessment of a student's standing with a
// suggested next action for the administrator.
func (s *DraftService) AnalyzeProgress(ctx context.Context, req dto.AnalyzeProgressRequest) (*dto.AnalyzeProgressResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid analysis payload")
	}
	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	analysis, err := s.generator.GenerateContent(ctx, buildAnalysisPrompt(student))
	if err != nil {
		s.logger.Warn("progress analysis failed",
			zap.String("student_id", student.ID),
			zap.Error(err))
		analysis = analysisErrorFallback
	} else if strings.TrimSpace(analysis) == "" {
		analysis = analysisEmptyFallback
	}

	return &dto.AnalyzeProgressResponse{StudentID: student.ID, Analysis: analysis}, nil
}

func buildDocumentPrompt(student *models.Student, documentName, extra string) string {
	var b strings.Builder
	b.WriteString("Bạn là một trợ lý hành chính học vụ chuyên nghiệp tại một trường đại học lớn ở Việt Nam.\n")
	b.WriteString("Nhiệm vụ của bạn là soạn thảo nội dung văn bản hành chính (Quyết định, Tờ trình, hoặc Thông báo).\n\n")
	b.WriteString("Thông tin học viên:\n")
	fmt.Fprintf(&b, "- Họ tên: %s\n", student.FullName)
	fmt.Fprintf(&b, "- Mã học viên: %s\n", student.StudentCode)
	fmt.Fprintf(&b, "- Trình độ: %s\n", student.Degree.DisplayName())
	fmt.Fprintf(&b, "- Chuyên ngành: %s\n", student.Major)
	fmt.Fprintf(&b, "- Khóa: %s\n\n", student.Batch)
	b.WriteString("Yêu cầu văn bản:\n")
	fmt.Fprintf(&b, "- Loại văn bản cần soạn: %q\n", documentName)
	fmt.Fprintf(&b, "- Ngữ cảnh bổ sung: %s\n\n", extra)
	b.WriteString("Hãy tạo ra nội dung văn bản đầy đủ, trang trọng, đúng chuẩn thể thức văn bản hành chính Việt Nam (có Quốc hiệu, Tiêu ngữ, Kính gửi, Căn cứ pháp lý giả định phù hợp).\n")
	b.WriteString("Chỉ trả về nội dung văn bản, không cần lời dẫn. Sử dụng định dạng Markdown.")
	return b.String()
}

func buildAnalysisPrompt(student *models.Student) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dựa vào dữ liệu sau đây về tiến độ học tập của học viên %s, hãy đưa ra một đánh giá ngắn gọn (dưới 100 từ) về tình trạng hiện tại và lời khuyên hành động tiếp theo cho người quản lý.\n", student.FullName)
	b.WriteString("Dữ liệu:\n")
	for _, stage := range student.Stages {
		state := "Chưa đến"
		if stage.IsCompleted {
			state = "Đã xong"
		} else if stage.IsCurrent {
			state = "Đang thực hiện"
		}
		missing := make([]string, 0)
		for _, d := range stage.Documents {
			if d.Status == models.DocMissing {
				missing = append(missing, d.Name)
			}
		}
		fmt.Fprintf(&b, "- Giai đoạn: %s (%s). Hồ sơ thiếu: %s\n", stage.Name, state, strings.Join(missing, ", "))
	}
	return b.String()
}
