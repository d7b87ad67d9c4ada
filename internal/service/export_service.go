package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/pkg/export"
	"github.com/edumanage/postgrad-api/pkg/storage"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Table, title string) ([]byte, error)
	RenderText(title, body string) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Token        string
	URL          string
	Format       models.ExportFormat
	ExpiresAt    time.Time
}

// ExportService renders export payloads and persists them with signed
// download tokens. Table contents come straight from the student store at
// generation time, so a queued job always exports current data.
type ExportService struct {
	students studentRepository
	classes  classLookup
	storage  fileStorage
	csv      csvRenderer
	pdf      pdfRenderer
	signer   *storage.DownloadSigner
	logger   *zap.Logger
	cfg      ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(students studentRepository, classes classLookup, store fileStorage, signer *storage.DownloadSigner, cfg ExportConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		students: students,
		classes:  classes,
		storage:  store,
		csv:      csv,
		pdf:      pdf,
		signer:   signer,
		logger:   logger,
		cfg:      cfg,
	}
}

// Generate renders the job's payload and stores the resulting file.
func (s *ExportService) Generate(ctx context.Context, job *models.ExportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}

	var payload []byte
	var err error
	switch job.Type {
	case models.ExportDraftPDF:
		payload, err = s.pdf.RenderText(job.Params.DocumentName, job.Params.Body)
	default:
		var table export.Table
		var title string
		table, title, err = s.buildTable(ctx, job)
		if err != nil {
			return nil, err
		}
		switch job.Params.Format {
		case models.FormatCSV:
			payload, err = s.csv.Render(table)
		case models.FormatPDF:
			payload, err = s.pdf.Render(table, title)
		default:
			err = fmt.Errorf("unsupported format %s", job.Params.Format)
		}
	}
	if err != nil {
		return nil, err
	}

	filename := s.buildFilename(job)
	relPath, err := s.storage.Save(filename, payload)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.signer.Sign(job.ID, relPath)
	if err != nil {
		return nil, err
	}
	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}

	return &ExportResult{
		RelativePath: relPath,
		Token:        token,
		URL:          fmt.Sprintf("%s/exports/download/%s", prefix, token),
		Format:       job.Params.Format,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error) {
	return s.signer.Verify(token, allowExpired)
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Delete removes a stored export file.
func (s *ExportService) Delete(relPath string) error {
	return s.storage.Delete(relPath)
}

// Cleanup removes stored files older than the TTL.
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) buildTable(ctx context.Context, job *models.ExportJob) (export.Table, string, error) {
	switch job.Type {
	case models.ExportStudentRoster:
		return s.rosterTable(ctx, job.Params)
	case models.ExportTuitionLedger:
		return s.tuitionTable(ctx, job.Params)
	default:
		return export.Table{}, "", fmt.Errorf("unsupported export type %s", job.Type)
	}
}

func (s *ExportService) rosterTable(ctx context.Context, params models.ExportJobParams) (export.Table, string, error) {
	students, err := s.selectStudents(ctx, params)
	if err != nil {
		return export.Table{}, "", err
	}
	table := export.Table{
		Headers: []string{"Mã học viên", "Họ tên", "Trình độ", "Chuyên ngành", "Khóa", "Lớp", "Giai đoạn hiện tại", "Email", "Điện thoại"},
	}
	for _, st := range students {
		stageName := ""
		if cur := st.CurrentStage(); cur != nil {
			stageName = cur.Name
		}
		className := st.ClassID
		if st.ClassID != "" && s.classes != nil {
			if class, err := s.classes.FindByID(ctx, st.ClassID); err == nil {
				className = class.Name
			}
		}
		table.Rows = append(table.Rows, []string{
			st.StudentCode,
			st.FullName,
			st.Degree.DisplayName(),
			st.Major,
			st.Batch,
			className,
			stageName,
			st.Email,
			st.Phone,
		})
	}
	return table, "Danh sách học viên", nil
}

func (s *ExportService) tuitionTable(ctx context.Context, params models.ExportJobParams) (export.Table, string, error) {
	students, err := s.selectStudents(ctx, params)
	if err != nil {
		return export.Table{}, "", err
	}
	table := export.Table{
		Headers: []string{"Mã học viên", "Họ tên", "Khoản thu", "Số tiền", "Hạn nộp", "Trạng thái", "Ngày nộp"},
	}
	for _, st := range students {
		for _, t := range st.TuitionRecords {
			table.Rows = append(table.Rows, []string{
				st.StudentCode,
				st.FullName,
				t.Title,
				strconv.FormatInt(t.Amount, 10),
				t.DueDate,
				string(t.Status),
				t.PaymentDate,
			})
		}
	}
	return table, "Sổ theo dõi học phí", nil
}

func (s *ExportService) selectStudents(ctx context.Context, params models.ExportJobParams) ([]models.Student, error) {
	if params.StudentID != "" {
		st, err := s.students.FindByID(ctx, params.StudentID)
		if err != nil {
			return nil, err
		}
		return []models.Student{*st}, nil
	}
	all, err := s.students.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Student, 0, len(all))
	for _, st := range all {
		if params.Degree != "" && st.Degree != params.Degree {
			continue
		}
		if params.ClassID != "" && st.ClassID != params.ClassID {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func (s *ExportService) buildFilename(job *models.ExportJob) string {
	ext := string(job.Params.Format)
	if job.Type == models.ExportDraftPDF {
		ext = "pdf"
	}
	return fmt.Sprintf("%s_%s.%s", strings.ToLower(string(job.Type)), job.ID, ext)
}
