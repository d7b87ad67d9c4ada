package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
)

type generatorStub struct {
	reply  string
	err    error
	prompt string
}

func (g *generatorStub) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}

func newDraftFixture(t *testing.T, gen *generatorStub) (*DraftService, *models.Student) {
	t.Helper()
	students := repository.NewStudentStore()
	st := &models.Student{
		FullName:    "Vũ Thị Hà",
		StudentCode: "PHD20251010",
		Degree:      models.DegreePhD,
		Major:       "Hóa học",
		Batch:       "2025",
		Stages: []models.TrainingStage{
			{
				ID: 1, Name: "Xét tuyển NCS", IsCompleted: true,
				Documents: []models.DocumentItem{{ID: "p1-1", Name: "Đề cương", Status: models.DocApproved}},
			},
			{
				ID: 2, Name: "Học tập", IsCurrent: true,
				Documents: []models.DocumentItem{{ID: "p2-1", Name: "Chứng chỉ học phần", Status: models.DocMissing}},
			},
		},
	}
	require.NoError(t, students.Create(context.Background(), st))
	return NewDraftService(DraftServiceParams{Generator: gen, Students: students}), st
}

func TestGenerateDocumentUsesStudentContext(t *testing.T) {
	gen := &generatorStub{reply: "# QUYẾT ĐỊNH\nNội dung văn bản."}
	svc, st := newDraftFixture(t, gen)

	resp, err := svc.GenerateDocument(context.Background(), dto.GenerateDraftRequest{
		DocumentName: "Quyết định công nhận NCS",
		StudentID:    st.ID,
		Context:      "Ngày quyết định là 15/10/2026",
	})
	require.NoError(t, err)
	assert.Equal(t, "# QUYẾT ĐỊNH\nNội dung văn bản.", resp.Content)

	assert.Contains(t, gen.prompt, "Vũ Thị Hà")
	assert.Contains(t, gen.prompt, "PHD20251010")
	assert.Contains(t, gen.prompt, "Tiến sĩ")
	assert.Contains(t, gen.prompt, "Quyết định công nhận NCS")
	assert.Contains(t, gen.prompt, "Ngày quyết định là 15/10/2026")
}

func TestGenerateDocumentFallsBackOnGeneratorFailure(t *testing.T) {
	gen := &generatorStub{err: errors.New("upstream unavailable")}
	svc, st := newDraftFixture(t, gen)

	resp, err := svc.GenerateDocument(context.Background(), dto.GenerateDraftRequest{
		DocumentName: "Thông báo",
		StudentID:    st.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Đã xảy ra lỗi khi kết nối với AI. Vui lòng kiểm tra API Key.", resp.Content)
}

func TestGenerateDocumentFallsBackOnEmptyReply(t *testing.T) {
	gen := &generatorStub{reply: "   "}
	svc, st := newDraftFixture(t, gen)

	resp, err := svc.GenerateDocument(context.Background(), dto.GenerateDraftRequest{
		DocumentName: "Thông báo",
		StudentID:    st.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Không thể tạo nội dung văn bản.", resp.Content)
}

func TestGenerateDocumentUnknownStudent(t *testing.T) {
	svc, _ := newDraftFixture(t, &generatorStub{reply: "x"})
	_, err := svc.GenerateDocument(context.Background(), dto.GenerateDraftRequest{
		DocumentName: "Thông báo",
		StudentID:    "missing",
	})
	assert.Error(t, err)
}

func TestAnalyzeProgressSummarisesStages(t *testing.T) {
	gen := &generatorStub{reply: "Học viên đang đúng tiến độ."}
	svc, st := newDraftFixture(t, gen)

	resp, err := svc.AnalyzeProgress(context.Background(), dto.AnalyzeProgressRequest{StudentID: st.ID})
	require.NoError(t, err)
	assert.Equal(t, "Học viên đang đúng tiến độ.", resp.Analysis)

	assert.Contains(t, gen.prompt, "Xét tuyển NCS")
	assert.Contains(t, gen.prompt, "Đã xong")
	assert.Contains(t, gen.prompt, "Đang thực hiện")
	assert.Contains(t, gen.prompt, "Chứng chỉ học phần")
}

func TestAnalyzeProgressFallsBackOnFailure(t *testing.T) {
	gen := &generatorStub{err: errors.New("timeout")}
	svc, st := newDraftFixture(t, gen)

	resp, err := svc.AnalyzeProgress(context.Background(), dto.AnalyzeProgressRequest{StudentID: st.ID})
	require.NoError(t, err)
	assert.Equal(t, "Lỗi phân tích AI.", resp.Analysis)
}
