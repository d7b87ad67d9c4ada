// Package seed loads the built-in stage templates and, optionally, a demo
// dataset. Templates always load because every student creation depends on
// them; the demo students, classes, schedules, and document library are gated
// behind configuration.
package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/repository"
)

// Stores bundles every store the seeder writes to.
type Stores struct {
	Templates *repository.TemplateStore
	Students  *repository.StudentStore
	Classes   *repository.ClassStore
	Schedules *repository.ScheduleStore
	SysDocs   *repository.SystemDocumentStore
}

// Templates installs the built-in stage templates for both tracks.
func Templates(ctx context.Context, store *repository.TemplateStore) error {
	if err := store.Set(ctx, models.DegreeMaster, masterStages()); err != nil {
		return err
	}
	return store.Set(ctx, models.DegreePhD, phdStages())
}

// DemoData loads sample classes, students, schedules, and library documents.
// It assumes Templates ran first.
func DemoData(ctx context.Context, stores Stores, logger *zap.Logger) error {
	for _, class := range demoClasses() {
		c := class
		if err := stores.Classes.Create(ctx, &c); err != nil {
			return err
		}
	}
	for _, student := range demoStudents() {
		st := student
		if err := stores.Students.Create(ctx, &st); err != nil {
			return err
		}
	}
	for _, item := range demoSchedules() {
		it := item
		if err := stores.Schedules.Create(ctx, &it); err != nil {
			return err
		}
	}
	for _, doc := range demoSystemDocuments() {
		d := doc
		if err := stores.SysDocs.Create(ctx, &d); err != nil {
			return err
		}
	}

	logger.Info("demo dataset loaded",
		zap.Int("classes", len(demoClasses())),
		zap.Int("students", len(demoStudents())),
	)
	return nil
}

func masterStages() []models.TrainingStage {
	return []models.TrainingStage{
		{
			ID:          1,
			Name:        "Tuyển sinh & Nhập học",
			Description: "Xét tuyển hồ sơ, ra quyết định trúng tuyển và biên chế lớp.",
			Documents: []models.DocumentItem{
				{ID: "m1-1", Name: "Quyết định công nhận trúng tuyển", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m1-2", Name: "Giấy báo nhập học", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m1-3", Name: "Sơ yếu lý lịch học viên", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m1-4", Name: "Quyết định biên chế lớp học", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
		{
			ID:          2,
			Name:        "Đào tạo Học phần & Ngoại ngữ",
			Description: "Hoàn thành chương trình học tập trung và điều kiện tiếng Anh.",
			Documents: []models.DocumentItem{
				{ID: "m2-1", Name: "Bảng điểm các học phần chung", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m2-2", Name: "Bảng điểm học phần cơ sở & chuyên ngành", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m2-3", Name: "Chứng chỉ Tiếng Anh (Đạt chuẩn đầu ra)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m2-4", Name: "Danh sách đủ điều kiện thi kết thúc học phần", Status: models.DocMissing, Required: false, TemplateURL: "#"},
			},
		},
		{
			ID:          3,
			Name:        "Phân công GVHD & Đề cương",
			Description: "Giao đề tài và ký hợp đồng hướng dẫn luận văn.",
			Documents: []models.DocumentItem{
				{ID: "m3-1", Name: "Phiếu đăng ký tên đề tài & GVHD", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m3-2", Name: "Quyết định phân công GVHD", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m3-3", Name: "Hợp đồng hướng dẫn khoa học", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m3-4", Name: "Đề cương chi tiết luận văn (Đã duyệt)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m3-5", Name: "Quyết định giao đề tài luận văn", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
		{
			ID:          4,
			Name:        "Bảo vệ Luận văn Tốt nghiệp",
			Description: "Tổ chức hội đồng chấm luận văn.",
			Documents: []models.DocumentItem{
				{ID: "m4-1", Name: "Đơn xin bảo vệ luận văn", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m4-2", Name: "Lý lịch khoa học (Cập nhật)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m4-3", Name: "Nhận xét của GVHD", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m4-4", Name: "Quyết định thành lập Hội đồng chấm luận văn", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m4-5", Name: "Biên bản họp Hội đồng", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m4-6", Name: "Quyết nghị của Hội đồng", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
		{
			ID:          5,
			Name:        "Sau bảo vệ & Cấp bằng",
			Description: "Hoàn tất thủ tục chỉnh sửa, nộp lưu chiểu và nhận bằng.",
			Documents: []models.DocumentItem{
				{ID: "m5-1", Name: "Bản giải trình chỉnh sửa sau bảo vệ", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m5-2", Name: "Giấy biên nhận nộp lưu chiểu Thư viện", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m5-3", Name: "Quyết định công nhận tốt nghiệp & Cấp bằng", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "m5-4", Name: "Sổ cấp bằng (Ký nhận)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
	}
}

func phdStages() []models.TrainingStage {
	return []models.TrainingStage{
		{
			ID:          1,
			Name:        "Đầu vào & Nhập học",
			Description: "Xét tuyển, công nhận NCS và biên chế lớp.",
			Documents: []models.DocumentItem{
				{ID: "p1-1", Name: "Quyết định thành lập HĐ xét tuyển", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p1-2", Name: "Biên bản họp HĐ xét tuyển", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p1-3", Name: "Quyết định công nhận trúng tuyển", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p1-4", Name: "Giấy báo nhập học", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p1-5", Name: "Quyết định biên chế lớp", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
		{
			ID:          2,
			Name:        "Phân công GVHD & Đề cương",
			Description: "Phê duyệt đề tài, GVHD và bảo vệ đề cương.",
			Documents: []models.DocumentItem{
				{ID: "p2-1", Name: "Quyết định phân công GVHD", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p2-2", Name: "Hợp đồng GVHD (Ký kết)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p2-3", Name: "Quyết định thành lập HĐ thông qua đề cương", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p2-4", Name: "Biên bản hội đồng thông qua đề cương", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p2-5", Name: "Quyết định giao đề tài Luận án", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
		{
			ID:          3,
			Name:        "Học phần & Tiểu luận Tổng quan",
			Description: "Hoàn thành các học phần TS và tiểu luận tổng quan.",
			Documents: []models.DocumentItem{
				{ID: "p3-1", Name: "Bảng điểm các học phần Tiến sĩ", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p3-2", Name: "Quyết định thành lập HĐ đánh giá Tiểu luận tổng quan", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p3-3", Name: "Biên bản đánh giá Tiểu luận tổng quan", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p3-4", Name: "Tài liệu tiểu luận (Sau chỉnh sửa)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
		{
			ID:          4,
			Name:        "Chuyên đề Tiến sĩ",
			Description: "Đánh giá 03 chuyên đề tiến sĩ.",
			Documents: []models.DocumentItem{
				{ID: "p4-1", Name: "QĐ thành lập HĐ đánh giá Chuyên đề TS", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p4-2", Name: "Biên bản đánh giá Chuyên đề 1", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p4-3", Name: "Biên bản đánh giá Chuyên đề 2", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p4-4", Name: "Biên bản đánh giá Chuyên đề 3", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p4-5", Name: "Tài liệu chuyên đề (Sau chỉnh sửa)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
		{
			ID:          5,
			Name:        "Đánh giá cấp Đơn vị (Cơ sở)",
			Description: "Đánh giá luận án tại đơn vị chuyên môn (Khoa/Bộ môn).",
			Documents: []models.DocumentItem{
				{ID: "p5-1", Name: "Hồ sơ xét bảo vệ Luận án (Đơn, Lý lịch...)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p5-2", Name: "Quyết định thành lập HĐ đánh giá cấp Đơn vị", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p5-3", Name: "Biên bản kết luận của Hội đồng", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p5-4", Name: "Bản giải trình chỉnh sửa luận án", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
		{
			ID:          6,
			Name:        "Phản biện Độc lập (Kín)",
			Description: "Gửi luận án lấy ý kiến chuyên gia độc lập.",
			Documents: []models.DocumentItem{
				{ID: "p6-1", Name: "Danh sách phản biện độc lập (Trình Hiệu trưởng)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p6-2", Name: "Hồ sơ gửi phản biện (Đã xóa thông tin)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p6-3", Name: "Kết quả phản biện độc lập 1", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p6-4", Name: "Kết quả phản biện độc lập 2", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p6-5", Name: "Bản giải trình chỉnh sửa sau phản biện", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
		{
			ID:          7,
			Name:        "Bảo vệ Cấp Trường",
			Description: "Bảo vệ chính thức cấp cơ sở đào tạo.",
			Documents: []models.DocumentItem{
				{ID: "p7-1", Name: "Danh sách đủ điều kiện bảo vệ cấp Trường", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p7-2", Name: "Quyết định thành lập HĐ cấp Trường", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p7-3", Name: "Thông báo bảo vệ Luận án (Public Website)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p7-4", Name: "Biên bản & Nghị quyết Hội đồng", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
		{
			ID:          8,
			Name:        "Tốt nghiệp & Cấp bằng",
			Description: "Hoàn tất hồ sơ sau bảo vệ, in và cấp bằng.",
			Documents: []models.DocumentItem{
				{ID: "p8-1", Name: "Luận án hoàn chỉnh (Nộp lưu chiểu)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p8-2", Name: "Phiếu xác nhận thông tin in bằng", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p8-3", Name: "Quyết định cấp bằng Tiến sĩ", Status: models.DocMissing, Required: true, TemplateURL: "#"},
				{ID: "p8-4", Name: "Sổ cấp bằng (Ký nhận)", Status: models.DocMissing, Required: true, TemplateURL: "#"},
			},
		},
	}
}

func demoClasses() []models.ClassInfo {
	return []models.ClassInfo{
		{ID: "class-it-1", Name: "CH CNTT K30 - Lớp 1", Degree: models.DegreeMaster, Major: "Khoa học Máy tính", Batch: "K30", Advisor: "TS. Nguyễn Văn A"},
		{ID: "class-it-2", Name: "CH CNTT K30 - Lớp 2", Degree: models.DegreeMaster, Major: "Kỹ thuật Phần mềm", Batch: "K30", Advisor: "TS. Lê Thị B"},
		{ID: "class-pharm-1", Name: "CH Dược K29 - Lớp A", Degree: models.DegreeMaster, Major: "Dược lý & Dược lâm sàng", Batch: "K29", Advisor: "PGS.TS Trần Văn C"},
		{ID: "class-pharm-2", Name: "CH Dược K29 - Lớp B", Degree: models.DegreeMaster, Major: "Dược liệu", Batch: "K29", Advisor: "TS. Phạm Thị D"},
		{ID: "class-pharm-3", Name: "CH Dược K30 - Lớp A", Degree: models.DegreeMaster, Major: "Quản lý Dược", Batch: "K30", Advisor: "PGS.TS Hoàng Văn E"},
		{ID: "class-eco-ncs", Name: "NCS Kinh tế K22", Degree: models.DegreePhD, Major: "Quản lý Kinh tế", Batch: "NCS2022", Advisor: "GS.TS Nguyễn Hoàng H"},
	}
}

// progress rewrites a fresh template copy into a mid-program checklist:
// stages before current are completed with approved documents, the current
// stage gets per-document status overrides.
func progress(stages []models.TrainingStage, currentID int, statuses map[string]models.DocumentStatus) []models.TrainingStage {
	out := models.CloneStages(stages)
	for i := range out {
		switch {
		case out[i].ID < currentID:
			out[i].IsCompleted = true
			for j := range out[i].Documents {
				out[i].Documents[j].Status = models.DocApproved
			}
		case out[i].ID == currentID:
			out[i].IsCurrent = true
			for j := range out[i].Documents {
				if st, ok := statuses[out[i].Documents[j].ID]; ok {
					out[i].Documents[j].Status = st
				}
			}
		}
	}
	return out
}

func demoStudents() []models.Student {
	return []models.Student{
		{
			ID:             "SV001",
			FullName:       "Nguyễn Văn An",
			DOB:            "1995-05-12",
			Email:          "an.nguyen@email.com",
			Phone:          "0901234567",
			Degree:         models.DegreeMaster,
			Major:          "Khoa học Máy tính",
			ClassID:        "class-it-1",
			Batch:          "K30",
			StudentCode:    "MCS2023001",
			EnrollmentDate: "2023-09-15",
			AvatarURL:      "https://picsum.photos/200/200",
			CurrentStageID: 1,
			Stages: progress(masterStages(), 1, map[string]models.DocumentStatus{
				"m1-1": models.DocApproved,
				"m1-2": models.DocApproved,
				"m1-3": models.DocApproved,
			}),
			Notes: "Đang chờ Quyết định trúng tuyển bản giấy.",
			TuitionRecords: []models.TuitionRecord{
				{ID: "t-sv1-1", Title: "Học phí Kỳ 1 - Năm học 2023-2024", Amount: 15000000, DueDate: "2023-10-15", Status: models.TuitionPaid, PaymentDate: "2023-10-10", TermIndex: 1},
				{ID: "t-sv1-2", Title: "Học phí Kỳ 2 - Năm học 2023-2024", Amount: 15000000, DueDate: "2024-03-15", Status: models.TuitionUnpaid, TermIndex: 2},
			},
		},
		{
			ID:             "SV002",
			FullName:       "Trần Thị Bích",
			DOB:            "1990-10-20",
			Email:          "bich.tran@email.com",
			Phone:          "0912345678",
			Degree:         models.DegreePhD,
			Major:          "Quản lý Kinh tế",
			ClassID:        "class-eco-ncs",
			Batch:          "NCS2022",
			StudentCode:    "PHD2022005",
			EnrollmentDate: "2022-05-01",
			AvatarURL:      "https://picsum.photos/201/201",
			CurrentStageID: 2,
			Stages: progress(phdStages(), 2, map[string]models.DocumentStatus{
				"p2-1": models.DocApproved,
				"p2-2": models.DocPending,
				"p2-3": models.DocApproved,
			}),
			Notes: "Cần nhắc nộp Hợp đồng GVHD.",
			TuitionRecords: []models.TuitionRecord{
				{ID: "t-sv2-1", Title: "Học phí Năm thứ 1", Amount: 30000000, DueDate: "2022-06-01", Status: models.TuitionPaid, PaymentDate: "2022-05-20", TermIndex: 1},
				{ID: "t-sv2-2", Title: "Học phí Năm thứ 2", Amount: 30000000, DueDate: "2023-06-01", Status: models.TuitionOverdue, TermIndex: 2},
			},
		},
		{
			ID:             "SV003",
			FullName:       "Lê Hoàng Nam",
			DOB:            "1998-01-15",
			Email:          "nam.le@email.com",
			Phone:          "0987654321",
			Degree:         models.DegreeMaster,
			Major:          "Dược lý & Dược lâm sàng",
			ClassID:        "class-pharm-1",
			Batch:          "K29",
			StudentCode:    "MP2024012",
			EnrollmentDate: "2024-02-15",
			AvatarURL:      "https://picsum.photos/202/202",
			CurrentStageID: 3,
			Stages:         progress(masterStages(), 3, nil),
			Notes:          "Đã có chứng chỉ tiếng Anh, đang làm đề cương.",
			TuitionRecords: []models.TuitionRecord{
				{ID: "t-sv3-1", Title: "Học phí Kỳ 1 - Năm học 2024-2025", Amount: 16500000, DueDate: "2024-03-15", Status: models.TuitionPaid, PaymentDate: "2024-03-01", TermIndex: 1},
			},
		},
	}
}

func demoSchedules() []models.ScheduleItem {
	return []models.ScheduleItem{
		{ID: "sch_1", Subject: "Phương pháp nghiên cứu khoa học", Lecturer: "PGS.TS Nguyễn Thanh Bình", Date: "2023-11-20", Time: "08:00 - 11:30", Room: "B1-204", Batch: "K30 Cao học", Degree: models.DegreeMaster, Type: models.ScheduleClass},
		{ID: "sch_2", Subject: "Triết học nâng cao", Lecturer: "TS. Trần Văn Đạo", Date: "2023-11-21", Time: "13:30 - 17:00", Room: "C2-101", Batch: "NCS K22", Degree: models.DegreePhD, Type: models.ScheduleClass},
		{ID: "sch_3", Subject: "Bảo vệ Đề cương Luận văn", Lecturer: "Hội đồng chuyên môn K30", Date: "2023-11-25", Time: "07:30 - 11:30", Room: "Hội trường A", Batch: "K30 Cao học", Degree: models.DegreeMaster, Type: models.ScheduleDefense},
		{ID: "sch_4", Subject: "Tiếng Anh B1 - Kỹ năng Viết", Lecturer: "ThS. Sarah Jenkins", Date: "2023-11-22", Time: "18:00 - 20:30", Room: "Online (Zoom)", Batch: "K30 Cao học", Degree: models.DegreeMaster, Type: models.ScheduleClass},
	}
}

func demoSystemDocuments() []models.SystemDocument {
	return []models.SystemDocument{
		{ID: "bm-01", Code: "BM.01/SĐH", Name: "Sơ yếu lý lịch học viên cao học", Type: models.SysDocTemplate, Degree: models.DegreeMaster, StageID: 1, DocumentID: "m1-3", LastUpdated: "2023-08-01", DownloadURL: "#"},
		{ID: "bm-02", Code: "BM.02/SĐH", Name: "Cam kết thực hiện quy chế đào tạo", Type: models.SysDocTemplate, Degree: models.DegreeMaster, StageID: 1, LastUpdated: "2023-01-15", DownloadURL: "#"},
		{ID: "bm-05", Code: "BM.05/SĐH", Name: "Đơn xin nhận đề tài luận văn", Type: models.SysDocTemplate, Degree: models.DegreeMaster, StageID: 3, DocumentID: "m3-1", LastUpdated: "2023-05-20", DownloadURL: "#"},
		{ID: "qd-01", Code: "QĐ-Mẫu-01", Name: "Mẫu Quyết định giao đề tài", Type: models.SysDocDecision, Degree: models.DegreeMaster, StageID: 3, DocumentID: "m3-5", LastUpdated: "2022-11-10", DownloadURL: "#"},
		{ID: "bm-08", Code: "BM.08/SĐH", Name: "Đơn xin bảo vệ luận văn", Type: models.SysDocTemplate, Degree: models.DegreeMaster, StageID: 4, DocumentID: "m4-1", LastUpdated: "2023-02-20", DownloadURL: "#"},
		{ID: "qd-05", Code: "QĐ-Mẫu-05", Name: "Mẫu QĐ thành lập HĐ chấm luận văn", Type: models.SysDocDecision, Degree: models.DegreeMaster, StageID: 4, DocumentID: "m4-4", LastUpdated: "2023-01-05", DownloadURL: "#"},
		{ID: "bm-10", Code: "BM.10/SĐH", Name: "Biên bản họp Hội đồng", Type: models.SysDocDecision, Degree: models.DegreeMaster, StageID: 4, DocumentID: "m4-5", LastUpdated: "2023-01-05", DownloadURL: "#"},
		{ID: "bm-ncs-01", Code: "BM.01/NCS", Name: "Biên bản họp HĐ xét tuyển", Type: models.SysDocDecision, Degree: models.DegreePhD, StageID: 1, DocumentID: "p1-2", LastUpdated: "2022-09-01", DownloadURL: "#"},
		{ID: "bm-ncs-05", Code: "BM.05/NCS", Name: "Hợp đồng hướng dẫn nghiên cứu sinh", Type: models.SysDocTemplate, Degree: models.DegreePhD, StageID: 2, DocumentID: "p2-2", LastUpdated: "2022-09-01", DownloadURL: "#"},
		{ID: "bm-ncs-12", Code: "BM.12/NCS", Name: "Biên bản đánh giá chuyên đề", Type: models.SysDocDecision, Degree: models.DegreePhD, StageID: 4, DocumentID: "p4-2", LastUpdated: "2023-03-15", DownloadURL: "#"},
	}
}
