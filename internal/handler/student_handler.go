package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/service"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
	"github.com/edumanage/postgrad-api/pkg/response"
)

// StudentHandler exposes student profile and checklist endpoints.
type StudentHandler struct {
	service *service.StudentService
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(svc *service.StudentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param search query string false "Search by name or code"
// @Param degree query string false "Degree track"
// @Param classId query string false "Class filter"
// @Param batch query string false "Batch filter"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	var query dto.StudentQuery
	query.Search = strings.TrimSpace(c.Query("search"))
	query.Degree = c.Query("degree")
	query.ClassID = c.Query("classId")
	query.Batch = c.Query("batch")
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		query.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		query.Size = size
	}

	students, pagination, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, pagination)
}

// Get godoc
// @Summary Get student profile
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Create godoc
// @Summary Enroll a new student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Update godoc
// @Summary Update student profile
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body dto.UpdateStudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Delete godoc
// @Summary Delete student
// @Tags Students
// @Param id path string true "Student ID"
// @Success 204
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateDocumentStatus godoc
// @Summary Set review status of a checklist document
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param stageId path int true "Stage ID"
// @Param docId path string true "Document ID"
// @Param payload body dto.UpdateDocumentStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/stages/{stageId}/documents/{docId}/status [put]
func (h *StudentHandler) UpdateDocumentStatus(c *gin.Context) {
	stageID, err := strconv.Atoi(c.Param("stageId"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid stage id"))
		return
	}
	var req dto.UpdateDocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.UpdateDocumentStatus(c.Request.Context(), c.Param("id"), stageID, c.Param("docId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// AttachDocumentFile godoc
// @Summary Record an uploaded file for a checklist document
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param stageId path int true "Stage ID"
// @Param docId path string true "Document ID"
// @Param payload body dto.AttachDocumentFileRequest true "File payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/stages/{stageId}/documents/{docId}/file [put]
func (h *StudentHandler) AttachDocumentFile(c *gin.Context) {
	stageID, err := strconv.Atoi(c.Param("stageId"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid stage id"))
		return
	}
	var req dto.AttachDocumentFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.AttachDocumentFile(c.Request.Context(), c.Param("id"), stageID, c.Param("docId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// AdvanceStage godoc
// @Summary Advance student to another stage
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body dto.AdvanceStageRequest true "Stage payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/stage [put]
func (h *StudentHandler) AdvanceStage(c *gin.Context) {
	var req dto.AdvanceStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.AdvanceStage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}
