package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/service"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
	"github.com/edumanage/postgrad-api/pkg/response"
)

// SystemDocumentHandler exposes the document library endpoints.
type SystemDocumentHandler struct {
	service *service.SystemDocumentService
}

// NewSystemDocumentHandler constructs a library handler.
func NewSystemDocumentHandler(svc *service.SystemDocumentService) *SystemDocumentHandler {
	return &SystemDocumentHandler{service: svc}
}

// List godoc
// @Summary List document library entries
// @Tags DocumentLibrary
// @Produce json
// @Param search query string false "Search keyword"
// @Param type query string false "Entry type"
// @Param degree query string false "Degree track"
// @Param stageId query int false "Stage filter"
// @Success 200 {object} response.Envelope
// @Router /system-documents [get]
func (h *SystemDocumentHandler) List(c *gin.Context) {
	var query dto.SystemDocumentQuery
	query.Search = strings.TrimSpace(c.Query("search"))
	query.Type = c.Query("type")
	query.Degree = c.Query("degree")
	if stageID, err := strconv.Atoi(c.DefaultQuery("stageId", "0")); err == nil {
		query.StageID = stageID
	}

	docs, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, docs, nil)
}

// Get godoc
// @Summary Get library entry
// @Tags DocumentLibrary
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Envelope
// @Router /system-documents/{id} [get]
func (h *SystemDocumentHandler) Get(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// ResolveTemplate godoc
// @Summary Resolve the blank form linked to a checklist document
// @Tags DocumentLibrary
// @Produce json
// @Param degree path string true "Degree track"
// @Param docId path string true "Checklist document ID"
// @Success 200 {object} response.Envelope
// @Router /system-documents/resolve/{degree}/{docId} [get]
func (h *SystemDocumentHandler) ResolveTemplate(c *gin.Context) {
	doc, err := h.service.ResolveTemplate(c.Request.Context(), models.DegreeTrack(c.Param("degree")), c.Param("docId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// ResolveForStudent godoc
// @Summary Resolve the blank form behind one requirement on a student's checklist
// @Tags DocumentLibrary
// @Produce json
// @Param id path string true "Student ID"
// @Param docId path string true "Checklist document ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/documents/{docId}/template [get]
func (h *SystemDocumentHandler) ResolveForStudent(c *gin.Context) {
	doc, err := h.service.ResolveForStudent(c.Request.Context(), c.Param("id"), c.Param("docId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// Create godoc
// @Summary Create library entry
// @Tags DocumentLibrary
// @Accept json
// @Produce json
// @Param payload body dto.CreateSystemDocumentRequest true "Entry payload"
// @Success 201 {object} response.Envelope
// @Router /system-documents [post]
func (h *SystemDocumentHandler) Create(c *gin.Context) {
	var req dto.CreateSystemDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	doc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

// Update godoc
// @Summary Update library entry
// @Tags DocumentLibrary
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param payload body dto.UpdateSystemDocumentRequest true "Entry payload"
// @Success 200 {object} response.Envelope
// @Router /system-documents/{id} [put]
func (h *SystemDocumentHandler) Update(c *gin.Context) {
	var req dto.UpdateSystemDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	doc, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// Delete godoc
// @Summary Delete library entry
// @Tags DocumentLibrary
// @Param id path string true "Entry ID"
// @Success 204
// @Router /system-documents/{id} [delete]
func (h *SystemDocumentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
