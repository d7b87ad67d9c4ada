package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	"github.com/edumanage/postgrad-api/internal/service"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
	"github.com/edumanage/postgrad-api/pkg/response"
)

// TemplateHandler exposes the per-track stage template endpoints.
type TemplateHandler struct {
	service *service.TemplateService
}

// NewTemplateHandler constructs a template handler.
func NewTemplateHandler(svc *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: svc}
}

// Get godoc
// @Summary Get the stage template of a degree track
// @Tags Templates
// @Produce json
// @Param degree path string true "Degree track (MASTER or PHD)"
// @Success 200 {object} response.Envelope
// @Router /templates/{degree} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	stages, err := h.service.Get(c.Request.Context(), models.DegreeTrack(c.Param("degree")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stages, nil)
}

// Save godoc
// @Summary Replace the stage template of a degree track and reconcile students
// @Tags Templates
// @Accept json
// @Produce json
// @Param degree path string true "Degree track (MASTER or PHD)"
// @Param payload body dto.SaveTemplateRequest true "Template payload"
// @Success 200 {object} response.Envelope
// @Router /templates/{degree} [put]
func (h *TemplateHandler) Save(c *gin.Context) {
	var req dto.SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.Save(c.Request.Context(), models.DegreeTrack(c.Param("degree")), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
