package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/service"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
	"github.com/edumanage/postgrad-api/pkg/response"
)

// DraftHandler exposes the AI drafting endpoints.
type DraftHandler struct {
	service *service.DraftService
}

// NewDraftHandler constructs a draft handler.
func NewDraftHandler(svc *service.DraftService) *DraftHandler {
	return &DraftHandler{service: svc}
}

// Generate godoc
// @Summary Draft an administrative document for a student
// @Tags Drafting
// @Accept json
// @Produce json
// @Param payload body dto.GenerateDraftRequest true "Draft payload"
// @Success 200 {object} response.Envelope
// @Router /drafts/document [post]
func (h *DraftHandler) Generate(c *gin.Context) {
	var req dto.GenerateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	draft, err := h.service.GenerateDocument(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// Analyze godoc
// @Summary Assess a student's progress
// @Tags Drafting
// @Accept json
// @Produce json
// @Param payload body dto.AnalyzeProgressRequest true "Analysis payload"
// @Success 200 {object} response.Envelope
// @Router /drafts/analysis [post]
func (h *DraftHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	analysis, err := h.service.AnalyzeProgress(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, analysis, nil)
}
