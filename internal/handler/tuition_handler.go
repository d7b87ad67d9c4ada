package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/service"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
	"github.com/edumanage/postgrad-api/pkg/response"
)

// TuitionHandler exposes per-student tuition record endpoints.
type TuitionHandler struct {
	service *service.StudentService
}

// NewTuitionHandler constructs a tuition handler.
func NewTuitionHandler(svc *service.StudentService) *TuitionHandler {
	return &TuitionHandler{service: svc}
}

// Create godoc
// @Summary Add tuition record
// @Tags Tuition
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body dto.CreateTuitionRequest true "Tuition payload"
// @Success 201 {object} response.Envelope
// @Router /students/{id}/tuition [post]
func (h *TuitionHandler) Create(c *gin.Context) {
	var req dto.CreateTuitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.AddTuition(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Update godoc
// @Summary Update tuition record
// @Tags Tuition
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param tuitionId path string true "Tuition record ID"
// @Param payload body dto.UpdateTuitionRequest true "Tuition payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/tuition/{tuitionId} [put]
func (h *TuitionHandler) Update(c *gin.Context) {
	var req dto.UpdateTuitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.UpdateTuition(c.Request.Context(), c.Param("id"), c.Param("tuitionId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Delete godoc
// @Summary Delete tuition record
// @Tags Tuition
// @Param id path string true "Student ID"
// @Param tuitionId path string true "Tuition record ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/tuition/{tuitionId} [delete]
func (h *TuitionHandler) Delete(c *gin.Context) {
	student, err := h.service.DeleteTuition(c.Request.Context(), c.Param("id"), c.Param("tuitionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}
