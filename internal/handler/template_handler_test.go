package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumanage/postgrad-api/internal/repository"
	"github.com/edumanage/postgrad-api/internal/service"
)

func newTemplateHandler(t *testing.T) *TemplateHandler {
	t.Helper()
	svc := service.NewTemplateService(service.TemplateServiceParams{
		Templates: repository.NewTemplateStore(),
		Students:  repository.NewStudentStore(),
	})
	return NewTemplateHandler(svc)
}

func TestTemplateHandlerSaveAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTemplateHandler(t)

	body := `{"stages":[{"id":1,"name":"Nhập học","documents":[{"id":"m1-1","name":"Đơn nhập học","required":true}]}]}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "degree", Value: "MASTER"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/templates/MASTER", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Save(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Degree      string `json:"degree"`
			StagesSaved int    `json:"stagesSaved"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "MASTER", envelope.Data.Degree)
	assert.Equal(t, 1, envelope.Data.StagesSaved)

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "degree", Value: "MASTER"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/templates/MASTER", nil)

	handler.Get(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nhập học")
}

func TestTemplateHandlerGetUnknownTrack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTemplateHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "degree", Value: "BACHELOR"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/templates/BACHELOR", nil)

	handler.Get(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTemplateHandlerSaveRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTemplateHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "degree", Value: "MASTER"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/templates/MASTER", strings.NewReader("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Save(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
