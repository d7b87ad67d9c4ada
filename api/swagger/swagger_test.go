package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocCoversMountedRoutes(t *testing.T) {
	var doc struct {
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(docTemplate), &doc))

	routes := []string{
		"/students",
		"/students/{id}",
		"/students/{id}/stage",
		"/students/{id}/stages/{stageId}/documents/{docId}/status",
		"/students/{id}/stages/{stageId}/documents/{docId}/file",
		"/students/{id}/documents/{docId}/template",
		"/students/{id}/tuition",
		"/students/{id}/tuition/{tuitionId}",
		"/classes",
		"/classes/{id}",
		"/templates/{degree}",
		"/schedule",
		"/schedule/{id}",
		"/system-documents",
		"/system-documents/{id}",
		"/system-documents/resolve/{degree}/{docId}",
		"/drafts/document",
		"/drafts/analysis",
		"/notifications",
		"/dashboard/stats",
		"/exports",
		"/exports/{id}",
		"/exports/download/{token}",
	}
	for _, route := range routes {
		assert.Contains(t, doc.Paths, route)
	}
	assert.Len(t, doc.Paths, len(routes))

	for _, def := range []string{
		"CreateClassRequest",
		"CreateScheduleRequest",
		"CreateSystemDocumentRequest",
		"GenerateDraftRequest",
		"AnalyzeProgressRequest",
		"UpdateTuitionRequest",
		"AttachDocumentFileRequest",
	} {
		assert.Contains(t, doc.Definitions, def)
	}
}
