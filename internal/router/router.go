// Package router maps the HTTP surface onto handlers. Middleware and the
// operational endpoints (health, metrics, docs) stay in cmd/server; only the
// domain routes live here.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/edumanage/postgrad-api/internal/handler"
)

// Handlers bundles every domain handler the API exposes.
type Handlers struct {
	Students      *handler.StudentHandler
	Tuition       *handler.TuitionHandler
	Classes       *handler.ClassHandler
	Templates     *handler.TemplateHandler
	Notifications *handler.NotificationHandler
	Dashboard     *handler.DashboardHandler
	Schedules     *handler.ScheduleHandler
	SysDocs       *handler.SystemDocumentHandler
	Drafts        *handler.DraftHandler
	Exports       *handler.ExportHandler
}

// Register wires the domain routes under the API prefix group.
func Register(api *gin.RouterGroup, h Handlers) {
	api.GET("/students", h.Students.List)
	api.POST("/students", h.Students.Create)
	api.GET("/students/:id", h.Students.Get)
	api.PUT("/students/:id", h.Students.Update)
	api.DELETE("/students/:id", h.Students.Delete)
	api.PUT("/students/:id/stage", h.Students.AdvanceStage)
	api.PUT("/students/:id/stages/:stageId/documents/:docId/status", h.Students.UpdateDocumentStatus)
	api.PUT("/students/:id/stages/:stageId/documents/:docId/file", h.Students.AttachDocumentFile)
	api.GET("/students/:id/documents/:docId/template", h.SysDocs.ResolveForStudent)

	api.POST("/students/:id/tuition", h.Tuition.Create)
	api.PUT("/students/:id/tuition/:tuitionId", h.Tuition.Update)
	api.DELETE("/students/:id/tuition/:tuitionId", h.Tuition.Delete)

	api.GET("/classes", h.Classes.List)
	api.POST("/classes", h.Classes.Create)
	api.GET("/classes/:id", h.Classes.Get)
	api.PUT("/classes/:id", h.Classes.Update)
	api.DELETE("/classes/:id", h.Classes.Delete)

	api.GET("/templates/:degree", h.Templates.Get)
	api.PUT("/templates/:degree", h.Templates.Save)

	api.GET("/notifications", h.Notifications.List)
	api.GET("/dashboard/stats", h.Dashboard.Stats)

	api.GET("/schedule", h.Schedules.List)
	api.POST("/schedule", h.Schedules.Create)
	api.PUT("/schedule/:id", h.Schedules.Update)
	api.DELETE("/schedule/:id", h.Schedules.Delete)

	api.GET("/system-documents", h.SysDocs.List)
	api.POST("/system-documents", h.SysDocs.Create)
	api.GET("/system-documents/resolve/:degree/:docId", h.SysDocs.ResolveTemplate)
	api.GET("/system-documents/:id", h.SysDocs.Get)
	api.PUT("/system-documents/:id", h.SysDocs.Update)
	api.DELETE("/system-documents/:id", h.SysDocs.Delete)

	api.POST("/drafts/document", h.Drafts.Generate)
	api.POST("/drafts/analysis", h.Drafts.Analyze)

	api.POST("/exports", h.Exports.Create)
	api.GET("/exports/download/:token", h.Exports.Download)
	api.GET("/exports/:id", h.Exports.Status)
}
