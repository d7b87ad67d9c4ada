package dto

import "github.com/edumanage/postgrad-api/internal/models"

// DashboardStatsResponse aggregates the signals shown on the overview page.
type DashboardStatsResponse struct {
	TotalStudents    int                      `json:"totalStudents"`
	MasterStudents   int                      `json:"masterStudents"`
	PhdStudents      int                      `json:"phdStudents"`
	TotalClasses     int                      `json:"totalClasses"`
	GraduatedCount   int                      `json:"graduatedCount"`
	DelayedCount     int                      `json:"delayedCount"`
	TuitionOverdue   int                      `json:"tuitionOverdue"`
	PendingDocuments int                      `json:"pendingDocuments"`
	StageBreakdown   []StageBreakdownRow      `json:"stageBreakdown"`
	UrgentTasks      []models.AppNotification `json:"urgentTasks"`
	WarningTasks     []models.AppNotification `json:"warningTasks"`
}

// StageBreakdownRow counts students currently in one stage of a track.
type StageBreakdownRow struct {
	Degree    string `json:"degree"`
	StageID   int    `json:"stageId"`
	StageName string `json:"stageName"`
	Count     int    `json:"count"`
}
