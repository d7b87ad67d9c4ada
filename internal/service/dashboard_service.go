package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/edumanage/postgrad-api/internal/dto"
	"github.com/edumanage/postgrad-api/internal/models"
	appErrors "github.com/edumanage/postgrad-api/pkg/errors"
)

type classCounter interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.ClassInfo, int, error)
}

// statsInvalidator is implemented by DashboardService so the mutating
// services can drop the cached overview without depending on it directly.
type statsInvalidator interface {
	InvalidateCache(ctx context.Context)
}

const dashboardCacheKey = "dashboard:stats"

// dashboardTaskCap limits how many alerts of each severity the overview shows.
const dashboardTaskCap = 3

// DashboardService aggregates the overview statistics. Optionally backed by a
// short-lived cache; results are always recomputable from the stores.
type DashboardService struct {
	students studentLister
	classes  classCounter
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// DashboardServiceParams bundles DashboardService dependencies.
type DashboardServiceParams struct {
	Students studentLister
	Classes  classCounter
	Cache    *CacheService
	CacheTTL time.Duration
	Logger   *zap.Logger
	Now      func() time.Time
}

// NewDashboardService constructs DashboardService.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &DashboardService{
		students: params.Students,
		classes:  params.Classes,
		cache:    params.Cache,
		cacheTTL: params.CacheTTL,
		logger:   params.Logger,
		now:      params.Now,
	}
}

// Stats computes the overview numbers. A student counts as graduated when the
// final stage of their own checklist is completed, and as delayed when more
// than two documents are still missing in their current stage.
func (s *DashboardService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if s.cache.Enabled() {
		var cached dto.DashboardStatsResponse
		if s.cache.Fetch(ctx, dashboardCacheKey, &cached) {
			return &cached, nil
		}
	}

	students, err := s.students.All(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to scan students")
	}
	_, totalClasses, err := s.classes.List(ctx, models.ClassFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count classes")
	}

	stats := &dto.DashboardStatsResponse{
		TotalStudents: len(students),
		TotalClasses:  totalClasses,
	}

	type stageKey struct {
		degree  models.DegreeTrack
		stageID int
	}
	breakdown := make(map[stageKey]*dto.StageBreakdownRow)

	for _, st := range students {
		switch st.Degree {
		case models.DegreeMaster:
			stats.MasterStudents++
		case models.DegreePhD:
			stats.PhdStudents++
		}

		if n := len(st.Stages); n > 0 && st.Stages[n-1].IsCompleted {
			stats.GraduatedCount++
		}

		for _, t := range st.TuitionRecords {
			if t.Status == models.TuitionOverdue {
				stats.TuitionOverdue++
			}
		}

		current := st.CurrentStage()
		if current == nil {
			continue
		}
		missing := 0
		for _, d := range current.Documents {
			if d.Status == models.DocMissing {
				missing++
			}
			if d.Status == models.DocPending {
				stats.PendingDocuments++
			}
		}
		if missing > 2 {
			stats.DelayedCount++
		}

		key := stageKey{degree: st.Degree, stageID: current.ID}
		row, ok := breakdown[key]
		if !ok {
			row = &dto.StageBreakdownRow{
				Degree:    string(st.Degree),
				StageID:   current.ID,
				StageName: current.Name,
			}
			breakdown[key] = row
		}
		row.Count++
	}

	stats.StageBreakdown = make([]dto.StageBreakdownRow, 0, len(breakdown))
	for _, row := range breakdown {
		stats.StageBreakdown = append(stats.StageBreakdown, *row)
	}
	sort.Slice(stats.StageBreakdown, func(i, j int) bool {
		a, b := stats.StageBreakdown[i], stats.StageBreakdown[j]
		if a.Degree != b.Degree {
			return a.Degree < b.Degree
		}
		return a.StageID < b.StageID
	})

	stats.UrgentTasks = make([]models.AppNotification, 0, dashboardTaskCap)
	stats.WarningTasks = make([]models.AppNotification, 0, dashboardTaskCap)
	for _, noti := range DeriveNotifications(students, s.now()) {
		switch noti.Type {
		case models.NotificationDanger:
			if len(stats.UrgentTasks) < dashboardTaskCap {
				stats.UrgentTasks = append(stats.UrgentTasks, noti)
			}
		case models.NotificationWarning:
			if len(stats.WarningTasks) < dashboardTaskCap {
				stats.WarningTasks = append(stats.WarningTasks, noti)
			}
		}
	}

	s.cache.Store(ctx, dashboardCacheKey, stats, s.cacheTTL)
	return stats, nil
}

// InvalidateCache drops the cached overview after a mutation.
func (s *DashboardService) InvalidateCache(ctx context.Context) {
	s.cache.Invalidate(ctx, dashboardCacheKey)
}
