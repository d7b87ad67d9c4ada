package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edumanage/postgrad-api/api/swagger"
	"github.com/edumanage/postgrad-api/internal/handler"
	"github.com/edumanage/postgrad-api/internal/middleware"
	"github.com/edumanage/postgrad-api/internal/repository"
	"github.com/edumanage/postgrad-api/internal/router"
	"github.com/edumanage/postgrad-api/internal/seed"
	"github.com/edumanage/postgrad-api/internal/service"
	"github.com/edumanage/postgrad-api/pkg/cache"
	"github.com/edumanage/postgrad-api/pkg/config"
	"github.com/edumanage/postgrad-api/pkg/export"
	"github.com/edumanage/postgrad-api/pkg/genai"
	"github.com/edumanage/postgrad-api/pkg/jobs"
	"github.com/edumanage/postgrad-api/pkg/logger"
	corsmiddleware "github.com/edumanage/postgrad-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edumanage/postgrad-api/pkg/middleware/requestid"
	"github.com/edumanage/postgrad-api/pkg/storage"
)

// @title Postgraduate Admin API
// @version 1.0.0
// @description Administrative dashboard API for graduate student progress tracking
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		redisClient = nil
	}

	templateStore := repository.NewTemplateStore()
	studentStore := repository.NewStudentStore()
	classStore := repository.NewClassStore()
	scheduleStore := repository.NewScheduleStore()
	sysDocStore := repository.NewSystemDocumentStore()
	exportStore := repository.NewExportJobStore()

	if err := seed.Templates(ctx, templateStore); err != nil {
		logr.Sugar().Fatalw("failed to seed stage templates", "error", err)
	}
	if cfg.Seed.DemoData {
		stores := seed.Stores{
			Templates: templateStore,
			Students:  studentStore,
			Classes:   classStore,
			Schedules: scheduleStore,
			SysDocs:   sysDocStore,
		}
		if err := seed.DemoData(ctx, stores, logr); err != nil {
			logr.Sugar().Fatalw("failed to seed demo data", "error", err)
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr,
		cfg.Dashboard.CacheEnabled && redisClient != nil)

	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Students: studentStore,
		Classes:  classStore,
		Cache:    cacheSvc,
		CacheTTL: cfg.Dashboard.CacheTTL,
		Logger:   logr,
	})
	templateSvc := service.NewTemplateService(service.TemplateServiceParams{
		Templates: templateStore,
		Students:  studentStore,
		Stats:     dashboardSvc,
		Logger:    logr,
	})
	studentSvc := service.NewStudentService(service.StudentServiceParams{
		Repo:      studentStore,
		Templates: templateStore,
		Classes:   classStore,
		Stats:     dashboardSvc,
		Logger:    logr,
	})
	classSvc := service.NewClassService(service.ClassServiceParams{
		Repo:     classStore,
		Students: studentStore,
		Stats:    dashboardSvc,
		Logger:   logr,
	})
	scheduleSvc := service.NewScheduleService(service.ScheduleServiceParams{
		Repo:   scheduleStore,
		Logger: logr,
	})
	sysDocSvc := service.NewSystemDocumentService(service.SystemDocumentServiceParams{
		Repo:     sysDocStore,
		Students: studentStore,
		Logger:   logr,
	})
	notificationSvc := service.NewNotificationService(service.NotificationServiceParams{
		Students: studentStore,
		Logger:   logr,
	})
	draftSvc := service.NewDraftService(service.DraftServiceParams{
		Generator: genai.NewClient(genai.Config{
			BaseURL: cfg.GenAI.BaseURL,
			APIKey:  cfg.GenAI.APIKey,
			Model:   cfg.GenAI.Model,
			Timeout: cfg.GenAI.Timeout,
		}),
		Students: studentStore,
		Logger:   logr,
	})

	exportStorage, err := storage.NewExportStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "error", err)
	}
	signer := storage.NewDownloadSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	exportSvc := service.NewExportService(studentStore, classStore, exportStorage, signer,
		service.ExportConfig{APIPrefix: cfg.APIPrefix, ResultTTL: cfg.Exports.SignedURLTTL},
		logr, export.NewCSVExporter(), export.NewPDFExporter())

	exportWorker := service.NewExportWorker(exportStore, exportSvc, metricsSvc, cfg.Exports.WorkerRetries, logr)
	exportQueue := jobs.NewQueue("exports", exportWorker.Handle, jobs.QueueConfig{
		Workers:    cfg.Exports.WorkerConcurrency,
		MaxRetries: cfg.Exports.WorkerRetries,
		Logger:     logr,
	})
	exportQueue.Start(ctx)

	exportJobSvc := service.NewExportJobService(exportStore, exportQueue, exportSvc, logr,
		service.ExportJobConfig{
			ResultTTL:       cfg.Exports.SignedURLTTL,
			CleanupInterval: cfg.Exports.CleanupInterval,
		})
	exportJobSvc.StartCleanup(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metricsSvc))

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/metrics/snapshot", metricsHandler.Snapshot)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	router.Register(api, router.Handlers{
		Students:      handler.NewStudentHandler(studentSvc),
		Tuition:       handler.NewTuitionHandler(studentSvc),
		Classes:       handler.NewClassHandler(classSvc),
		Templates:     handler.NewTemplateHandler(templateSvc),
		Notifications: handler.NewNotificationHandler(notificationSvc),
		Dashboard:     handler.NewDashboardHandler(dashboardSvc),
		Schedules:     handler.NewScheduleHandler(scheduleSvc),
		SysDocs:       handler.NewSystemDocumentHandler(sysDocSvc),
		Drafts:        handler.NewDraftHandler(draftSvc),
		Exports:       handler.NewExportHandler(exportJobSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
