package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/handler"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/middleware"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/repository"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/service"
	"github.com/ramonankersmit/vlier-planner-sub001/pkg/cache"
	"github.com/ramonankersmit/vlier-planner-sub001/pkg/config"
	"github.com/ramonankersmit/vlier-planner-sub001/pkg/database"
	"github.com/ramonankersmit/vlier-planner-sub001/pkg/logger"
	corsmiddleware "github.com/ramonankersmit/vlier-planner-sub001/pkg/middleware/cors"
	reqidmiddleware "github.com/ramonankersmit/vlier-planner-sub001/pkg/middleware/requestid"
)

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var cacheRepo service.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}

	docRepo := repository.NewDocumentRepository(db)
	rowRepo := repository.NewRowRepository(db)
	vacationRepo := repository.NewVacationRepository(db)
	userRepo := repository.NewUserRepository(db)

	cacheSvc := service.NewCacheService(cacheRepo, cfg.Overview.CacheTTL, logr, cfg.Redis.Enabled)
	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, nil, logr, cfg.JWT.Secret, cfg.JWT.Expiration)
	docSvc := service.NewDocumentService(docRepo, rowRepo, cacheSvc, nil, logr)
	vacationSvc := service.NewVacationService(vacationRepo, cacheSvc, nil, logr)
	overviewSvc := service.NewOverviewService(docRepo, rowRepo, vacationRepo, cacheSvc, metricsSvc, logr)
	exportSvc := service.NewExportService(overviewSvc, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	handlers := handler.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Documents: handler.NewDocumentHandler(docSvc),
		Vacations: handler.NewVacationHandler(vacationSvc),
		Overview:  handler.NewOverviewHandler(overviewSvc),
		Export:    handler.NewExportHandler(exportSvc),
		Metrics:   handler.NewMetricsHandler(metricsSvc),
	}
	handler.RegisterRoutes(r, cfg.APIPrefix, handlers, authSvc, cfg.Export.Enabled)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
