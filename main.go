package main

import (
	"context"
	"log"
	"time"

	"viestay/config"
	"viestay/controllers"
	"viestay/jobs"
	"viestay/middleware"
	"viestay/models"
	"viestay/routes"
	"viestay/services"
	"viestay/services/logger"
	"viestay/templates"

	"github.com/robfig/cron/v3"
)

const serviceName = "viestay-room-detail"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewZapLogger(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat, serviceName)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	kv := newKVStore(cfg, appLogger)

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect db: %v", err)
	}
	if err := db.AutoMigrate(&models.Report{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	roomService := services.NewRoomService(services.RoomServiceOptions{
		BaseURL: cfg.RoomAPIBaseURL,
		Timeout: cfg.HTTPTimeout,
		Logger:  appLogger,
	})
	newestPosts := services.NewNewestPostsService(services.NewestPostsOptions{
		Lister: roomService,
		KV:     kv,
		TTL:    cfg.NewestPostsTTL,
		Limit:  cfg.NewestPostsLimit,
		Logger: appLogger,
	})
	reportClient := services.NewReportClient(services.ReportClientOptions{
		URL:     cfg.ReportAPIURL,
		Timeout: cfg.HTTPTimeout,
		Logger:  appLogger,
	})
	reportService := services.NewReportService(services.ReportServiceOptions{
		Store:  services.NewGormReportStore(db),
		Logger: appLogger,
	})

	roomDetailController := controllers.NewRoomDetailController(controllers.RoomDetailControllerOptions{
		Rooms:       roomService,
		Snapshots:   services.NewRoomCache(kv, cfg.RoomCacheTTL),
		Newest:      newestPosts,
		Reports:     reportClient,
		RentalDelay: cfg.RentalModalDelay,
		Logger:      appLogger,
	})
	reportController := controllers.NewReportController(reportService, appLogger)

	c := cron.New()
	if err := jobs.InitCronJobs(c, cfg.NewestPostsCron, newestPosts, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	router := config.NewRouter(cfg)
	router.Use(middleware.RequestIDMiddleware(), middleware.LoggerMiddleware(appLogger.Zap()))
	router.SetHTMLTemplate(templates.Must())
	routes.SetupRoutes(router, roomDetailController, reportController)

	appLogger.Info("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newKVStore dùng Redis khi kết nối được, nếu không thì cache trong bộ nhớ
func newKVStore(cfg *config.Config, appLogger logger.Logger) services.KVStore {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		appLogger.Error("Failed to connect to Redis, falling back to in-memory cache: %v", err)
		return services.NewMemoryKVStore()
	}
	return services.NewRedisKVStore(rdb)
}
