// @title SupportPulse Reports API
// @version 1.0
// @description Daily support-performance report aggregation, alerting, and scheduling engine
// @contact.name API Support
// @contact.email support@example.com
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /

package main

import (
	"os"
	"time"

	"supportpulse-be/config"
	"supportpulse-be/internal/database"
	"supportpulse-be/internal/handlers"
	"supportpulse-be/internal/middleware"
	"supportpulse-be/internal/repository"
	"supportpulse-be/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "supportpulse-be/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongodb.Disconnect()

	// Initialize repositories
	reportRepo := repository.NewReportRepository(mongodb.Database)
	recordRepo := repository.NewRecordRepository(mongodb.Database)

	// Initialize services
	aggregator := services.NewMetricsAggregator()
	detector := services.NewAlertDetector(cfg)
	reportService := services.NewReportService(reportRepo, recordRepo, aggregator, detector)
	queryService := services.NewQueryService(reportRepo, cfg.MaxRangeDays)

	scheduler := services.NewScheduler(reportService.Generate, cfg.ScheduleHour, cfg.ScheduleMinute)
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize handlers
	reportHandler := handlers.NewReportHandler(reportRepo, queryService, reportService, scheduler)
	healthHandler := handlers.NewHealthHandler(reportRepo)

	// Initialize Gin
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	reports := r.Group("/reports")
	{
		reports.GET("/list", reportHandler.List)
		reports.GET("/daily/:date", reportHandler.GetDaily)
		reports.GET("/admin/:date", reportHandler.GetAdmin)
		reports.GET("/summary/latest", reportHandler.LatestSummary)
		reports.GET("/scheduler/status", reportHandler.SchedulerStatus)
		reports.POST("/generate/now", reportHandler.GenerateNow)
		reports.POST("/generate/:date", reportHandler.GenerateForDate)
		reports.POST("/scheduler/trigger", reportHandler.Trigger)
		reports.GET("/health", healthHandler.Health)
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
