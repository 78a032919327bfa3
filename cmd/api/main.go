package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/BarkinBalci/funnel-analytics-service/docs"
	"github.com/BarkinBalci/funnel-analytics-service/internal/config"
	"github.com/BarkinBalci/funnel-analytics-service/internal/handler"
	"github.com/BarkinBalci/funnel-analytics-service/internal/logger"
	"github.com/BarkinBalci/funnel-analytics-service/internal/service"
	storefile "github.com/BarkinBalci/funnel-analytics-service/internal/store/file"
)

// @title Funnel Analytics Service API
// @version 1.0
// @description API for funnel conversion metrics, A/B lift, daily series, and anomaly detection
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.ServiceEnvironment),
		zap.String("port", cfg.ServiceAPIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.ServiceHost

	// Initialize dataset store
	datasets, err := storefile.NewStore(cfg.DataDir, cfg.SampleDataPath, log)
	if err != nil {
		log.Fatal("Failed to create dataset store", zap.Error(err))
	}

	// Initialize analytics service
	analyticsService := service.NewAnalyticsService(datasets, log)

	// Initialize handler
	h := handler.NewHandler(analyticsService, cfg.UploadMaxBytes, log)

	addr := fmt.Sprintf(":%s", cfg.ServiceAPIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
