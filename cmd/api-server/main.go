package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/unibague/agropecuario-api/internal/config"
	httpAPI "github.com/unibague/agropecuario-api/internal/http"
	"github.com/unibague/agropecuario-api/internal/http/controller"
	"github.com/unibague/agropecuario-api/internal/logger"
	"github.com/unibague/agropecuario-api/internal/metrics"
	"github.com/unibague/agropecuario-api/internal/repository/memory"
	"github.com/unibague/agropecuario-api/internal/service"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	// Create repositories
	productRepo := memory.NewProductRepository()
	harvestRepo := memory.NewHarvestRepository()
	if conf.SeedData {
		handleErr("seeding demo data", memory.Seed(productRepo, harvestRepo))
	}

	// Create services
	productService, harvestService := service.NewServices(productRepo, harvestRepo)

	// Start HTTP server
	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	base := controller.New(conf)
	productCtr := controller.NewProductController(base, productService)
	harvestCtr := controller.NewHarvestController(base, harvestService)
	httpServer := gin.New()
	httpServer = httpAPI.InitRouter(httpServer, base, productCtr, harvestCtr)

	go func() {
		err = httpServer.Run(":" + conf.HTTPServer.Port)
		if err != nil {
			handleErr("listening to HTTP requests", err)
		}
	}()

	// Start metrics server
	metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down gracefully...")
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
