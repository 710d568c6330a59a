package main

import (
	"context"
	"net/http"

	"clinic-harvester/internal/config"
	"clinic-harvester/internal/handler"
	"clinic-harvester/internal/logger"
	"clinic-harvester/internal/observability"
	"clinic-harvester/internal/repository"
	"clinic-harvester/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(config.LogLevel, config.LogFormat)

	// Harvested data
	locations, err := repository.NewCSVStore(config.LocationsCSV).ReadLocations(context.Background())
	if err != nil {
		log.Fatal().Err(err).Str("path", config.LocationsCSV).Msg("cannot load locations")
	}

	// Initialize layers
	repo := repository.NewMemoryRepository(locations)
	log.Info().Int("locations", repo.Count()).Str("path", config.LocationsCSV).Msg("loaded locations")

	locationService := service.NewLocationService(repo)
	nearestService := service.NewNearestService(repo)

	locationHandler := handler.NewLocationHandler(locationService)
	nearestHandler := handler.NewNearestHandler(nearestService)

	metrics := observability.NewAPIMetrics()

	r := gin.Default()
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/locations", locationHandler.Search)
	r.GET("/locations/postcode/:postcode", locationHandler.ByPostcode)
	r.GET("/nearest", nearestHandler.Nearest)
	r.GET("/metrics", metrics.Handler())

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
