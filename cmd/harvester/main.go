package main

import (
	"context"
	"fmt"

	"clinic-harvester/internal/config"
	"clinic-harvester/internal/logger"
	"clinic-harvester/internal/observability"
	"clinic-harvester/internal/repository"
	"clinic-harvester/internal/service"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	source := repository.NewJSONSource(cfg.InputPath)
	store := repository.NewCSVStore(cfg.OutputPath)
	classifier := service.NewClassifier(cfg.SourceTag, cfg.DenyList())

	harvestService := service.NewHarvestService(source, store, classifier)

	summary, err := harvestService.Harvest(context.Background())
	if err != nil {
		log.Fatal().Err(err).Str("input", cfg.InputPath).Msg("harvest failed")
	}

	fmt.Println(service.SummaryLine(summary))

	if cfg.MetricsFile != "" {
		metrics := observability.NewHarvestMetrics(cfg.SourceTag)
		metrics.Observe(summary)
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error().Err(err).Str("path", cfg.MetricsFile).Msg("cannot write metrics file")
		}
	}
}
