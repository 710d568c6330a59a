package service

import (
	"context"
	"fmt"

	"clinic-harvester/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RecordSource interface for dependency injection
type RecordSource interface {
	LoadRecords(ctx context.Context) ([]models.RawRecord, int, error)
}

// LocationSink interface for dependency injection
type LocationSink interface {
	WriteLocations(ctx context.Context, locations []models.Location) error
	Path() string
}

// HarvestService runs the load, filter, dedupe and write pipeline once per call
type HarvestService struct {
	source     RecordSource
	sink       LocationSink
	classifier *Classifier
}

// NewHarvestService creates a new harvest service
func NewHarvestService(source RecordSource, sink LocationSink, classifier *Classifier) *HarvestService {
	return &HarvestService{source: source, sink: sink, classifier: classifier}
}

// Harvest loads every raw record, keeps the UK ones, drops duplicates and writes the
// sorted result. Nothing is written when loading fails.
func (s *HarvestService) Harvest(ctx context.Context) (models.HarvestSummary, error) {
	logger := log.With().Str("run_id", uuid.NewString()).Logger()

	summary := models.HarvestSummary{
		Path:     s.sink.Path(),
		Rejected: map[string]int{},
	}

	records, skipped, err := s.source.LoadRecords(ctx)
	if err != nil {
		return summary, fmt.Errorf("service: failed to load records: %w", err)
	}
	summary.Loaded = len(records) + skipped
	summary.Skipped = skipped
	logger.Info().Int("records", len(records)).Int("skipped", skipped).Msg("loaded source records")

	admitted := make([]models.Location, 0, len(records))
	for i, raw := range records {
		loc, verdict := s.classifier.Classify(raw)
		if verdict != Admitted {
			summary.Rejected[verdict.String()]++
			logger.Debug().Int("index", i).Str("reason", verdict.String()).Msg("record rejected")
			continue
		}
		admitted = append(admitted, loc)
	}

	locations, duplicates := Dedupe(admitted)
	summary.Duplicates = duplicates
	SortLocations(locations)

	logger.Info().
		Int("admitted", len(admitted)).
		Int("duplicates", duplicates).
		Interface("rejected", summary.Rejected).
		Msg("filtered records")

	if err := s.sink.WriteLocations(ctx, locations); err != nil {
		return summary, fmt.Errorf("service: failed to write locations: %w", err)
	}

	summary.Rows = len(locations)
	for _, loc := range locations {
		if loc.Postcode != "" {
			summary.WithPostcode++
		}
	}
	logger.Info().Str("path", summary.Path).Int("rows", summary.Rows).Msg("wrote locations")

	return summary, nil
}

// SummaryLine renders the one-line report printed after a successful run.
func SummaryLine(s models.HarvestSummary) string {
	return fmt.Sprintf("WROTE: %s rows: %d (with_postcode=%d)", s.Path, s.Rows, s.WithPostcode)
}
