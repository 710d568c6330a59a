package observability

import (
	"fmt"

	"clinic-harvester/internal/models"

	"github.com/prometheus/client_golang/prometheus"
)

// Record outcomes counted by HarvestMetrics.
const (
	OutcomeAdmitted  = "admitted"
	OutcomeSkipped   = "skipped"
	OutcomeDuplicate = "duplicate"
)

// HarvestMetrics holds the counters of a single harvest run on a private registry,
// so a batch run can dump them to a textfile without a scrape endpoint.
type HarvestMetrics struct {
	Registry    *prometheus.Registry
	Records     *prometheus.CounterVec
	RowsWritten prometheus.Gauge
}

// NewHarvestMetrics registers the harvest collectors on a fresh registry.
func NewHarvestMetrics(source string) *HarvestMetrics {
	labels := prometheus.Labels{"source": source}
	m := &HarvestMetrics{
		Registry: prometheus.NewRegistry(),
		Records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "harvest_records_total",
				Help:        "Input records by filter outcome",
				ConstLabels: labels,
			},
			[]string{"outcome"},
		),
		RowsWritten: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "harvest_rows_written",
				Help:        "Rows written to the locations CSV by the last run",
				ConstLabels: labels,
			},
		),
	}
	m.Registry.MustRegister(m.Records, m.RowsWritten)
	return m
}

// Observe copies a finished run's summary into the collectors.
func (m *HarvestMetrics) Observe(s models.HarvestSummary) {
	admitted := s.Loaded - s.Skipped
	for reason, n := range s.Rejected {
		m.Records.WithLabelValues(reason).Add(float64(n))
		admitted -= n
	}
	m.Records.WithLabelValues(OutcomeSkipped).Add(float64(s.Skipped))
	m.Records.WithLabelValues(OutcomeAdmitted).Add(float64(admitted))
	m.Records.WithLabelValues(OutcomeDuplicate).Add(float64(s.Duplicates))
	m.RowsWritten.Set(float64(s.Rows))
}

// WriteTextfile dumps the registry in node_exporter textfile-collector format.
func (m *HarvestMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("observability: failed to write metrics file: %w", err)
	}
	return nil
}
