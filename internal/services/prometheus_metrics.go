package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	classificationsTotal     *prometheus.CounterVec
	classificationDuration   prometheus.Histogram
	classificationConfidence prometheus.Histogram
	assessmentsTotal         *prometheus.CounterVec
	senderIndicatorsLoaded   prometheus.Gauge
}

// NewPrometheusMetrics registers the classifier metrics with reg.
// Pass prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		classificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "industry_classifications_total",
				Help: "Total number of industry classifications by sector and match type",
			},
			[]string{"sector", "match_type"},
		),
		classificationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "industry_classification_duration_microseconds",
				Help:    "Industry classification duration in microseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		classificationConfidence: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "industry_classification_confidence",
				Help:    "Distribution of classification confidence",
				Buckets: []float64{0, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
			},
		),
		assessmentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carbon_assessments_total",
				Help: "Total number of carbon assessments by sector",
			},
			[]string{"sector"},
		),
		senderIndicatorsLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "sender_indicators_loaded",
				Help: "Number of configured sender indicators loaded at startup",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "classification_completed":
		m.classificationsTotal.WithLabelValues(tags["sector"], tags["match_type"]).Inc()
	case "assessment_completed":
		m.assessmentsTotal.WithLabelValues(tags["sector"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "classification":
		m.classificationDuration.Observe(float64(duration.Microseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "classification_confidence":
		m.classificationConfidence.Observe(value)
	case "sender_indicators_loaded":
		m.senderIndicatorsLoaded.Set(value)
	}
}
