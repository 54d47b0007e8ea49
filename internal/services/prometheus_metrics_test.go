package services

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.IncrementCounter("classification_completed", map[string]string{"sector": "textiles", "match_type": "keyword"})
	metrics.IncrementCounter("classification_completed", map[string]string{"sector": "textiles", "match_type": "keyword"})
	metrics.IncrementCounter("assessment_completed", map[string]string{"sector": "leather"})
	metrics.IncrementCounter("unknown_event", nil)

	expected := `
# HELP carbon_assessments_total Total number of carbon assessments by sector
# TYPE carbon_assessments_total counter
carbon_assessments_total{sector="leather"} 1
# HELP industry_classifications_total Total number of industry classifications by sector and match type
# TYPE industry_classifications_total counter
industry_classifications_total{match_type="keyword",sector="textiles"} 2
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"industry_classifications_total", "carbon_assessments_total")
	require.NoError(t, err)
}

func TestPrometheusMetrics_HistogramsAndGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.RecordProcessingTime("classification", 150*time.Microsecond)
	metrics.RecordProcessingTime("other", time.Second)
	metrics.RecordGauge("classification_confidence", 0.9, nil)
	metrics.RecordGauge("sender_indicators_loaded", 12, nil)

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.classificationDuration))
	assert.Equal(t, 12.0, testutil.ToFloat64(metrics.senderIndicatorsLoaded))

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		switch family.GetName() {
		case "industry_classification_duration_microseconds":
			assert.Equal(t, uint64(1), family.GetMetric()[0].GetHistogram().GetSampleCount())
			assert.Equal(t, 150.0, family.GetMetric()[0].GetHistogram().GetSampleSum())
		case "industry_classification_confidence":
			assert.Equal(t, 0.9, family.GetMetric()[0].GetHistogram().GetSampleSum())
		}
	}
}

func TestPrometheusMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusMetrics(reg)

	assert.Panics(t, func() { NewPrometheusMetrics(reg) })
}
