package services

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"msme-carbon/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

const spoolExample = "Rs. 5000 paid to ABC Textiles Suppliers for yarn purchase order for weaving process at Surat."

type ClassifierServiceSuite struct {
	suite.Suite
	registry   *SectorRegistry
	classifier ClassifierServiceInterface
}

func TestClassifierServiceSuite(t *testing.T) {
	suite.Run(t, new(ClassifierServiceSuite))
}

func (s *ClassifierServiceSuite) SetupTest() {
	registry, err := DefaultSectorRegistry()
	s.Require().NoError(err)
	s.registry = registry
	s.classifier = NewClassifierService(registry)
}

func (s *ClassifierServiceSuite) TestClassifyIndustry_KeywordExample() {
	result := s.classifier.ClassifyIndustry(spoolExample, "BANK")

	s.Equal(models.SectorTextiles, result.Sector)
	s.Equal("Textiles", result.SectorLabel)
	s.Equal(models.MatchTypeKeyword, result.MatchType)
	s.Contains(result.MatchedKeywords, "yarn")
	s.Contains(result.MatchedKeywords, "weaving")
	s.Greater(result.Confidence, 0.3)
	s.True(result.IsMatched())

	s.Equal(models.RegionWest, result.Region)
	s.Require().NotNil(result.CarbonWeightages)
	s.Equal(s.registry.Model(models.SectorTextiles).Weightages[models.RegionWest], *result.CarbonWeightages)
	s.Require().NotNil(result.SectorModel)
	s.Equal(models.SectorTextiles, result.SectorModel.Sector)
	s.Contains(result.ReasonCodes, "region: west detected from surat")
}

func (s *ClassifierServiceSuite) TestClassifyIndustry_NoMatchExample() {
	result := s.classifier.ClassifyIndustry("asdf qwer zxcv", "")

	s.Equal(models.SectorOther, result.Sector)
	s.Equal("Other", result.SectorLabel)
	s.Equal(models.MatchTypeNone, result.MatchType)
	s.False(result.IsMatched())
	s.Equal(0.0, result.Confidence)
	s.NotNil(result.MatchedKeywords)
	s.Empty(result.MatchedKeywords)
	s.Nil(result.CarbonWeightages)
	s.Nil(result.SectorModel)
	s.Empty(result.Region)
	s.Equal("none: no matching signal", result.ReasonCodes[len(result.ReasonCodes)-1])
}

func (s *ClassifierServiceSuite) TestClassifyIndustry_MerchantExample() {
	for _, tag := range []string{"tex", "textile", "textiles", "fabrics", "weavers"} {
		s.Run(tag, func() {
			result := s.classifier.ClassifyIndustry("cement bricks and sand for site work", "AD-"+strings.ToUpper(tag))

			s.Equal(models.SectorTextiles, result.Sector)
			s.Equal(models.MatchTypeMerchant, result.MatchType)
			s.Equal(0.9, result.Confidence)
			s.Equal(tag, result.Merchant)
			s.Empty(result.MatchedKeywords)
		})
	}
}

func (s *ClassifierServiceSuite) TestClassifyIndustry_EmptyInput() {
	result := s.classifier.ClassifyIndustry("", "")
	s.Equal(models.SectorOther, result.Sector)
	s.Equal(0.0, result.Confidence)
	s.Len(result.ReasonCodes, 4)
}

func (s *ClassifierServiceSuite) TestClassifyIndustry_ProcessMatch() {
	result := s.classifier.ClassifyIndustry("redyeing charges", "")
	s.Equal(models.SectorTextiles, result.Sector)
	s.Equal(models.MatchTypeProcess, result.MatchType)
	s.Equal(0.4, result.Confidence)
	s.Equal("dyeing", result.Process)
}

func (s *ClassifierServiceSuite) TestClassifyIndustryWithRegion() {
	ctx := context.Background()
	model := s.registry.Model(models.SectorConstruction)

	testCases := []struct {
		name       string
		text       string
		hint       string
		wantRegion models.Region
		wantReason string
	}{
		{"explicit hint", "cement bricks", "south", models.RegionSouth, "region: hint south"},
		{"hint overrides detection", "cement bricks at Surat", "east", models.RegionEast, "region: hint east"},
		{"detection without hint", "cement bricks at Indore", "", models.RegionCentral, "region: central detected from indore"},
		{"no hint and no place", "cement bricks", "", models.RegionDefault, "region: no hint, using default"},
		{"unrecognised hint", "cement bricks", "atlantis", models.RegionDefault, `region: "atlantis" not recognised, using default`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.classifier.ClassifyIndustryWithRegion(ctx, tc.text, "", tc.hint)

			s.Equal(models.SectorConstruction, result.Sector)
			s.Equal(tc.wantRegion, result.Region)
			s.Equal(model.Weightages[tc.wantRegion], *result.CarbonWeightages)
			s.Equal(tc.wantReason, result.ReasonCodes[len(result.ReasonCodes)-1])
		})
	}
}

func (s *ClassifierServiceSuite) TestRegionDetectionDisabled() {
	classifier := NewClassifierService(s.registry, WithRegionDetection(false))

	result := classifier.ClassifyIndustry(spoolExample, "BANK")
	s.Equal(models.RegionDefault, result.Region)
	s.Contains(result.ReasonCodes, "region: no hint, using default")
}

func (s *ClassifierServiceSuite) TestWithMinKeywordMatches() {
	classifier := NewClassifierService(s.registry, WithMinKeywordMatches(2))

	s.Equal(models.SectorOther, classifier.ClassifyIndustry("cement", "").Sector)
	s.Equal(models.SectorConstruction, classifier.ClassifyIndustry("cement bricks", "").Sector)
}

func (s *ClassifierServiceSuite) TestResultIsOwnedByCaller() {
	first := s.classifier.ClassifyIndustry(spoolExample, "BANK")
	first.SectorModel.Processes[0] = "tampered"
	first.CarbonWeightages.Energy = 42
	first.MatchedKeywords[0] = "tampered"

	second := s.classifier.ClassifyIndustry(spoolExample, "BANK")
	s.NotEqual("tampered", second.SectorModel.Processes[0])
	s.NotEqual(42.0, second.CarbonWeightages.Energy)
	s.NotEqual("tampered", second.MatchedKeywords[0])
	s.NotEqual("tampered", s.registry.Model(models.SectorTextiles).Processes[0])
}

func (s *ClassifierServiceSuite) TestConcurrentCallsAgree() {
	expected := s.classifier.ClassifyIndustry(spoolExample, "BANK")

	var wg sync.WaitGroup
	results := make([]*models.ClassificationResult, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.classifier.ClassifyIndustry(spoolExample, "BANK")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		s.Equal(expected, r)
	}
}

func (s *ClassifierServiceSuite) TestGetAllIndustries() {
	industries := s.classifier.GetAllIndustries()
	s.Len(industries, models.SectorCount)

	seen := make(map[models.Sector]bool)
	for i, info := range industries {
		s.Equal(models.Sector(i), info.Key)
		s.False(seen[info.Key])
		seen[info.Key] = true
		s.NotEmpty(info.Label)
		s.NotEmpty(info.Icon)
		s.Regexp(`^#[0-9A-F]{6}$`, info.Color)
	}
}

func (s *ClassifierServiceSuite) TestGetIndustryInfo() {
	info := s.classifier.GetIndustryInfo(models.SectorLeather)
	s.Equal(models.SectorLeather, info.Key)
	s.Equal("Leather", info.Label)

	other := s.classifier.GetIndustryInfo(models.Sector(99))
	s.Equal(models.SectorOther, other.Key)
	s.Equal("Other", other.Label)
}

func (s *ClassifierServiceSuite) TestGetSectorModel() {
	model, ok := s.classifier.GetSectorModel(models.SectorPlastics)
	s.Require().True(ok)
	s.Equal("Plastics", model.Label)

	model.Processes[0] = "tampered"
	s.NotEqual("tampered", s.registry.Model(models.SectorPlastics).Processes[0])

	model, ok = s.classifier.GetSectorModel(models.SectorOther)
	s.False(ok)
	s.Nil(model)
}

func (s *ClassifierServiceSuite) TestRecordsMetricsAndLogs() {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)
	var buf bytes.Buffer
	logger := NewClassificationLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	classifier := NewClassifierService(s.registry,
		WithMetrics(metrics),
		WithClassificationLogger(logger),
	)

	ctx := WithCorrelationID(context.Background(), "corr-7")
	classifier.ClassifyIndustryWithRegion(ctx, spoolExample, "BANK", "")
	classifier.ClassifyIndustryWithRegion(ctx, "asdf", "", "")

	s.Equal(1.0, testutil.ToFloat64(metrics.classificationsTotal.WithLabelValues("textiles", "keyword")))
	s.Equal(1.0, testutil.ToFloat64(metrics.classificationsTotal.WithLabelValues("other", "none")))
	s.Equal(2, testutil.CollectAndCount(metrics.classificationsTotal))

	logs := buf.String()
	s.Contains(logs, `"msg":"classification completed"`)
	s.Contains(logs, `"msg":"region detected"`)
	s.Contains(logs, `"place":"surat"`)
	s.Contains(logs, `"match_type":"none"`)
	s.Contains(logs, `"correlation_id":"corr-7"`)
	s.NotContains(logs, "ABC Textiles", "message text is never logged")
}
