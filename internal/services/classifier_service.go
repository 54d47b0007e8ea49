package services

import (
	"context"
	"fmt"
	"time"

	"msme-carbon/internal/models"
)

type classifierService struct {
	registry     *SectorRegistry
	engine       *MatchEngine
	resolver     *WeightageResolver
	detector     *RegionDetector
	detectRegion bool
	metrics      MetricsRecorderInterface
	logger       ClassificationLoggerInterface
}

// ClassifierOption configures the classifier service
type ClassifierOption func(*classifierService)

// WithMinKeywordMatches sets the number of distinct vocabulary hits the keyword stage needs
func WithMinKeywordMatches(n int) ClassifierOption {
	return func(s *classifierService) {
		s.engine = NewMatchEngine(s.registry, n)
	}
}

// WithRegionDetection enables inferring the region from place names when no hint is given
func WithRegionDetection(enabled bool) ClassifierOption {
	return func(s *classifierService) {
		s.detectRegion = enabled
	}
}

// WithMetrics records classification counters and durations
func WithMetrics(metrics MetricsRecorderInterface) ClassifierOption {
	return func(s *classifierService) {
		s.metrics = metrics
	}
}

// WithClassificationLogger emits a structured event per classification
func WithClassificationLogger(logger ClassificationLoggerInterface) ClassifierOption {
	return func(s *classifierService) {
		s.logger = logger
	}
}

// NewClassifierService creates the classifier over a validated registry.
// The returned service is safe for concurrent use and is meant to be shared.
func NewClassifierService(registry *SectorRegistry, opts ...ClassifierOption) ClassifierServiceInterface {
	s := &classifierService{
		registry:     registry,
		engine:       NewMatchEngine(registry, DefaultMinKeywordMatches),
		resolver:     NewWeightageResolver(),
		detector:     NewRegionDetector(),
		detectRegion: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClassifyIndustry classifies a message, inferring the region from the message itself.
// It always returns a result; unmatched input yields sector other with confidence 0.
func (s *classifierService) ClassifyIndustry(text, sender string) *models.ClassificationResult {
	return s.ClassifyIndustryWithRegion(context.Background(), text, sender, "")
}

// ClassifyIndustryWithRegion classifies a message with an explicit region hint.
// An empty hint falls back to region detection when it is enabled.
func (s *classifierService) ClassifyIndustryWithRegion(ctx context.Context, text, sender, regionHint string) *models.ClassificationResult {
	start := time.Now()

	outcome := s.engine.Match(text, sender)
	result := &models.ClassificationResult{
		Sector:          models.SectorOther,
		SectorLabel:     s.registry.label(models.SectorOther),
		Confidence:      ScoreConfidence(models.MatchTypeNone, 0),
		MatchedKeywords: []string{},
		KeywordCounts:   outcome.KeywordCounts,
		ReasonCodes:     outcome.ReasonCodes,
	}

	if match := outcome.Match; match != nil {
		result.Sector = match.Sector
		result.SectorLabel = s.registry.label(match.Sector)
		result.MatchType = match.MatchType
		result.Confidence = ScoreConfidence(match.MatchType, match.Coverage)
		result.Merchant = match.Merchant
		result.Process = match.Process
		if len(match.MatchedKeywords) > 0 {
			result.MatchedKeywords = append([]string(nil), match.MatchedKeywords...)
		}

		if model := s.registry.Model(match.Sector); model != nil {
			hint, reason := s.regionHint(ctx, text, sender, regionHint)
			weightages, region := s.resolver.ResolveRegion(model, hint)
			if region == models.RegionDefault && hint != "" {
				reason = fmt.Sprintf("region: %q not recognised, using default", hint)
			}
			result.SectorModel = cloneSectorModel(model)
			result.CarbonWeightages = &weightages
			result.Region = region
			result.ReasonCodes = append(result.ReasonCodes, reason)
		}
	}

	s.record(ctx, result, time.Since(start))
	return result
}

// regionHint returns the hint to resolve with and the reason code describing where it came from
func (s *classifierService) regionHint(ctx context.Context, text, sender, explicit string) (string, string) {
	if explicit != "" {
		return explicit, fmt.Sprintf("region: hint %s", explicit)
	}
	if s.detectRegion {
		if region, place, ok := s.detector.Detect(text, sender); ok {
			if s.logger != nil {
				s.logger.LogRegionDetected(ctx, region, place)
			}
			return string(region), fmt.Sprintf("region: %s detected from %s", region, place)
		}
	}
	return "", "region: no hint, using default"
}

func (s *classifierService) record(ctx context.Context, result *models.ClassificationResult, duration time.Duration) {
	if s.metrics != nil {
		s.metrics.IncrementCounter("classification_completed", map[string]string{
			"sector":     result.Sector.String(),
			"match_type": matchTypeLabel(result.MatchType),
		})
		s.metrics.RecordProcessingTime("classification", duration)
		s.metrics.RecordGauge("classification_confidence", result.Confidence, nil)
	}
	if s.logger != nil {
		s.logger.LogClassificationCompleted(ctx, result, duration.Milliseconds())
	}
}

// GetIndustryInfo returns the presentation data of a sector.
// Undeclared sectors are reported as other.
func (s *classifierService) GetIndustryInfo(sector models.Sector) models.IndustryInfo {
	return s.registry.industryInfo(sector)
}

// GetAllIndustries returns presentation data for every declared sector in declaration order
func (s *classifierService) GetAllIndustries() []models.IndustryInfo {
	sectors := s.registry.Sectors()
	infos := make([]models.IndustryInfo, 0, len(sectors))
	for _, sector := range sectors {
		infos = append(infos, s.registry.industryInfo(sector))
	}
	return infos
}

// GetSectorModel returns a copy of the sector model; false for other and undeclared sectors
func (s *classifierService) GetSectorModel(sector models.Sector) (*models.SectorModel, bool) {
	model := s.registry.Model(sector)
	if model == nil {
		return nil, false
	}
	return cloneSectorModel(model), true
}
