package services

import (
	"context"
	"time"

	"msme-carbon/internal/models"

	"github.com/shopspring/decimal"
)

// ClassifierServiceInterface is the classification entry point shared by the HTTP and CLI surfaces
type ClassifierServiceInterface interface {
	// ClassifyIndustry classifies a message, inferring the region from the message itself
	ClassifyIndustry(text, sender string) *models.ClassificationResult

	// ClassifyIndustryWithRegion classifies a message with an explicit region hint
	ClassifyIndustryWithRegion(ctx context.Context, text, sender, regionHint string) *models.ClassificationResult

	// GetIndustryInfo returns label, icon and color of a sector
	GetIndustryInfo(sector models.Sector) models.IndustryInfo

	// GetAllIndustries returns presentation data for every declared sector
	GetAllIndustries() []models.IndustryInfo

	// GetSectorModel returns a copy of a sector's vocabulary and weightage profile
	GetSectorModel(sector models.Sector) (*models.SectorModel, bool)
}

// CarbonAssessmentServiceInterface converts a transaction amount into weighted carbon impact
type CarbonAssessmentServiceInterface interface {
	Assess(ctx context.Context, result *models.ClassificationResult, amount decimal.Decimal, category models.TransactionCategory) (*models.CarbonAssessment, error)
}

// SenderIndicatorServiceInterface manages the configurable merchant indicator table
type SenderIndicatorServiceInterface interface {
	AddIndicator(ctx context.Context, sector models.Sector, indicator, note string) (*models.SenderIndicator, error)
	ListIndicators(ctx context.Context) ([]models.SenderIndicator, error)
	DeactivateIndicator(ctx context.Context, indicator string) error
	RegistryOption(ctx context.Context) (RegistryOption, int, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type ClassificationLoggerInterface interface {
	LogClassificationCompleted(ctx context.Context, result *models.ClassificationResult, durationMs int64)
	LogRegionDetected(ctx context.Context, region models.Region, place string)
	LogAssessmentCompleted(ctx context.Context, assessment *models.CarbonAssessment)
	LogSenderIndicatorsLoaded(ctx context.Context, count int, durationMs int64)
}
