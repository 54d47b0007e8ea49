package services

import (
	"context"
	"errors"

	"msme-carbon/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount             = errors.New("amount cannot be negative")
	ErrClassificationNil          = errors.New("classification result cannot be nil")
	ErrInvalidTransactionCategory = errors.New("invalid transaction category")
)

// assessmentPrecision is the number of decimal places kept in per-dimension scores
const assessmentPrecision = 4

type carbonAssessmentService struct {
	metrics MetricsRecorderInterface
	logger  ClassificationLoggerInterface
}

// NewCarbonAssessmentService creates a new CarbonAssessmentServiceInterface instance.
// metrics and logger may be nil.
func NewCarbonAssessmentService(metrics MetricsRecorderInterface, logger ClassificationLoggerInterface) CarbonAssessmentServiceInterface {
	return &carbonAssessmentService{
		metrics: metrics,
		logger:  logger,
	}
}

// Assess weights a transaction amount by the classification's carbon weightages.
// A result without weightages yields a zero assessment.
func (s *carbonAssessmentService) Assess(ctx context.Context, result *models.ClassificationResult, amount decimal.Decimal, category models.TransactionCategory) (*models.CarbonAssessment, error) {
	if result == nil {
		return nil, ErrClassificationNil
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if category != "" && !models.IsValidTransactionCategory(string(category)) {
		return nil, ErrInvalidTransactionCategory
	}

	assessment := &models.CarbonAssessment{
		Sector:      result.Sector,
		Region:      result.Region,
		Category:    category,
		Amount:      amount,
		Energy:      decimal.Zero,
		Transport:   decimal.Zero,
		Materials:   decimal.Zero,
		Waste:       decimal.Zero,
		Water:       decimal.Zero,
		ImpactIndex: decimal.Zero,
		Confidence:  result.Confidence,
	}

	if w := result.CarbonWeightages; w != nil {
		assessment.Energy = weigh(amount, w.Energy)
		assessment.Transport = weigh(amount, w.Transport)
		assessment.Materials = weigh(amount, w.Materials)
		assessment.Waste = weigh(amount, w.Waste)
		assessment.Water = weigh(amount, w.Water)
		assessment.ImpactIndex = assessment.Energy.
			Add(assessment.Transport).
			Add(assessment.Materials).
			Add(assessment.Waste).
			Add(assessment.Water)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("assessment_completed", map[string]string{"sector": result.Sector.String()})
	}
	if s.logger != nil {
		s.logger.LogAssessmentCompleted(ctx, assessment)
	}
	return assessment, nil
}

func weigh(amount decimal.Decimal, coefficient float64) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(coefficient)).Round(assessmentPrecision)
}
