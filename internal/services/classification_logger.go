package services

import (
	"context"
	"log/slog"
	"time"

	"msme-carbon/internal/models"
)

type contextKey string

// CorrelationIDKey is the context key under which handlers store the request trace ID
const CorrelationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a context carrying the correlation ID used in log events
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

// ClassificationLogger provides structured logging for classification and assessment events.
// Message text is never logged; it can carry account numbers and balances.
type ClassificationLogger struct {
	logger *slog.Logger
}

// NewClassificationLogger creates a new classification logger
func NewClassificationLogger(logger *slog.Logger) ClassificationLoggerInterface {
	return &ClassificationLogger{
		logger: logger,
	}
}

func (cl *ClassificationLogger) LogClassificationCompleted(ctx context.Context, result *models.ClassificationResult, durationMs int64) {
	cl.logger.InfoContext(ctx, "classification completed",
		slog.String("event_type", "classification_completed"),
		slog.String("sector", result.Sector.String()),
		slog.String("match_type", matchTypeLabel(result.MatchType)),
		slog.Float64("confidence", result.Confidence),
		slog.String("region", string(result.Region)),
		slog.Int("reason_count", len(result.ReasonCodes)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (cl *ClassificationLogger) LogRegionDetected(ctx context.Context, region models.Region, place string) {
	cl.logger.DebugContext(ctx, "region detected",
		slog.String("event_type", "region_detected"),
		slog.String("region", string(region)),
		slog.String("place", place),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (cl *ClassificationLogger) LogAssessmentCompleted(ctx context.Context, assessment *models.CarbonAssessment) {
	cl.logger.InfoContext(ctx, "carbon assessment completed",
		slog.String("event_type", "assessment_completed"),
		slog.String("sector", assessment.Sector.String()),
		slog.String("region", string(assessment.Region)),
		slog.String("category", string(assessment.Category)),
		slog.String("impact_index", assessment.ImpactIndex.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (cl *ClassificationLogger) LogSenderIndicatorsLoaded(ctx context.Context, count int, durationMs int64) {
	cl.logger.InfoContext(ctx, "sender indicators loaded",
		slog.String("event_type", "sender_indicators_loaded"),
		slog.Int("count", count),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

func matchTypeLabel(matchType models.MatchType) string {
	if matchType == models.MatchTypeNone {
		return "none"
	}
	return string(matchType)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
