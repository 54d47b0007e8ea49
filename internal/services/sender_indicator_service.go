package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"msme-carbon/internal/models"
	"msme-carbon/internal/repositories"
)

var (
	ErrInvalidIndicator     = errors.New("sender indicator must be a single word")
	ErrUnclassifiableSector = errors.New("sector cannot carry sender indicators")
	ErrIndicatorConflict    = errors.New("sender indicator already identifies another sector")
	ErrIndicatorExists      = errors.New("sender indicator already exists")
	ErrIndicatorNotFound    = errors.New("sender indicator not found")
)

type senderIndicatorService struct {
	repo     repositories.SenderIndicatorRepositoryInterface
	registry *SectorRegistry
	metrics  MetricsRecorderInterface
	logger   ClassificationLoggerInterface
}

// NewSenderIndicatorService manages configured indicators checked against the given registry.
// metrics and logger may be nil.
func NewSenderIndicatorService(
	repo repositories.SenderIndicatorRepositoryInterface,
	registry *SectorRegistry,
	metrics MetricsRecorderInterface,
	logger ClassificationLoggerInterface,
) SenderIndicatorServiceInterface {
	return &senderIndicatorService{
		repo:     repo,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// AddIndicator stores a new indicator after checking it cannot make the registry invalid
func (s *senderIndicatorService) AddIndicator(ctx context.Context, sector models.Sector, indicator, note string) (*models.SenderIndicator, error) {
	if !sector.IsValid() || sector == models.SectorOther {
		return nil, ErrUnclassifiableSector
	}

	normalized := normalizeText(indicator)
	if normalized == "" || strings.Contains(normalized, " ") {
		return nil, ErrInvalidIndicator
	}

	for _, other := range s.registry.Sectors() {
		if other == sector {
			continue
		}
		for _, existing := range s.registry.indicators[other] {
			if existing == normalized {
				return nil, fmt.Errorf("%w: %s", ErrIndicatorConflict, other)
			}
		}
	}

	row := &models.SenderIndicator{
		SectorKey: sector.String(),
		Indicator: normalized,
		Active:    true,
		Note:      strings.TrimSpace(note),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		if errors.Is(err, repositories.ErrSenderIndicatorExists) {
			return nil, ErrIndicatorExists
		}
		return nil, err
	}

	return row, nil
}

func (s *senderIndicatorService) ListIndicators(ctx context.Context) ([]models.SenderIndicator, error) {
	return s.repo.ListAll(ctx)
}

func (s *senderIndicatorService) DeactivateIndicator(ctx context.Context, indicator string) error {
	err := s.repo.Deactivate(ctx, normalizeText(indicator))
	if errors.Is(err, repositories.ErrSenderIndicatorNotFound) {
		return ErrIndicatorNotFound
	}
	return err
}

// RegistryOption loads every active indicator into a registry option.
// Rows naming an undeclared sector are reported as a ConfigurationError.
func (s *senderIndicatorService) RegistryOption(ctx context.Context) (RegistryOption, int, error) {
	start := time.Now()

	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, 0, err
	}

	cfgErr := &ConfigurationError{}
	indicators := make(map[models.Sector][]string)
	for i := range rows {
		sector, ok := rows[i].Sector()
		if !ok {
			cfgErr.add("sender indicator %q has undeclared sector %q", rows[i].Indicator, rows[i].SectorKey)
			continue
		}
		indicators[sector] = append(indicators[sector], rows[i].Indicator)
	}
	if len(cfgErr.Problems) > 0 {
		return nil, 0, cfgErr
	}

	if s.metrics != nil {
		s.metrics.RecordGauge("sender_indicators_loaded", float64(len(rows)), nil)
	}
	if s.logger != nil {
		s.logger.LogSenderIndicatorsLoaded(ctx, len(rows), time.Since(start).Milliseconds())
	}

	return WithSenderIndicators(indicators), len(rows), nil
}
