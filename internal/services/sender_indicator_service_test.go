package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"msme-carbon/internal/models"
	"msme-carbon/internal/repositories"
	"msme-carbon/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type SenderIndicatorServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *repository_mocks.MockSenderIndicatorRepositoryInterface
	registry *SectorRegistry
	metrics  *PrometheusMetrics
	logs     *bytes.Buffer
	service  SenderIndicatorServiceInterface
	ctx      context.Context
}

func TestSenderIndicatorServiceSuite(t *testing.T) {
	suite.Run(t, new(SenderIndicatorServiceSuite))
}

func (s *SenderIndicatorServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockSenderIndicatorRepositoryInterface(s.ctrl)

	registry, err := DefaultSectorRegistry()
	s.Require().NoError(err)
	s.registry = registry

	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)
	s.logs = &bytes.Buffer{}
	logger := NewClassificationLogger(slog.New(slog.NewJSONHandler(s.logs, nil)))

	s.service = NewSenderIndicatorService(s.repo, s.registry, s.metrics, logger)
	s.ctx = context.Background()
}

func (s *SenderIndicatorServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SenderIndicatorServiceSuite) TestAddIndicator_Success() {
	s.repo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, row *models.SenderIndicator) error {
			s.Equal("textiles", row.SectorKey)
			s.Equal("spinners", row.Indicator)
			s.True(row.Active)
			s.Equal("Surat cluster", row.Note)
			return nil
		})

	row, err := s.service.AddIndicator(s.ctx, models.SectorTextiles, "  SPINNERS ", " Surat cluster ")
	s.Require().NoError(err)
	s.Equal("spinners", row.Indicator)
}

func (s *SenderIndicatorServiceSuite) TestAddIndicator_OwnSectorTagIsAllowed() {
	s.repo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	_, err := s.service.AddIndicator(s.ctx, models.SectorTextiles, "textiles", "")
	s.NoError(err)
}

func (s *SenderIndicatorServiceSuite) TestAddIndicator_Rejected() {
	testCases := []struct {
		name      string
		sector    models.Sector
		indicator string
		wantErr   error
	}{
		{"catch-all sector", models.SectorOther, "misc", ErrUnclassifiableSector},
		{"undeclared sector", models.Sector(77), "misc", ErrUnclassifiableSector},
		{"empty tag", models.SectorTextiles, "  ", ErrInvalidIndicator},
		{"punctuation only", models.SectorTextiles, "--", ErrInvalidIndicator},
		{"two words", models.SectorTextiles, "silk mills", ErrInvalidIndicator},
		{"tag of another sector", models.SectorTextiles, "Motors", ErrIndicatorConflict},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			row, err := s.service.AddIndicator(s.ctx, tc.sector, tc.indicator, "")
			s.ErrorIs(err, tc.wantErr)
			s.Nil(row)
		})
	}
}

func (s *SenderIndicatorServiceSuite) TestAddIndicator_ConflictNamesOwner() {
	_, err := s.service.AddIndicator(s.ctx, models.SectorTextiles, "motors", "")
	s.EqualError(err, "sender indicator already identifies another sector: automotive")
}

func (s *SenderIndicatorServiceSuite) TestAddIndicator_RepositoryErrors() {
	s.Run("duplicate", func() {
		s.repo.EXPECT().Create(s.ctx, gomock.Any()).Return(repositories.ErrSenderIndicatorExists)
		_, err := s.service.AddIndicator(s.ctx, models.SectorHandicrafts, "potters", "")
		s.ErrorIs(err, ErrIndicatorExists)
	})

	s.Run("storage failure", func() {
		dbErr := errors.New("connection reset")
		s.repo.EXPECT().Create(s.ctx, gomock.Any()).Return(dbErr)
		_, err := s.service.AddIndicator(s.ctx, models.SectorHandicrafts, "potters", "")
		s.ErrorIs(err, dbErr)
	})
}

func (s *SenderIndicatorServiceSuite) TestListIndicators() {
	rows := []models.SenderIndicator{{SectorKey: "textiles", Indicator: "spinners", Active: true}}
	s.repo.EXPECT().ListAll(s.ctx).Return(rows, nil)

	result, err := s.service.ListIndicators(s.ctx)
	s.Require().NoError(err)
	s.Equal(rows, result)
}

func (s *SenderIndicatorServiceSuite) TestDeactivateIndicator() {
	s.repo.EXPECT().Deactivate(s.ctx, "spinners").Return(nil)
	s.NoError(s.service.DeactivateIndicator(s.ctx, "Spinners"))

	s.repo.EXPECT().Deactivate(s.ctx, "ghost").Return(repositories.ErrSenderIndicatorNotFound)
	s.ErrorIs(s.service.DeactivateIndicator(s.ctx, "ghost"), ErrIndicatorNotFound)
}

func (s *SenderIndicatorServiceSuite) TestRegistryOption_ExtendsRegistry() {
	s.repo.EXPECT().ListActive(s.ctx).Return([]models.SenderIndicator{
		{SectorKey: "textiles", Indicator: "spinners", Active: true},
		{SectorKey: "handicrafts", Indicator: "potters", Active: true},
	}, nil)

	option, count, err := s.service.RegistryOption(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)

	registry, err := DefaultSectorRegistry(option)
	s.Require().NoError(err)
	s.Contains(registry.Indicators(models.SectorTextiles), "spinners")
	s.Contains(registry.Indicators(models.SectorHandicrafts), "potters")

	result := NewClassifierService(registry).ClassifyIndustry("payment received", "VM-SPINNERS")
	s.Equal(models.SectorTextiles, result.Sector)
	s.Equal(models.MatchTypeMerchant, result.MatchType)

	s.Equal(2.0, testutil.ToFloat64(s.metrics.senderIndicatorsLoaded))
	s.Contains(s.logs.String(), `"msg":"sender indicators loaded"`)
	s.Contains(s.logs.String(), `"count":2`)
}

func (s *SenderIndicatorServiceSuite) TestRegistryOption_UndeclaredSector() {
	s.repo.EXPECT().ListActive(s.ctx).Return([]models.SenderIndicator{
		{SectorKey: "mining", Indicator: "quarry", Active: true},
	}, nil)

	option, count, err := s.service.RegistryOption(s.ctx)
	var cfgErr *ConfigurationError
	s.Require().ErrorAs(err, &cfgErr)
	s.Contains(cfgErr.Problems[0], `"mining"`)
	s.Nil(option)
	s.Zero(count)
}

func (s *SenderIndicatorServiceSuite) TestRegistryOption_RepositoryError() {
	s.repo.EXPECT().ListActive(s.ctx).Return(nil, errors.New("database is closed"))

	_, _, err := s.service.RegistryOption(s.ctx)
	s.EqualError(err, "database is closed")
	s.Empty(s.logs.String())
}
