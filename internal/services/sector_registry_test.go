package services

import (
	"testing"

	"msme-carbon/internal/models"

	"github.com/stretchr/testify/suite"
)

type SectorRegistrySuite struct {
	suite.Suite
	registry *SectorRegistry
}

func TestSectorRegistrySuite(t *testing.T) {
	suite.Run(t, new(SectorRegistrySuite))
}

func (s *SectorRegistrySuite) SetupTest() {
	registry, err := DefaultSectorRegistry()
	s.Require().NoError(err)
	s.registry = registry
}

func (s *SectorRegistrySuite) TestDefaultCatalogIsComplete() {
	s.Len(s.registry.Sectors(), models.SectorCount)
	s.Len(s.registry.Models(), models.SectorCount-1)

	for _, sector := range models.AllSectors() {
		if sector == models.SectorOther {
			s.Nil(s.registry.Model(sector))
			s.Empty(s.registry.Vocabulary(sector))
			continue
		}
		model := s.registry.Model(sector)
		s.Require().NotNil(model, sector.String())
		s.Equal(sector, model.Sector)
		s.NotEmpty(s.registry.Vocabulary(sector), sector.String())
		for _, region := range append(models.MacroRegions(), models.RegionDefault) {
			_, ok := model.Weightages[region]
			s.True(ok, "%s missing %s", sector, region)
		}
	}
}

func (s *SectorRegistrySuite) TestSectorsFollowDeclarationOrder() {
	sectors := s.registry.Sectors()
	s.Equal(models.SectorManufacturing, sectors[0])
	s.Equal(models.SectorOther, sectors[len(sectors)-1])
	for i, sector := range sectors {
		s.Equal(models.Sector(i), sector)
	}
}

func (s *SectorRegistrySuite) TestModelOutOfRange() {
	s.Nil(s.registry.Model(models.Sector(200)))
	s.Nil(s.registry.Vocabulary(models.Sector(200)))
	s.Nil(s.registry.Indicators(models.Sector(200)))
}

func (s *SectorRegistrySuite) TestVocabularyIsDeduplicatedUnion() {
	vocabulary := s.registry.Vocabulary(models.SectorTextiles)

	s.Equal("weaving", vocabulary[0])
	s.Contains(vocabulary, "power loom")
	s.Contains(vocabulary, "yarn")
	s.Contains(vocabulary, "grey cloth")
	s.Contains(vocabulary, "loom repair")

	seen := make(map[string]bool)
	for _, term := range vocabulary {
		s.False(seen[term], "duplicate term %q", term)
		seen[term] = true
	}
}

func (s *SectorRegistrySuite) TestIndicators() {
	s.Run("explicit tags are kept", func() {
		indicators := s.registry.Indicators(models.SectorTextiles)
		s.Contains(indicators, "tex")
		s.Contains(indicators, "weavers")
		s.Contains(s.registry.Indicators(models.SectorHandicrafts), "handloom")
	})

	s.Run("single-word process terms are derived", func() {
		s.Contains(s.registry.Indicators(models.SectorTextiles), "dyeing")
		s.Contains(s.registry.Indicators(models.SectorLeather), "tanning")
	})

	s.Run("short and multi-word terms are not derived", func() {
		s.NotContains(s.registry.Indicators(models.SectorElectronics), "pcb")
		s.NotContains(s.registry.Indicators(models.SectorTextiles), "raw cotton")
	})

	s.Run("longest first", func() {
		indicators := s.registry.Indicators(models.SectorTextiles)
		for i := 1; i < len(indicators); i++ {
			s.GreaterOrEqual(len(indicators[i-1]), len(indicators[i]))
		}
	})

	s.Run("other has none", func() {
		s.Empty(s.registry.Indicators(models.SectorOther))
	})
}

func (s *SectorRegistrySuite) TestWithSenderIndicators() {
	registry, err := DefaultSectorRegistry(WithSenderIndicators(map[models.Sector][]string{
		models.SectorTextiles: {"Spinners"},
	}))
	s.Require().NoError(err)
	s.Contains(registry.Indicators(models.SectorTextiles), "spinners")
}

func (s *SectorRegistrySuite) TestModelsReturnsCopies() {
	all := s.registry.Models()
	all[0].Processes[0] = "tampered"
	all[0].Weightages[models.RegionDefault] = models.CarbonWeightages{}

	model := s.registry.Model(all[0].Sector)
	s.NotEqual("tampered", model.Processes[0])
	s.False(model.Weightages[models.RegionDefault].IsZero())
}

func validModel(sector models.Sector) models.SectorModel {
	return models.SectorModel{
		Sector:    sector,
		Label:     sector.String(),
		Processes: []string{sector.String() + " process"},
		Weightages: regionalWeightages(models.CarbonWeightages{
			Energy: 0.2, Transport: 0.2, Materials: 0.2, Waste: 0.2, Water: 0.2,
		}),
	}
}

func validModels() []models.SectorModel {
	var result []models.SectorModel
	for _, sector := range models.AllSectors() {
		if sector != models.SectorOther {
			result = append(result, validModel(sector))
		}
	}
	return result
}

func (s *SectorRegistrySuite) TestNewSectorRegistryValidation() {
	testCases := []struct {
		name    string
		mutate  func([]models.SectorModel) []models.SectorModel
		opts    []RegistryOption
		problem string
	}{
		{
			name: "duplicate sector",
			mutate: func(m []models.SectorModel) []models.SectorModel {
				return append(m, validModel(models.SectorTextiles))
			},
			problem: "duplicate sector textiles",
		},
		{
			name: "missing sector",
			mutate: func(m []models.SectorModel) []models.SectorModel {
				return m[1:]
			},
			problem: "sector manufacturing has no model",
		},
		{
			name: "empty vocabulary",
			mutate: func(m []models.SectorModel) []models.SectorModel {
				m[2].Processes = nil
				return m
			},
			problem: "sector textiles has an empty vocabulary",
		},
		{
			name: "missing region",
			mutate: func(m []models.SectorModel) []models.SectorModel {
				delete(m[3].Weightages, models.RegionEast)
				return m
			},
			problem: "sector logistics has no weightages for region east",
		},
		{
			name: "missing default",
			mutate: func(m []models.SectorModel) []models.SectorModel {
				delete(m[0].Weightages, models.RegionDefault)
				return m
			},
			problem: "sector manufacturing has no default weightages",
		},
		{
			name: "zero default",
			mutate: func(m []models.SectorModel) []models.SectorModel {
				m[0].Weightages[models.RegionDefault] = models.CarbonWeightages{}
				return m
			},
			problem: "sector manufacturing has an empty default weightage entry",
		},
		{
			name: "negative coefficient",
			mutate: func(m []models.SectorModel) []models.SectorModel {
				m[0].Weightages[models.RegionNorth] = models.CarbonWeightages{Energy: -0.1}
				return m
			},
			problem: "sector manufacturing has negative weightages for region north",
		},
		{
			name: "model for other",
			mutate: func(m []models.SectorModel) []models.SectorModel {
				return append(m, validModel(models.SectorOther))
			},
			problem: "sector other is the catch-all and cannot carry a model",
		},
		{
			name: "unknown transaction category",
			mutate: func(m []models.SectorModel) []models.SectorModel {
				m[0].Transactions = map[models.TransactionCategory][]string{"gift": {"hamper"}}
				return m
			},
			problem: `sector manufacturing has unknown transaction category "gift"`,
		},
		{
			name:    "indicators for other",
			mutate:  func(m []models.SectorModel) []models.SectorModel { return m },
			opts:    []RegistryOption{WithSenderIndicators(map[models.Sector][]string{models.SectorOther: {"misc"}})},
			problem: "sender indicators assigned to unclassifiable sector other",
		},
		{
			name:    "conflicting indicators",
			mutate:  func(m []models.SectorModel) []models.SectorModel { return m },
			opts:    []RegistryOption{WithSenderIndicators(map[models.Sector][]string{models.SectorTextiles: {"tex"}, models.SectorLeather: {"tex"}})},
			problem: `sender indicator "tex" assigned to both textiles and leather`,
		},
		{
			name:    "multi-word indicator",
			mutate:  func(m []models.SectorModel) []models.SectorModel { return m },
			opts:    []RegistryOption{WithSenderIndicators(map[models.Sector][]string{models.SectorTextiles: {"silk house"}})},
			problem: `sender indicator "silk house" for sector textiles must be a single word`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			registry, err := NewSectorRegistry(tc.mutate(validModels()), tc.opts...)
			s.Nil(registry)
			s.Require().Error(err)

			var cfgErr *ConfigurationError
			s.Require().ErrorAs(err, &cfgErr)
			s.Contains(cfgErr.Problems, tc.problem)
		})
	}
}

func (s *SectorRegistrySuite) TestConfigurationErrorReportsEveryProblem() {
	m := validModels()
	m[0].Processes = nil
	delete(m[1].Weightages, models.RegionDefault)

	_, err := NewSectorRegistry(m)
	var cfgErr *ConfigurationError
	s.Require().ErrorAs(err, &cfgErr)
	s.Len(cfgErr.Problems, 2)
	s.Contains(err.Error(), "invalid sector configuration")
}

func (s *SectorRegistrySuite) TestValidModelsBuild() {
	registry, err := NewSectorRegistry(validModels())
	s.Require().NoError(err)
	s.Equal([]string{"textiles process"}, registry.Vocabulary(models.SectorTextiles))
}
