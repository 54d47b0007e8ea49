package services

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"msme-carbon/internal/models"
)

// minDerivedIndicatorLength keeps short vocabulary words out of the sender indicator set
const minDerivedIndicatorLength = 4

// ConfigurationError reports every defect found while validating the sector catalog.
// It is fatal: a registry is never returned alongside it.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid sector configuration: %s", strings.Join(e.Problems, "; "))
}

func (e *ConfigurationError) add(format string, args ...interface{}) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// vocabularyTerm is a normalized term with the spelling it was declared with
type vocabularyTerm struct {
	normalized string
	original   string
}

// SectorRegistry is the validated, read-only sector catalog.
// All lookups are indexed by Sector; nothing is mutated after NewSectorRegistry returns.
type SectorRegistry struct {
	models     [models.SectorCount]*models.SectorModel
	vocabulary [models.SectorCount][]vocabularyTerm
	processes  [models.SectorCount][]vocabularyTerm
	indicators [models.SectorCount][]string
}

// RegistryOption configures registry construction
type RegistryOption func(*registryOptions)

type registryOptions struct {
	senderIndicators map[models.Sector][]string
}

// WithSenderIndicators adds explicit sender indicator tags. Repeated options are merged.
func WithSenderIndicators(indicators map[models.Sector][]string) RegistryOption {
	return func(o *registryOptions) {
		for sector, tags := range indicators {
			o.senderIndicators[sector] = append(o.senderIndicators[sector], tags...)
		}
	}
}

// DefaultSectorRegistry builds the registry from the built-in catalog
func DefaultSectorRegistry(opts ...RegistryOption) (*SectorRegistry, error) {
	opts = append([]RegistryOption{WithSenderIndicators(defaultIndicatorTags())}, opts...)
	return NewSectorRegistry(defaultSectorModels(), opts...)
}

// NewSectorRegistry validates the sector models and freezes them into a registry.
// Every declared sector except SectorOther must be present exactly once.
func NewSectorRegistry(sectorModels []models.SectorModel, opts ...RegistryOption) (*SectorRegistry, error) {
	options := &registryOptions{senderIndicators: make(map[models.Sector][]string)}
	for _, opt := range opts {
		opt(options)
	}

	cfgErr := &ConfigurationError{}
	r := &SectorRegistry{}

	for i := range sectorModels {
		m := sectorModels[i]
		if !m.Sector.IsValid() {
			cfgErr.add("model %d has undeclared sector %d", i, uint8(m.Sector))
			continue
		}
		if m.Sector == models.SectorOther {
			cfgErr.add("sector %s is the catch-all and cannot carry a model", m.Sector)
			continue
		}
		if r.models[m.Sector] != nil {
			cfgErr.add("duplicate sector %s", m.Sector)
			continue
		}
		validateModel(&m, cfgErr)
		r.models[m.Sector] = cloneSectorModel(&m)
	}

	for _, sector := range models.AllSectors() {
		if sector == models.SectorOther {
			continue
		}
		if r.models[sector] == nil {
			cfgErr.add("sector %s has no model", sector)
		}
	}

	for sector := range options.senderIndicators {
		if !sector.IsValid() || sector == models.SectorOther {
			cfgErr.add("sender indicators assigned to unclassifiable sector %s", sector)
		}
	}

	if len(cfgErr.Problems) > 0 {
		return nil, cfgErr
	}

	for _, sector := range models.AllSectors() {
		m := r.models[sector]
		if m == nil {
			continue
		}
		r.vocabulary[sector] = buildVocabulary(m)
		r.processes[sector] = normalizeTerms(m.Processes)
	}

	if err := r.buildIndicators(options.senderIndicators); err != nil {
		return nil, err
	}

	return r, nil
}

func validateModel(m *models.SectorModel, cfgErr *ConfigurationError) {
	if strings.TrimSpace(m.Label) == "" {
		cfgErr.add("sector %s has no label", m.Sector)
	}
	if !m.HasVocabulary() {
		cfgErr.add("sector %s has an empty vocabulary", m.Sector)
	}
	for category := range m.Transactions {
		if !models.IsValidTransactionCategory(string(category)) {
			cfgErr.add("sector %s has unknown transaction category %q", m.Sector, category)
		}
	}

	for _, region := range models.MacroRegions() {
		w, ok := m.Weightages[region]
		if !ok {
			cfgErr.add("sector %s has no weightages for region %s", m.Sector, region)
			continue
		}
		if w.HasNegative() {
			cfgErr.add("sector %s has negative weightages for region %s", m.Sector, region)
		}
	}

	def, ok := m.Weightages[models.RegionDefault]
	switch {
	case !ok:
		cfgErr.add("sector %s has no default weightages", m.Sector)
	case def.IsZero():
		cfgErr.add("sector %s has an empty default weightage entry", m.Sector)
	case def.HasNegative():
		cfgErr.add("sector %s has negative default weightages", m.Sector)
	}

	for region := range m.Weightages {
		if region != models.RegionDefault && !isMacroRegion(region) {
			cfgErr.add("sector %s has weightages for unknown region %q", m.Sector, region)
		}
	}
}

func isMacroRegion(region models.Region) bool {
	for _, r := range models.MacroRegions() {
		if r == region {
			return true
		}
	}
	return false
}

// buildIndicators derives the merchant indicator vocabulary. Explicit tags always win;
// derived single-word terms are kept only when exactly one sector claims them.
func (r *SectorRegistry) buildIndicators(explicit map[models.Sector][]string) error {
	cfgErr := &ConfigurationError{}
	owner := make(map[string]models.Sector)

	for _, sector := range models.AllSectors() {
		for _, tag := range explicit[sector] {
			normalized := normalizeText(tag)
			if normalized == "" || strings.Contains(normalized, " ") {
				cfgErr.add("sender indicator %q for sector %s must be a single word", tag, sector)
				continue
			}
			if existing, ok := owner[normalized]; ok && existing != sector {
				cfgErr.add("sender indicator %q assigned to both %s and %s", normalized, existing, sector)
				continue
			}
			owner[normalized] = sector
		}
	}
	if len(cfgErr.Problems) > 0 {
		return cfgErr
	}

	claims := make(map[string][]models.Sector)
	for _, sector := range models.AllSectors() {
		m := r.models[sector]
		if m == nil {
			continue
		}
		seen := make(map[string]bool)
		for _, term := range derivedIndicatorSource(m) {
			normalized := normalizeText(term)
			if len(normalized) < minDerivedIndicatorLength || strings.Contains(normalized, " ") || seen[normalized] {
				continue
			}
			seen[normalized] = true
			claims[normalized] = append(claims[normalized], sector)
		}
	}
	for term, sectors := range claims {
		if _, taken := owner[term]; taken || len(sectors) != 1 {
			continue
		}
		owner[term] = sectors[0]
	}

	for term, sector := range owner {
		r.indicators[sector] = append(r.indicators[sector], term)
	}
	for _, sector := range models.AllSectors() {
		// longest first so the most specific indicator is reported
		sort.Slice(r.indicators[sector], func(i, j int) bool {
			a, b := r.indicators[sector][i], r.indicators[sector][j]
			if len(a) != len(b) {
				return len(a) > len(b)
			}
			return a < b
		})
	}
	return nil
}

func derivedIndicatorSource(m *models.SectorModel) []string {
	terms := append([]string{}, m.Processes...)
	for _, category := range models.AllTransactionCategories() {
		terms = append(terms, m.Transactions[category]...)
	}
	return terms
}

// buildVocabulary returns the deduplicated union of all vocabulary sequences in declaration order
func buildVocabulary(m *models.SectorModel) []vocabularyTerm {
	all := make([]string, 0)
	all = append(all, m.Processes...)
	all = append(all, m.Machinery...)
	all = append(all, m.Inputs...)
	all = append(all, m.Outputs...)
	for _, category := range models.AllTransactionCategories() {
		all = append(all, m.Transactions[category]...)
	}
	return normalizeTerms(all)
}

func normalizeTerms(terms []string) []vocabularyTerm {
	result := make([]vocabularyTerm, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		normalized := normalizeText(term)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		result = append(result, vocabularyTerm{normalized: normalized, original: term})
	}
	return result
}

// normalizeText lower-cases s, turns every rune that is not a letter or digit into a
// separator and collapses runs of separators into single spaces
func normalizeText(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

func cloneSectorModel(m *models.SectorModel) *models.SectorModel {
	clone := *m
	clone.Processes = append([]string(nil), m.Processes...)
	clone.Machinery = append([]string(nil), m.Machinery...)
	clone.Inputs = append([]string(nil), m.Inputs...)
	clone.Outputs = append([]string(nil), m.Outputs...)
	clone.Transactions = make(map[models.TransactionCategory][]string, len(m.Transactions))
	for category, keywords := range m.Transactions {
		clone.Transactions[category] = append([]string(nil), keywords...)
	}
	clone.Weightages = make(map[models.Region]models.CarbonWeightages, len(m.Weightages))
	for region, w := range m.Weightages {
		clone.Weightages[region] = w
	}
	return &clone
}

// Sectors returns every declared sector in declaration order, SectorOther included
func (r *SectorRegistry) Sectors() []models.Sector {
	return models.AllSectors()
}

// Model returns the sector model. It is nil only for SectorOther, which carries no vocabulary.
// The returned model is shared and must not be modified.
func (r *SectorRegistry) Model(sector models.Sector) *models.SectorModel {
	if !sector.IsValid() {
		return nil
	}
	return r.models[sector]
}

// Models returns copies of every sector model in declaration order
func (r *SectorRegistry) Models() []models.SectorModel {
	result := make([]models.SectorModel, 0, models.SectorCount-1)
	for _, m := range r.models {
		if m != nil {
			result = append(result, *cloneSectorModel(m))
		}
	}
	return result
}

// Vocabulary returns the normalized vocabulary of a sector
func (r *SectorRegistry) Vocabulary(sector models.Sector) []string {
	if !sector.IsValid() {
		return nil
	}
	terms := make([]string, len(r.vocabulary[sector]))
	for i, t := range r.vocabulary[sector] {
		terms[i] = t.normalized
	}
	return terms
}

// Indicators returns the sender indicator vocabulary of a sector, longest first
func (r *SectorRegistry) Indicators(sector models.Sector) []string {
	if !sector.IsValid() {
		return nil
	}
	return append([]string(nil), r.indicators[sector]...)
}
