package services

import (
	"reflect"
	"strings"
	"testing"

	"msme-carbon/internal/models"
	"msme-carbon/internal/testutil"

	"pgregory.net/rapid"
)

func mustDefaultRegistry(t testing.TB) *SectorRegistry {
	registry, err := DefaultSectorRegistry()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	return registry
}

func TestProperty_ClassificationIsPure(t *testing.T) {
	classifier := NewClassifierService(mustDefaultRegistry(t))

	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		sender := rapid.StringMatching(`[A-Z]{0,2}-?[A-Za-z]{0,10}`).Draw(t, "sender")

		first := classifier.ClassifyIndustry(text, sender)
		second := classifier.ClassifyIndustry(text, sender)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("classification of %q from %q is not repeatable", text, sender)
		}
	})
}

func TestProperty_ResultIsWellFormed(t *testing.T) {
	classifier := NewClassifierService(mustDefaultRegistry(t))

	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		result := classifier.ClassifyIndustry(text, "")

		if result.Confidence < 0 || result.Confidence > 1 {
			t.Fatalf("confidence %v out of range", result.Confidence)
		}
		if !result.Sector.IsValid() {
			t.Fatalf("undeclared sector %d", result.Sector)
		}
		if result.IsMatched() != (result.Sector != models.SectorOther) {
			t.Fatalf("match type %q disagrees with sector %s", result.MatchType, result.Sector)
		}
		if result.IsMatched() && result.CarbonWeightages == nil {
			t.Fatalf("matched sector %s has no weightages", result.Sector)
		}
		if len(result.ReasonCodes) == 0 {
			t.Fatalf("no reason codes")
		}
	})
}

func TestProperty_KeywordConfidenceIsMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(0, 1).Draw(t, "a")
		b := rapid.Float64Range(a, 1).Draw(t, "b")

		if ScoreConfidence(models.MatchTypeKeyword, a) > ScoreConfidence(models.MatchTypeKeyword, b) {
			t.Fatalf("score(%v) > score(%v)", a, b)
		}
	})
}

func TestProperty_ResolverAlwaysReturnsConfiguredEntry(t *testing.T) {
	registry := mustDefaultRegistry(t)
	resolver := NewWeightageResolver()
	var sectors []models.Sector
	for _, sector := range registry.Sectors() {
		if registry.Model(sector) != nil {
			sectors = append(sectors, sector)
		}
	}

	rapid.Check(t, func(t *rapid.T) {
		sector := rapid.SampledFrom(sectors).Draw(t, "sector")
		hint := rapid.OneOf(
			rapid.SampledFrom([]string{"north", "SOUTH", " east ", "w", "central", "default", ""}),
			rapid.String(),
		).Draw(t, "hint")

		model := registry.Model(sector)
		weightages, region := resolver.ResolveRegion(model, hint)

		expected, ok := model.Weightages[region]
		if !ok {
			t.Fatalf("resolved region %q has no entry for %s", region, sector)
		}
		if weightages != expected {
			t.Fatalf("weightages for %s/%s differ from the model", sector, region)
		}
		if _, known := models.ParseRegion(hint); !known && region != models.RegionDefault {
			t.Fatalf("unknown hint %q resolved to %s", hint, region)
		}
	})
}

func TestProperty_UniqueTermIsRecalled(t *testing.T) {
	registry := mustDefaultRegistry(t)
	classifier := NewClassifierService(registry)
	corpus := testutil.NewCorpus(1, registry.Vocabulary)

	type probe struct {
		sector models.Sector
		text   string
	}
	var probes []probe
	for _, sector := range registry.Sectors() {
		for _, term := range registry.Vocabulary(sector) {
			text := "Paid Rs 1200 for " + strings.ToUpper(term)
			if hits := corpus.Hits(text); len(hits) == 1 && hits[sector] > 0 {
				probes = append(probes, probe{sector: sector, text: text})
			}
		}
	}
	if len(probes) == 0 {
		t.Fatal("no sector owns a unique term")
	}

	rapid.Check(t, func(t *rapid.T) {
		p := rapid.SampledFrom(probes).Draw(t, "probe")
		text := p.text

		result := classifier.ClassifyIndustry(text, "VM-BANK")
		if result.Sector != p.sector {
			t.Fatalf("%q classified as %s, want %s", text, result.Sector, p.sector)
		}
		if result.MatchType != models.MatchTypeKeyword {
			t.Fatalf("%q matched by %q, want keyword", text, result.MatchType)
		}
	})
}

func TestProperty_TwoUniqueTermsAreRecalled(t *testing.T) {
	registry := mustDefaultRegistry(t)
	classifier := NewClassifierService(registry)
	corpus := testutil.NewCorpus(1, registry.Vocabulary)

	unique := make(map[models.Sector][]string)
	var sectors []models.Sector
	for _, sector := range registry.Sectors() {
		for _, term := range registry.Vocabulary(sector) {
			if hits := corpus.Hits(term); len(hits) == 1 && hits[sector] > 0 {
				unique[sector] = append(unique[sector], term)
			}
		}
		if len(unique[sector]) >= 2 {
			sectors = append(sectors, sector)
		}
	}
	if len(sectors) == 0 {
		t.Fatal("no sector owns two unique terms")
	}

	rapid.Check(t, func(t *rapid.T) {
		sector := rapid.SampledFrom(sectors).Draw(t, "sector")
		first := rapid.SampledFrom(unique[sector]).Draw(t, "first")
		second := rapid.SampledFrom(unique[sector]).Filter(func(s string) bool { return s != first }).Draw(t, "second")
		text := first + " and " + second

		hits := corpus.Hits(text)
		if len(hits) != 1 || hits[sector] < 2 {
			// the two terms together spelled out a term of another sector
			return
		}

		result := classifier.ClassifyIndustry(text, "")
		if result.Sector != sector || result.MatchType != models.MatchTypeKeyword {
			t.Fatalf("%q classified as %s/%q, want %s/keyword", text, result.Sector, result.MatchType, sector)
		}
	})
}

func TestProperty_MerchantTakesPrecedence(t *testing.T) {
	registry := mustDefaultRegistry(t)
	classifier := NewClassifierService(registry)
	engine := NewMatchEngine(registry, DefaultMinKeywordMatches)

	type tag struct {
		sector    models.Sector
		indicator string
	}
	var tags []tag
	for _, sector := range registry.Sectors() {
		for _, indicator := range registry.Indicators(sector) {
			if result := engine.MatchMerchant(NewMatchInput("", "AD-"+indicator)); result.Match != nil {
				tags = append(tags, tag{sector: sector, indicator: indicator})
			}
		}
	}

	rapid.Check(t, func(t *rapid.T) {
		merchant := rapid.SampledFrom(tags).Draw(t, "merchant")
		body := rapid.SampledFrom(registry.Vocabulary(models.SectorConstruction)).Draw(t, "body")

		result := classifier.ClassifyIndustry("Paid for "+body, "AD-"+merchant.indicator)
		if result.Sector != merchant.sector || result.MatchType != models.MatchTypeMerchant {
			t.Fatalf("sender %s with body %q classified as %s/%q", merchant.indicator, body, result.Sector, result.MatchType)
		}
		if result.Confidence != MerchantConfidence {
			t.Fatalf("merchant confidence %v", result.Confidence)
		}
	})
}

func TestProperty_SenderWithoutIndicatorIsNotMerchant(t *testing.T) {
	registry := mustDefaultRegistry(t)
	classifier := NewClassifierService(registry)

	known := make(map[string]bool)
	var indicators []string
	for _, sector := range registry.Sectors() {
		for _, indicator := range registry.Indicators(sector) {
			known[indicator] = true
			indicators = append(indicators, indicator)
		}
	}

	token := rapid.OneOf(
		rapid.StringMatching(`[a-z0-9]{2,12}`),
		// an indicator extended into a longer word, e.g. auto -> autopay
		rapid.Custom(func(t *rapid.T) string {
			return rapid.SampledFrom(indicators).Draw(t, "stem") + rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "suffix")
		}),
	).Filter(func(s string) bool { return !known[s] })

	rapid.Check(t, func(t *rapid.T) {
		tokens := rapid.SliceOfN(token, 1, 3).Draw(t, "tokens")
		prefix := rapid.SampledFrom([]string{"VM-", "AD-", "JD-", ""}).Draw(t, "prefix")
		sender := prefix + strings.ToUpper(strings.Join(tokens, "-"))

		result := classifier.ClassifyIndustry("Rs 5000 paid for yarn and fabric", sender)
		if result.MatchType == models.MatchTypeMerchant {
			t.Fatalf("sender %q matched merchant %q for %s", sender, result.Merchant, result.Sector)
		}
	})
}
