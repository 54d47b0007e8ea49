package services

import (
	"fmt"
	"sort"
	"strings"

	"msme-carbon/internal/models"
)

// DefaultMinKeywordMatches is the number of distinct vocabulary hits the keyword stage needs
const DefaultMinKeywordMatches = 1

// paymentChannelTags are sender tokens that name the channel or bank rather than the counterparty
var paymentChannelTags = map[string]bool{
	"bank": true, "bnk": true, "upi": true, "neft": true, "imps": true, "rtgs": true,
	"pos": true, "ach": true, "atm": true, "ecs": true, "nach": true, "pay": true,
	"payment": true, "payments": true, "txn": true, "alert": true, "alerts": true,
	"info": true, "sms": true, "noreply": true, "notify": true, "mail": true,
	"autopay": true, "autodebit": true, "mandate": true, "emi": true, "si": true,
	"ad": true, "ax": true, "bp": true, "bz": true, "dm": true, "jd": true,
	"jm": true, "tm": true, "vk": true, "vm": true,
}

// MatchInput is a message prepared once for all stages
type MatchInput struct {
	Text         string
	Sender       string
	normalized   string
	padded       string
	senderTokens []string
	senderEmpty  bool
}

// NewMatchInput normalizes text and sender for matching
func NewMatchInput(text, sender string) *MatchInput {
	normalized := normalizeText(text)
	in := &MatchInput{
		Text:       text,
		Sender:     sender,
		normalized: normalized,
		padded:     " " + normalized + " ",
	}
	senderWords := strings.Fields(normalizeText(sender))
	in.senderEmpty = len(senderWords) == 0
	for _, token := range senderWords {
		if paymentChannelTags[token] {
			continue
		}
		in.senderTokens = append(in.senderTokens, token)
	}
	return in
}

// StageMatch is the accepted outcome of a single matching stage
type StageMatch struct {
	Sector          models.Sector
	MatchType       models.MatchType
	MatchedKeywords []string
	Merchant        string
	Process         string
	Coverage        float64
}

// StageResult is what a strategy returns: a match when it accepts, and always a reason code
type StageResult struct {
	Match         *StageMatch
	Reason        string
	KeywordCounts []models.KeywordCount
}

// MatchStrategy is one stage of the matching cascade
type MatchStrategy func(in *MatchInput) StageResult

// MatchOutcome is the result of running the cascade
type MatchOutcome struct {
	Match         *StageMatch
	KeywordCounts []models.KeywordCount
	ReasonCodes   []string
}

// MatchEngine runs the merchant, keyword and process strategies in strict precedence order
type MatchEngine struct {
	registry          *SectorRegistry
	minKeywordMatches int
	strategies        []MatchStrategy
}

// NewMatchEngine creates a match engine over a validated registry
func NewMatchEngine(registry *SectorRegistry, minKeywordMatches int) *MatchEngine {
	if minKeywordMatches < 1 {
		minKeywordMatches = DefaultMinKeywordMatches
	}
	e := &MatchEngine{
		registry:          registry,
		minKeywordMatches: minKeywordMatches,
	}
	e.strategies = []MatchStrategy{e.MatchMerchant, e.MatchKeywords, e.MatchProcess}
	return e
}

// Strategies returns the cascade in precedence order
func (e *MatchEngine) Strategies() []MatchStrategy {
	return append([]MatchStrategy(nil), e.strategies...)
}

// Match runs every strategy until one accepts
func (e *MatchEngine) Match(text, sender string) *MatchOutcome {
	in := NewMatchInput(text, sender)
	outcome := &MatchOutcome{}

	for _, strategy := range e.strategies {
		result := strategy(in)
		outcome.ReasonCodes = append(outcome.ReasonCodes, result.Reason)
		if result.KeywordCounts != nil {
			outcome.KeywordCounts = result.KeywordCounts
		}
		if result.Match != nil {
			outcome.Match = result.Match
			return outcome
		}
	}

	outcome.ReasonCodes = append(outcome.ReasonCodes, "none: no matching signal")
	return outcome
}

// MatchMerchant accepts when the remaining sender tokens identify exactly one sector.
// A token identifies a sector only when it equals one of its indicators.
func (e *MatchEngine) MatchMerchant(in *MatchInput) StageResult {
	if strings.TrimSpace(in.Sender) == "" {
		return StageResult{Reason: "merchant: no sender"}
	}
	if in.senderEmpty {
		return StageResult{Reason: "merchant: sender has no tokens"}
	}
	if len(in.senderTokens) == 0 {
		return StageResult{Reason: "merchant: sender is a payment channel only"}
	}

	var hitSectors []models.Sector
	best := make(map[models.Sector]string)
	for _, sector := range e.registry.Sectors() {
		for _, indicator := range e.registry.indicators[sector] {
			if senderHasIndicator(in.senderTokens, indicator) {
				hitSectors = append(hitSectors, sector)
				best[sector] = indicator
				break
			}
		}
	}

	switch len(hitSectors) {
	case 0:
		return StageResult{Reason: "merchant: no indicator match"}
	case 1:
		sector := hitSectors[0]
		return StageResult{
			Match: &StageMatch{
				Sector:    sector,
				MatchType: models.MatchTypeMerchant,
				Merchant:  best[sector],
			},
			Reason: fmt.Sprintf("merchant: %s matched %s", best[sector], sector),
		}
	default:
		names := make([]string, len(hitSectors))
		for i, s := range hitSectors {
			names[i] = s.String()
		}
		return StageResult{Reason: fmt.Sprintf("merchant: ambiguous indicator (%s)", strings.Join(names, ","))}
	}
}

func senderHasIndicator(tokens []string, indicator string) bool {
	for _, token := range tokens {
		if token == indicator {
			return true
		}
	}
	return false
}

type keywordHit struct {
	term     string
	position int
	order    int
}

// MatchKeywords counts distinct vocabulary hits per sector and accepts the best sector
// when it clears the threshold. Ties go to the sector declared first.
func (e *MatchEngine) MatchKeywords(in *MatchInput) StageResult {
	if in.normalized == "" {
		return StageResult{Reason: "keyword: empty text"}
	}

	var counts []models.KeywordCount
	bestSector := models.SectorOther
	var bestHits []keywordHit

	for _, sector := range e.registry.Sectors() {
		var hits []keywordHit
		for i, term := range e.registry.vocabulary[sector] {
			if pos := strings.Index(in.padded, " "+term.normalized); pos >= 0 {
				hits = append(hits, keywordHit{term: term.normalized, position: pos, order: i})
			}
		}
		if len(hits) == 0 {
			continue
		}
		counts = append(counts, models.KeywordCount{Sector: sector, Count: len(hits)})
		if len(hits) > len(bestHits) {
			bestSector = sector
			bestHits = hits
		}
	}

	if len(bestHits) < e.minKeywordMatches {
		reason := "keyword: no vocabulary hit"
		if len(bestHits) > 0 {
			reason = fmt.Sprintf("keyword: %s=%d<%d", bestSector, len(bestHits), e.minKeywordMatches)
		}
		return StageResult{Reason: reason, KeywordCounts: counts}
	}

	sort.SliceStable(bestHits, func(i, j int) bool {
		if bestHits[i].position != bestHits[j].position {
			return bestHits[i].position < bestHits[j].position
		}
		return bestHits[i].order < bestHits[j].order
	})
	matched := make([]string, len(bestHits))
	for i, h := range bestHits {
		matched[i] = h.term
	}

	coverage := 0.0
	if size := len(e.registry.vocabulary[bestSector]); size > 0 {
		coverage = float64(len(bestHits)) / float64(size)
	}

	return StageResult{
		Match: &StageMatch{
			Sector:          bestSector,
			MatchType:       models.MatchTypeKeyword,
			MatchedKeywords: matched,
			Coverage:        coverage,
		},
		Reason:        fmt.Sprintf("keyword: %s=%d>=%d", bestSector, len(bestHits), e.minKeywordMatches),
		KeywordCounts: counts,
	}
}

// MatchProcess looks for any process name as a literal substring. The longest hit wins.
func (e *MatchEngine) MatchProcess(in *MatchInput) StageResult {
	if in.normalized == "" {
		return StageResult{Reason: "process: empty text"}
	}

	var best *StageMatch
	bestLen := 0
	for _, sector := range e.registry.Sectors() {
		for _, process := range e.registry.processes[sector] {
			if len(process.normalized) > bestLen && strings.Contains(in.normalized, process.normalized) {
				bestLen = len(process.normalized)
				best = &StageMatch{
					Sector:    sector,
					MatchType: models.MatchTypeProcess,
					Process:   process.original,
				}
			}
		}
	}

	if best == nil {
		return StageResult{Reason: "process: no substring hit"}
	}
	return StageResult{
		Match:  best,
		Reason: fmt.Sprintf("process: %s matched %s", best.Process, best.Sector),
	}
}
