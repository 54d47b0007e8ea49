package models

// MatchType names the matching strategy that produced a classification
type MatchType string

const (
	MatchTypeMerchant MatchType = "merchant"
	MatchTypeKeyword  MatchType = "keyword"
	MatchTypeProcess  MatchType = "process"
	MatchTypeNone     MatchType = ""
)

// KeywordCount is the number of distinct vocabulary terms of a sector found in a message
type KeywordCount struct {
	Sector Sector `json:"sector" yaml:"sector"`
	Count  int    `json:"count" yaml:"count"`
}

// ClassificationResult is created fresh per classification call and owned by the caller
type ClassificationResult struct {
	Sector           Sector            `json:"sector" yaml:"sector"`
	SectorLabel      string            `json:"sectorLabel" yaml:"sectorLabel"`
	Confidence       float64           `json:"confidence" yaml:"confidence"`
	MatchType        MatchType         `json:"matchType,omitempty" yaml:"matchType,omitempty"`
	MatchedKeywords  []string          `json:"matchedKeywords" yaml:"matchedKeywords"`
	Merchant         string            `json:"merchant,omitempty" yaml:"merchant,omitempty"`
	Process          string            `json:"process,omitempty" yaml:"process,omitempty"`
	Region           Region            `json:"region,omitempty" yaml:"region,omitempty"`
	SectorModel      *SectorModel      `json:"sectorModel,omitempty" yaml:"sectorModel,omitempty"`
	CarbonWeightages *CarbonWeightages `json:"carbonWeightages,omitempty" yaml:"carbonWeightages,omitempty"`
	KeywordCounts    []KeywordCount    `json:"keywordCounts,omitempty" yaml:"keywordCounts,omitempty"`
	ReasonCodes      []string          `json:"reasonCodes" yaml:"reasonCodes"`
}

// IsMatched reports whether any matching stage accepted the message
func (r *ClassificationResult) IsMatched() bool {
	return r.MatchType != MatchTypeNone
}

// IndustryInfo is the presentation data of a sector
type IndustryInfo struct {
	Key   Sector `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
}
