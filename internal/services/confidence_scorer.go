package services

import (
	"math"

	"msme-carbon/internal/models"
)

// Confidence values per match type
const (
	MerchantConfidence     = 0.9
	ProcessConfidence      = 0.4
	NoMatchConfidence      = 0.0
	KeywordBaseConfidence  = 0.3
	KeywordCoverageWeight  = 0.6
	KeywordFloorConfidence = 0.3
	KeywordCeilConfidence  = 0.9
)

// ScoreConfidence maps a match type and its coverage ratio to a score in [0, 1].
// Coverage is only used for keyword matches.
func ScoreConfidence(matchType models.MatchType, coverageRatio float64) float64 {
	switch matchType {
	case models.MatchTypeMerchant:
		return MerchantConfidence
	case models.MatchTypeKeyword:
		score := KeywordBaseConfidence + KeywordCoverageWeight*clamp(coverageRatio, 0, 1)
		return clamp(score, KeywordFloorConfidence, KeywordCeilConfidence)
	case models.MatchTypeProcess:
		return ProcessConfidence
	default:
		return NoMatchConfidence
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
