package services

import (
	"strings"

	"msme-carbon/internal/models"
)

// minSenderRegionTagLength keeps one-letter aliases such as "n" from matching sender noise
const minSenderRegionTagLength = 4

// RegionDetector infers a region hint from place names in the message text or region tags in the sender
type RegionDetector struct {
	places map[string]models.Region
}

// NewRegionDetector creates a region detector over the built-in place table
func NewRegionDetector() *RegionDetector {
	return &RegionDetector{places: initPlaceRegions()}
}

// Detect returns the region and the place or tag that produced it.
// Sender tags win over text; within text the earliest place wins.
func (d *RegionDetector) Detect(text, sender string) (models.Region, string, bool) {
	for _, token := range strings.Fields(normalizeText(sender)) {
		if len(token) >= minSenderRegionTagLength {
			if region, ok := models.ParseRegion(token); ok {
				return region, token, true
			}
		}
		if region, ok := d.places[token]; ok {
			return region, token, true
		}
	}

	padded := " " + normalizeText(text) + " "
	bestPos := -1
	var bestPlace string
	var bestRegion models.Region
	for place, region := range d.places {
		pos := strings.Index(padded, " "+place+" ")
		if pos < 0 {
			continue
		}
		if bestPos < 0 || pos < bestPos || (pos == bestPos && len(place) > len(bestPlace)) {
			bestPos = pos
			bestPlace = place
			bestRegion = region
		}
	}
	if bestPos < 0 {
		return "", "", false
	}
	return bestRegion, bestPlace, true
}

// initPlaceRegions maps MSME cluster cities and states to macro-regions
func initPlaceRegions() map[string]models.Region {
	return map[string]models.Region{
		// North
		"delhi":         models.RegionNorth,
		"new delhi":     models.RegionNorth,
		"noida":         models.RegionNorth,
		"gurgaon":       models.RegionNorth,
		"gurugram":      models.RegionNorth,
		"ludhiana":      models.RegionNorth,
		"jalandhar":     models.RegionNorth,
		"panipat":       models.RegionNorth,
		"kanpur":        models.RegionNorth,
		"lucknow":       models.RegionNorth,
		"agra":          models.RegionNorth,
		"moradabad":     models.RegionNorth,
		"jaipur":        models.RegionNorth,
		"punjab":        models.RegionNorth,
		"haryana":       models.RegionNorth,
		"uttar pradesh": models.RegionNorth,

		// South
		"chennai":    models.RegionSouth,
		"coimbatore": models.RegionSouth,
		"tiruppur":   models.RegionSouth,
		"bengaluru":  models.RegionSouth,
		"bangalore":  models.RegionSouth,
		"hyderabad":  models.RegionSouth,
		"kochi":      models.RegionSouth,
		"madurai":    models.RegionSouth,
		"mysuru":     models.RegionSouth,
		"tamil nadu": models.RegionSouth,
		"karnataka":  models.RegionSouth,
		"kerala":     models.RegionSouth,
		"telangana":  models.RegionSouth,

		// East
		"kolkata":     models.RegionEast,
		"howrah":      models.RegionEast,
		"bhubaneswar": models.RegionEast,
		"patna":       models.RegionEast,
		"ranchi":      models.RegionEast,
		"jamshedpur":  models.RegionEast,
		"guwahati":    models.RegionEast,
		"west bengal": models.RegionEast,
		"odisha":      models.RegionEast,
		"assam":       models.RegionEast,

		// West
		"surat":       models.RegionWest,
		"ahmedabad":   models.RegionWest,
		"rajkot":      models.RegionWest,
		"vadodara":    models.RegionWest,
		"mumbai":      models.RegionWest,
		"pune":        models.RegionWest,
		"bhiwandi":    models.RegionWest,
		"kolhapur":    models.RegionWest,
		"morbi":       models.RegionWest,
		"gujarat":     models.RegionWest,
		"maharashtra": models.RegionWest,
		"goa":         models.RegionWest,

		// Central
		"indore":         models.RegionCentral,
		"bhopal":         models.RegionCentral,
		"nagpur":         models.RegionCentral,
		"raipur":         models.RegionCentral,
		"jabalpur":       models.RegionCentral,
		"gwalior":        models.RegionCentral,
		"madhya pradesh": models.RegionCentral,
		"chhattisgarh":   models.RegionCentral,
	}
}
