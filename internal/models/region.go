package models

import "strings"

// Region is a macro geographic zone used to select a weightage table
type Region string

const (
	RegionNorth   Region = "north"
	RegionSouth   Region = "south"
	RegionEast    Region = "east"
	RegionWest    Region = "west"
	RegionCentral Region = "central"
	RegionDefault Region = "default"
)

// MacroRegions returns the five recognised macro-regions, excluding the default fallback
func MacroRegions() []Region {
	return []Region{RegionNorth, RegionSouth, RegionEast, RegionWest, RegionCentral}
}

var regionAliases = map[string]Region{
	"north":         RegionNorth,
	"northern":      RegionNorth,
	"n":             RegionNorth,
	"north india":   RegionNorth,
	"south":         RegionSouth,
	"southern":      RegionSouth,
	"s":             RegionSouth,
	"south india":   RegionSouth,
	"east":          RegionEast,
	"eastern":       RegionEast,
	"e":             RegionEast,
	"east india":    RegionEast,
	"northeast":     RegionEast,
	"north east":    RegionEast,
	"west":          RegionWest,
	"western":       RegionWest,
	"w":             RegionWest,
	"west india":    RegionWest,
	"central":       RegionCentral,
	"c":             RegionCentral,
	"central india": RegionCentral,
}

// ParseRegion maps a region hint to one of the five macro-regions.
// The default fallback is not a parseable hint.
func ParseRegion(hint string) (Region, bool) {
	normalized := strings.Join(strings.Fields(strings.ToLower(strings.NewReplacer("-", " ", "_", " ").Replace(hint))), " ")
	region, ok := regionAliases[normalized]
	return region, ok
}
