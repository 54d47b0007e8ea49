package models

import (
	"fmt"
	"strings"
)

// Sector identifies one of the fixed MSME industry sectors. The set is closed;
// values outside AllSectors never leave this package through ParseSector.
type Sector uint8

// Sectors in declaration order. Declaration order drives enumeration and keyword tie-breaking.
const (
	SectorManufacturing Sector = iota
	SectorTrading
	SectorTextiles
	SectorLogistics
	SectorFoodProcessing
	SectorAgriculture
	SectorConstruction
	SectorChemicals
	SectorPharmaceuticals
	SectorElectronics
	SectorAutomotive
	SectorHandicrafts
	SectorPrintingPackaging
	SectorPlastics
	SectorMetalFabrication
	SectorLeather
	SectorFurniture
	SectorRetail
	SectorHospitality
	SectorITServices
	SectorOther

	// SectorCount is the number of declared sectors
	SectorCount = int(SectorOther) + 1
)

var sectorKeys = [SectorCount]string{
	SectorManufacturing:     "manufacturing",
	SectorTrading:           "trading",
	SectorTextiles:          "textiles",
	SectorLogistics:         "logistics",
	SectorFoodProcessing:    "food_processing",
	SectorAgriculture:       "agriculture",
	SectorConstruction:      "construction",
	SectorChemicals:         "chemicals",
	SectorPharmaceuticals:   "pharmaceuticals",
	SectorElectronics:       "electronics",
	SectorAutomotive:        "automotive",
	SectorHandicrafts:       "handicrafts",
	SectorPrintingPackaging: "printing_packaging",
	SectorPlastics:          "plastics",
	SectorMetalFabrication:  "metal_fabrication",
	SectorLeather:           "leather",
	SectorFurniture:         "furniture",
	SectorRetail:            "retail",
	SectorHospitality:       "hospitality",
	SectorITServices:        "it_services",
	SectorOther:             "other",
}

// AllSectors returns every declared sector in declaration order
func AllSectors() []Sector {
	sectors := make([]Sector, SectorCount)
	for i := range sectors {
		sectors[i] = Sector(i)
	}
	return sectors
}

// IsValid reports whether s is a declared sector
func (s Sector) IsValid() bool {
	return int(s) < SectorCount
}

// String returns the stable key of the sector
func (s Sector) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("sector(%d)", uint8(s))
	}
	return sectorKeys[s]
}

// ParseSector maps a sector key to its Sector. Matching ignores case, surrounding
// whitespace and the hyphen/space variants of the underscore.
func ParseSector(key string) (Sector, bool) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	for i, k := range sectorKeys {
		if k == normalized {
			return Sector(i), true
		}
	}
	return SectorOther, false
}

// IsValidSector checks if a sector key is declared
func IsValidSector(key string) bool {
	_, ok := ParseSector(key)
	return ok
}

// MarshalText encodes the sector as its key
func (s Sector) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid sector %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a sector key
func (s *Sector) UnmarshalText(text []byte) error {
	sector, ok := ParseSector(string(text))
	if !ok {
		return fmt.Errorf("unknown sector %q", string(text))
	}
	*s = sector
	return nil
}
