package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		hint   string
		want   Region
		wantOK bool
	}{
		{hint: "north", want: RegionNorth, wantOK: true},
		{hint: "Northern", want: RegionNorth, wantOK: true},
		{hint: "  south   india ", want: RegionSouth, wantOK: true},
		{hint: "north-east", want: RegionEast, wantOK: true},
		{hint: "E", want: RegionEast, wantOK: true},
		{hint: "west_india", want: RegionWest, wantOK: true},
		{hint: "central", want: RegionCentral, wantOK: true},
		{hint: "default", wantOK: false},
		{hint: "", wantOK: false},
		{hint: "atlantis", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			got, ok := ParseRegion(tt.hint)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMacroRegions(t *testing.T) {
	regions := MacroRegions()
	assert.Len(t, regions, 5)
	assert.NotContains(t, regions, RegionDefault)
}

func TestCarbonWeightages(t *testing.T) {
	assert.True(t, CarbonWeightages{}.IsZero())
	assert.False(t, CarbonWeightages{Water: 0.1}.IsZero())
	assert.True(t, CarbonWeightages{Energy: 1, Waste: -0.1}.HasNegative())
	assert.False(t, CarbonWeightages{Energy: 1}.HasNegative())
}

func TestTransactionCategories(t *testing.T) {
	assert.Len(t, AllTransactionCategories(), 6)
	assert.True(t, IsValidTransactionCategory("utility"))
	assert.False(t, IsValidTransactionCategory("Utility"))
	assert.False(t, IsValidTransactionCategory("bribe"))
}

func TestSectorModel_HasVocabulary(t *testing.T) {
	assert.False(t, (&SectorModel{}).HasVocabulary())
	assert.False(t, (&SectorModel{Transactions: map[TransactionCategory][]string{TransactionSale: nil}}).HasVocabulary())
	assert.True(t, (&SectorModel{Transactions: map[TransactionCategory][]string{TransactionSale: {"invoice"}}}).HasVocabulary())
	assert.True(t, (&SectorModel{Outputs: []string{"bricks"}}).HasVocabulary())
}
