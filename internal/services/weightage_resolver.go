package services

import "msme-carbon/internal/models"

// WeightageResolver selects the regional weightage entry of a sector model
type WeightageResolver struct{}

// NewWeightageResolver creates a new weightage resolver
func NewWeightageResolver() *WeightageResolver {
	return &WeightageResolver{}
}

// Resolve returns the weightages for the hinted region, or the model's default entry
// when the hint is absent or unrecognised. It never fails.
func (r *WeightageResolver) Resolve(model *models.SectorModel, regionHint string) models.CarbonWeightages {
	weightages, _ := r.ResolveRegion(model, regionHint)
	return weightages
}

// ResolveRegion is Resolve that also reports which table entry was used
func (r *WeightageResolver) ResolveRegion(model *models.SectorModel, regionHint string) (models.CarbonWeightages, models.Region) {
	if model == nil {
		return models.CarbonWeightages{}, models.RegionDefault
	}
	if region, ok := models.ParseRegion(regionHint); ok {
		if weightages, ok := model.Weightages[region]; ok {
			return weightages, region
		}
	}
	return model.Weightages[models.RegionDefault], models.RegionDefault
}
