package services

import "msme-carbon/internal/models"

type industryPresentation struct {
	icon  string
	color string
}

var industryPresentations = [models.SectorCount]industryPresentation{
	models.SectorManufacturing:     {icon: "🏭", color: "#4A5568"},
	models.SectorTrading:           {icon: "🤝", color: "#3182CE"},
	models.SectorTextiles:          {icon: "🧵", color: "#D53F8C"},
	models.SectorLogistics:         {icon: "🚚", color: "#DD6B20"},
	models.SectorFoodProcessing:    {icon: "🍲", color: "#38A169"},
	models.SectorAgriculture:       {icon: "🌾", color: "#68D391"},
	models.SectorConstruction:      {icon: "🏗️", color: "#B7791F"},
	models.SectorChemicals:         {icon: "⚗️", color: "#805AD5"},
	models.SectorPharmaceuticals:   {icon: "💊", color: "#E53E3E"},
	models.SectorElectronics:       {icon: "🔌", color: "#2B6CB0"},
	models.SectorAutomotive:        {icon: "🚗", color: "#2D3748"},
	models.SectorHandicrafts:       {icon: "🏺", color: "#C05621"},
	models.SectorPrintingPackaging: {icon: "📦", color: "#975A16"},
	models.SectorPlastics:          {icon: "🧴", color: "#00B5D8"},
	models.SectorMetalFabrication:  {icon: "🔩", color: "#718096"},
	models.SectorLeather:           {icon: "👞", color: "#7B341E"},
	models.SectorFurniture:         {icon: "🪑", color: "#9C4221"},
	models.SectorRetail:            {icon: "🛒", color: "#319795"},
	models.SectorHospitality:       {icon: "🏨", color: "#D69E2E"},
	models.SectorITServices:        {icon: "💻", color: "#5A67D8"},
	models.SectorOther:             {icon: "📋", color: "#A0AEC0"},
}

// otherLabel is the display label of the catch-all sector, which has no model
const otherLabel = "Other"

func (r *SectorRegistry) label(sector models.Sector) string {
	if m := r.Model(sector); m != nil {
		return m.Label
	}
	return otherLabel
}

func (r *SectorRegistry) industryInfo(sector models.Sector) models.IndustryInfo {
	if !sector.IsValid() {
		sector = models.SectorOther
	}
	p := industryPresentations[sector]
	return models.IndustryInfo{
		Key:   sector,
		Label: r.label(sector),
		Icon:  p.icon,
		Color: p.color,
	}
}
