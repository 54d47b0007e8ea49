package dto

import "msme-carbon/internal/models"

// Classification Request DTOs

// ClassifyRequest represents the request payload for classifying a message.
// Empty text is valid and classifies as other.
type ClassifyRequest struct {
	Text       string `json:"text" validate:"max=4096"`
	Sender     string `json:"sender" validate:"max=128"`
	RegionHint string `json:"regionHint" validate:"omitempty,region"`
}

// AssessRequest represents the request payload for classifying a message and
// weighting a transaction amount by the resolved carbon weightages
type AssessRequest struct {
	Text       string `json:"text" validate:"max=4096"`
	Sender     string `json:"sender" validate:"max=128"`
	RegionHint string `json:"regionHint" validate:"omitempty,region"`
	Amount     string `json:"amount" validate:"required,non_negative_amount"`
	Category   string `json:"category" validate:"omitempty,transaction_category"`
}

// Classification Response DTOs

// AssessResponse carries the classification alongside the assessment it produced
type AssessResponse struct {
	Classification *models.ClassificationResult `json:"classification" yaml:"classification"`
	Assessment     *models.CarbonAssessment     `json:"assessment,omitempty" yaml:"assessment,omitempty"`
}

// IndustriesResponse lists presentation data for every declared sector
type IndustriesResponse struct {
	Industries []models.IndustryInfo `json:"industries" yaml:"industries"`
	Count      int                   `json:"count" yaml:"count"`
}

// IndustryDetailResponse is the presentation data of a sector with its model.
// Model is absent for other.
type IndustryDetailResponse struct {
	Industry models.IndustryInfo `json:"industry" yaml:"industry"`
	Model    *models.SectorModel `json:"model,omitempty" yaml:"model,omitempty"`
}
