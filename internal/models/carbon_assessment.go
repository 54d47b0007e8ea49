package models

import "github.com/shopspring/decimal"

// CarbonAssessment is the weighted impact of a single transaction amount
type CarbonAssessment struct {
	Sector      Sector              `json:"sector" yaml:"sector"`
	Region      Region              `json:"region,omitempty" yaml:"region,omitempty"`
	Category    TransactionCategory `json:"category,omitempty" yaml:"category,omitempty"`
	Amount      decimal.Decimal     `json:"amount" yaml:"amount"`
	Energy      decimal.Decimal     `json:"energy" yaml:"energy"`
	Transport   decimal.Decimal     `json:"transport" yaml:"transport"`
	Materials   decimal.Decimal     `json:"materials" yaml:"materials"`
	Waste       decimal.Decimal     `json:"waste" yaml:"waste"`
	Water       decimal.Decimal     `json:"water" yaml:"water"`
	ImpactIndex decimal.Decimal     `json:"impactIndex" yaml:"impactIndex"`
	Confidence  float64             `json:"confidence" yaml:"confidence"`
}
