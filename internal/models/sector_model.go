package models

// TransactionCategory groups the detail keywords of a sector by the kind of money movement
type TransactionCategory string

const (
	TransactionPurchase   TransactionCategory = "purchase"
	TransactionSale       TransactionCategory = "sale"
	TransactionExpense    TransactionCategory = "expense"
	TransactionUtility    TransactionCategory = "utility"
	TransactionTransport  TransactionCategory = "transport"
	TransactionInvestment TransactionCategory = "investment"
)

// AllTransactionCategories returns the transaction categories in canonical order
func AllTransactionCategories() []TransactionCategory {
	return []TransactionCategory{
		TransactionPurchase,
		TransactionSale,
		TransactionExpense,
		TransactionUtility,
		TransactionTransport,
		TransactionInvestment,
	}
}

// IsValidTransactionCategory checks if a transaction category string is valid
func IsValidTransactionCategory(category string) bool {
	for _, c := range AllTransactionCategories() {
		if string(c) == category {
			return true
		}
	}
	return false
}

// CarbonWeightages are the relative contributions of each activity dimension to the
// estimated carbon impact of a sector in a region
type CarbonWeightages struct {
	Energy    float64 `json:"energy" yaml:"energy"`
	Transport float64 `json:"transport" yaml:"transport"`
	Materials float64 `json:"materials" yaml:"materials"`
	Waste     float64 `json:"waste" yaml:"waste"`
	Water     float64 `json:"water" yaml:"water"`
}

// IsZero reports whether every coefficient is zero
func (w CarbonWeightages) IsZero() bool {
	return w == CarbonWeightages{}
}

// HasNegative reports whether any coefficient is below zero
func (w CarbonWeightages) HasNegative() bool {
	return w.Energy < 0 || w.Transport < 0 || w.Materials < 0 || w.Waste < 0 || w.Water < 0
}

// SectorModel is the vocabulary and weightage profile of a single sector
type SectorModel struct {
	Sector       Sector                           `json:"sector" yaml:"sector"`
	Label        string                           `json:"label" yaml:"label"`
	Processes    []string                         `json:"processes" yaml:"processes"`
	Machinery    []string                         `json:"machinery" yaml:"machinery"`
	Inputs       []string                         `json:"inputs" yaml:"inputs"`
	Outputs      []string                         `json:"outputs" yaml:"outputs"`
	Transactions map[TransactionCategory][]string `json:"transactions" yaml:"transactions"`
	Weightages   map[Region]CarbonWeightages      `json:"weightages" yaml:"weightages"`
}

// HasVocabulary reports whether at least one vocabulary sequence is non-empty
func (m *SectorModel) HasVocabulary() bool {
	if len(m.Processes) > 0 || len(m.Machinery) > 0 || len(m.Inputs) > 0 || len(m.Outputs) > 0 {
		return true
	}
	for _, keywords := range m.Transactions {
		if len(keywords) > 0 {
			return true
		}
	}
	return false
}
