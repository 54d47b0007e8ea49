package dto

// AddIndicatorRequest is a configured sender indicator to store for a sector
type AddIndicatorRequest struct {
	Sector    string `json:"sector" validate:"required,classifiable_sector"`
	Indicator string `json:"indicator" validate:"required,max=100"`
	Note      string `json:"note" validate:"max=500"`
}
