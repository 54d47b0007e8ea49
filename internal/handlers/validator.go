package handlers

import (
	"msme-carbon/internal/validation"

	"github.com/labstack/echo/v4"
)

// RequestValidator plugs the shared rule set (sector, region, transaction category and
// non-negative amount tags) into echo, so c.Validate and the CLI reject the same input
type RequestValidator struct {
	rules *validation.Validator
}

// NewValidator returns the echo.Validator used by every request DTO
func NewValidator() echo.Validator {
	return &RequestValidator{rules: validation.GetValidator()}
}

// Validate returns validator.ValidationErrors for an invalid request
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.rules.Struct(i)
}
